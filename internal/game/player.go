package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// PlayerSize is the player's bounding box.
var PlayerSize = core.V(0.8, 1.5)

// playerSpawnOffset lifts the taller player box so its feet rest on the
// floor of the spawn cell.
var playerSpawnOffset = core.V(0, -0.5)

// Player is the controllable actor. The core never moves it: input-driven
// motion is applied by the driver through Body.
type Player struct {
	body Body
}

// NewPlayer creates a player for the plan cell at pos.
func NewPlayer(pos core.Vector) *Player {
	return &Player{body: NewBody(pos.Plus(playerSpawnOffset), PlayerSize, core.Vector{})}
}

func (p *Player) Body() *Body { return &p.body }

func (p *Player) Kind() Kind { return KindPlayer }

// Act is a no-op; the driver owns player movement.
func (p *Player) Act(float64, *Level) {}
