package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Coin spring parameters.
const (
	SpringSpeed = 8.0  // Phase advance per time unit, in radians
	SpringDist  = 0.07 // Vertical bob amplitude, in cells
)

// CoinSize is the coin's bounding box.
var CoinSize = core.V(0.6, 0.6)

// coinSpawnOffset centers the coin inside its spawn cell. The bob is not
// clamped to that cell.
var coinSpawnOffset = core.V(0.2, 0.1)

// Coin is a collectible that bobs vertically around its spawn point.
// It never collides with terrain.
type Coin struct {
	body   Body
	base   core.Vector
	spring float64
}

// NewCoin creates a coin for the plan cell at pos. The initial spring phase
// is drawn uniformly from [0, 2π) using rng, or the global source when rng
// is nil.
func NewCoin(pos core.Vector, rng *rand.Rand) *Coin {
	var r float64
	if rng != nil {
		r = rng.Float64()
	} else {
		r = rand.Float64() //#nosec G404 -- animation phase, not security
	}
	base := pos.Plus(coinSpawnOffset)
	return &Coin{
		body:   NewBody(base, CoinSize, core.Vector{}),
		base:   base,
		spring: r * 2 * math.Pi,
	}
}

func (c *Coin) Body() *Body { return &c.body }

func (c *Coin) Kind() Kind { return KindCoin }

// Spring returns the current oscillation phase in radians.
func (c *Coin) Spring() float64 {
	return c.spring
}

// Base returns the rest position the coin bobs around.
func (c *Coin) Base() core.Vector {
	return c.base
}

// Act advances the spring phase and recomputes the position from the base.
// The level is not consulted.
func (c *Coin) Act(dt float64, _ *Level) {
	c.spring += SpringSpeed * dt
	c.body.Pos = c.base.Plus(core.V(0, math.Sin(c.spring)*SpringDist))
}
