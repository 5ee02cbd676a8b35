package game

import (
	"fmt"
	"maps"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Spawn is the closed set of actor constructors a plan symbol can map to.
type Spawn int

const (
	SpawnNone Spawn = iota
	SpawnPlayer
	SpawnCoin
	SpawnHorizontalFireball
	SpawnVerticalFireball
	SpawnFireRain
)

var spawnNames = map[Spawn]string{
	SpawnNone:               "none",
	SpawnPlayer:             "player",
	SpawnCoin:               "coin",
	SpawnHorizontalFireball: "horizontal_fireball",
	SpawnVerticalFireball:   "vertical_fireball",
	SpawnFireRain:           "fire_rain",
}

func (s Spawn) String() string {
	if name, ok := spawnNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSpawn resolves a spawn by its name, e.g. "fire_rain".
func ParseSpawn(name string) (Spawn, error) {
	for s, n := range spawnNames {
		if n == name {
			return s, nil
		}
	}
	return SpawnNone, fmt.Errorf("game: unknown spawn %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Spawn) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so spawns can be named
// in YAML and JSON level packs.
func (s *Spawn) UnmarshalText(text []byte) error {
	parsed, err := ParseSpawn(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// New constructs the actor for a plan cell at pos. It returns nil for
// SpawnNone and unknown values.
func (s Spawn) New(pos core.Vector, rng *rand.Rand) Actor {
	switch s {
	case SpawnPlayer:
		return NewPlayer(pos)
	case SpawnCoin:
		return NewCoin(pos, rng)
	case SpawnHorizontalFireball:
		return NewHorizontalFireball(pos)
	case SpawnVerticalFireball:
		return NewVerticalFireball(pos)
	case SpawnFireRain:
		return NewFireRain(pos)
	case SpawnNone:
		return nil
	default:
		return nil
	}
}

// Symbols maps plan characters to actor constructors.
type Symbols map[rune]Spawn

// DefaultSymbols returns the standard plan legend.
func DefaultSymbols() Symbols {
	return Symbols{
		'@': SpawnPlayer,
		'o': SpawnCoin,
		'=': SpawnHorizontalFireball,
		'|': SpawnVerticalFireball,
		'v': SpawnFireRain,
	}
}

// Parser turns textual plans into levels.
type Parser struct {
	symbols Symbols
	rng     *rand.Rand
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithRand sets the random source used for coin spring phases.
func WithRand(rng *rand.Rand) ParserOption {
	return func(p *Parser) {
		p.rng = rng
	}
}

// WithSeed seeds the random source used for coin spring phases.
func WithSeed(seed int64) ParserOption {
	return WithRand(rand.New(rand.NewSource(seed))) //#nosec G404 -- deterministic gameplay
}

// NewParser creates a parser for the given legend. The legend is copied.
func NewParser(symbols Symbols, opts ...ParserOption) *Parser {
	p := &Parser{symbols: maps.Clone(symbols)}
	if p.symbols == nil {
		p.symbols = Symbols{}
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- animation phase
	}
	return p
}

// ObstacleFromSymbol maps 'x' to a wall and '!' to lava. Every other
// symbol is an empty cell.
func (p *Parser) ObstacleFromSymbol(r rune) Obstacle {
	switch r {
	case 'x':
		return ObstacleWall
	case '!':
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// ActorFromSymbol looks up the constructor for a plan symbol.
func (p *Parser) ActorFromSymbol(r rune) (Spawn, bool) {
	s, ok := p.symbols[r]
	return s, ok
}

// CreateGrid maps every plan character to its obstacle. Rows keep their
// own lengths.
func (p *Parser) CreateGrid(plan []string) [][]Obstacle {
	grid := make([][]Obstacle, len(plan))
	for y, row := range plan {
		runes := []rune(row)
		grid[y] = make([]Obstacle, len(runes))
		for x, r := range runes {
			grid[y][x] = p.ObstacleFromSymbol(r)
		}
	}
	return grid
}

// CreateActors spawns an actor for every mapped symbol, in row-major order.
// The column index is x and the row index is y. Symbols whose constructor
// yields no actor are skipped.
func (p *Parser) CreateActors(plan []string) []Actor {
	var actors []Actor
	for y, row := range plan {
		for x, r := range []rune(row) {
			spawn, ok := p.ActorFromSymbol(r)
			if !ok {
				continue
			}
			actor := spawn.New(core.V(float64(x), float64(y)), p.rng)
			if isNilActor(actor) {
				continue
			}
			actors = append(actors, actor)
		}
	}
	return actors
}

// Parse builds a level from a plan.
func (p *Parser) Parse(plan []string) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
