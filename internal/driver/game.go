package driver

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Campaign states
const (
	StatePlaying  = "playing"  // A level is running
	StatePaused   = "paused"   // Simulation halted by the player
	StateGameOver = "gameover" // Out of lives, or lost without restart
	StateWon      = "won"      // Every level of the pack completed
)

// Game plays a pack level by level. Winning a level advances to the next
// plan, losing one restarts it at the cost of a life.
type Game struct {
	pack    registry.Pack
	plans   [][]string
	symbols game.Symbols

	cfg        config.PlatformerConfig
	physics    Physics
	difficulty config.HazardCurve
	runtime    core.RuntimeConfig
	parser     *game.Parser

	level      *game.Level
	start      int
	levelIndex int
	levelCoins int // Coins at level start
	levelTicks int

	state    string
	banked   int // Coins from won levels
	lives    int
	tick     int
	attempts int

	logger   *log.Logger
	recorder ResultRecorder
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the gameplay configuration.
func WithConfig(cfg config.PlatformerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger for level and campaign events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRecorder stores every finished level attempt.
func WithRecorder(r ResultRecorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// WithStartLevel starts the campaign at a 0-based level index.
func WithStartLevel(index int) Option {
	return func(g *Game) {
		g.start = index
	}
}

// New creates a game for pack. Call Reset before stepping.
func New(pack registry.Pack, opts ...Option) *Game {
	g := &Game{
		pack:    pack,
		plans:   pack.Plans(),
		symbols: pack.Symbols(),
		cfg:     config.DefaultPlatformerConfig(),
		logger:  log.Default(),
		state:   StatePlaying,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the pack ID.
func (g *Game) ID() string {
	return g.pack.ID()
}

// Title returns the pack title.
func (g *Game) Title() string {
	return g.pack.Title()
}

// Reset starts the campaign over from its start level with full lives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	runtime = runtime.Normalized()
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime

	g.physics = PhysicsFrom(g.cfg.Physics)
	g.difficulty = config.NewHazardCurve(g.cfg.Difficulty)
	g.parser = game.NewParser(g.symbols, game.WithSeed(runtime.Seed))

	g.levelIndex = core.Clamp(g.start, 0, max(0, len(g.plans)-1))
	g.banked = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.attempts = 0
	g.state = StatePlaying

	if len(g.plans) == 0 {
		g.level = nil
		g.state = StateWon
		return
	}
	g.loadLevel(g.levelIndex)
}

// loadLevel parses plan index into a fresh level.
func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.level = g.parser.Parse(g.plans[index])
	g.level.FinishDelay = g.cfg.Gameplay.FinishDelay
	g.levelCoins = coinCount(g.level)
	g.levelTicks = 0
	g.attempts++

	g.logger.Debug("level started",
		"pack", g.pack.ID(),
		"level", index+1,
		"coins", g.levelCoins,
		"size", fmt.Sprintf("%dx%d", g.level.Width(), g.level.Height()),
	)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWon) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.levelTicks++

	phys := g.physics
	phys.HazardScale = g.difficulty.HazardScale(g.levelIndex, g.tick)

	before := g.level.Status()
	dt := g.runtime.TickSeconds()
	status, err := StepLevel(g.level, dt, ControlsFrom(in), phys)
	if err != nil {
		g.logger.Error("level step failed", "pack", g.pack.ID(), "level", g.levelIndex+1, "error", err)
		g.state = StateGameOver
		return core.StepResult{State: g.State()}
	}

	if status != before {
		g.logger.Info("level "+status.String(),
			"pack", g.pack.ID(),
			"level", g.levelIndex+1,
			"ticks", g.levelTicks,
			"coins", g.collected(),
		)
	}

	if g.level.IsFinished() {
		g.finishLevel(status)
	}

	return core.StepResult{State: g.State()}
}

// finishLevel records the attempt and moves the campaign on.
func (g *Game) finishLevel(status game.Status) {
	g.record(status)
	coins := g.collected()
	g.levelCoins = coinCount(g.level)

	switch status {
	case game.StatusWon:
		g.banked += coins
		if g.levelIndex+1 >= len(g.plans) {
			g.state = StateWon
			g.logger.Info("pack completed", "pack", g.pack.ID(), "coins", g.banked, "ticks", g.tick)
			return
		}
		g.loadLevel(g.levelIndex + 1)

	case game.StatusLost:
		if g.cfg.Gameplay.Lives > 0 {
			g.lives--
			if g.lives <= 0 {
				g.lives = 0
				g.state = StateGameOver
				g.logger.Info("game over", "pack", g.pack.ID(), "level", g.levelIndex+1)
				return
			}
		}
		if !g.cfg.Gameplay.RestartOnLoss {
			g.state = StateGameOver
			return
		}
		g.loadLevel(g.levelIndex)
	}
}

func (g *Game) record(status game.Status) {
	if g.recorder == nil {
		return
	}
	err := g.recorder.RecordResult(Result{
		PackID:     g.pack.ID(),
		LevelIndex: g.levelIndex,
		Outcome:    status,
		Ticks:      g.levelTicks,
		Coins:      g.collected(),
	})
	if err != nil {
		g.logger.Warn("could not record result", "error", err)
	}
}

// collected returns the coins picked up in the current attempt.
func (g *Game) collected() int {
	if g.level == nil {
		return 0
	}
	return g.levelCoins - coinCount(g.level)
}

func coinCount(level *game.Level) int {
	n := 0
	for _, a := range level.Actors() {
		if a.Kind() == game.KindCoin {
			n++
		}
	}
	return n
}

// Level returns the level being played, or nil when the pack is empty.
func (g *Game) Level() *game.Level {
	return g.level
}

// LevelIndex returns the 0-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// Phase returns the campaign state constant.
func (g *Game) Phase() string {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.banked + g.collected(),
		Level:    g.levelIndex + 1,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateWon,
		Won:      g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
}
