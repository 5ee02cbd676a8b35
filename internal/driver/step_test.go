package driver

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

func parse(plan ...string) *game.Level {
	return game.NewParser(game.DefaultSymbols(), game.WithSeed(1)).Parse(plan)
}

// settle runs the level with no input long enough for the player to land.
func settle(t *testing.T, level *game.Level) {
	t.Helper()
	if _, err := StepLevel(level, 2, Controls{}, DefaultPhysics()); err != nil {
		t.Fatalf("StepLevel() error = %v", err)
	}
}

func TestStepLevelNilLevel(t *testing.T) {
	if _, err := StepLevel(nil, 1, Controls{}, DefaultPhysics()); !errors.Is(err, ErrNoLevel) {
		t.Errorf("StepLevel(nil) error = %v, expected ErrNoLevel", err)
	}
}

func TestStepLevelRejectsNonFiniteDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"nan", math.NaN()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := parse("@ o", "xxx")
			before := level.Player().Body().Pos

			status, err := StepLevel(level, tc.dt, Controls{Right: true}, DefaultPhysics())
			if !errors.Is(err, ErrBadStep) {
				t.Errorf("StepLevel(%v) error = %v, expected ErrBadStep", tc.dt, err)
			}
			if status != game.StatusNone {
				t.Errorf("StepLevel(%v) status = %v, expected none", tc.dt, status)
			}
			if level.Player().Body().Pos != before {
				t.Errorf("player moved to %v, expected to stay at %v", level.Player().Body().Pos, before)
			}
		})
	}
}

func TestControlsFrom(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionJump)

	got := ControlsFrom(in)
	expected := Controls{Left: true, Jump: true}
	if got != expected {
		t.Errorf("ControlsFrom() = %+v, expected %+v", got, expected)
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	level := parse(
		"   ",
		" @ ",
		"   ",
		"xxx",
	)
	settle(t, level)

	b := level.Player().Body()
	if b.Bottom() > 3 || b.Bottom() < 2.9 {
		t.Errorf("player bottom = %v, expected resting just above 3", b.Bottom())
	}
	if b.Speed.Y != 0 {
		t.Errorf("Speed.Y = %v, expected 0 on the ground", b.Speed.Y)
	}
	if level.Status() != game.StatusNone {
		t.Errorf("Status() = %v, expected none", level.Status())
	}
}

func TestPlayerJumpsFromGround(t *testing.T) {
	level := parse(
		"   ",
		"   ",
		"   ",
		"   ",
		"   ",
		" @ ",
		"xxx",
	)
	settle(t, level)
	phys := DefaultPhysics()
	b := level.Player().Body()
	startY := b.Pos.Y

	if _, err := StepLevel(level, 0.05, Controls{Jump: true}, phys); err != nil {
		t.Fatalf("StepLevel() error = %v", err)
	}
	if b.Speed.Y != -phys.JumpSpeed {
		t.Fatalf("Speed.Y = %v, expected %v", b.Speed.Y, -phys.JumpSpeed)
	}

	StepLevel(level, 0.05, Controls{}, phys)
	if b.Pos.Y >= startY {
		t.Errorf("Pos.Y = %v, expected the player to rise above %v", b.Pos.Y, startY)
	}
}

func TestJumpNeedsGround(t *testing.T) {
	level := parse(
		"   ",
		" @ ",
		"   ",
		"   ",
		"   ",
		"xxx",
	)
	StepLevel(level, 0.05, Controls{Jump: true}, DefaultPhysics())

	if vy := level.Player().Body().Speed.Y; vy <= 0 {
		t.Errorf("Speed.Y = %v, expected the player to keep falling", vy)
	}
}

func TestWalkBlockedByWall(t *testing.T) {
	level := parse(
		"     ",
		"@  x ",
		"xxxxx",
	)

	StepLevel(level, 2, Controls{Right: true}, DefaultPhysics())

	b := level.Player().Body()
	if b.Right() > 3 || b.Right() < 2.6 {
		t.Errorf("player right edge = %v, expected stopped just before the wall at 3", b.Right())
	}
	if level.Status() != game.StatusNone {
		t.Errorf("Status() = %v, expected walls to be harmless", level.Status())
	}
}

func TestWalkLeftStopsAtLevelEdge(t *testing.T) {
	level := parse(
		"    ",
		"  @ ",
		"xxxx",
	)

	StepLevel(level, 2, Controls{Left: true}, DefaultPhysics())

	if x := level.Player().Body().Pos.X; x < 0 || x > 0.35 {
		t.Errorf("Pos.X = %v, expected stopped near the left edge", x)
	}
}

func TestFallingIntoLavaLoses(t *testing.T) {
	level := parse(
		"  ",
		"@ ",
		"  ",
		"!!",
	)

	status, err := StepLevel(level, 1, Controls{}, DefaultPhysics())
	if err != nil {
		t.Fatalf("StepLevel() error = %v", err)
	}
	if status != game.StatusLost {
		t.Errorf("StepLevel() = %v, expected lost", status)
	}
}

func TestFallingOutOfTheLevelLoses(t *testing.T) {
	level := parse(
		"  ",
		"@ ",
		"  ",
	)

	if status, _ := StepLevel(level, 1, Controls{}, DefaultPhysics()); status != game.StatusLost {
		t.Errorf("StepLevel() = %v, expected lost below the grid", status)
	}
}

func TestFinishDelayAndSinking(t *testing.T) {
	level := parse(
		"  ",
		"@ ",
		"!!",
	)
	phys := DefaultPhysics()

	StepLevel(level, 0.05, Controls{}, phys)
	if level.Status() != game.StatusLost {
		t.Fatalf("Status() = %v, expected lost", level.Status())
	}
	if level.FinishDelay >= 1 {
		t.Errorf("FinishDelay = %v, expected the countdown to start", level.FinishDelay)
	}

	StepLevel(level, 0.5, Controls{}, phys)
	if level.IsFinished() {
		t.Error("IsFinished() = true before the delay ran out")
	}
	if h := level.Player().Body().Size.Y; h >= game.PlayerSize.Y {
		t.Errorf("player height = %v, expected it to shrink after losing", h)
	}

	StepLevel(level, 0.6, Controls{}, phys)
	if !level.IsFinished() {
		t.Error("IsFinished() = false after the delay ran out")
	}
	if level.Status() != game.StatusLost {
		t.Errorf("Status() = %v, expected lost to stick", level.Status())
	}
}

func TestCollectingLastCoinWins(t *testing.T) {
	level := parse(
		"     ",
		"@o   ",
		"xxxxx",
	)

	status, err := StepLevel(level, 0.2, Controls{Right: true}, DefaultPhysics())
	if err != nil {
		t.Fatalf("StepLevel() error = %v", err)
	}
	if status != game.StatusWon {
		t.Errorf("StepLevel() = %v, expected won", status)
	}
	if !level.NoMoreActors(game.KindCoin) {
		t.Error("the coin should have been collected")
	}
}

func TestFireballContactLoses(t *testing.T) {
	level := parse(
		"      ",
		"@   | ",
		"xxxxxx",
	)

	if status, _ := StepLevel(level, 2, Controls{Right: true}, DefaultPhysics()); status != game.StatusLost {
		t.Errorf("StepLevel() = %v, expected lost after touching a fireball", status)
	}
}

func TestLavaTakesPrecedenceOverCoin(t *testing.T) {
	parser := game.NewParser(nil)
	rng := rand.New(rand.NewSource(1))

	// The coin overlaps the player while the player lands in lava.
	lavaGrid := parser.CreateGrid([]string{"   ", "   ", "!!!"})
	player := game.NewPlayer(core.V(0, 1))
	coin := game.NewCoin(core.V(0, 1), rng)
	level := game.NewLevel(lavaGrid, []game.Actor{coin, player})

	StepLevel(level, 0.05, Controls{}, DefaultPhysics())
	if level.Status() != game.StatusLost {
		t.Errorf("Status() = %v, expected lost", level.Status())
	}
	if !level.HasActor(coin) {
		t.Error("no actor contact should be reported after the level is lost")
	}

	// The same overlap over solid ground collects the coin.
	floorGrid := parser.CreateGrid([]string{"   ", "   ", "xxx"})
	player = game.NewPlayer(core.V(0, 1))
	coin = game.NewCoin(core.V(0, 1), rng)
	level = game.NewLevel(floorGrid, []game.Actor{coin, player})

	StepLevel(level, 0.05, Controls{}, DefaultPhysics())
	if level.Status() != game.StatusWon {
		t.Errorf("Status() = %v, expected won", level.Status())
	}
}

// removerActor removes its target from the level when it acts.
type removerActor struct {
	body   game.Body
	target game.Actor
}

func (r *removerActor) Body() *game.Body { return &r.body }
func (r *removerActor) Kind() game.Kind  { return game.KindActor }
func (r *removerActor) Act(_ float64, level *game.Level) {
	level.RemoveActor(r.target)
}

func TestActorRemovedMidStepIsSkipped(t *testing.T) {
	coin := game.NewCoin(core.V(3, 3), rand.New(rand.NewSource(1)))
	remover := &removerActor{
		body:   game.NewBody(core.V(0, 0), game.DefaultSize, core.Vector{}),
		target: coin,
	}
	level := game.NewLevel(nil, []game.Actor{remover, coin})
	spring := coin.Spring()

	if _, err := StepLevel(level, 0.05, Controls{}, DefaultPhysics()); err != nil {
		t.Fatalf("StepLevel() error = %v", err)
	}

	if level.HasActor(coin) {
		t.Error("coin should have been removed")
	}
	if coin.Spring() != spring {
		t.Error("a removed actor should not act later in the same step")
	}
}

func TestLargeStepIsSplit(t *testing.T) {
	level := parse("=  x")
	f := level.Actors()[0].(*game.Fireball)

	// Unsplit, the fireball would try to jump straight to x=3 and bounce in
	// place. Split, it reaches the wall near t=1 and comes back.
	StepLevel(level, 1.5, Controls{}, DefaultPhysics())

	if f.Body().Speed.X != -2 {
		t.Errorf("Speed.X = %v, expected -2 after bouncing", f.Body().Speed.X)
	}
	if x := f.Body().Pos.X; x < 0.5 || x > 1.5 {
		t.Errorf("Pos.X = %v, expected about 1 on the way back", x)
	}
}

func TestHazardScale(t *testing.T) {
	level := parse("=         ")
	f := level.Actors()[0].(*game.Fireball)

	phys := DefaultPhysics()
	phys.HazardScale = 2
	StepLevel(level, 0.5, Controls{}, phys)

	if x := f.Body().Pos.X; math.Abs(x-2) > 1e-9 {
		t.Errorf("Pos.X = %v, expected 2 with doubled hazard time", x)
	}
}

func TestZeroStepIsNoop(t *testing.T) {
	level := parse("=   ")
	f := level.Actors()[0].(*game.Fireball)

	StepLevel(level, 0, Controls{}, DefaultPhysics())
	StepLevel(level, -1, Controls{}, DefaultPhysics())

	if f.Body().Pos.X != 0 {
		t.Errorf("Pos.X = %v, expected 0", f.Body().Pos.X)
	}
}
