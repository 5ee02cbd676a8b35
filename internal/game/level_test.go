package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestNewLevelDimensions(t *testing.T) {
	empty := NewLevel(nil, nil)
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("empty level = %dx%d, expected 0x0", empty.Width(), empty.Height())
	}

	grid := [][]Obstacle{
		make([]Obstacle, 3),
		make([]Obstacle, 2),
	}
	level := NewLevel(grid, nil)
	if level.Width() != 3 {
		t.Errorf("Width() = %d, expected 3", level.Width())
	}
	if level.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", level.Height())
	}
}

func TestNewLevelDefaults(t *testing.T) {
	level := NewLevel(nil, nil)

	if level.Status() != StatusNone {
		t.Errorf("Status() = %v, expected none", level.Status())
	}
	if level.FinishDelay != 1 {
		t.Errorf("FinishDelay = %v, expected 1", level.FinishDelay)
	}
}

func TestNewLevelCopiesInputs(t *testing.T) {
	grid := [][]Obstacle{{ObstacleNone, ObstacleNone}}
	coin := NewCoin(core.V(0, 0), nil)
	actors := []Actor{coin}

	level := NewLevel(grid, actors)
	grid[0][0] = ObstacleWall
	actors[0] = nil

	if level.Cell(0, 0) != ObstacleNone {
		t.Error("NewLevel should copy the grid")
	}
	if !level.HasActor(coin) {
		t.Error("NewLevel should copy the actor list")
	}
}

func TestLevelPlayer(t *testing.T) {
	coin := NewCoin(core.V(0, 0), nil)
	first := NewPlayer(core.V(1, 1))
	second := NewPlayer(core.V(2, 2))

	level := NewLevel(nil, []Actor{coin, first, second})
	if level.Player() != first {
		t.Error("Player() should return the first player")
	}

	if NewLevel(nil, []Actor{coin}).Player() != nil {
		t.Error("Player() should be nil without a player")
	}
}

func TestLevelIsFinished(t *testing.T) {
	level := NewLevel(nil, nil)

	level.FinishDelay = -1
	if level.IsFinished() {
		t.Error("IsFinished() should be false while status is none")
	}

	level.PlayerTouched(TouchLava, nil)
	level.FinishDelay = 0.5
	if level.IsFinished() {
		t.Error("IsFinished() should be false while FinishDelay >= 0")
	}
	level.FinishDelay = 0
	if level.IsFinished() {
		t.Error("IsFinished() should be false at FinishDelay == 0")
	}

	level.FinishDelay = -0.01
	if !level.IsFinished() {
		t.Error("IsFinished() should be true once status is set and FinishDelay < 0")
	}
}

func TestActorAt(t *testing.T) {
	player := NewPlayer(core.V(0, 1)) // box (0,0.5)-(0.8,2)
	coin := NewCoin(core.V(0, 1), nil)
	far := NewHorizontalFireball(core.V(5, 5))

	level := NewLevel(nil, []Actor{player, far, coin})

	got, err := level.ActorAt(player)
	if err != nil {
		t.Fatalf("ActorAt() error = %v", err)
	}
	if got != coin {
		t.Errorf("ActorAt() = %v, expected the coin", got)
	}

	got, _ = level.ActorAt(far)
	if got != nil {
		t.Errorf("ActorAt(far) = %v, expected nil", got)
	}
}

func TestActorAtNotInLevel(t *testing.T) {
	coin := NewCoin(core.V(0, 0), nil)
	level := NewLevel(nil, []Actor{coin})

	probe := NewProp(core.V(0, 0), DefaultSize, core.Vector{})
	got, err := level.ActorAt(probe)
	if err != nil {
		t.Fatalf("ActorAt() error = %v", err)
	}
	if got != coin {
		t.Error("ActorAt() should find actors overlapping an outside probe")
	}
}

func TestActorAtRejectsNil(t *testing.T) {
	level := NewLevel(nil, nil)

	_, err := level.ActorAt(nil)
	if !errors.Is(err, ErrTypeConstraint) {
		t.Errorf("ActorAt(nil) error = %v, expected ErrTypeConstraint", err)
	}

	var typedNil *Player
	_, err = level.ActorAt(typedNil)
	if !errors.Is(err, ErrTypeConstraint) {
		t.Errorf("ActorAt(typed nil) error = %v, expected ErrTypeConstraint", err)
	}
}

func TestObstacleAt(t *testing.T) {
	parser := NewParser(nil)
	level := parser.Parse([]string{
		"     ",
		"  x  ",
		"     ",
		"!    ",
	})
	unit := core.V(1, 1)

	tests := []struct {
		name     string
		pos      core.Vector
		size     core.Vector
		expected Obstacle
	}{
		{"empty cell", core.V(0, 0), unit, ObstacleNone},
		{"fractional inside empty", core.V(3.2, 0.1), core.V(0.6, 0.6), ObstacleNone},
		{"wall cell", core.V(2, 1), unit, ObstacleWall},
		{"overlapping wall", core.V(1.5, 0.5), unit, ObstacleWall},
		{"lava cell", core.V(0, 3), unit, ObstacleLava},
		{"left of grid", core.V(-0.1, 0), unit, ObstacleWall},
		{"entirely left of grid", core.V(-5, 0), unit, ObstacleWall},
		{"right of grid", core.V(4.5, 0), unit, ObstacleWall},
		{"above grid", core.V(0, -0.5), unit, ObstacleWall},
		{"entirely above grid", core.V(0, -5), unit, ObstacleWall},
		{"below grid", core.V(1, 3.5), unit, ObstacleLava},
		{"entirely below grid", core.V(1, 10), unit, ObstacleLava},
		{"flush with right edge", core.V(4, 0), unit, ObstacleNone},
		{"flush with bottom edge", core.V(1, 3), unit, ObstacleNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := level.ObstacleAt(tc.pos, tc.size); got != tc.expected {
				t.Errorf("ObstacleAt(%v, %v) = %q, expected %q", tc.pos, tc.size, got, tc.expected)
			}
		})
	}
}

func TestObstacleAtScansRowMajor(t *testing.T) {
	parser := NewParser(nil)
	level := parser.Parse([]string{
		"   !",
		"x   ",
	})

	// The box covers both rows; lava in row 0 comes before the wall in row 1.
	if got := level.ObstacleAt(core.V(0, 0), core.V(4, 2)); got != ObstacleLava {
		t.Errorf("ObstacleAt() = %q, expected lava", got)
	}
}

func TestObstacleAtRaggedRows(t *testing.T) {
	parser := NewParser(nil)
	level := parser.Parse([]string{
		"xxxxx",
		"x",
	})

	if got := level.ObstacleAt(core.V(3, 1), core.V(1, 1)); got != ObstacleNone {
		t.Errorf("ObstacleAt past a short row = %q, expected empty", got)
	}
}

func TestRemoveActor(t *testing.T) {
	a := NewCoin(core.V(0, 0), nil)
	b := NewCoin(core.V(1, 0), nil)
	c := NewCoin(core.V(2, 0), nil)
	level := NewLevel(nil, []Actor{a, b, c})

	snapshot := level.Actors()
	level.RemoveActor(b)

	if level.HasActor(b) {
		t.Error("RemoveActor should remove the actor")
	}
	if !level.HasActor(a) || !level.HasActor(c) {
		t.Error("RemoveActor should keep other actors")
	}
	if len(snapshot) != 3 || snapshot[1] != b {
		t.Error("RemoveActor should not disturb an earlier snapshot")
	}

	// Removing an unknown or nil actor is a no-op.
	level.RemoveActor(NewCoin(core.V(0, 0), nil))
	level.RemoveActor(nil)
	if len(level.Actors()) != 2 {
		t.Errorf("len(Actors()) = %d, expected 2", len(level.Actors()))
	}
}

func TestNoMoreActors(t *testing.T) {
	coin := NewCoin(core.V(0, 0), nil)
	level := NewLevel(nil, []Actor{NewPlayer(core.V(0, 0)), coin})

	if level.NoMoreActors(KindCoin) {
		t.Error("NoMoreActors(coin) should be false with a coin present")
	}
	if !level.NoMoreActors(KindFireball) {
		t.Error("NoMoreActors(fireball) should be true without fireballs")
	}

	level.RemoveActor(coin)
	if !level.NoMoreActors(KindCoin) {
		t.Error("NoMoreActors(coin) should be true after removal")
	}
}

func TestPlayerTouchedLethal(t *testing.T) {
	for _, touch := range []Touch{TouchLava, TouchFireball} {
		t.Run(touch.String(), func(t *testing.T) {
			level := NewLevel(nil, []Actor{NewCoin(core.V(0, 0), nil)})

			if got := level.PlayerTouched(touch, nil); got != StatusLost {
				t.Errorf("PlayerTouched() = %v, expected lost", got)
			}
			if level.Status() != StatusLost {
				t.Errorf("Status() = %v, expected lost", level.Status())
			}
		})
	}
}

func TestPlayerTouchedCoin(t *testing.T) {
	first := NewCoin(core.V(0, 0), nil)
	second := NewCoin(core.V(1, 0), nil)
	player := NewPlayer(core.V(3, 0))
	level := NewLevel(nil, []Actor{first, player, second})

	if got := level.PlayerTouched(TouchCoin, first); got != StatusNone {
		t.Errorf("first coin: PlayerTouched() = %v, expected none", got)
	}
	if level.HasActor(first) || !level.HasActor(second) || !level.HasActor(player) {
		t.Error("PlayerTouched(coin) should remove exactly that coin")
	}
	if level.Status() != StatusNone {
		t.Errorf("Status() = %v, expected none", level.Status())
	}

	if got := level.PlayerTouched(TouchCoin, second); got != StatusWon {
		t.Errorf("last coin: PlayerTouched() = %v, expected won", got)
	}
	if level.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won", level.Status())
	}
}

func TestPlayerTouchedOther(t *testing.T) {
	level := NewLevel(nil, []Actor{NewCoin(core.V(0, 0), nil)})

	for _, touch := range []Touch{TouchNone, TouchWall, TouchActor, TouchPlayer} {
		if got := level.PlayerTouched(touch, nil); got != StatusNone {
			t.Errorf("PlayerTouched(%q) = %v, expected none", touch, got)
		}
	}
	if level.Status() != StatusNone {
		t.Errorf("Status() = %v, expected none", level.Status())
	}
}

func TestPlayerTouchedNeverReversesStatus(t *testing.T) {
	coin := NewCoin(core.V(0, 0), nil)
	level := NewLevel(nil, []Actor{coin})

	level.PlayerTouched(TouchCoin, coin)
	for _, touch := range []Touch{TouchLava, TouchFireball} {
		if got := level.PlayerTouched(touch, nil); got != StatusNone {
			t.Errorf("PlayerTouched(%v) after winning = %v, expected none", touch, got)
		}
	}
	if level.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won to stick", level.Status())
	}

	other := NewCoin(core.V(0, 0), nil)
	lost := NewLevel(nil, []Actor{other})
	lost.PlayerTouched(TouchFireball, nil)
	if lost.PlayerTouched(TouchCoin, other) != StatusNone {
		t.Error("collecting the last coin after losing should not report won")
	}
	if lost.HasActor(other) {
		t.Error("the coin is still removed after a loss")
	}
	if lost.Status() != StatusLost {
		t.Errorf("Status() = %v, expected lost to stick", lost.Status())
	}
}

func TestTouchMapping(t *testing.T) {
	if TouchOf(KindCoin) != TouchCoin || TouchOf(KindFireball) != TouchFireball {
		t.Error("TouchOf should map actor kinds")
	}
	if TouchOfObstacle(ObstacleLava) != TouchLava || TouchOfObstacle(ObstacleNone) != TouchNone {
		t.Error("TouchOfObstacle should map obstacles")
	}
	if !TouchLava.IsLethal() || TouchCoin.IsLethal() {
		t.Error("IsLethal mismatch")
	}
}
