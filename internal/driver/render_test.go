package driver

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderLevelGlyphs(t *testing.T) {
	level := parse(
		"     ",
		"@ o  ",
		"xx!!x",
	)
	screen := core.NewScreen(10, 3)

	RenderLevel(screen, level, core.NewRect(0, 0, 10, 3))

	tests := []struct {
		x, y     int
		expected rune
		color    core.Color
	}{
		{0, 2, WallGlyph, core.ColorGray},
		{3, 2, WallGlyph, core.ColorGray},
		{4, 2, LavaGlyph, core.ColorRed},
		{7, 2, LavaGlyph, core.ColorRed},
		{8, 2, WallGlyph, core.ColorGray},
		{0, 1, PlayerGlyph, core.ColorCyan},
		{0, 0, PlayerGlyph, core.ColorCyan},
		{4, 1, CoinGlyph, core.ColorBrightYellow},
		{9, 0, ' ', core.ColorDefault},
	}

	for _, tc := range tests {
		got := screen.GetCell(tc.x, tc.y)
		if got.Rune != tc.expected || got.Color != tc.color {
			t.Errorf("cell (%d, %d) = %q/%d, expected %q/%d", tc.x, tc.y, got.Rune, got.Color, tc.expected, tc.color)
		}
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	row := "                              @                             "
	level := parse(row, "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	view := core.NewRect(0, 0, 20, 2)
	left, top := cameraOrigin(level, view)

	// 10 cells fit in view; the player near x=30 sits in the middle.
	if left != 25 || top != 0 {
		t.Errorf("cameraOrigin() = (%d, %d), expected (25, 0)", left, top)
	}

	level = parse("@         ", "xxxxxxxxxx")
	if left, _ := cameraOrigin(level, view); left != 0 {
		t.Errorf("cameraOrigin() left = %d, expected 0 at the level start", left)
	}

	level = parse("                    @", "xxxxxxxxxxxxxxxxxxxxx")
	if left, _ := cameraOrigin(level, view); left != 11 {
		t.Errorf("cameraOrigin() left = %d, expected 11 at the level end", left)
	}
}
