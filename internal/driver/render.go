package driver

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// CellWidth is the number of screen columns per grid cell. Terminal cells
// are about twice as tall as they are wide.
const CellWidth = 2

// Visual characters for rendering
const (
	WallGlyph     = '█'
	LavaGlyph     = '~'
	PlayerGlyph   = '@'
	CoinGlyph     = 'o'
	FireballGlyph = '*'
	PropGlyph     = '#'
)

const (
	minScreenW = 24
	minScreenH = 8
)

// RenderLevel draws the part of level that fits in view, scrolled so the
// player stays centered when the level is larger than the view.
func RenderLevel(dst *core.Screen, level *game.Level, view core.Rect) {
	left, top := cameraOrigin(level, view)

	for sy := 0; sy < view.H; sy++ {
		for sx := 0; sx < view.W; sx++ {
			cx := left + sx/CellWidth
			cy := top + sy
			switch level.Cell(cx, cy) {
			case game.ObstacleWall:
				dst.SetCell(view.X+sx, view.Y+sy, WallGlyph, core.ColorGray)
			case game.ObstacleLava:
				dst.SetCell(view.X+sx, view.Y+sy, LavaGlyph, core.ColorRed)
			}
		}
	}

	for _, a := range level.Actors() {
		glyph, color := actorGlyph(a, level.Status())
		b := a.Body()

		x0 := int(math.Floor((b.Pos.X - float64(left)) * CellWidth))
		x1 := int(math.Ceil((b.Pos.X + b.Size.X - float64(left)) * CellWidth))
		y0 := int(math.Floor(b.Pos.Y - float64(top)))
		y1 := int(math.Ceil(b.Pos.Y + b.Size.Y - float64(top)))

		for y := max(y0, 0); y < min(y1, view.H); y++ {
			for x := max(x0, 0); x < min(x1, view.W); x++ {
				dst.SetCell(view.X+x, view.Y+y, glyph, color)
			}
		}
	}
}

// cameraOrigin returns the top-left grid cell shown in view.
func cameraOrigin(level *game.Level, view core.Rect) (int, int) {
	cellsW := view.W / CellWidth
	cellsH := view.H

	var focusX, focusY float64
	if p := level.Player(); p != nil {
		b := p.Body()
		focusX = b.Pos.X + b.Size.X/2
		focusY = b.Pos.Y + b.Size.Y/2
	}

	left := int(math.Floor(focusX - float64(cellsW)/2))
	top := int(math.Floor(focusY - float64(cellsH)/2))

	left = core.Clamp(left, 0, max(0, level.Width()-cellsW))
	top = core.Clamp(top, 0, max(0, level.Height()-cellsH))
	return left, top
}

func actorGlyph(a game.Actor, status game.Status) (rune, core.Color) {
	switch a.Kind() {
	case game.KindPlayer:
		switch status {
		case game.StatusLost:
			return PlayerGlyph, core.ColorBrightRed
		case game.StatusWon:
			return PlayerGlyph, core.ColorGreen
		default:
			return PlayerGlyph, core.ColorCyan
		}
	case game.KindCoin:
		return CoinGlyph, core.ColorBrightYellow
	case game.KindFireball:
		return FireballGlyph, core.ColorOrange
	default:
		return PropGlyph, core.ColorWhite
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}

	if g.level != nil {
		RenderLevel(dst, g.level, core.NewRect(0, 1, dst.Width(), dst.Height()-1))
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the pack, level, hazard speed, coins and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()

	levelText := fmt.Sprintf("%s %d/%d", g.pack.Title(), g.levelIndex+1, len(g.plans))
	if !g.difficulty.Flat() {
		levelText += fmt.Sprintf(" x%.2f", g.difficulty.HazardScale(g.levelIndex, g.tick))
	}
	dst.DrawText(1, 0, levelText)

	dst.DrawTextColor((dst.Width()-len("Coins: 000"))/2, 0, fmt.Sprintf("Coins: %d", state.Score), core.ColorBrightYellow)

	if g.cfg.Gameplay.Lives > 0 {
		livesText := fmt.Sprintf("Lives: %d", state.Lives)
		dst.DrawText(dst.Width()-utf8.RuneCountInString(livesText)-1, 0, livesText)
	}
}

// renderOverlay draws campaign state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Coins: %d  |  Press R to restart", g.State().Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWon:
		subtitle := fmt.Sprintf("Coins: %d  |  Press R to play again", g.State().Score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case StatePlaying:
		if g.level == nil {
			return
		}
		switch g.level.Status() {
		case game.StatusWon:
			dst.DrawTextCentered(dst.Height()-1, "Level complete!", core.ColorGreen)
		case game.StatusLost:
			dst.DrawTextCentered(dst.Height()-1, "Ouch!", core.ColorBrightRed)
		}
	}
}

// drawCenteredBox draws a framed two-line message in the middle of dst.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subW) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	inner := box.Inset(1)

	dst.DrawRect(inner, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColor(inner.X+(inner.W-titleW)/2, inner.Y, title, core.ColorBrightYellow)
	dst.DrawText(inner.X+(inner.W-subW)/2, inner.Bottom()-1, subtitle)
}
