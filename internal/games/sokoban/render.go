package sokoban

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight    = 3
	footerHeight = 1
)

const (
	wallGlyph = '█'
	goalGlyph = '◇'
	boxGlyph  = '▣'
)

// calculateLayout centers the framed grid below the HUD.
func (g *Game) calculateLayout() {
	if g.grid == nil {
		return
	}
	frameW := g.grid.W*g.opts.CellWidth + 2
	frameH := g.grid.H + 2

	area := platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
	g.board = area.CenteredIn(frameW, frameH)
	g.tooSmall = g.screenW < frameW || g.screenH < hudHeight+frameH+footerHeight
}

// cellOrigin returns the screen position of the left column of a world cell.
func (g *Game) cellOrigin(x, y int) (col, row int) {
	return g.board.X + 1 + x*g.opts.CellWidth, g.board.Y + 1 + g.grid.YRow(y)
}

// actorOrigin converts an interpolated position in cell units to a screen
// position. Horizontal motion moves one terminal column at a time.
func (g *Game) actorOrigin(x, y float64) (col, row int) {
	col = g.board.X + 1 + int(math.Round(x*float64(g.opts.CellWidth)))
	row = g.board.Y + 1 + g.grid.YRow(int(math.Round(y)))
	return col, row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.grid == nil {
		g.renderNoLevel(dst)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderActors(dst)
	g.renderOverlays(dst)

	dst.DrawTextCentered(g.screenH-1, g.Controls(), platformcore.ColorDimGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	need := fmt.Sprintf("Need %dx%d", g.grid.W*g.opts.CellWidth+2, hudHeight+g.grid.H+2+footerHeight)
	dst.DrawTextCentered(y+1, need, platformcore.ColorGray)
}

// renderNoLevel covers a run that stopped before a level could be shown.
func (g *Game) renderNoLevel(dst *platformcore.Screen) {
	centerX, centerY := g.screenW/2, g.screenH/2
	if g.loadErr != nil {
		g.drawOverlay(dst, centerX, centerY, "LEVEL ERROR", g.loadErr.Error(), "Press Q to quit")
		return
	}
	g.drawOverlay(dst, centerX, centerY, "PACK COMPLETE!", "Press R to play again")
}

// renderHUD draws the pack title, level info and counters.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := "SOKOBAN · " + g.pack.Name
	dst.DrawTextCentered(0, title, platformcore.ColorBrightYellow)

	lvl, _ := g.Level()
	levelStr := fmt.Sprintf("Level %d/%d  %s", g.index+1, len(g.pack.Levels), lvl.Name)
	goalsStr := fmt.Sprintf("Goals %d/%d", g.state.BoxesOnGoals(), len(g.state.Boxes()))
	counters := fmt.Sprintf("Moves %d  Pushes %d", g.state.Moves, g.state.Pushes)
	outcome := ""
	if !g.lastMove.Accepted() {
		outcome = g.lastMove.Outcome.String()
	}

	need := utf8.RuneCountInString(levelStr) + utf8.RuneCountInString(goalsStr)
	if g.opts.ShowStatus {
		need = max(need, utf8.RuneCountInString(counters)+utf8.RuneCountInString(outcome))
	}
	left, right := g.hudSpan(need + 2)

	dst.DrawTextColored(left, 1, levelStr, platformcore.ColorWhite)
	goalsColor := platformcore.ColorYellow
	if g.state.Solved() {
		goalsColor = platformcore.ColorBrightGreen
	}
	drawRight(dst, right, 1, goalsStr, goalsColor)

	if !g.opts.ShowStatus {
		return
	}

	dst.DrawTextColored(left, 2, counters, platformcore.ColorGray)
	if outcome != "" {
		drawRight(dst, right, 2, outcome, platformcore.ColorRed)
	}
}

// renderBoard draws the frame, walls, goals and decorative floor.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBox(g.board, platformcore.ColorDimGray)

	cw := g.opts.CellWidth
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			p := core.P(x, y)
			col, row := g.cellOrigin(x, y)

			switch {
			case g.grid.IsWall(p):
				dst.DrawTextColored(col, row, strings.Repeat(string(wallGlyph), cw), platformcore.ColorGray)
			case g.grid.IsGoal(p):
				dst.SetColored(col, row, goalGlyph, platformcore.ColorYellow)
			case g.opts.ShowFloor:
				if v := g.variants.At(p); v != core.VariantNone {
					dst.DrawTextColored(col, row, FloorTile(v, cw), platformcore.ColorDimGray)
				}
			}
		}
	}
}

// renderActors draws boxes and then the player on top.
func (g *Game) renderActors(dst *platformcore.Screen) {
	pad := strings.Repeat(" ", g.opts.CellWidth-1)

	for _, b := range g.state.Boxes() {
		color := platformcore.ColorBrown
		if !b.InFlight() && g.grid.IsGoal(b.Cell) {
			color = platformcore.ColorBrightGreen
		}
		col, row := g.actorOrigin(b.X, b.Y)
		dst.SetColored(col, row, boxGlyph, color)
		dst.DrawText(col+1, row, pad)
	}

	p := g.state.Player
	frame := PlayerFrame(p.Facing, p.InFlight(), g.tick)
	col, row := g.actorOrigin(p.X, p.Y)
	dst.SetColored(col, row, PlayerSprite(frame), platformcore.ColorBrightCyan)
	dst.DrawText(col+1, row, pad)
}

// renderOverlays draws pause and completion overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX := g.board.X + g.board.W/2
	centerY := g.board.Y + g.board.H/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if !g.solved {
		return
	}

	stats := fmt.Sprintf("Moves %d  Pushes %d", g.state.Moves, g.state.Pushes)
	if g.won {
		solved := fmt.Sprintf("%d of %d levels solved", g.score, len(g.pack.Levels))
		g.drawOverlay(dst, centerX, centerY, "PACK COMPLETE!", stats, solved, "Press R to play again")
		return
	}
	g.drawOverlay(dst, centerX, centerY, "LEVEL SOLVED!", stats, "N/Enter: next level")
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorWhite)

	for i, line := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorBrightYellow
		}
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// drawRight draws text ending just before column right.
// hudSpan returns the columns the HUD rows use. It is the board width,
// widened around the board center to fit need columns and clamped to the screen.
func (g *Game) hudSpan(need int) (left, right int) {
	left, right = g.board.X, g.board.Right()
	if extra := need - (right - left); extra > 0 {
		left -= extra / 2
		right += extra - extra/2
	}
	if left < 0 {
		right -= left
		left = 0
	}
	if right > g.screenW {
		left = max(0, left-(right-g.screenW))
		right = g.screenW
	}
	return left, right
}

func drawRight(dst *platformcore.Screen, right, y int, text string, c platformcore.Color) {
	dst.DrawTextColored(right-utf8.RuneCountInString(text), y, text, c)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | R: Restart | N: Next | P: Pause | Q: Quit"
}
