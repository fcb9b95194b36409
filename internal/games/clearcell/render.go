package clearcell

import (
	"fmt"

	"github.com/vovakirdan/tui-clearcell/internal/core"
)

const (
	cellWidth = 2 // Screen columns per board cell
	hudHeight = 3 // Lines above the board
)

// cellColors maps cell kinds to screen colors.
var cellColors = map[Cell]core.Color{
	Red:     core.ColorBrightRed,
	Green:   core.ColorBrightGreen,
	Blue:    core.ColorBrightBlue,
	Yellow:  core.ColorBrightYellow,
	Magenta: core.ColorBrightMagenta,
	Cyan:    core.ColorBrightCyan,
}

// boardPixelW returns the board width in screen columns, borders included.
func (g *Game) boardPixelW() int {
	return g.board.Cols()*cellWidth + 2
}

// boardPixelH returns the board height in screen rows, borders included.
func (g *Game) boardPixelH() int {
	return g.board.Rows() + 2
}

// layout recomputes the board origin for the current screen size.
func (g *Game) layout() {
	g.boardX = (g.screenW - g.boardPixelW()) / 2
	g.boardY = hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.layout()
	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderCursor(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and next-row countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	boardW := g.boardPixelW()

	title := "CLEAR CELL"
	titleX := g.boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.board.Score())
	dst.DrawText(g.boardX, 1, scoreStr)

	// Countdown to the next inserted row, in whole seconds.
	secs := (g.insertIn + g.tickRate - 1) / g.tickRate
	nextStr := fmt.Sprintf("Next row: %ds", secs)
	nextX := g.boardX + boardW - len(nextStr)
	if nextX < g.boardX {
		nextX = g.boardX
	}
	dst.DrawText(nextX, 1, nextStr)

	// Show progression level while difficulty scaling is active.
	if g.diff.IsEnabled() {
		level := g.diff.Level(g.board.Score(), int(g.tick))
		dst.DrawText(g.boardX, 2, fmt.Sprintf("Lvl: %d%%", int(level*100)))
	}

	if g.clearedFlash > 0 && g.lastCleared > 0 {
		flash := fmt.Sprintf("+%d", g.lastCleared)
		flashX := g.boardX + (boardW-len(flash))/2
		dst.DrawTextColored(flashX, 2, flash, core.ColorBrightWhite)
	}
}

// renderBoard draws the bordered grid with colored cells.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, g.boardPixelW(), g.boardPixelH()))

	for row := 0; row < g.board.Rows(); row++ {
		for col := 0; col < g.board.Cols(); col++ {
			x := g.boardX + 1 + col*cellWidth
			y := g.boardY + 1 + row

			cell := g.board.CellAt(row, col)
			if cell.IsEmpty() {
				dst.SetColored(x, y, '·', core.ColorGray)
				dst.Set(x+1, y, ' ')
				continue
			}

			color := cellColors[cell]
			dst.SetColored(x, y, '█', color)
			dst.SetColored(x+1, y, '█', color)
		}
	}
}

// renderCursor highlights the cell under the cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	x := g.boardX + 1 + g.cursorCol*cellWidth
	y := g.boardY + 1 + g.cursorRow

	cell := g.board.CellAt(g.cursorRow, g.cursorCol)
	if cell.IsEmpty() {
		dst.SetColored(x, y, '[', core.ColorBrightWhite)
		dst.SetColored(x+1, y, ']', core.ColorBrightWhite)
		return
	}

	// Keep the cell color but switch the glyph so the cursor reads on top.
	color := cellColors[cell]
	dst.SetColored(x, y, '▓', color)
	dst.SetColored(x+1, y, '▓', color)
}

// renderOverlays draws the paused and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX := g.boardX + g.boardPixelW()/2
	centerY := g.boardY + g.boardPixelH()/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.board.IsGameOver() {
		scoreStr := fmt.Sprintf("Final score: %d", g.board.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Click: Clear | P: Pause | R: Restart | Q: Quit"
}
