package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // Each board cell is drawn two characters wide
	boardW    = engine.Width*cellWidth + 2
	boardH    = engine.Height + 2
	panelGap  = 2
	panelW    = 16
	previews  = 3 // Upcoming pieces shown

	minScreenW = boardW + panelGap + panelW
	minScreenH = boardH + 1 // +1 for the title row
)

// kindColors maps each piece kind to its display color.
var kindColors = [engine.NumKinds]core.Color{
	engine.I: core.ColorCyan,
	engine.O: core.ColorYellow,
	engine.T: core.ColorMagenta,
	engine.S: core.ColorGreen,
	engine.Z: core.ColorRed,
	engine.J: core.ColorBlue,
	engine.L: core.ColorOrange,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - minScreenW) / 2
	boardY := 1

	title := "TETRIS"
	if g.variant == VariantClassic {
		title = "TETRIS CLASSIC"
	}
	dst.DrawTextWithColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)

	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, boardX+boardW+panelGap, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredWithColor(y, "Window too small", core.ColorBrightYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// cellX returns the screen column of board column x.
func cellX(boardX, x int) int {
	return boardX + 1 + x*cellWidth
}

// renderBoard draws the well, settled cells and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBoxWithColor(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	board := g.state.Board()
	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			px, py := cellX(boardX, x), boardY+1+y
			kind, ok := engine.KindForLetter(board.At(x, y))
			if !ok {
				dst.SetWithColor(px+1, py, '.', core.ColorGray)
				continue
			}
			drawBlock(dst, px, py, kindColors[kind])
		}
	}

	status := g.state.Status()
	if status != engine.Playing && status != engine.Paused {
		return
	}
	p := g.state.Active()
	for _, c := range p.BoardCells() {
		if c.Y < 0 {
			continue
		}
		drawBlock(dst, cellX(boardX, c.X), boardY+1+c.Y, kindColors[p.Kind])
	}
}

func drawBlock(dst *core.Screen, x, y int, color core.Color) {
	dst.SetWithColor(x, y, '█', color)
	dst.SetWithColor(x+1, y, '█', color)
}

// renderPanel draws the upcoming queue and the score block.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, "NEXT", core.ColorBrightWhite)

	upcoming := g.state.Upcoming()
	if len(upcoming) > previews {
		upcoming = upcoming[:previews]
	}
	for i, k := range upcoming {
		drawPreview(dst, x, y+2+i*3, k)
	}

	sc := g.state.Scoring()
	statsY := y + 2 + previews*3 + 1
	dst.DrawHLine(x, statsY-1, panelW-4, '─', core.ColorGray)
	dst.DrawTextWithColor(x, statsY, "SCORE", core.ColorBrightWhite)
	dst.DrawText(x, statsY+1, fmt.Sprintf("%d", sc.Score))
	dst.DrawText(x, statsY+3, fmt.Sprintf("Level %d", sc.Level))
	dst.DrawText(x, statsY+4, fmt.Sprintf("Rows  %d", sc.RowsCleared))
	dst.DrawText(x, statsY+5, fmt.Sprintf("Time  %s", formatElapsed(g.state.Elapsed())))
	if g.state.Muted() {
		dst.DrawTextWithColor(x, statsY+7, "Sound off", core.ColorGray)
	}
}

// drawPreview draws a kind in its spawn orientation, laid flat for I, in a
// two-row box.
func drawPreview(dst *core.Screen, x, y int, k engine.Kind) {
	rot := engine.Rot0
	if k == engine.I {
		rot = engine.Rot90
	}
	cells := engine.Cells(k, rot)
	minY := cells[0].Y
	for _, c := range cells {
		if c.Y < minY {
			minY = c.Y
		}
	}
	for _, c := range cells {
		drawBlock(dst, x+c.X*cellWidth, y+c.Y-minY, kindColors[k])
	}
}

// renderOverlays draws pause and game-over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	midY := boardY + boardH/2
	center := func(y int, text string, color core.Color) {
		dst.DrawTextWithColor(boardX+(boardW-len(text))/2, y, text, color)
	}

	frame := func(r core.Rect, color core.Color) {
		dst.DrawRect(r.Inner(), ' ')
		dst.DrawBoxWithColor(r, color)
	}

	switch g.state.Status() {
	case engine.Paused:
		frame(core.NewRect(boardX+3, midY-2, boardW-6, 4), core.ColorBrightYellow)
		center(midY-1, "  PAUSED  ", core.ColorBrightYellow)
		center(midY, " P resume ", core.ColorWhite)
	case engine.GameOver:
		frame(core.NewRect(boardX+3, midY-3, boardW-6, 7), core.ColorBrightRed)
		center(midY-2, "  GAME OVER  ", core.ColorBrightRed)
		center(midY-1, fmt.Sprintf(" Score %-6d ", g.state.Scoring().Score), core.ColorWhite)
		center(midY+1, "  R restart  ", core.ColorWhite)
		center(midY+2, "  Q quit     ", core.ColorWhite)
	}
}

// formatElapsed formats play time as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
