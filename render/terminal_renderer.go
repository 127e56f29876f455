package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

const (
	// Board interior plus one border cell on each side
	boardCols = constants.GridSize * constants.CellWidth
	frameCols = boardCols + 2
	frameRows = constants.GridSize + 2

	// Frame, gap and the status line
	layoutRows = frameRows + constants.StatusLineGap + 1
)

// PositionPercent maps a grid index to its offset as a percentage of the board extent
func PositionPercent(i int) int {
	return i * 100 / constants.GridSize
}

// TerminalRenderer draws snapshots to a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	width   int
	height  int
	originX int // top-left of the frame
	originY int
}

// NewTerminalRenderer creates a renderer laid out for the screen's current size
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize(screen.Size())
	return r
}

// Resize recomputes the layout, centering the board
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.originX = max((width-frameCols)/2, 0)
	r.originY = max((height-layoutRows)/2, 0)
}

// Fits reports whether the whole layout is visible
func (r *TerminalRenderer) Fits() bool {
	return r.width >= frameCols && r.height >= layoutRows
}

// CellOrigin returns the screen position of the left column of a board cell
func (r *TerminalRenderer) CellOrigin(c engine.Cell) (x, y int) {
	x = r.originX + 1 + PositionPercent(c.X)*boardCols/100
	y = r.originY + 1 + PositionPercent(c.Y)*constants.GridSize/100
	return x, y
}

// StatusLine formats the score summary shown under the board
func StatusLine(snap engine.Snapshot) string {
	return fmt.Sprintf("Score: %d | High Score: %d | Phase: %d", snap.Score, snap.HighScore, snap.Phase+1)
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(snap engine.Snapshot, muted bool) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	if !r.Fits() {
		r.drawText(0, 0, constants.TextTooSmall, defaultStyle.Foreground(RgbGameOver))
		r.screen.Show()
		return
	}

	boardStyle := defaultStyle.Background(BackgroundColor(engine.BackgroundIndex(snap.Phase)))

	r.drawFrame(defaultStyle.Foreground(RgbBorder))
	r.fillBoard(boardStyle)

	for _, b := range snap.Barriers {
		r.drawCell(b, constants.GlyphBarrier, constants.GlyphBarrier, boardStyle.Foreground(RgbBarrier))
	}

	r.drawFood(snap, boardStyle)
	r.drawSnake(snap.Snake, boardStyle)
	r.drawStatus(snap, muted, defaultStyle)

	if snap.GameOver {
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawFrame(style tcell.Style) {
	left, top := r.originX, r.originY
	right, bottom := left+frameCols-1, top+frameRows-1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constants.GlyphBorderH, nil, style)
		r.screen.SetContent(x, bottom, constants.GlyphBorderH, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constants.GlyphBorderV, nil, style)
		r.screen.SetContent(right, y, constants.GlyphBorderV, nil, style)
	}
	r.screen.SetContent(left, top, constants.GlyphCornerTL, nil, style)
	r.screen.SetContent(right, top, constants.GlyphCornerTR, nil, style)
	r.screen.SetContent(left, bottom, constants.GlyphCornerBL, nil, style)
	r.screen.SetContent(right, bottom, constants.GlyphCornerBR, nil, style)
}

func (r *TerminalRenderer) fillBoard(style tcell.Style) {
	for y := 0; y < constants.GridSize; y++ {
		for x := 0; x < constants.GridSize; x++ {
			r.drawCell(engine.Cell{X: x, Y: y}, ' ', ' ', style)
		}
	}
}

// drawCell paints both columns of a board cell
func (r *TerminalRenderer) drawCell(c engine.Cell, left, right rune, style tcell.Style) {
	x, y := r.CellOrigin(c)
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *TerminalRenderer) drawFood(snap engine.Snapshot, boardStyle tcell.Style) {
	style := boardStyle.Foreground(FoodColor(engine.FoodColorIndex(snap.Phase)))
	glyph := constants.GlyphFoodNormal
	if snap.Food.Kind == engine.FoodSpecial {
		glyph = constants.GlyphFoodSpecial
		style = style.Bold(true)
	}
	r.drawCell(snap.Food.Cell, glyph, ' ', style)
}

func (r *TerminalRenderer) drawSnake(snake []engine.Cell, boardStyle tcell.Style) {
	bodyStyle := boardStyle.Foreground(RgbSnakeBody)
	// Tail to head so the head wins if cells ever coincide
	for i := len(snake) - 1; i > 0; i-- {
		r.drawCell(snake[i], constants.GlyphSnakeBody, constants.GlyphSnakeBody, bodyStyle)
	}
	if len(snake) > 0 {
		r.drawCell(snake[0], constants.GlyphSnakeHead, constants.GlyphSnakeHead, boardStyle.Foreground(RgbSnakeHead))
	}
}

func (r *TerminalRenderer) drawStatus(snap engine.Snapshot, muted bool, defaultStyle tcell.Style) {
	y := r.originY + frameRows + constants.StatusLineGap
	x := r.drawText(r.originX, y, StatusLine(snap), defaultStyle.Foreground(RgbStatusText))

	if muted {
		r.drawText(x+1, y, constants.TextMuted, defaultStyle.Foreground(RgbMuted))
	}
}

// drawGameOver centers a three-line box over the board
func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot) {
	lines := []struct {
		text  string
		color tcell.Color
	}{
		{constants.TextGameOver, RgbGameOver},
		{fmt.Sprintf("Score: %d", snap.Score), RgbStatusText},
		{constants.TextRestartHint, RgbHint},
	}

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, len(l.text))
	}
	boxWidth += 4

	left := r.originX + (frameCols-boxWidth)/2
	top := r.originY + (frameRows-len(lines)-2)/2
	bg := tcell.StyleDefault.Background(RgbOverlayBg)

	for y := top; y < top+len(lines)+2; y++ {
		for x := left; x < left+boxWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	for i, l := range lines {
		x := left + (boxWidth-len(l.text))/2
		r.drawText(x, top+1+i, l.text, bg.Foreground(l.color))
	}
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
