// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/engine/rules"
	"tictactoe-local/types"
)

// Board geometry in screen cells. Each board cell is cellWidth columns wide and
// cells are separated by one column or row of grid lines.
const (
	cellWidth  = 3
	gridLeft   = 3 // row labels
	gridTop    = 1 // column labels
	gridWidth  = types.BoardSize*cellWidth + types.BoardSize - 1
	gridHeight = types.BoardSize*2 - 1
)

// Indices into BoardUI.styles.
const (
	colorBoard = iota
	colorBoardAlt
	colorX
	colorO
	colorLine
	colorCursor
	colorLastPlayed
	colorWinLine
)

type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	selX      int
	selY      int
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	moveList  *MoveListUI
	focusMode bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SetMoveList attaches the move list that is refreshed with the board.
func (g *BoardUI) SetMoveList(list *MoveListUI) {
	g.moveList = list
}

func (g *BoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.eng == nil || g.eng.Phase().Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX, g.selY = 1, 1
		if m, ok := g.lastMove(); ok {
			g.selX, g.selY = rules.IndexToPos(m.Index)
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= types.BoardSize {
		return
	}
	if g.selY+v < 0 || g.selY+v >= types.BoardSize {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		mx, my := event.Position()
		bx, by, _, _ := board.Box.GetInnerRect()
		if index, ok := cellAt(mx-bx, my-by); ok {
			board.ResetSelection()
			board.playIndex(index)
			return action, nil
		}
		return action, event
	})
	return board
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if g.eng == nil {
		return x, y, width, height
	}
	board := g.eng.Board()
	lineStyle := tcell.StyleDefault.Background(g.styles[colorBoard]).Foreground(g.styles[colorLine])
	left, top := x+gridLeft, y+gridTop

	drawGrid(screen, left, top, lineStyle)
	for index, mark := range board {
		col, row := rules.IndexToPos(index)
		cx, cy := left+col*(cellWidth+1), top+row*2
		drawCell(screen, g.cellStyle(board, row, col), g.cfg.Theme.Symbol(mark), cx, cy)
	}
	g.drawCoordinates(screen, x, y)
	return x, y, width, height
}

// cellStyle picks the style of one cell: cursor, then winning line, then last move,
// then the checkered board background.
func (g *BoardUI) cellStyle(board types.Board, row, col int) tcell.Style {
	index := row*types.BoardSize + col
	theme := g.cfg.Theme

	bg := g.styles[colorBoard]
	if (row+col)%2 == 1 {
		bg = g.styles[colorBoardAlt]
	}
	fg := g.styles[colorLine]
	switch board[index] {
	case types.X:
		fg = g.styles[colorX]
	case types.O:
		fg = g.styles[colorO]
	}
	style := tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)

	winner, won := g.eng.Winner()
	last, hasLast := g.lastMove()
	switch {
	case col == g.selX && row == g.selY:
		if theme.DrawCursorBackground {
			return style.Background(g.styles[colorCursor])
		}
		return style.Underline(true)
	case won && theme.HighlightWinningLine && winner.Contains(index):
		return style.Background(g.styles[colorWinLine])
	case hasLast && last.Index == index && theme.DrawLastPlayedBackground:
		return style.Background(g.styles[colorLastPlayed])
	}
	return style
}

// lastMove returns the move that produced the board at the current step.
func (g *BoardUI) lastMove() (types.Move, bool) {
	if g.eng == nil {
		return types.Move{}, false
	}
	entries := g.eng.History()
	step := g.eng.Step()
	if step < 0 || step >= len(entries) || entries[step].Move == nil {
		return types.Move{}, false
	}
	return *entries[step].Move, true
}

// cellAt maps a position relative to the board's inner rect to a cell index.
// Grid lines and labels are not cells.
func cellAt(relX, relY int) (int, bool) {
	gx, gy := relX-gridLeft, relY-gridTop
	if gx < 0 || gy < 0 || gx >= gridWidth || gy >= gridHeight {
		return 0, false
	}
	if gy%2 == 1 || (gx+1)%(cellWidth+1) == 0 {
		return 0, false
	}
	index, err := rules.PosToIndex(gx/(cellWidth+1), gy/2)
	if err != nil {
		return 0, false
	}
	return index, true
}

// ConnectEngine connects the board to a game, closing the previous one.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	if g.eng != nil {
		g.eng.Close()
	}
	g.eng = e
	g.ResetSelection()

	e.OnMove(func(move types.Move, board types.Board) {
		g.refresh()
	})
	e.OnJump(func(step int, board types.Board) {
		g.refresh()
	})
	e.OnGameEnd(func(outcome string) {
		g.ResetSelection()
		g.refresh()
	})

	if g.moveList != nil {
		g.moveList.SetEngine(e)
	}
	g.refresh()
}

// Engine returns the connected game, or nil.
func (g *BoardUI) Engine() engine.GameEngine {
	return g.eng
}

// PlayMove plays the cell at the given board position. Illegal moves are ignored.
func (g *BoardUI) PlayMove(x, y int) {
	index, err := rules.PosToIndex(x, y)
	if err != nil {
		return
	}
	g.playIndex(index)
}

// PlayKey plays the cell mapped to a digit key '1'-'9'.
func (g *BoardUI) PlayKey(r rune) bool {
	index, ok := rules.KeyToIndex(r)
	if !ok {
		return false
	}
	g.playIndex(index)
	return true
}

func (g *BoardUI) playIndex(index int) {
	if g.eng == nil {
		return
	}
	// Rejected moves leave the game untouched; nothing to report.
	_ = g.eng.PlayMove(index)
}

// Back steps one move back in the history.
func (g *BoardUI) Back() {
	if g.eng != nil {
		_ = g.eng.Back()
	}
}

// Forward steps one move forward in the history.
func (g *BoardUI) Forward() {
	if g.eng != nil {
		_ = g.eng.Forward()
	}
}

// Close ends the connected game.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 1
		tcell.PaletteColor(c.Theme.Colors.XColor),            // 2
		tcell.PaletteColor(c.Theme.Colors.OColor),            // 3
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
		tcell.PaletteColor(c.Theme.Colors.WinLineColorBG),    // 7
	}
	g.cfg = c
}

func (g *BoardUI) refresh() {
	if g.infoPanel != nil {
		g.infoPanel.SetEngine(g.eng)
	}
	if g.moveList != nil {
		g.moveList.Refresh()
	}
	g.refreshHint()
}

func (g *BoardUI) refreshHint() {
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	if g.eng == nil {
		g.hint.SetText("")
		return
	}

	var statusLine, controlsLine string
	if g.eng.Phase().Finished() {
		statusLine = fmt.Sprintf("  ★ %s\n", g.eng.Status())
		controlsLine = "  [ back   n new game   tab moves   q menu"
	} else {
		next := g.eng.NextPlayer()
		statusLine = fmt.Sprintf("  %c %s (%s)\n", g.cfg.Theme.Symbol(next), g.eng.Status(), g.eng.Config().Name(next))
		controlsLine = "  hjkl/↑↓←→ move  ⏎ play  1-9 cell  [ ] step  s sort  tab moves  f focus  q quit"
	}
	g.hint.SetText(statusLine + controlsLine)
}

// drawGrid draws the separators of a board whose top-left cell starts at (left, top).
func drawGrid(s tcell.Screen, left, top int, style tcell.Style) {
	for gy := 0; gy < gridHeight; gy++ {
		for gx := 0; gx < gridWidth; gx++ {
			betweenCols := (gx+1)%(cellWidth+1) == 0
			var r rune
			switch {
			case gy%2 == 1 && betweenCols:
				r = '┼'
			case gy%2 == 1:
				r = '─'
			case betweenCols:
				r = '│'
			default:
				continue
			}
			s.SetContent(left+gx, top+gy, r, nil, style)
		}
	}
}

// drawCell draws one board cell, the mark centered in cellWidth columns.
func drawCell(s tcell.Screen, style tcell.Style, r rune, x, y int) {
	for i := 0; i < cellWidth; i++ {
		ch := ' '
		if i == cellWidth/2 {
			ch = r
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}

func (g *BoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[colorCursor])

	for col := 0; col < types.BoardSize; col++ {
		_style := style
		if col == g.selX {
			_style = highlight
		}
		s.SetContent(x+gridLeft+col*(cellWidth+1)+cellWidth/2, y, rune('1'+col), nil, _style)
	}
	for row := 0; row < types.BoardSize; row++ {
		_style := style
		if row == g.selY {
			_style = highlight
		}
		s.SetContent(x+1, y+gridTop+row*2, rune('1'+row), nil, _style)
	}
}
