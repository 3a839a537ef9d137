package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/config"
	"tictactoe-local/engine"
	"tictactoe-local/engine/local"
	"tictactoe-local/types"
)

func newTestBoard(t *testing.T) (*BoardUI, *tview.TextView) {
	t.Helper()
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	board := NewBoard(&cfg, hint)
	board.SetMoveList(NewMoveList(false, nil))

	session, err := local.NewSession(engine.DefaultConfig(), nil)
	require.NoError(t, err)
	board.ConnectEngine(session)
	t.Cleanup(board.Close)
	return board, hint
}

// screenCell returns the screen position of the mark drawn for a cell index
// when the board is drawn at the origin.
func screenCell(index int) (int, int) {
	col, row := index%types.BoardSize, index/types.BoardSize
	return gridLeft + col*(cellWidth+1) + cellWidth/2, gridTop + row*2
}

func TestCellAt(t *testing.T) {
	for index := 0; index < types.CellCount; index++ {
		x, y := screenCell(index)
		for dx := -cellWidth / 2; dx <= cellWidth/2; dx++ {
			got, ok := cellAt(x+dx, y)
			require.True(t, ok, "cell %d offset %d", index, dx)
			assert.Equal(t, index, got)
		}
	}

	misses := []struct {
		name string
		x, y int
	}{
		{"row labels", 1, gridTop},
		{"column labels", gridLeft + 1, 0},
		{"horizontal line", gridLeft + 1, gridTop + 1},
		{"vertical line", gridLeft + cellWidth, gridTop},
		{"right of grid", gridLeft + gridWidth, gridTop},
		{"below grid", gridLeft + 1, gridTop + gridHeight},
	}
	for _, m := range misses {
		_, ok := cellAt(m.x, m.y)
		assert.False(t, ok, m.name)
	}
}

func TestBoardPlaysKeysAndSelection(t *testing.T) {
	board, hint := newTestBoard(t)
	e := board.Engine()

	assert.True(t, board.PlayKey('5'))
	assert.Equal(t, types.X, e.Board()[4])
	assert.False(t, board.PlayKey('0'))

	// First selection starts on the last move.
	board.MoveSelection(1, 0)
	require.NotNil(t, board.SelectedTile())
	assert.Equal(t, types.BoardPos{X: 1, Y: 1}, *board.SelectedTile())

	board.MoveSelection(1, 0)
	board.MoveSelection(1, 0) // clamped at the edge
	assert.Equal(t, types.BoardPos{X: 2, Y: 1}, *board.SelectedTile())

	sel := board.SelectedTile()
	board.PlayMove(sel.X, sel.Y)
	assert.Equal(t, types.O, e.Board()[5])
	assert.Contains(t, hint.GetText(true), "Next player: X")

	// Occupied cells are ignored.
	board.PlayKey('5')
	assert.Equal(t, 2, e.Step())
}

func TestBoardBackForward(t *testing.T) {
	board, hint := newTestBoard(t)
	e := board.Engine()

	for _, r := range "1524" {
		board.PlayKey(r)
	}
	board.Back()
	board.Back()
	assert.Equal(t, 2, e.Step())
	assert.Equal(t, types.Empty, e.Board()[1])
	assert.Contains(t, hint.GetText(true), "Next player: X")

	board.Forward()
	assert.Equal(t, 3, e.Step())
	assert.Equal(t, types.X, e.Board()[1])

	// Playing from the past drops the later moves.
	board.PlayKey('9')
	assert.Equal(t, 4, e.Step())
	assert.Len(t, e.History(), 5)
	assert.Equal(t, types.O, e.Board()[8])
	assert.Equal(t, types.Empty, e.Board()[3])
}

func TestBoardWinEndsSelection(t *testing.T) {
	board, hint := newTestBoard(t)

	for _, r := range "14253" {
		board.PlayKey(r)
	}
	assert.Equal(t, types.Won, board.Engine().Phase())
	assert.Nil(t, board.SelectedTile())
	assert.Contains(t, hint.GetText(true), "Winner: X")

	board.MoveSelection(1, 0)
	assert.Nil(t, board.SelectedTile(), "no selection once the game is over")
}

func TestBoardDraw(t *testing.T) {
	board, _ := newTestBoard(t)
	board.PlayKey('1')
	board.PlayKey('9')

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 10)

	board.draw(screen, 0, 0, 40, 10)

	mark := func(index int) rune {
		x, y := screenCell(index)
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, 'X', mark(0))
	assert.Equal(t, 'O', mark(8))
	assert.Equal(t, ' ', mark(4))

	r, _, _, _ := screen.GetContent(gridLeft+cellWidth, gridTop)
	assert.Equal(t, '│', r)
	r, _, _, _ = screen.GetContent(gridLeft+cellWidth, gridTop+1)
	assert.Equal(t, '┼', r)
	r, _, _, _ = screen.GetContent(1, gridTop+4)
	assert.Equal(t, '3', r)

	_, _, style, _ := screen.GetContent(screenCell(8))
	_, bg, _ := style.Decompose()
	assert.Equal(t, board.styles[colorLastPlayed], bg)
}

func clickAt(board *BoardUI, x, y int) {
	handler := board.Box.MouseHandler()
	handler(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), func(tview.Primitive) {})
}

func TestBoardMouseClickPlaysCell(t *testing.T) {
	board, hint := newTestBoard(t)
	board.Box.SetRect(2, 1, 40, 10)
	e := board.Engine()

	x, y := screenCell(4)
	clickAt(board, 2+x, 1+y)
	assert.Equal(t, types.X, e.Board()[4])
	assert.Contains(t, hint.GetText(true), "Next player: O")

	x, y = screenCell(0)
	clickAt(board, 2+x-1, 1+y)
	assert.Equal(t, types.O, e.Board()[0])

	// Grid lines and occupied cells do nothing.
	clickAt(board, 2+gridLeft+cellWidth, 1+gridTop)
	clickAt(board, 2+x, 1+y)
	assert.Equal(t, 2, e.Step())
}
