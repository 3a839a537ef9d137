package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/types"
)

// play records moves on the history the way a session does, each on top of the current board.
func play(t *testing.T, h *History, indices ...int) {
	t.Helper()
	for _, i := range indices {
		board := h.Current().Board
		player := h.NextPlayer()
		board[i] = player
		h.Record(board, types.Move{Index: i, Player: player})
	}
}

func TestNewHistory(t *testing.T) {
	h := New()
	require.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, types.Board{}, h.Current().Board)
	assert.Nil(t, h.Current().Move, "initial entry has no move")
	assert.Equal(t, types.X, h.NextPlayer())
}

func TestRecordAdvancesCursor(t *testing.T) {
	h := New()
	board := types.Board{types.X}
	cursor := h.Record(board, types.Move{Index: 0, Player: types.X})

	assert.Equal(t, 1, cursor)
	assert.Equal(t, 1, h.Cursor())
	assert.Equal(t, 2, h.Len())
	require.NotNil(t, h.Current().Move)
	assert.Equal(t, 0, h.Current().Move.Index)
	assert.Equal(t, types.X, h.Current().Move.Player)
	assert.Equal(t, types.O, h.NextPlayer())
}

func TestRecordAfterRewindTruncates(t *testing.T) {
	// Given: history of length 5 at cursor 4
	h := New()
	play(t, h, 0, 1, 2, 3)
	require.Equal(t, 5, h.Len())
	require.Equal(t, 4, h.Cursor())

	// When: jump to step 2 and record a new move
	require.NoError(t, h.JumpTo(2))
	play(t, h, 8)

	// Then: entries 0-2 survive plus the new one
	assert.Equal(t, 4, h.Len())
	assert.Equal(t, 3, h.Cursor())
	entries := h.Entries()
	assert.Equal(t, 0, entries[1].Move.Index)
	assert.Equal(t, 1, entries[2].Move.Index)
	assert.Equal(t, 8, entries[3].Move.Index)
	assert.Equal(t, types.Board{types.X, types.O, types.Empty, types.Empty, types.Empty, types.Empty, types.Empty, types.Empty, types.X}, entries[3].Board)
}

func TestRewindToStartAndReplay(t *testing.T) {
	h := New()
	play(t, h, 4, 8)
	require.Equal(t, 3, h.Len())

	require.NoError(t, h.JumpTo(0))
	play(t, h, 0)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Cursor())
	assert.Equal(t, types.Board{types.X}, h.Current().Board)
}

func TestJumpToKeepsEntries(t *testing.T) {
	h := New()
	play(t, h, 4, 0, 8)
	before := h.Entries()

	for step := 0; step < h.Len(); step++ {
		require.NoError(t, h.JumpTo(step))
		assert.Equal(t, step, h.Cursor())
		assert.Equal(t, before[step].Board, h.Current().Board)
	}
	assert.Equal(t, before, h.Entries())
}

func TestJumpToOutOfRange(t *testing.T) {
	h := New()
	play(t, h, 4)

	assert.ErrorIs(t, h.JumpTo(-1), ErrStepOutOfRange)
	assert.ErrorIs(t, h.JumpTo(2), ErrStepOutOfRange)
	assert.Equal(t, 1, h.Cursor(), "rejected jump leaves the cursor alone")
}

func TestEntriesSurviveTruncation(t *testing.T) {
	h := New()
	play(t, h, 0, 1, 2)
	old := h.Entries()

	require.NoError(t, h.JumpTo(1))
	play(t, h, 5)

	require.Len(t, old, 4)
	assert.Equal(t, 1, old[2].Move.Index, "copies handed out earlier must not change")
	assert.Equal(t, 2, old[3].Move.Index)
}

func TestRecordDoesNotShareBacking(t *testing.T) {
	h := New()
	play(t, h, 0, 1, 2)
	require.NoError(t, h.JumpTo(1))
	play(t, h, 6)
	require.NoError(t, h.JumpTo(1))
	play(t, h, 7)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 7, h.Current().Move.Index)
	assert.Equal(t, 0, h.Entries()[1].Move.Index)
}

func TestBackForward(t *testing.T) {
	h := New()
	assert.False(t, h.Back(), "back at start should return false")
	assert.False(t, h.Forward(), "forward at latest should return false")

	play(t, h, 4, 0)
	assert.True(t, h.Back())
	assert.Equal(t, 1, h.Cursor())
	assert.True(t, h.Back())
	assert.False(t, h.Back())
	assert.Equal(t, 0, h.Cursor())

	assert.True(t, h.Forward())
	assert.True(t, h.Forward())
	assert.False(t, h.Forward())
	assert.Equal(t, 2, h.Cursor())
}

func TestNextPlayerParity(t *testing.T) {
	for _, step := range []int{0, 2, 4, 6, 8} {
		assert.Equal(t, types.X, NextPlayer(step), "step %d", step)
	}
	for _, step := range []int{1, 3, 5, 7} {
		assert.Equal(t, types.O, NextPlayer(step), "step %d", step)
	}
}

func TestPastSnapshotsStayIntact(t *testing.T) {
	h := New()
	play(t, h, 0, 4, 8)

	entries := h.Entries()
	assert.Equal(t, 0, entries[0].Board.Count(types.X)+entries[0].Board.Count(types.O))
	assert.Equal(t, 1, entries[1].Board.Count(types.X))
	assert.Equal(t, 1, entries[2].Board.Count(types.O))
	assert.Equal(t, 2, entries[3].Board.Count(types.X))
}
