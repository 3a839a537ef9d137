// Package history keeps the navigable sequence of board snapshots of one game.
package history

import (
	"errors"

	"tictactoe-local/types"
)

var ErrStepOutOfRange = errors.New("step out of range")

// Entry is one position in the history: the board and the move that produced it.
// Move is nil for the initial empty board.
type Entry struct {
	Board types.Board
	Move  *types.Move
}

// History is an ordered list of entries plus a cursor selecting the current one.
// It always holds at least the initial entry.
type History struct {
	entries []Entry
	cursor  int
}

// New creates a history holding a single empty board.
func New() *History {
	return &History{entries: []Entry{{}}}
}

// Record drops every entry after the cursor, appends the new board and advances
// the cursor to it. Returns the new cursor.
func (h *History) Record(board types.Board, move types.Move) int {
	// Capped so the dropped entries are never overwritten in place.
	n := h.cursor + 1
	h.entries = append(h.entries[:n:n], Entry{Board: board, Move: &move})
	h.cursor = len(h.entries) - 1
	return h.cursor
}

// JumpTo moves the cursor to step without changing any entry.
func (h *History) JumpTo(step int) error {
	if step < 0 || step >= len(h.entries) {
		return ErrStepOutOfRange
	}
	h.cursor = step
	return nil
}

// Back moves the cursor one step towards the start. Returns false if already at the start.
func (h *History) Back() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Forward moves the cursor one step towards the latest entry. Returns false if already there.
func (h *History) Forward() bool {
	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.cursor++
	return true
}

// Current returns the entry at the cursor.
func (h *History) Current() Entry {
	return h.entries[h.cursor]
}

// Cursor returns the current step number.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries, including the initial one.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries from the start.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}

// NextPlayer returns whose turn it is at the cursor.
func (h *History) NextPlayer() types.Mark {
	return NextPlayer(h.cursor)
}

// NextPlayer derives the player to move from a step number: X on even steps, O on odd ones.
func NextPlayer(step int) types.Mark {
	if step%2 == 0 {
		return types.X
	}
	return types.O
}
