// Package types contains shared data structures for tictactoe-local.
package types

import (
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Mark is the content of a single cell: Empty, X or O.
// X and O double as the two players; X always moves first.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O", or "" for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

// IsPlayer returns true for X and O.
func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// Opponent returns the other player (X->O, O->X). Empty stays Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Board is one snapshot of the 3x3 grid, indexed 0-8 in row-major order.
// Board is an array, so assigning or passing it copies the cells and a stored
// snapshot is never changed by a later move.
type Board [CellCount]Mark

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given mark.
func (b Board) Count(m Mark) int {
	n := 0
	for _, c := range b {
		if c == m {
			n++
		}
	}
	return n
}

// String renders the board as three rows separated by '/', '.' for empty cells.
// Example: "XO./.X./..O".
func (b Board) String() string {
	var sb strings.Builder
	for i, m := range b {
		if i > 0 && i%BoardSize == 0 {
			sb.WriteByte('/')
		}
		if m == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}

// Move records which player played which cell.
type Move struct {
	Index  int
	Player Mark
}

// Row returns the 1-based row of the move.
func (m Move) Row() int {
	return m.Index/BoardSize + 1
}

// Col returns the 1-based column of the move.
func (m Move) Col() int {
	return m.Index%BoardSize + 1
}

// Location renders the move as "(row, col)".
func (m Move) Location() string {
	return fmt.Sprintf("(%d, %d)", m.Row(), m.Col())
}

// Winner is the player that completed a line and the three cell indices of that line.
type Winner struct {
	Player Mark
	Line   [3]int
}

// Contains returns true if index is part of the winning line.
func (w Winner) Contains(index int) bool {
	for _, i := range w.Line {
		if i == index {
			return true
		}
	}
	return false
}

// Phase describes where a game stands. It is always derived from a board.
type Phase int

const (
	InProgress Phase = iota
	Won
	Drawn
)

func (p Phase) String() string {
	switch p {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	}
	return "in progress"
}

// Finished returns true for the terminal phases.
func (p Phase) Finished() bool {
	return p == Won || p == Drawn
}

// BoardPos represents a position on the board, X is the column and Y the row, both 0-based.
type BoardPos struct {
	X int
	Y int
}

// Index returns the row-major cell index of the position.
func (p BoardPos) Index() int {
	return p.Y*BoardSize + p.X
}
