// Package rules implements the tic-tac-toe rules: applying moves and detecting the winner.
// All functions are pure; boards are passed and returned by value.
package rules

import (
	"errors"

	"tictactoe-local/types"
)

var (
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrGameOver      = errors.New("game is already won")
)

// Lines lists every winning triple in the order they are checked: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove places player's mark at index and returns the resulting board.
// The input board is left untouched. A move is rejected if the index is out of
// range, the player is not X or O, the board already has a winner, or the cell
// is taken.
func ApplyMove(board types.Board, index int, player types.Mark) (types.Board, error) {
	if index < 0 || index >= types.CellCount {
		return board, ErrInvalidCell
	}
	if !player.IsPlayer() {
		return board, ErrInvalidPlayer
	}
	if _, won := DetectWinner(board); won {
		return board, ErrGameOver
	}
	if board[index] != types.Empty {
		return board, ErrCellOccupied
	}

	next := board
	next[index] = player
	return next, nil
}

// DetectWinner returns the first line in Lines whose three cells hold the same
// non-empty mark. A full board without such a line reports no winner.
func DetectWinner(board types.Board) (types.Winner, bool) {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != types.Empty && a == b && b == c {
			return types.Winner{Player: a, Line: line}, true
		}
	}
	return types.Winner{}, false
}

// PhaseOf derives the game phase from a board.
func PhaseOf(board types.Board) types.Phase {
	if _, won := DetectWinner(board); won {
		return types.Won
	}
	if board.Full() {
		return types.Drawn
	}
	return types.InProgress
}
