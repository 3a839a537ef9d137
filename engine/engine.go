// Package engine defines the interface between the UI and a running game.
package engine

import (
	"tictactoe-local/history"
	"tictactoe-local/types"
)

// GameEngine defines the operations the UI needs to play and navigate a game.
type GameEngine interface {
	// Board returns the board at the current step.
	Board() types.Board

	// PlayMove places the next player's mark at the given cell index.
	// Returns an error if the move is illegal; the game is unchanged in that case.
	PlayMove(index int) error

	// JumpTo moves to the given history step without changing the history.
	JumpTo(step int) error

	// Back and Forward move one step through the history.
	Back() error
	Forward() error

	// Step returns the current step number (0 = game start).
	Step() int

	// History returns a copy of every recorded entry.
	History() []history.Entry

	// NextPlayer returns the player to move at the current step.
	NextPlayer() types.Mark

	// Winner returns the winner at the current step, if any.
	Winner() (types.Winner, bool)

	// Phase returns the phase of the game at the current step.
	Phase() types.Phase

	// Status returns the one-line status text: "Winner: X", "Draw" or "Next player: O".
	Status() string

	// Config returns the configuration the game was started with.
	Config() GameConfig

	// OnMove registers a callback for when a move is recorded.
	OnMove(func(move types.Move, board types.Board))

	// OnJump registers a callback for when the current step changes without a move.
	OnJump(func(step int, board types.Board))

	// OnGameEnd registers a callback for when a move ends the game.
	OnGameEnd(func(outcome string))

	// Close ends the game and discards its history.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PlayerX     string // Display name of the first player
	PlayerO     string // Display name of the second player
	NewestFirst bool   // Initial move list order
	Opening     []int  // Cell indices played before handing the board to the players
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerX: "Player 1",
		PlayerO: "Player 2",
	}
}

// Name returns the display name of the given player.
func (c GameConfig) Name(player types.Mark) string {
	switch player {
	case types.X:
		return c.PlayerX
	case types.O:
		return c.PlayerO
	}
	return ""
}
