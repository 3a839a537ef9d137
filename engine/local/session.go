// Package local provides an in-process game session for two players sharing one terminal.
package local

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tictactoe-local/engine"
	"tictactoe-local/engine/rules"
	"tictactoe-local/history"
	"tictactoe-local/types"
)

// Session implements the GameEngine interface for a single game.
// It owns the history; the player to move is always derived from the cursor.
type Session struct {
	id      string
	config  engine.GameConfig
	history *history.History
	log     *zap.Logger
	closed  bool

	moveCallback func(move types.Move, board types.Board)
	jumpCallback func(step int, board types.Board)
	endCallback  func(outcome string)
}

// ErrSessionClosed is returned for moves on a session that was closed.
var ErrSessionClosed = errors.New("session is closed")

var _ engine.GameEngine = (*Session)(nil)

// NewSession starts a new game with an empty board and plays the configured opening, if any.
func NewSession(cfg engine.GameConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	s := &Session{
		id:      id,
		config:  cfg,
		history: history.New(),
		log:     logger.With(zap.String("session", id)),
	}

	for i, index := range cfg.Opening {
		if err := s.PlayMove(index); err != nil {
			return nil, fmt.Errorf("opening move %d at cell %d: %w", i+1, index, err)
		}
	}

	s.log.Info("session started",
		zap.String("player_x", cfg.PlayerX),
		zap.String("player_o", cfg.PlayerO),
		zap.Int("opening_moves", len(cfg.Opening)))
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Config returns the configuration the session was started with.
func (s *Session) Config() engine.GameConfig {
	return s.config
}

// Board returns the board at the current step.
func (s *Session) Board() types.Board {
	return s.history.Current().Board
}

// PlayMove places the next player's mark at index and records the new board.
// Moves after a rewind discard the later history.
func (s *Session) PlayMove(index int) error {
	if s.closed {
		return ErrSessionClosed
	}

	player := s.history.NextPlayer()
	board, err := rules.ApplyMove(s.Board(), index, player)
	if err != nil {
		s.log.Debug("move rejected",
			zap.Int("cell", index),
			zap.Stringer("player", player),
			zap.Int("step", s.history.Cursor()),
			zap.Error(err))
		return err
	}

	dropped := s.history.Len() - 1 - s.history.Cursor()
	move := types.Move{Index: index, Player: player}
	step := s.history.Record(board, move)

	s.log.Debug("move played",
		zap.Int("cell", index),
		zap.Stringer("player", player),
		zap.Int("step", step),
		zap.Int("dropped", dropped),
		zap.Stringer("board", board))

	if s.moveCallback != nil {
		s.moveCallback(move, board)
	}

	if phase := rules.PhaseOf(board); phase.Finished() {
		outcome := s.Status()
		s.log.Info("game finished", zap.String("outcome", outcome), zap.Int("step", step))
		if s.endCallback != nil {
			s.endCallback(outcome)
		}
	}
	return nil
}

// JumpTo moves the cursor to step. The history itself is unchanged.
func (s *Session) JumpTo(step int) error {
	if err := s.history.JumpTo(step); err != nil {
		s.log.Debug("jump rejected", zap.Int("step", step), zap.Int("len", s.history.Len()))
		return err
	}
	s.jumped()
	return nil
}

// Back moves one step towards the start of the game.
func (s *Session) Back() error {
	if !s.history.Back() {
		return history.ErrStepOutOfRange
	}
	s.jumped()
	return nil
}

// Forward moves one step towards the latest recorded move.
func (s *Session) Forward() error {
	if !s.history.Forward() {
		return history.ErrStepOutOfRange
	}
	s.jumped()
	return nil
}

func (s *Session) jumped() {
	step := s.history.Cursor()
	s.log.Debug("jumped", zap.Int("step", step), zap.Stringer("phase", s.Phase()))
	if s.jumpCallback != nil {
		s.jumpCallback(step, s.Board())
	}
}

// Step returns the current step number.
func (s *Session) Step() int {
	return s.history.Cursor()
}

// History returns a copy of every recorded entry.
func (s *Session) History() []history.Entry {
	return s.history.Entries()
}

// NextPlayer returns the player to move at the current step.
func (s *Session) NextPlayer() types.Mark {
	return s.history.NextPlayer()
}

// Winner returns the winner at the current step, if any.
func (s *Session) Winner() (types.Winner, bool) {
	return rules.DetectWinner(s.Board())
}

// Phase returns the phase at the current step.
func (s *Session) Phase() types.Phase {
	return rules.PhaseOf(s.Board())
}

// Status returns "Winner: X", "Draw" or "Next player: O" for the current step.
func (s *Session) Status() string {
	if w, ok := s.Winner(); ok {
		return fmt.Sprintf("Winner: %s", w.Player)
	}
	if s.Board().Full() {
		return "Draw"
	}
	return fmt.Sprintf("Next player: %s", s.NextPlayer())
}

// OnMove registers a callback for recorded moves.
func (s *Session) OnMove(f func(move types.Move, board types.Board)) {
	s.moveCallback = f
}

// OnJump registers a callback for cursor moves.
func (s *Session) OnJump(f func(step int, board types.Board)) {
	s.jumpCallback = f
}

// OnGameEnd registers a callback for a move that ends the game.
func (s *Session) OnGameEnd(f func(outcome string)) {
	s.endCallback = f
}

// Close ends the session. Further moves are rejected.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.log.Info("session closed",
		zap.Int("moves", s.history.Len()-1),
		zap.Stringer("phase", s.Phase()))
	_ = s.log.Sync()
}
