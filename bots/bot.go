// Package bots holds the evaluation back-ends the advisor consults. A bot is
// an oracle: given a position, a search budget and a number of lines, it
// returns ranked principal variations with scores relative to the mover.
package bots

import (
	"errors"
	"fmt"
	"time"

	"github.com/notnil/chess"
)

var (
	// ErrEngineClosed is returned by a bot used after Close.
	ErrEngineClosed = errors.New("engine is closed")

	// ErrNoLegalMoves is returned when asked to analyse a finished game.
	ErrNoLegalMoves = errors.New("no legal moves in position")
)

// Engine is the evaluation collaborator. Implementations are not safe for
// concurrent use; callers hold one in-flight Analyse per engine.
type Engine interface {
	// Analyse returns up to lines candidate lines, best first.
	Analyse(pos *chess.Position, budget time.Duration, lines int) ([]Line, error)
	Name() string
	Close() error
}

// Line is one principal variation. Moves are in long-form (UCI) notation.
type Line struct {
	Moves []string `json:"moves"`
	Score Score    `json:"score"`
}

// First returns the opening move of the line, or "".
func (l Line) First() string {
	if len(l.Moves) == 0 {
		return ""
	}
	return l.Moves[0]
}

// OpError records which engine operation failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
