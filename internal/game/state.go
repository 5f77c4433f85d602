package game

import (
	"time"

	"minichess/internal/minichess"
)

type Status int

const (
	StatusOngoing Status = iota
	StatusNoMoves
	StatusKingCaptured
	StatusMoveLimit
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusNoMoves:
		return "no_moves"
	case StatusKingCaptured:
		return "king_captured"
	case StatusMoveLimit:
		return "move_limit"
	}
	return "unknown"
}

// Record is one played ply.
type Record struct {
	Ply      int
	Side     minichess.Side
	Move     minichess.Move
	Captured minichess.Cell
	Score    float64
	Nodes    int64
	TimeUsed time.Duration
}

type GameState struct {
	ID        string
	Board     *minichess.Board
	ToMove    minichess.Side
	History   []Record
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Winner reports the side that won, or NoSide while ongoing or after the
// move limit.
func (g *GameState) Winner() minichess.Side {
	switch g.Status {
	case StatusKingCaptured:
		if n := len(g.History); n > 0 {
			return g.History[n-1].Side
		}
	case StatusNoMoves:
		return minichess.Invert(g.ToMove)
	}
	return minichess.NoSide
}
