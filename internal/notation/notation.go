// Package notation names board squares the way chess players do: files a-h
// from left to right, ranks 8 (far row) down to 1 (near row).
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"minichess/internal/minichess"
)

var ErrInvalidSquare = errors.New("invalid square")

func toSquare(c minichess.Coord) chess.Square {
	rank := minichess.Rows - 1 - c.Y
	return chess.Square(rank*minichess.Cols + c.X)
}

// Square formats c as e.g. "c6". Off-board coordinates render as "-".
func Square(c minichess.Coord) string {
	if c.X < 0 || c.X >= minichess.Cols || c.Y < 0 || c.Y >= minichess.Rows {
		return "-"
	}
	return toSquare(c).String()
}

func File(x int) string { return chess.File(x).String() }

// Move formats m in long algebraic form without piece letters, e.g. "c6c1".
func Move(m minichess.Move) string {
	return Square(m.From) + Square(m.To)
}

func ParseSquare(s string) (minichess.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if sq.String() == s {
			return minichess.Coord{
				X: int(sq.File()),
				Y: minichess.Rows - 1 - int(sq.Rank()),
			}, nil
		}
	}
	return minichess.Coord{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
}

// ParseMove reads the format written by Move.
func ParseMove(s string) (minichess.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return minichess.Move{}, fmt.Errorf("%w: move %q", ErrInvalidSquare, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return minichess.Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return minichess.Move{}, err
	}
	return minichess.Move{From: from, To: to}, nil
}
