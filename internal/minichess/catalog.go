package minichess

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the panic value (wrapped) raised when moves or a
// rating are requested from an empty cell.
var ErrInvalidOperation = errors.New("invalid operation on empty cell")

type pieceSpec struct {
	Code       string
	Value      int
	LightGlyph string
	DarkGlyph  string
	genMoves   func(b *Board, x, y int, side Side, moves *[]Coord)
	rate       func(b *Board, x, y int, side Side) int
}

var catalog [KindRook + 1]pieceSpec

func init() {
	catalog = [...]pieceSpec{
		KindEmpty: {Code: "empty", LightGlyph: " ", DarkGlyph: " "},
		KindPawn: {
			Code: "pawn", Value: 10, LightGlyph: "♙", DarkGlyph: "♟",
			genMoves: genPawnMoves,
			rate:     ratePawn,
		},
		KindKing: {
			Code: "king", Value: 0, LightGlyph: "♔", DarkGlyph: "♚",
			genMoves: genKingMoves,
			rate:     rateFixed(KindKing),
		},
		KindRook: {
			Code: "rook", Value: 50, LightGlyph: "♖", DarkGlyph: "♜",
			genMoves: genRookMoves,
			rate:     rateFixed(KindRook),
		},
	}
}

// King and rook score their material value wherever they stand.
func rateFixed(kind PieceKind) func(*Board, int, int, Side) int {
	return func(*Board, int, int, Side) int { return catalog[kind].Value }
}

func (k PieceKind) Code() string { return catalog[k].Code }
func (k PieceKind) Value() int   { return catalog[k].Value }
func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(catalog) {
		return fmt.Sprintf("PieceKind(%d)", int8(k))
	}
	return catalog[k].Code
}

func (c Cell) Code() string { return catalog[c.Kind].Code }

func (c Cell) Glyph() string {
	if c.Side == Dark {
		return catalog[c.Kind].DarkGlyph
	}
	return catalog[c.Kind].LightGlyph
}

func (c Cell) String() string { return c.Glyph() }

// Moves lists the pseudo-legal destinations of the piece in c standing on (x, y).
func (c Cell) Moves(b *Board, x, y int) []Coord {
	if c.IsEmpty() {
		panic(fmt.Errorf("moves at %d,%d: %w", x, y, ErrInvalidOperation))
	}
	var moves []Coord
	catalog[c.Kind].genMoves(b, x, y, c.Side, &moves)
	return moves
}

// Rate is the static contribution of the piece in c standing on (x, y).
func (c Cell) Rate(b *Board, x, y int) int {
	if c.IsEmpty() {
		panic(fmt.Errorf("rate at %d,%d: %w", x, y, ErrInvalidOperation))
	}
	return catalog[c.Kind].rate(b, x, y, c.Side)
}
