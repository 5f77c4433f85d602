package minichess

type Side int8

const (
	NoSide Side = 0
	Light  Side = 1
	Dark   Side = 2
)

func (s Side) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "none"
}

// Invert returns the opposing side; NoSide stays NoSide.
func Invert(side Side) Side {
	switch side {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return NoSide
}

type PieceKind int8

const (
	KindEmpty PieceKind = iota
	KindPawn
	KindKing
	KindRook
)

// Cell is one square of the board. The zero value is an empty square.
type Cell struct {
	Kind PieceKind
	Side Side
}

var Empty = Cell{}

func makeCell(side Side, kind PieceKind) Cell {
	if kind == KindEmpty || side == NoSide {
		return Empty
	}
	return Cell{Kind: kind, Side: side}
}

func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}
