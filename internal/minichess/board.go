package minichess

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func onBoard(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Pawn direction: light moves up the board (-1), dark moves down (+1).
func pawnDir(side Side) int {
	switch side {
	case Light:
		return -1
	case Dark:
		return +1
	}
	return 0
}

// Board is the 8x8 grid, addressed as (column, row). Cells are stored by
// value, so copying a Board never shares squares with the original.
type Board struct {
	cells [Rows][Cols]Cell
	hash  uint64
}

func NewBoard() *Board {
	b := &Board{}
	b.hash = b.CalculateHash()
	return b
}

func (b *Board) Cell(x, y int) Cell { return b.cells[y][x] }
func (b *Board) Side(x, y int) Side { return b.cells[y][x].Side }
func (b *Board) IsEmpty(x, y int) bool {
	return b.cells[y][x].IsEmpty()
}

// Put places c on (x, y), replacing whatever was there. Used for setting up
// positions; game play goes through MovePiece.
func (b *Board) Put(x, y int, c Cell) {
	old := b.cells[y][x]
	b.hash ^= cellHashKey(old, x, y)
	b.cells[y][x] = c
	b.hash ^= cellHashKey(c, x, y)
}

func (b *Board) Moves(x, y int) []Coord {
	return b.cells[y][x].Moves(b, x, y)
}

// MovePiece moves whatever stands on from onto to and returns the previous
// occupant of to. Legality is up to the caller.
func (b *Board) MovePiece(from, to Coord) Cell {
	pc := b.cells[from.Y][from.X]
	captured := b.cells[to.Y][to.X]

	b.cells[to.Y][to.X] = pc
	b.cells[from.Y][from.X] = Empty

	h := b.hash
	h ^= cellHashKey(pc, from.X, from.Y)
	h ^= cellHashKey(captured, to.X, to.Y)
	h ^= cellHashKey(pc, to.X, to.Y)
	b.hash = h

	return captured
}

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Rate sums the piece ratings of side and applies the pawn structure
// penalties: -2 per doubled pawn and -2 per isolated pawn on columns 1..6.
func (b *Board) Rate(side Side) int {
	res := 0
	var pawnCols [Cols]int
	pawns := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := b.cells[y][x]
			if c.IsEmpty() || c.Side != side {
				continue
			}
			res += c.Rate(b, x, y)
			if c.Kind == KindPawn {
				pawnCols[x]++
				pawns++
			}
		}
	}

	distinct := 0
	for _, n := range pawnCols {
		if n > 0 {
			distinct++
		}
	}
	res += 2 * (distinct - pawns)

	// Edge columns are never checked for isolation.
	for x := 1; x <= 6; x++ {
		if pawnCols[x] > 0 && pawnCols[x-1] == 0 && pawnCols[x+1] == 0 {
			res -= 2
		}
	}
	return res
}

// PiecesOf lists the squares held by side in row-major order.
func (b *Board) PiecesOf(side Side) []Coord {
	var out []Coord
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if !b.cells[y][x].IsEmpty() && b.cells[y][x].Side == side {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// MovesFor generates every pseudo-legal move of side.
func (b *Board) MovesFor(side Side) []Move {
	var moves []Move
	for _, from := range b.PiecesOf(side) {
		for _, to := range b.Moves(from.X, from.Y) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
