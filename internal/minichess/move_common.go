package minichess

var rookDirs = [4][2]int{
	{-1, 0}, {+1, 0}, // along the row
	{0, -1}, {0, +1}, // along the column
}

// Rook: slides until the first occupied square, which it may take if enemy.
func genRookMoves(b *Board, x, y int, side Side, moves *[]Coord) {
	for _, d := range rookDirs {
		nx, ny := x+d[0], y+d[1]
		for onBoard(nx, ny) {
			s := b.Side(nx, ny)
			if s == side {
				break
			}
			*moves = append(*moves, Coord{X: nx, Y: ny})
			if s != NoSide {
				break
			}
			nx += d[0]
			ny += d[1]
		}
	}
}

// King: one square in any direction. No castling, no check test.
func genKingMoves(b *Board, x, y int, side Side, moves *[]Coord) {
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if onBoard(nx, ny) && b.Side(nx, ny) != side {
				*moves = append(*moves, Coord{X: nx, Y: ny})
			}
		}
	}
}
