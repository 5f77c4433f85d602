package minichess

// Starting row of a pawn, from which it may advance two squares.
func pawnHomeRow(side Side) int {
	if side == Light {
		return Rows - 2
	}
	return 1
}

// Pawn: one forward onto an empty square, two from the home row, and a
// diagonal step forward only when it captures.
func genPawnMoves(b *Board, x, y int, side Side, moves *[]Coord) {
	dir := pawnDir(side)
	ny := y + dir
	if ny < 0 || ny >= Rows {
		return
	}
	enemy := Invert(side)

	for _, dx := range []int{-1, +1} {
		nx := x + dx
		if nx < 0 || nx >= Cols {
			continue
		}
		if b.Side(nx, ny) == enemy {
			*moves = append(*moves, Coord{X: nx, Y: ny})
		}
	}

	if !b.IsEmpty(x, ny) {
		return
	}
	*moves = append(*moves, Coord{X: x, Y: ny})

	if y == pawnHomeRow(side) {
		ny2 := ny + dir
		if onBoard(x, ny2) && b.IsEmpty(x, ny2) {
			*moves = append(*moves, Coord{X: x, Y: ny2})
		}
	}
}

// Pawns gain one point per row advanced toward the enemy back rank.
func ratePawn(b *Board, x, y int, side Side) int {
	advance := y
	if side == Light {
		advance = Rows - y
	}
	return catalog[KindPawn].Value + advance
}
