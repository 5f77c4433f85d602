package minichess

func (b *Board) KingExists(side Side) bool {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := b.cells[y][x]
			if c.Kind == KindKing && c.Side == side {
				return true
			}
		}
	}
	return false
}

// CountPieces returns how many pieces side still has on the board.
func (b *Board) CountPieces(side Side) int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			c := b.cells[y][x]
			if !c.IsEmpty() && c.Side == side {
				n++
			}
		}
	}
	return n
}
