package minichess

import "sync"

const zobristKinds = int(KindRook) + 1

var (
	zobristOnce sync.Once

	zobristCells [2][zobristKinds][NumSquares]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristCells[side][k][sq] = next()
				}
			}
		}
	})
}

func cellHashKey(c Cell, x, y int) uint64 {
	if c.IsEmpty() || !onBoard(x, y) {
		return 0
	}
	initZobrist()

	var sideIdx int
	switch c.Side {
	case Light:
		sideIdx = 0
	case Dark:
		sideIdx = 1
	default:
		return 0
	}
	k := int(c.Kind)
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	return zobristCells[sideIdx][k][y*Cols+x]
}

// CalculateHash recomputes the Zobrist hash of the whole board.
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			h ^= cellHashKey(b.cells[y][x], x, y)
		}
	}
	return h
}

// Hash is maintained incrementally by Put and MovePiece.
func (b *Board) Hash() uint64 { return b.hash }
