package minichess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidLayout = errors.New("invalid layout")

var letterToKind = map[rune]PieceKind{
	'p': KindPawn,
	'k': KindKing,
	'r': KindRook,
}

var kindToLetter = map[PieceKind]rune{
	KindPawn: 'p',
	KindKing: 'k',
	KindRook: 'r',
}

func cellToChar(c Cell) rune {
	if c.IsEmpty() {
		return '.'
	}
	ch, ok := kindToLetter[c.Kind]
	if !ok {
		return '.'
	}
	if c.Side == Light {
		return unicode.ToUpper(ch)
	}
	return ch
}

// Simplified start position, light to move. Upper case is light.
const InitialLayout = "......../pppkp.../..R...../.P.K..../......../......../......../........ l"

func NewInitialBoard() *Board {
	b, _, err := DecodeLayout(InitialLayout)
	if err != nil {
		panic("initial layout: " + err.Error())
	}
	return b
}

// Encode writes the board as 8 rows separated by "/", runs of empty squares
// compressed into digits, followed by the side to move ("l" or "d").
func (b *Board) Encode(toMove Side) string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Cols; x++ {
			c := b.cells[y][x]
			if c.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(cellToChar(c))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Dark {
		sb.WriteByte('d')
	} else {
		sb.WriteByte('l')
	}
	return sb.String()
}

// DecodeLayout parses the Encode format. Both "." and digits are accepted
// for empty squares; the side-to-move suffix is optional and defaults to light.
func DecodeLayout(s string) (*Board, Side, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, NoSide, ErrInvalidLayout
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoSide, fmt.Errorf("%w: %d rows", ErrInvalidLayout, len(rows))
	}

	b := &Board{}
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= Cols {
				return nil, NoSide, fmt.Errorf("%w: row %d too long", ErrInvalidLayout, y)
			}
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			if ch == '.' {
				x++
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, NoSide, fmt.Errorf("%w: unknown piece %q", ErrInvalidLayout, ch)
			}
			side := Dark
			if unicode.IsUpper(ch) {
				side = Light
			}
			b.cells[y][x] = makeCell(side, kind)
			x++
		}
		if x != Cols {
			return nil, NoSide, fmt.Errorf("%w: row %d has %d columns", ErrInvalidLayout, y, x)
		}
	}

	toMove := Light
	if len(parts) == 2 {
		switch parts[1] {
		case "l":
			toMove = Light
		case "d":
			toMove = Dark
		default:
			return nil, NoSide, fmt.Errorf("%w: side %q", ErrInvalidLayout, parts[1])
		}
	}
	b.hash = b.CalculateHash()
	return b, toMove, nil
}
