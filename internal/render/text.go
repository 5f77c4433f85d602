package render

import (
	"fmt"
	"io"
	"strings"

	"minichess/internal/minichess"
	"minichess/internal/notation"
)

// 256-colour palette indexes of the two square shades.
const (
	LightSquareColor = 229
	DarkSquareColor  = 0
)

const (
	ansiReset = "\033[0m"
	ansiClear = "\033[2J\033[1;3H\033[14;0m"
)

func squareColor(x, y int) int {
	if (x+y)%2 == 1 {
		return DarkSquareColor
	}
	return LightSquareColor
}

// Text draws the board with ANSI background colours, rank 8 at the top.
func Text(b *minichess.Board) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for x := 0; x < minichess.Cols; x++ {
		sb.WriteString(" " + notation.File(x) + " ")
	}
	sb.WriteString(" \n")
	for y := 0; y < minichess.Rows; y++ {
		sb.WriteString(ansiReset)
		fmt.Fprintf(&sb, "%d", minichess.Rows-y)
		for x := 0; x < minichess.Cols; x++ {
			fmt.Fprintf(&sb, "\033[48;5;%dm%s ", squareColor(x, y), b.Cell(x, y).Glyph())
		}
		sb.WriteString(ansiReset + "\n")
	}
	sb.WriteString(ansiReset)
	return sb.String()
}

func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprintln(w, ansiClear)
	return err
}
