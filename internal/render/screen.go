package render

import (
	"github.com/gdamore/tcell/v2"

	"minichess/internal/minichess"
	"minichess/internal/notation"
)

// Screen draws boards on a full terminal screen through tcell.
type Screen struct {
	s tcell.Screen
}

func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return &Screen{s: s}, nil
}

// NewScreenOn wraps an already initialised tcell screen.
func NewScreenOn(s tcell.Screen) *Screen {
	return &Screen{s: s}
}

func cellStyle(x, y int) tcell.Style {
	st := tcell.StyleDefault.Background(tcell.PaletteColor(squareColor(x, y)))
	if squareColor(x, y) == DarkSquareColor {
		return st.Foreground(tcell.ColorWhite)
	}
	return st.Foreground(tcell.ColorBlack)
}

func (sc *Screen) putString(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		sc.s.SetContent(x, y, r, nil, st)
		x++
	}
}

// Draw renders b with the file letters on top, rank numbers on the left and
// status on the line below the board.
func (sc *Screen) Draw(b *minichess.Board, status string) {
	sc.s.Clear()
	for x := 0; x < minichess.Cols; x++ {
		sc.putString(2+2*x, 0, notation.File(x), tcell.StyleDefault)
	}
	for y := 0; y < minichess.Rows; y++ {
		sc.putString(0, 1+y, string(rune('0'+minichess.Rows-y)), tcell.StyleDefault)
		for x := 0; x < minichess.Cols; x++ {
			st := cellStyle(x, y)
			glyph := []rune(b.Cell(x, y).Glyph())
			sc.s.SetContent(2+2*x, 1+y, glyph[0], nil, st)
			sc.s.SetContent(3+2*x, 1+y, ' ', nil, st)
		}
	}
	sc.putString(0, 2+minichess.Rows, status, tcell.StyleDefault)
	sc.s.Show()
}

func (sc *Screen) Close() {
	sc.s.Fini()
}
