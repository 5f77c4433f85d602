package main

import (
	"fmt"

	"minichess/internal/minichess"
	"minichess/internal/notation"
	"minichess/internal/render"
)

func main() {
	b := minichess.NewInitialBoard()
	fmt.Println("Layout:", b.Encode(minichess.Light))
	fmt.Print(render.Text(b))
	for _, side := range []minichess.Side{minichess.Light, minichess.Dark} {
		moves := b.MovesFor(side)
		fmt.Printf("Pseudo legal moves (%v): %d\n", side, len(moves))
		for _, mv := range moves {
			fmt.Printf("  %s\n", notation.Move(mv))
		}
		fmt.Printf("Rate (%v): %d\n", side, b.Rate(side))
	}
}
