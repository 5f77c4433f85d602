package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"minichess/internal/engine"
	"minichess/internal/game"
	"minichess/internal/minichess"
)

// runMatch plays totalGames games at once, one engine each, and prints the tally.
func runMatch(ctx context.Context, cfg engine.Config, totalGames, maxMoves int) error {
	// Games already run side by side; keep each search single threaded.
	cfg.Workers = 1
	manager := game.NewManager()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < totalGames; i++ {
		g.Go(func() error {
			e, err := engine.NewEngine(cfg)
			if err != nil {
				return err
			}
			d := &game.Driver{Engine: e, Games: manager, MaxMoves: maxMoves}
			_, err = d.Play(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	wins := map[minichess.Side]int{}
	byStatus := map[game.Status]int{}
	for _, st := range manager.List() {
		wins[st.Winner()]++
		byStatus[st.Status]++
		log.Printf("game %s: %v after %d plies", st.ID, st.Status, len(st.History))
	}

	fmt.Printf("\n=== Final Score (depth %d, %d games) ===\n", cfg.Depth, totalGames)
	fmt.Printf("Light: %d\n", wins[minichess.Light])
	fmt.Printf("Dark: %d\n", wins[minichess.Dark])
	fmt.Printf("Undecided: %d\n", wins[minichess.NoSide])
	for _, st := range []game.Status{game.StatusKingCaptured, game.StatusNoMoves, game.StatusMoveLimit} {
		fmt.Printf("%s: %d\n", st, byStatus[st])
	}
	return nil
}
