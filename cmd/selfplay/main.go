package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"minichess/internal/engine"
	"minichess/internal/game"
	"minichess/internal/minichess"
	"minichess/internal/notation"
	"minichess/internal/render"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func main() {
	depth := flag.Int("depth", getenvInt("MINICHESS_DEPTH", engine.DefaultDepth), "search depth in plies")
	maxMoves := flag.Int("maxmoves", getenvInt("MINICHESS_MAXMOVES", game.DefaultMaxMoves), "max moves to play")
	games := flag.Int("games", getenvInt("MINICHESS_GAMES", 1), "number of games; more than 1 plays them concurrently without rendering")
	workers := flag.Int("workers", getenvInt("MINICHESS_WORKERS", runtime.NumCPU()), "root moves searched in parallel")
	cacheSize := flag.Int("cache", getenvInt("MINICHESS_CACHE", engine.DefaultConfig().CacheSize), "evaluation cache entries (0 disables)")
	useTUI := flag.Bool("tui", getenvBool("MINICHESS_TUI", false), "draw on a full terminal screen")
	delay := flag.Duration("delay", 0, "pause after each rendered move")
	pprofAddr := flag.String("pprof", getenv("MINICHESS_PPROF", ""), "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := engine.Config{Depth: *depth, Workers: *workers, CacheSize: *cacheSize}
	if _, err := engine.NewEngine(cfg); err != nil {
		log.Fatalf("invalid engine config: %v", err)
	}

	if *games > 1 {
		if err := runMatch(ctx, cfg, *games, *maxMoves); err != nil {
			log.Fatalf("match failed: %v", err)
		}
		return
	}

	if err := playOne(ctx, cfg, *maxMoves, *useTUI, *delay); err != nil {
		log.Fatalf("selfplay failed: %v", err)
	}
	log.Println("Selfplay finished.")
}

func playOne(ctx context.Context, cfg engine.Config, maxMoves int, useTUI bool, delay time.Duration) error {
	e, err := engine.NewEngine(cfg)
	if err != nil {
		return err
	}
	d := &game.Driver{
		Engine:   e,
		Games:    game.NewManager(),
		MaxMoves: maxMoves,
	}

	if useTUI {
		sc, err := render.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		defer sc.Close()
		// Logging would scribble over the screen.
		d.Logger = log.New(io.Discard, "", 0)
		d.Observer = func(g *game.GameState, rec *game.Record) {
			sc.Draw(g.Board, statusLine(g, rec))
			pause(delay)
		}
	} else {
		d.Observer = func(g *game.GameState, rec *game.Record) {
			_ = render.ClearScreen(os.Stdout)
			fmt.Print(render.Text(g.Board))
			if rec != nil {
				fmt.Println(statusLine(g, rec))
			}
			pause(delay)
		}
	}

	g, err := d.Play(ctx)
	if err != nil {
		return err
	}
	if useTUI {
		pause(2 * time.Second)
	}
	fmt.Printf("end: %v", g.Status)
	if w := g.Winner(); w != minichess.NoSide {
		fmt.Printf(", %v wins", w)
	}
	fmt.Println()
	return nil
}

func statusLine(g *game.GameState, rec *game.Record) string {
	if rec == nil {
		return fmt.Sprintf("%v to move", g.ToMove)
	}
	return fmt.Sprintf("%d. %v %s  score %.1f  nodes %d  %v",
		rec.Ply+1, rec.Side, notation.Move(rec.Move), rec.Score, rec.Nodes, rec.TimeUsed.Round(time.Millisecond))
}

func pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
