package game

import (
	"context"
	"fmt"
	"log"

	"minichess/internal/engine"
	"minichess/internal/minichess"
	"minichess/internal/notation"
)

const DefaultMaxMoves = 22

// Observer is told about the starting position (rec == nil) and every ply.
type Observer func(g *GameState, rec *Record)

// Driver plays engine-against-itself games stored in a Manager.
type Driver struct {
	Engine   *engine.Engine
	Games    *Manager
	MaxMoves int
	Observer Observer
	Logger   *log.Logger
}

func (d *Driver) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Play starts a new game from the initial position and runs it to the end.
func (d *Driver) Play(ctx context.Context) (*GameState, error) {
	g := d.Games.NewGame()
	return d.Run(ctx, g.ID)
}

// Run continues game id until a king is taken, the side to move has no
// candidate, or MaxMoves plies have been played.
func (d *Driver) Run(ctx context.Context, id string) (*GameState, error) {
	g, err := d.Games.Get(id)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	maxMoves := d.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	d.notify(g, nil)

	for len(g.History) < maxMoves {
		res, err := d.Engine.Think(ctx, g.Board, g.ToMove)
		if err != nil {
			return g, fmt.Errorf("game %s ply %d: %w", id, len(g.History), err)
		}
		if res.GameOver() {
			d.finish(g, StatusNoMoves)
			d.logf("game %s: %v has no moves, end", id, g.ToMove)
			return g, nil
		}

		var rec Record
		err = d.Games.Update(id, func(g *GameState) {
			rec = Record{
				Ply:      len(g.History),
				Side:     g.ToMove,
				Move:     res.BestMove,
				Captured: g.Board.MovePiece(res.BestMove.From, res.BestMove.To),
				Score:    res.Score,
				Nodes:    res.Nodes,
				TimeUsed: res.TimeUsed,
			}
			g.History = append(g.History, rec)
			g.ToMove = minichess.Invert(g.ToMove)
		})
		if err != nil {
			return g, err
		}
		d.logf("game %s: move %d %v %s score=%.1f nodes=%d time=%v",
			id, rec.Ply+1, rec.Side, notation.Move(rec.Move), rec.Score, rec.Nodes, rec.TimeUsed)
		d.notify(g, &rec)

		if rec.Captured.Kind == minichess.KindKing {
			d.finish(g, StatusKingCaptured)
			d.logf("game %s: %v king captured, end", id, rec.Captured.Side)
			return g, nil
		}
	}

	d.finish(g, StatusMoveLimit)
	d.logf("game %s: move limit %d reached (light %d pieces, dark %d pieces)",
		id, maxMoves, g.Board.CountPieces(minichess.Light), g.Board.CountPieces(minichess.Dark))
	return g, nil
}

func (d *Driver) finish(g *GameState, st Status) {
	_ = d.Games.Update(g.ID, func(g *GameState) { g.Status = st })
}

func (d *Driver) notify(g *GameState, rec *Record) {
	if d.Observer != nil {
		d.Observer(g, rec)
	}
}
