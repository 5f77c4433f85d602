package engine

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"minichess/internal/minichess"
)

const (
	kingCaptureScore = 1000

	// Opponent material weighs slightly more than our own.
	enemyWeight = 1.1
)

// Candidate is one root move with its minimax score.
type Candidate struct {
	Score float64
	Move  minichess.Move
}

type SearchResult struct {
	BestMove   minichess.Move
	Score      float64
	Candidates []Candidate
	Depth      int
	Nodes      int64
	TimeUsed   time.Duration
}

// GameOver is true when the side to move had no candidate at all.
func (r SearchResult) GameOver() bool { return len(r.Candidates) == 0 }

// Best picks the highest scoring candidate; on ties the earliest one wins.
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}

// Think runs Search and picks the best candidate.
func (e *Engine) Think(ctx context.Context, b *minichess.Board, side minichess.Side) (SearchResult, error) {
	start := time.Now()
	cands, err := e.Search(ctx, b, side)
	if err != nil {
		return SearchResult{}, err
	}
	res := SearchResult{
		Candidates: cands,
		Depth:      e.cfg.Depth,
		Nodes:      e.Nodes(),
		TimeUsed:   time.Since(start),
	}
	if best, ok := Best(cands); ok {
		res.BestMove = best.Move
		res.Score = best.Score
	}
	return res, nil
}

// Search scores every pseudo-legal move of side with a fixed-depth minimax
// and returns them in generation order. Moves whose subtree dead-ends are
// left out, so an empty result means side cannot move. b is never modified.
func (e *Engine) Search(ctx context.Context, b *minichess.Board, side minichess.Side) ([]Candidate, error) {
	atomic.StoreInt64(&e.nodes, 0)

	s := &searcher{
		e:     e,
		me:    side,
		enemy: minichess.Invert(side),
		depth: e.cfg.Depth,
	}
	root := b.Clone()
	moves := root.MovesFor(side)

	type rootResult struct {
		score float64
		ok    bool
	}
	results := make([]rootResult, len(moves))

	if e.cfg.Workers <= 1 || len(moves) <= 1 {
		for i, mv := range moves {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i].score, results[i].ok = s.child(root, mv, 0)
		}
	} else {
		// Every subtree works on its own clones; root is only read.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.cfg.Workers)
		for i, mv := range moves {
			i, mv := i, mv
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i].score, results[i].ok = s.child(root, mv, 0)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	cands := make([]Candidate, 0, len(moves))
	for i, mv := range moves {
		if !results[i].ok {
			continue
		}
		cands = append(cands, Candidate{Score: results[i].score, Move: mv})
	}
	return cands, nil
}

type searcher struct {
	e         *Engine
	me, enemy minichess.Side
	depth     int
}

// Even plies belong to the searching side, odd plies to its opponent.
func (s *searcher) mover(depth int) (side minichess.Side, enemy bool) {
	if depth%2 == 1 {
		return s.enemy, true
	}
	return s.me, false
}

func (s *searcher) evaluate(b *minichess.Board) float64 {
	light, dark := s.e.sideRates(b)
	mine, theirs := light, dark
	if s.me == minichess.Dark {
		mine, theirs = dark, light
	}
	return float64(mine) - enemyWeight*float64(theirs)
}

// minimax returns the score of b with depth plies already played, and false
// when the side to move has nothing to play.
func (s *searcher) minimax(b *minichess.Board, depth int) (float64, bool) {
	atomic.AddInt64(&s.e.nodes, 1)

	if depth >= s.depth {
		return s.evaluate(b), true
	}

	side, enemy := s.mover(depth)
	var scores []float64
	for _, from := range b.PiecesOf(side) {
		for _, to := range b.Moves(from.X, from.Y) {
			score, ok := s.child(b, minichess.Move{From: from, To: to}, depth)
			if !ok {
				continue
			}
			scores = append(scores, score)
		}
	}
	if len(scores) == 0 {
		return 0, false
	}
	return extremum(scores, !enemy), true
}

// child plays mv on a copy of b and scores the result.
func (s *searcher) child(b *minichess.Board, mv minichess.Move, depth int) (float64, bool) {
	_, enemy := s.mover(depth)

	next := b.Clone()
	captured := next.MovePiece(mv.From, mv.To)
	if captured.Kind == minichess.KindKing {
		if enemy {
			return -kingCaptureScore, true
		}
		return kingCaptureScore, true
	}

	score, ok := s.minimax(next, depth+1)
	if !ok {
		return 0, false
	}
	// Earlier captures by the searching side earn a little more.
	if !captured.IsEmpty() && !enemy {
		score += float64(s.depth - depth)
	}
	return score, true
}
