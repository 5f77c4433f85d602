package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"minichess/internal/minichess"
)

func newTestEngine(t *testing.T, depth, workers, cache int) *Engine {
	t.Helper()
	e, err := NewEngine(Config{Depth: depth, Workers: workers, CacheSize: cache})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func decode(t *testing.T, layout string) *minichess.Board {
	t.Helper()
	b, _, err := minichess.DecodeLayout(layout)
	if err != nil {
		t.Fatalf("decode %q: %v", layout, err)
	}
	return b
}

func findCandidate(cands []Candidate, from, to minichess.Coord) (Candidate, bool) {
	for _, c := range cands {
		if c.Move.From == from && c.Move.To == to {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestNewEngineRejectsZeroDepth(t *testing.T) {
	if _, err := NewEngine(Config{Depth: 0}); !errors.Is(err, ErrInvalidDepth) {
		t.Fatalf("expected ErrInvalidDepth, got %v", err)
	}
}

func TestSearchInitialPositionDepthOne(t *testing.T) {
	b := minichess.NewInitialBoard()
	before := b.Encode(minichess.Light)
	e := newTestEngine(t, 1, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(cands) == 0 {
		t.Fatalf("expected candidates from the initial position")
	}
	for _, c := range cands {
		from, to := c.Move.From, c.Move.To
		if b.Side(from.X, from.Y) != minichess.Light {
			t.Fatalf("candidate %+v does not start on a light piece", c)
		}
		legal := false
		for _, dst := range b.Moves(from.X, from.Y) {
			if dst == to {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("candidate %+v is not a pseudo-legal destination", c)
		}
	}
	if len(cands) != len(b.MovesFor(minichess.Light)) {
		t.Fatalf("depth 1 should score every move: got %d want %d", len(cands), len(b.MovesFor(minichess.Light)))
	}
	if got := b.Encode(minichess.Light); got != before {
		t.Fatalf("search mutated the board:\n got %s\nwant %s", got, before)
	}
}

func TestKingCaptureByRootSide(t *testing.T) {
	b := decode(t, "k7/8/8/8/8/8/8/R6K")
	e := newTestEngine(t, 4, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	c, ok := findCandidate(cands, minichess.Coord{X: 0, Y: 7}, minichess.Coord{X: 0, Y: 0})
	if !ok {
		t.Fatalf("king capture not among candidates")
	}
	if c.Score != 1000 {
		t.Fatalf("king capture score = %v, want 1000", c.Score)
	}
	best, _ := Best(cands)
	if best.Score != 1000 {
		t.Fatalf("best score = %v, want 1000", best.Score)
	}
}

func TestKingCaptureByOpponent(t *testing.T) {
	// The dark rook watches the light king's column; pawn moves leave it there.
	b := decode(t, "7r/8/8/8/8/8/P7/7K")
	e := newTestEngine(t, 2, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, to := range []minichess.Coord{{X: 0, Y: 5}, {X: 0, Y: 4}} {
		c, ok := findCandidate(cands, minichess.Coord{X: 0, Y: 6}, to)
		if !ok {
			t.Fatalf("pawn move to %v missing", to)
		}
		if c.Score != -1000 {
			t.Fatalf("pawn move to %v score = %v, want -1000", to, c.Score)
		}
	}
	best, _ := Best(cands)
	if best.Score <= -1000 {
		t.Fatalf("best move should avoid losing the king, got %+v", best)
	}
	if best.Move.From != (minichess.Coord{X: 7, Y: 7}) {
		t.Fatalf("best move should be a king move, got %+v", best)
	}
}

func TestDeadEndBranchIsDiscarded(t *testing.T) {
	// After Kb1 (1,7) dark has no move at all, so that branch is dropped;
	// Kb2 (1,6) walks into the pawn.
	b := decode(t, "8/8/8/8/8/p7/P7/K7")
	e := newTestEngine(t, 2, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates %+v, want 1", len(cands), cands)
	}
	want := Candidate{Score: -1000, Move: minichess.Move{From: minichess.Coord{X: 0, Y: 7}, To: minichess.Coord{X: 1, Y: 6}}}
	if cands[0] != want {
		t.Fatalf("got %+v, want %+v", cands[0], want)
	}
}

func TestNoCandidatesWhenSideCannotMove(t *testing.T) {
	b := decode(t, "8/8/8/8/8/p7/P7/8")
	e := newTestEngine(t, 4, 1, 0)

	res, err := e.Think(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("think: %v", err)
	}
	if !res.GameOver() {
		t.Fatalf("expected game over, got %+v", res.Candidates)
	}
}

func TestCaptureBonusAndStaticScore(t *testing.T) {
	b := decode(t, "8/8/8/8/p7/8/8/R7")
	e := newTestEngine(t, 1, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	capture, ok := findCandidate(cands, minichess.Coord{X: 0, Y: 7}, minichess.Coord{X: 0, Y: 4})
	if !ok {
		t.Fatalf("capture missing")
	}
	// Rook alone (50) plus a bonus of depth-0 = 1.
	if capture.Score != 51 {
		t.Fatalf("capture score = %v, want 51", capture.Score)
	}
	quiet, ok := findCandidate(cands, minichess.Coord{X: 0, Y: 7}, minichess.Coord{X: 1, Y: 7})
	if !ok {
		t.Fatalf("quiet move missing")
	}
	// Dark pawn on row 4 rates 14.
	if want := 50 - 1.1*14; math.Abs(quiet.Score-want) > 1e-9 {
		t.Fatalf("quiet score = %v, want %v", quiet.Score, want)
	}
}

func TestDarkRootSearch(t *testing.T) {
	b := decode(t, "r7/8/8/8/P7/8/8/8")
	e := newTestEngine(t, 1, 1, 0)

	cands, err := e.Search(context.Background(), b, minichess.Dark)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	capture, ok := findCandidate(cands, minichess.Coord{X: 0, Y: 0}, minichess.Coord{X: 0, Y: 4})
	if !ok || capture.Score != 51 {
		t.Fatalf("dark capture = %+v (found %v), want score 51", capture, ok)
	}
	best, _ := Best(cands)
	if best.Move != capture.Move {
		t.Fatalf("best = %+v, want the capture", best)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	b := minichess.NewInitialBoard()
	seq := newTestEngine(t, 3, 1, 0)
	par := newTestEngine(t, 3, 4, 0)

	want, err := seq.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	got, err := par.Search(context.Background(), b, minichess.Light)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("candidate count: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: got %+v want %+v", i, got[i], want[i])
		}
	}
	if seq.Nodes() != par.Nodes() {
		t.Fatalf("node count: sequential %d parallel %d", seq.Nodes(), par.Nodes())
	}
}

func TestEvalCacheDoesNotChangeScores(t *testing.T) {
	b := minichess.NewInitialBoard()
	plain := newTestEngine(t, 3, 1, 0)
	cached := newTestEngine(t, 3, 1, 1024)

	want, _ := plain.Search(context.Background(), b, minichess.Dark)
	for round := 0; round < 2; round++ {
		got, err := cached.Search(context.Background(), b, minichess.Dark)
		if err != nil {
			t.Fatalf("cached search: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("round %d: candidate count %d want %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d candidate %d: got %+v want %+v", round, i, got[i], want[i])
			}
		}
	}
}

func TestSearchHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		e := newTestEngine(t, 2, workers, 0)
		if _, err := e.Search(ctx, minichess.NewInitialBoard(), minichess.Light); !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}

func TestBestKeepsFirstOnTies(t *testing.T) {
	mv := func(x int) minichess.Move {
		return minichess.Move{From: minichess.Coord{X: x}, To: minichess.Coord{X: x, Y: 1}}
	}
	cands := []Candidate{
		{Score: 1, Move: mv(0)},
		{Score: 3, Move: mv(1)},
		{Score: 3, Move: mv(2)},
		{Score: -2, Move: mv(3)},
	}
	best, ok := Best(cands)
	if !ok || best.Move != mv(1) {
		t.Fatalf("got %+v, want first of the tied maxima", best)
	}
	if _, ok := Best(nil); ok {
		t.Fatalf("Best(nil) should report no candidate")
	}
}

func TestExtremum(t *testing.T) {
	vals := []float64{3, -1, 7.5, 2}
	if got := extremum(vals, true); got != 7.5 {
		t.Fatalf("max = %v", got)
	}
	if got := extremum(vals, false); got != -1 {
		t.Fatalf("min = %v", got)
	}
}
