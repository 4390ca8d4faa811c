package search

import (
	"testing"

	"github.com/cschuller/parasearch/board"
	"github.com/cschuller/parasearch/eval"
)

func mustPosition(t *testing.T, fen string) board.Position {
	t.Helper()
	p, err := board.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("fen %q: %v", fen, err)
	}
	return p
}

// TestSequentialParallelAgreement is P2: every variant must agree with
// AlphaBetaNega on score, for every tested team size.
func TestSequentialParallelAgreement(t *testing.T) {
	fens := []string{
		board.InitialPositionFEN,
		"8/8/2K5/7r/6r1/8/6k1/8 b - - 0 1",
		"r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	teams := []int{1, 2, 4, 8}

	for _, fen := range fens {
		const depth = 3
		base := mustPosition(t, fen)

		seq := AlphaBetaNega(&base, -Infinity, Infinity, depth)

		for _, team := range teams {
			pNaive := mustPosition(t, fen)
			naive := NaiveParallel(&pNaive, -Infinity, Infinity, depth, team)
			if naive.Score != seq.Score {
				t.Errorf("%s depth %d team %d: NaiveParallel score %d != AlphaBetaNega score %d",
					fen, depth, team, naive.Score, seq.Score)
			}

			pYbwc := mustPosition(t, fen)
			ybwc := YBWC(&pYbwc, -Infinity, Infinity, depth, team)
			if ybwc.Score != seq.Score {
				t.Errorf("%s depth %d team %d: YBWC score %d != AlphaBetaNega score %d",
					fen, depth, team, ybwc.Score, seq.Score)
			}

			pPvs := mustPosition(t, fen)
			pvs := PVS(&pPvs, -Infinity, Infinity, depth, team)
			if pvs.Score != seq.Score {
				t.Errorf("%s depth %d team %d: PVS score %d != AlphaBetaNega score %d",
					fen, depth, team, pvs.Score, seq.Score)
			}
		}

		pMini := mustPosition(t, fen)
		mini := Minimax(&pMini, depth)
		if mini.Score != seq.Score {
			t.Errorf("%s depth %d: Minimax score %d != AlphaBetaNega score %d",
				fen, depth, mini.Score, seq.Score)
		}
	}
}

// TestMateDetection is P4: on a mate-in-N FEN the root score reflects
// MateScore and the first move delivers the mate.
func TestMateDetection(t *testing.T) {
	// Black to move and mate in 1: Ra2-a1# is a back-rank mate, the black
	// king on f3 covering e2, f2 and g2.
	p := mustPosition(t, "8/8/8/8/8/5k2/r7/5K2 b - - 0 1")
	result := PVS(&p, -Infinity, Infinity, 1, 1)
	if result.Score < MateScore {
		t.Fatalf("expected a mate score, got %d", result.Score)
	}
	moves := result.Line.Moves()
	if len(moves) == 0 {
		t.Fatal("expected a mating move in the line")
	}
	mate := moves[0]
	tok, ok := p.Make(mate)
	if !ok {
		t.Fatalf("reported mating move %s rejected by Make", mate)
	}
	defer p.Undo(tok, mate)
	after := board.GenerateLegalMoves(&p)
	if after.Count() != 0 || !p.IsCheck() {
		t.Errorf("move %s did not deliver checkmate", mate)
	}
}

// TestStalemate is P6.
func TestStalemate(t *testing.T) {
	p := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	result := AlphaBetaNega(&p, -Infinity, Infinity, 3)
	if result.Score != 0 {
		t.Errorf("stalemate score = %d, want 0", result.Score)
	}
	if result.Line.Len() != 0 {
		t.Errorf("stalemate line should be empty (null move), got %v", result.Line.Moves())
	}
}

// TestLineValidity is P5: replaying the returned line from the root
// succeeds at every ply, and the leaf it reaches evaluates to the
// reported score once the per-ply negamax sign flips are undone.
func TestLineValidity(t *testing.T) {
	const depth = 4
	p := mustPosition(t, board.InitialPositionFEN)
	result := AlphaBetaNega(&p, -Infinity, Infinity, depth)

	replay := mustPosition(t, board.InitialPositionFEN)
	for i, m := range result.Line.Moves() {
		tok, ok := replay.Make(m)
		if !ok {
			t.Fatalf("line move %d (%s) illegal when replayed from root", i, m)
		}
		defer func(tok board.Token, m board.Move) { replay.Undo(tok, m) }(tok, m)
	}

	if result.Line.Len() != depth {
		// A mate or stalemate cut the PV short; the leaf-eval check below
		// only applies to a line that ran the full requested depth.
		return
	}
	leafScore := sideSign(&replay) * eval.Evaluate(&replay)
	want := leafScore
	if depth%2 != 0 {
		want = -leafScore
	}
	if want != result.Score {
		t.Errorf("leaf eval %d (negamax-adjusted %d over %d plies) does not match reported score %d",
			leafScore, want, depth, result.Score)
	}
}

// TestBestMoveIsLegal is I1: best_line[0] must be one of the moves move
// generation produced at the root.
func TestBestMoveIsLegal(t *testing.T) {
	fens := []string{
		board.InitialPositionFEN,
		"r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	for _, fen := range fens {
		p := mustPosition(t, fen)
		legal := board.GenerateLegalMoves(&p)
		result := AlphaBetaNega(&p, -Infinity, Infinity, 3)
		if result.Line.Len() == 0 {
			t.Fatalf("%s: expected a non-empty line", fen)
		}
		best := result.Line.Moves()[0]
		found := false
		for i := 0; i < legal.Count(); i++ {
			if legal.At(i) == best {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: best move %s is not in the root's legal move list", fen, best)
		}
	}
}

func TestYBWCFindsForcedMate(t *testing.T) {
	p := mustPosition(t, "7k/8/3NK3/5BN1/8/8/8/8 w - - 0 1")
	result := YBWC(&p, -Infinity, Infinity, 5, 4)
	if result.Score < MateScore {
		t.Errorf("expected a forced-mate score, got %d", result.Score)
	}
}
