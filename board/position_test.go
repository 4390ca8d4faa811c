package board

import "testing"

// TestMakeUndoRoundTrip is the board half of P1: for every legal move at
// a handful of positions, make then undo must restore the position
// bit-exact.
func TestMakeUndoRoundTrip(t *testing.T) {
	fens := []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		before := p
		moves := GenerateLegalMoves(&p)
		for i := 0; i < moves.Count(); i++ {
			m := moves.At(i)
			tok, ok := p.Make(m)
			if !ok {
				t.Errorf("%s: move %s from legal list rejected by Make", fen, m)
				continue
			}
			p.Undo(tok, m)
			if p != before {
				t.Errorf("%s: make/undo of %s did not restore position", fen, m)
			}
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/6k1/r7/4K3 b - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		again, err := NewPositionFromFEN(p.String())
		if err != nil {
			t.Fatal(err)
		}
		if p != again {
			t.Errorf("FEN round trip changed position: %s -> %s", fen, p.String())
		}
	}
}
