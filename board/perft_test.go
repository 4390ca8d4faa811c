package board

import "testing"

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes int
	}{
		{InitialPositionFEN, 1, 20},
		{InitialPositionFEN, 2, 400},
		{InitialPositionFEN, 3, 8902},
		{InitialPositionFEN, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	}
	for i, test := range tests {
		p, err := NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		if nodes := perft(&p, test.depth); nodes != test.nodes {
			t.Errorf("%d: %s depth %d: got %d nodes, want %d", i, test.fen, test.depth, nodes, test.nodes)
		}
	}
}

func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(p)
	if depth == 1 {
		return moves.Count()
	}
	var result int
	for i := 0; i < moves.Count(); i++ {
		m := moves.At(i)
		tok, ok := p.Make(m)
		if !ok {
			continue
		}
		result += perft(p, depth-1)
		p.Undo(tok, m)
	}
	return result
}
