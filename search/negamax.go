package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
)

// Minimax is the §4.2 algorithm with no pruning: every legal move at
// every node is searched. It exists as the P2/P3 baseline against which
// AlphaBetaNega and the parallel variants are checked for score
// agreement and cutoff safety. There is no parallel counterpart (§9,
// "parallel-minimax ... optional"): this engine does not provide one.
func Minimax(pos *board.Position, depth int) Result {
	NewLine(depth)
	return minimax(pos, depth)
}

func minimax(pos *board.Position, depth int) Result {
	moves := board.GenerateLegalMoves(pos)
	if moves.Count() == 0 {
		return terminalResult(pos, depth)
	}
	if depth == 0 {
		return leafResult(pos)
	}

	best := Result{Score: -Infinity}
	for i := 0; i < moves.Count(); i++ {
		m := moves.At(i)
		tok, ok := pos.Make(m)
		if !ok {
			panic(fmt.Sprintf("search: legal move %s rejected by Make", m))
		}
		child := minimax(pos, depth-1)
		pos.Undo(tok, m)

		score := -child.Score
		if score > best.Score {
			best.Score = score
			best.Line.Set(m, &child.Line)
		}
	}
	return best
}
