package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
)

// AlphaBetaNega is the §4.2 sequential negamax core with fail-soft
// alpha/beta pruning. It is the sequential baseline every parallel
// variant must agree with on score (P2) and visits no more leaves than
// Minimax at the same depth (P3).
func AlphaBetaNega(pos *board.Position, alpha, beta, depth int) Result {
	NewLine(depth)
	return alphaBetaNega(pos, alpha, beta, depth)
}

func alphaBetaNega(pos *board.Position, alpha, beta, depth int) Result {
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
		child := alphaBetaNega(pos, -beta, -alpha, depth-1)
		pos.Undo(tok, m)

		score := -child.Score
		if score > best.Score {
			best.Score = score
			best.Line.Set(m, &child.Line)
		}
		if score > alpha {
			alpha = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
