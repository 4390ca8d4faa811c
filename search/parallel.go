package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
)

// NaiveParallel is the §4.3 splitter: every sibling at this node,
// including the first, is handed to the team of workers through the
// node's single critical section. Children recurse sequentially into
// AlphaBetaNega — nesting naive parallelism inside itself is not part of
// this variant (§4.6, "nested parallelism is disabled by default").
func NaiveParallel(pos *board.Position, alpha, beta, depth, team int) Result {
	NewLine(depth)
	return naiveParallel(pos, alpha, beta, depth, team)
}

func naiveParallel(pos *board.Position, alpha, beta, depth, team int) Result {
	moves := board.GenerateLegalMoves(pos)
	if moves.Count() == 0 {
		return terminalResult(pos, depth)
	}
	if depth == 0 {
		return leafResult(pos)
	}

	node := newSharedNode(alpha, beta, &moves, 0)

	ParallelDo(team, func(worker int) {
		var local board.Position
		for {
			m, alphaSnapshot, ok := node.claim()
			if !ok {
				return
			}

			local = *pos
			tok, okMake := local.Make(m)
			if !okMake {
				panic(fmt.Sprintf("search: legal move %s rejected by Make", m))
			}
			child := alphaBetaNega(&local, -beta, -alphaSnapshot, depth-1)
			local.Undo(tok, m)

			node.fold(m, &child.Line, -child.Score)
		}
	})

	return node.result()
}
