package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
)

// YBWC is the §4.4 splitter: the eldest sibling (list[0], the "elder
// brother") is searched serially, in place on pos, to tighten alpha
// before the remaining siblings are forked across the team. Each forked
// sibling recurses back into YBWC, so the serial spine re-forms one
// level down in every child — the "serial spine" the YBWC name refers
// to. Grounded on the teacher's serial-first-move-then-ParallelDo shape
// in engine/searchserviceparallel.go, generalised from its
// fixed two-ply/search-stack design into plain recursion on pos.
func YBWC(pos *board.Position, alpha, beta, depth, team int) Result {
	NewLine(depth)
	return ybwc(pos, alpha, beta, depth, team)
}

func ybwc(pos *board.Position, alpha, beta, depth, team int) Result {
	moves := board.GenerateLegalMoves(pos)
	if moves.Count() == 0 {
		return terminalResult(pos, depth)
	}
	if depth == 0 {
		return leafResult(pos)
	}

	m0 := moves.At(0)
	tok, ok := pos.Make(m0)
	if !ok {
		panic(fmt.Sprintf("search: legal move %s rejected by Make", m0))
	}
	elder := ybwc(pos, -beta, -alpha, depth-1, team)
	pos.Undo(tok, m0)

	node := newSharedNode(alpha, beta, &moves, 1)
	node.seed(m0, &elder.Line, -elder.Score)

	if moves.Count() == 1 || node.cutoff() {
		return node.result()
	}

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
			child := ybwc(&local, -beta, -alphaSnapshot, depth-1, team)
			local.Undo(tok, m)

			node.fold(m, &child.Line, -child.Score)
		}
	})

	return node.result()
}
