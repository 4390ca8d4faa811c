package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
)

// PVS is the §4.5 splitter: the PV child (list[0]) is searched serially
// and recurses into PVS itself, the same serial-spine shape as YBWC. The
// remaining siblings, once alpha has been tightened by the PV child,
// recurse into NaiveParallel rather than PVS — the asymmetry the spec
// calls for, trading a second level of PV-splitting for flat-work
// parallelism on siblings that are usually already refuted.
func PVS(pos *board.Position, alpha, beta, depth, team int) Result {
	NewLine(depth)
	return pvs(pos, alpha, beta, depth, team)
}

func pvs(pos *board.Position, alpha, beta, depth, team int) Result {
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
	pv := pvs(pos, -beta, -alpha, depth-1, team)
	pos.Undo(tok, m0)

	node := newSharedNode(alpha, beta, &moves, 1)
	node.seed(m0, &pv.Line, -pv.Score)

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
			child := naiveParallel(&local, -beta, -alphaSnapshot, depth-1, team)
			local.Undo(tok, m)

			node.fold(m, &child.Line, -child.Score)
		}
	})

	return node.result()
}
