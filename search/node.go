package search

import (
	"sync"

	"github.com/cschuller/parasearch/board"
)

// sharedNode is the one critical section per node that §4.6 calls for:
// best_score, best_line, alpha and the cutoff flag all live behind a
// single mutex. beta is immutable for the node's lifetime and is not
// guarded. Grounded on the teacher's "gate sync.Mutex" in
// engine/searchserviceparallel.go, generalised from that file's
// ad-hoc alpha/result pair into a small reusable type shared by all
// three parallel splitters.
type sharedNode struct {
	mu        sync.Mutex
	beta      int
	alpha     int
	bestScore int
	bestLine  Line
	cancelled bool

	moves *board.MoveList
	next  int
}

// newSharedNode seeds best_score at -Infinity (§4.3 step "Initialise
// best_score = -∞"). nextIndex is the first sibling index workers should
// claim: 0 for naive parallel (every sibling is forked), 1 for YBWC/PVS
// (the elder brother already ran serially).
func newSharedNode(alpha, beta int, moves *board.MoveList, nextIndex int) *sharedNode {
	return &sharedNode{
		alpha:     alpha,
		beta:      beta,
		bestScore: -Infinity,
		moves:     moves,
		next:      nextIndex,
	}
}

// claim hands the calling worker the next unclaimed sibling along with a
// snapshot of alpha taken inside the lock, matching §4.3 step 2's "no
// lock held during recursion": the recursive call itself happens after
// this returns, with the lock already released. ok is false once the
// node is exhausted or cancelled.
func (n *sharedNode) claim() (m board.Move, alphaSnapshot int, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancelled || n.next >= n.moves.Count() {
		return board.MoveEmpty, 0, false
	}
	m = n.moves.At(n.next)
	n.next++
	return m, n.alpha, true
}

// fold applies one sibling's result to the node's shared state (§4.3
// step 4). A late-arriving result can only raise best_score, never lower
// it, so folding after cancellation is still safe (§5 "a late arrival
// cannot worsen best_score").
func (n *sharedNode) fold(m board.Move, childLine *Line, score int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if score > n.bestScore {
		n.bestScore = score
		n.bestLine.Set(m, childLine)
	}
	if score > n.alpha {
		n.alpha = score
		if n.beta <= n.alpha {
			n.cancelled = true
		}
	}
}

// seed folds the serial elder-brother's result into the node before any
// worker is spawned (YBWC/PVS only); no lock is needed since nothing else
// can observe the node yet.
func (n *sharedNode) seed(m board.Move, childLine *Line, score int) {
	n.bestScore = score
	n.bestLine.Set(m, childLine)
	if score > n.alpha {
		n.alpha = score
	}
	if n.beta <= n.alpha {
		n.cancelled = true
	}
}

func (n *sharedNode) cutoff() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cancelled
}

func (n *sharedNode) result() Result {
	n.mu.Lock()
	defer n.mu.Unlock()
	return Result{Score: n.bestScore, Line: n.bestLine}
}
