// Package search implements the depth-limited negamax family: a
// sequential core with alpha/beta pruning, and three ways of sharing
// that work across a fixed team of worker goroutines.
package search

import (
	"fmt"

	"github.com/cschuller/parasearch/board"
	"github.com/cschuller/parasearch/eval"
)

// MaxPly bounds the fixed-capacity best-line array. The source templates
// every variant on max_depth; Go has no value templates, so max_depth is
// an ordinary int parameter and MaxPly is simply large enough to hold any
// depth this engine is actually run at.
const MaxPly = 64

const (
	// MateScore dominates any plausible static evaluation; depth is added
	// on top so shallower mates score strictly higher than deeper ones.
	MateScore = 20000
	// Infinity is the sentinel used to seed best_score before the first
	// child is searched. It must never be the value a caller observes on
	// return from a position with at least one legal move (I2).
	Infinity = 50000
)

// Line is a fixed-capacity principal variation: an ordered run of moves
// starting at index 0, length Count. Being a plain array makes it
// trivially copyable into a node's shared state without an allocation on
// the hot path (§9 "fixed-capacity best-line").
type Line struct {
	moves [MaxPly]board.Move
	count int
}

// NewLine validates a root call's depth (§7: "depth > max_depth" is a
// fatal contract violation, not a value to clamp or truncate silently)
// and returns the empty line a root call starts accumulating into.
func NewLine(maxDepth int) Line {
	if maxDepth < 0 || maxDepth > MaxPly {
		panic(fmt.Sprintf("search: depth %d violates 0 <= depth <= MaxPly (%d)", maxDepth, MaxPly))
	}
	return Line{}
}

// Set makes m the new first move of the line, followed by child's moves.
func (l *Line) Set(m board.Move, child *Line) {
	n := child.count + 1
	if n > MaxPly {
		panic(fmt.Sprintf("search: line of length %d overflows MaxPly (%d)", n, MaxPly))
	}
	l.moves[0] = m
	copy(l.moves[1:], child.moves[:child.count])
	l.count = n
}

func (l *Line) clear() { l.count = 0 }

// Moves returns the line's moves in order. The returned slice aliases l
// and is only valid until the next Set.
func (l *Line) Moves() []board.Move { return l.moves[:l.count] }

func (l *Line) Len() int { return l.count }

// Result is the (best_line, best_score) pair every variant returns.
type Result struct {
	Line  Line
	Score int
}

func sideSign(p *board.Position) int {
	if p.SideToMove() {
		return 1
	}
	return -1
}

func matedScore(depth int) int { return -(MateScore + depth) }

// leafResult is I4: the static evaluation, negated for Black to move, so
// callers can treat the return value as the negamax score of the side to
// move at the node that called this leaf.
func leafResult(p *board.Position) Result {
	return Result{Score: sideSign(p) * eval.Evaluate(p)}
}

// terminalResult handles the "no legal moves" case: mate if the side to
// move is in check, stalemate (score 0) otherwise (I3).
func terminalResult(p *board.Position, depth int) Result {
	if p.IsCheck() {
		return Result{Score: matedScore(depth)}
	}
	return Result{Score: 0}
}
