// Package eval implements the §4.1 leaf evaluator: a pure, White-positive
// static evaluation of a position. It is an external collaborator (§1) —
// no search logic lives here, and the function is a pure function of the
// board as the adapter contract requires.
package eval

import "github.com/cschuller/parasearch/board"

// addSide folds a White-relative term into a running total, negating it
// for Black — the same add/sub-by-side idiom as the teacher's
// eval.Score, reduced here to plain ints since this evaluator only ever
// tracks one running total per game phase.
func addSide(total *int, v int, white bool) {
	if white {
		*total += v
	} else {
		*total -= v
	}
}

const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
)

var pieceValueMg = [7]int{0, pawnValue, knightValue, bishopValue, rookValue, queenValue, 0}
var pieceValueEg = [7]int{0, 120, 300, 320, 550, 950, 0}

const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase
)

// pst holds White-relative piece-square tables indexed [piece][square],
// square 0 = a1. Black values are mirrored at evaluation time. Grounded on
// the teacher's eval.Weights.PST table, reduced to untuned, hand-picked
// values, since learning weights (internal/tuner, internal/train) is a
// different concern than the CORE's leaf-evaluator contract (§4.1).
var pstMg = [7][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var pstEg = [7][64]int{
	King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// Evaluate is the §4.1 eval() primitive: White-positive, a pure function
// of p. The CORE negates this at leaves (I4) so it never needs to know
// the side to move.
func Evaluate(p *board.Position) int {
	var mg, eg int

	for sq := 0; sq < 64; sq++ {
		piece := p.PieceAt(sq)
		if piece == board.Empty {
			continue
		}
		white := p.PiecesByColor(true)&squareBit(sq) != 0
		pstSq := sq
		if !white {
			pstSq = sq ^ 56
		}
		addSide(&mg, pieceValueMg[piece]+pstMg[piece][pstSq], white)
		addSide(&eg, pieceValueEg[piece]+pstEg[piece][pstSq], white)
	}

	// Phase is counted straight off the piece bitboards, the same
	// PopCount(p.Knights&...)-style term the teacher's evaluation.go uses
	// for material/mobility counts, rather than re-walking all 64 squares.
	phase := board.PopCount(p.Knights)*knightPhase +
		board.PopCount(p.Bishops)*bishopPhase +
		board.PopCount(p.Rooks)*rookPhase +
		board.PopCount(p.Queens)*queenPhase
	if phase > totalPhase {
		phase = totalPhase
	}
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}

func squareBit(sq int) uint64 { return uint64(1) << uint(sq) }

const (
	Pawn   = board.Pawn
	Knight = board.Knight
	Bishop = board.Bishop
	Rook   = board.Rook
	Queen  = board.Queen
	King   = board.King
)
