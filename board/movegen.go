package board

const MaxMoves = 256

// MoveList is the §3 "move list": an ordered, fixed-capacity sequence of
// legal moves for the side to move, with indexed access and a lifetime
// bounded by the node that generated it (the caller owns the value, there
// is nothing here to free).
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

func (ml *MoveList) Count() int      { return ml.count }
func (ml *MoveList) At(i int) Move   { return ml.moves[i] }

func (ml *MoveList) add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

var (
	f1g1 = squareMask64(squareF1) | squareMask64(squareG1)
	b1d1 = squareMask64(squareC1) | squareMask64(squareD1) | squareMask64(squareB1())
	f8g8 = squareMask64(squareF8) | squareMask64(squareG8)
	b8d8 = squareMask64(squareC8) | squareMask64(squareD8) | squareMask64(squareB8())
)

func squareB1() int { return squareAt(FileB, Rank1) }
func squareB8() int { return squareAt(FileB, Rank8) }

func squareMask64(sq int) uint64 { return uint64(1) << uint(sq) }

var (
	whiteKingSideCastle  = NewMove(squareE1, squareG1, King, Empty)
	whiteQueenSideCastle = NewMove(squareE1, squareC1, King, Empty)
	blackKingSideCastle  = NewMove(squareE8, squareG8, King, Empty)
	blackQueenSideCastle = NewMove(squareE8, squareC8, King, Empty)
)

// generatePseudoLegal fills ml with every pseudo-legal move for the side
// to move: legality (own king left in check) is checked later by Make, the
// same split the teacher's bitboard movegen uses.
func generatePseudoLegal(ml *MoveList, p *Position) {
	ml.count = 0
	var ownPieces, oppPieces uint64
	if p.WhiteMove {
		ownPieces, oppPieces = p.White, p.Black
	} else {
		ownPieces, oppPieces = p.Black, p.White
	}

	target := ^ownPieces
	if p.Checkers != 0 {
		kingSq := FirstOne(p.Kings & ownPieces)
		target = p.Checkers | betweenMask[FirstOne(p.Checkers)][kingSq]
	}

	allPieces := p.White | p.Black
	ownPawns := p.Pawns & ownPieces

	if p.EpSquare != SquareNone {
		for fromBB := pawnAttacks(p.EpSquare, !p.WhiteMove) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			from := FirstOne(fromBB)
			ml.add(newPawnMove(from, p.EpSquare, Pawn, Empty))
		}
	}

	if p.WhiteMove {
		generatePawnMoves(ml, p, ownPieces, oppPieces, allPieces, 8, Rank7Mask, Rank2)
	} else {
		generatePawnMoves(ml, p, ownPieces, oppPieces, allPieces, -8, Rank2Mask, Rank7)
	}

	for fromBB := p.Knights & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		for toBB := knightAttacks[from] & target; toBB != 0; toBB &= toBB - 1 {
			to := FirstOne(toBB)
			ml.add(NewMove(from, to, Knight, p.PieceAt(to)))
		}
	}
	for fromBB := p.Bishops & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		for toBB := BishopAttacks(from, allPieces) & target; toBB != 0; toBB &= toBB - 1 {
			to := FirstOne(toBB)
			ml.add(NewMove(from, to, Bishop, p.PieceAt(to)))
		}
	}
	for fromBB := p.Rooks & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		for toBB := RookAttacks(from, allPieces) & target; toBB != 0; toBB &= toBB - 1 {
			to := FirstOne(toBB)
			ml.add(NewMove(from, to, Rook, p.PieceAt(to)))
		}
	}
	for fromBB := p.Queens & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		for toBB := QueenAttacks(from, allPieces) & target; toBB != 0; toBB &= toBB - 1 {
			to := FirstOne(toBB)
			ml.add(NewMove(from, to, Queen, p.PieceAt(to)))
		}
	}

	from := FirstOne(p.Kings & ownPieces)
	for toBB := kingAttacks[from] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
		to := FirstOne(toBB)
		ml.add(NewMove(from, to, King, p.PieceAt(to)))
	}

	generateCastling(ml, p, allPieces)
}

// generateCastling covers both sides by picking the mover's king square,
// rights bits, through-squares and destination moves once, rather than
// repeating the four checks for White and Black separately.
func generateCastling(ml *MoveList, p *Position, allPieces uint64) {
	white := p.WhiteMove
	kingSq := squareE1
	kingRight, queenRight := WhiteKingSide, WhiteQueenSide
	kingThrough, queenThrough := f1g1, b1d1
	kingMove, queenMove := whiteKingSideCastle, whiteQueenSideCastle
	if !white {
		kingSq = squareE8
		kingRight, queenRight = BlackKingSide, BlackQueenSide
		kingThrough, queenThrough = f8g8, b8d8
		kingMove, queenMove = blackKingSideCastle, blackQueenSideCastle
	}
	attacker := !white
	if p.CastleRights&kingRight != 0 && allPieces&kingThrough == 0 &&
		!p.isAttackedBy(kingSq, attacker) && !p.isAttackedBy(kingSq+1, attacker) {
		ml.add(kingMove)
	}
	if p.CastleRights&queenRight != 0 && allPieces&queenThrough == 0 &&
		!p.isAttackedBy(kingSq, attacker) && !p.isAttackedBy(kingSq-1, attacker) {
		ml.add(queenMove)
	}
}

// generatePawnMoves covers both colors: forward is the single-push square
// delta (+8 for White, -8 for Black), promoRankMask selects the pawns one
// step from promoting, and startRank is the rank eligible for a double
// push. left/right are the capture deltas; file-edge guards keep them from
// wrapping around the board regardless of color.
func generatePawnMoves(ml *MoveList, p *Position, ownPieces, oppPieces, allPieces uint64, forward int, promoRankMask uint64, startRank int) {
	left, right := forward-1, forward+1
	for fromBB := p.Pawns & ownPieces &^ promoRankMask; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		to := from + forward
		if squareMask[to]&allPieces == 0 {
			ml.add(NewMove(from, to, Pawn, Empty))
			if Rank(from) == startRank && squareMask[from+2*forward]&allPieces == 0 {
				ml.add(NewMove(from, from+2*forward, Pawn, Empty))
			}
		}
		if File(from) > FileA && squareMask[from+left]&oppPieces != 0 {
			ml.add(NewMove(from, from+left, Pawn, p.PieceAt(from+left)))
		}
		if File(from) < FileH && squareMask[from+right]&oppPieces != 0 {
			ml.add(NewMove(from, from+right, Pawn, p.PieceAt(from+right)))
		}
	}
	for fromBB := p.Pawns & ownPieces & promoRankMask; fromBB != 0; fromBB &= fromBB - 1 {
		from := FirstOne(fromBB)
		to := from + forward
		if squareMask[to]&allPieces == 0 {
			addPromotions(ml, from, to, Empty)
		}
		if File(from) > FileA && squareMask[from+left]&oppPieces != 0 {
			addPromotions(ml, from, from+left, p.PieceAt(from+left))
		}
		if File(from) < FileH && squareMask[from+right]&oppPieces != 0 {
			addPromotions(ml, from, from+right, p.PieceAt(from+right))
		}
	}
}

func addPromotions(ml *MoveList, from, to, captured int) {
	ml.add(newPawnMove(from, to, captured, Queen))
	ml.add(newPawnMove(from, to, captured, Rook))
	ml.add(newPawnMove(from, to, captured, Bishop))
	ml.add(newPawnMove(from, to, captured, Knight))
}

// GenerateLegalMoves is the §4.1 "move generation" collaborator: it returns
// the full legal move list for the side to move at p, checked via Make so
// self-check pins and castling-through-check are handled the same way for
// every move kind.
func GenerateLegalMoves(p *Position) MoveList {
	var pseudo MoveList
	generatePseudoLegal(&pseudo, p)

	var legal MoveList
	var child Position
	for i := 0; i < pseudo.count; i++ {
		m := pseudo.moves[i]
		if applyMove(p, m, &child) {
			legal.add(m)
		}
	}
	return legal
}
