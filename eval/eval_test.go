package eval

import (
	"testing"

	"github.com/cschuller/parasearch/board"
)

func TestEvaluateSymmetric(t *testing.T) {
	p, err := board.NewPositionFromFEN(board.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(&p); got != 0 {
		t.Errorf("initial position should evaluate to 0 by symmetry, got %d", got)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is missing its queen: must evaluate clearly negative for White.
	p, err := board.NewPositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(&p); got >= 0 {
		t.Errorf("White down a queen should evaluate negative, got %d", got)
	}
}
