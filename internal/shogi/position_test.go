// path: internal/shogi/position_test.go
package shogi

import (
	"errors"
	"testing"
)

func TestStartPosition(t *testing.T) {
	pos := StartPosition()
	if pos.SideToMove() != Black || pos.Ply() != 1 {
		t.Fatalf("side %s ply %d", pos.SideToMove(), pos.Ply())
	}
	if _, ok := pos.LastMoveDestination(); ok {
		t.Fatal("fresh game has a last destination")
	}
	checks := []struct {
		file, rank int
		want       Piece
	}{
		{5, 9, NewPiece(King, Black)},
		{5, 1, NewPiece(King, White)},
		{2, 8, NewPiece(Rook, Black)},
		{8, 2, NewPiece(Rook, White)},
		{8, 8, NewPiece(Bishop, Black)},
		{2, 2, NewPiece(Bishop, White)},
		{7, 7, NewPiece(Pawn, Black)},
		{3, 3, NewPiece(Pawn, White)},
		{9, 9, NewPiece(Lance, Black)},
		{1, 1, NewPiece(Lance, White)},
		{5, 5, NoPiece},
	}
	for _, c := range checks {
		sq := mustSquare(t, c.file, c.rank)
		if got := pos.PieceAt(sq); got != c.want {
			t.Errorf("piece at %s = %s, want %s", sq, got, c.want)
		}
	}
	if got := pos.PlayerBitboard(Black).Count(); got != 20 {
		t.Errorf("black piece count = %d, want 20", got)
	}
	if got := pos.OccupiedBitboard().Count(); got != 40 {
		t.Errorf("occupied count = %d, want 40", got)
	}
}

func TestMakeMoveBoard(t *testing.T) {
	pos := StartPosition()
	from := mustSquare(t, 7, 7)
	to := mustSquare(t, 7, 6)
	if err := pos.MakeMove(BoardMove{From: from, To: to}); err != nil {
		t.Fatalf("7g7f: %v", err)
	}
	if pos.PieceAt(from) != NoPiece {
		t.Error("origin still occupied")
	}
	if got := pos.PieceAt(to); got != NewPiece(Pawn, Black) {
		t.Errorf("destination holds %s", got)
	}
	if pos.SideToMove() != White || pos.Ply() != 2 {
		t.Errorf("side %s ply %d after one move", pos.SideToMove(), pos.Ply())
	}
	if last, ok := pos.LastMoveDestination(); !ok || last != to {
		t.Errorf("last destination = %v, %v", last, ok)
	}
}

func TestMakeMoveCaptureRevertsKind(t *testing.T) {
	pos := NewPosition()
	rookSq := mustSquare(t, 5, 5)
	preySq := mustSquare(t, 5, 3)
	pos.SetPieceAt(rookSq, NewPiece(Rook, Black))
	pos.SetPieceAt(preySq, NewPiece(ProPawn, White))
	if err := pos.MakeMove(BoardMove{From: rookSq, To: preySq}); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if got := pos.HandCount(Black, Pawn); got != 1 {
		t.Errorf("pawn in hand = %d, want 1", got)
	}
	if got := pos.HandCount(Black, ProPawn); got != 0 {
		t.Error("promoted kind ended up in hand")
	}
}

func TestMakeMovePromotes(t *testing.T) {
	pos := NewPosition()
	from := mustSquare(t, 2, 4)
	to := mustSquare(t, 2, 3)
	pos.SetPieceAt(from, NewPiece(Silver, Black))
	if err := pos.MakeMove(BoardMove{From: from, To: to, Promote: true}); err != nil {
		t.Fatalf("promoting move: %v", err)
	}
	if got := pos.PieceAt(to); got != NewPiece(ProSilver, Black) {
		t.Errorf("destination holds %s, want +S", got)
	}

	pos = NewPosition()
	pos.SetPieceAt(from, NewPiece(Gold, Black))
	err := pos.MakeMove(BoardMove{From: from, To: to, Promote: true})
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("gold promotion error = %v", err)
	}
}

func TestMakeMoveDrop(t *testing.T) {
	pos := NewPosition()
	h, _ := Hand{}.Added(Gold)
	pos.SetHand(Black, h)
	to := mustSquare(t, 5, 5)
	if err := pos.MakeMove(DropMove{Kind: Gold, To: to}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if got := pos.PieceAt(to); got != NewPiece(Gold, Black) {
		t.Errorf("destination holds %s", got)
	}
	if got := pos.HandCount(Black, Gold); got != 0 {
		t.Errorf("gold still in hand: %d", got)
	}

	// Hand is empty now.
	err := pos.MakeMove(DropMove{Kind: Gold, To: mustSquare(t, 4, 4)})
	if !errors.Is(err, ErrInvalidMove) {
		t.Errorf("empty-hand drop error = %v", err)
	}
}

func TestMakeMoveRejectsBadMoves(t *testing.T) {
	pos := StartPosition()
	cases := []Move{
		BoardMove{From: mustSquare(t, 5, 5), To: mustSquare(t, 5, 4)}, // empty origin
		BoardMove{From: mustSquare(t, 3, 3), To: mustSquare(t, 3, 4)}, // opponent's piece
		BoardMove{From: mustSquare(t, 2, 8), To: mustSquare(t, 2, 7)}, // own piece on target
		DropMove{Kind: Pawn, To: mustSquare(t, 7, 7)},                 // occupied target
	}
	for _, mv := range cases {
		if err := pos.MakeMove(mv); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("%s: error = %v, want ErrInvalidMove", mv, err)
		}
	}
	if pos.Ply() != 1 || pos.SideToMove() != Black {
		t.Error("rejected moves mutated the position")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := StartPosition()
	cp := pos.Clone()
	if err := cp.MakeMove(BoardMove{From: mustSquare(t, 7, 7), To: mustSquare(t, 7, 6)}); err != nil {
		t.Fatalf("move on clone: %v", err)
	}
	if pos.PieceAt(mustSquare(t, 7, 7)) == NoPiece {
		t.Error("move on clone reached the original")
	}
}
