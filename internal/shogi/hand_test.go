// path: internal/shogi/hand_test.go
package shogi

import "testing"

func TestHandAddRemove(t *testing.T) {
	var h Hand
	if !h.IsEmpty() {
		t.Fatal("zero hand not empty")
	}
	h, ok := h.Added(Pawn)
	if !ok {
		t.Fatal("add pawn rejected")
	}
	h, _ = h.Added(Pawn)
	if n, _ := h.Count(Pawn); n != 2 {
		t.Fatalf("pawn count = %d, want 2", n)
	}
	h, ok = h.Removed(Pawn)
	if !ok {
		t.Fatal("remove pawn rejected")
	}
	if n, _ := h.Count(Pawn); n != 1 {
		t.Fatalf("pawn count = %d, want 1", n)
	}
	if _, ok := h.Removed(Rook); ok {
		t.Error("removed a rook that was never held")
	}
}

func TestHandRejectsUnholdableKinds(t *testing.T) {
	var h Hand
	for _, k := range []PieceKind{King, ProPawn, ProRook, NoPieceKind} {
		if _, ok := h.Count(k); ok {
			t.Errorf("Count accepted %s", k)
		}
		if _, ok := h.Added(k); ok {
			t.Errorf("Added accepted %s", k)
		}
	}
}
