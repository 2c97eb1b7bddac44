// path: internal/shogi/types_test.go
package shogi

import "testing"

func TestPromoteUnpromotePairs(t *testing.T) {
	pairs := map[PieceKind]PieceKind{
		Pawn:   ProPawn,
		Lance:  ProLance,
		Knight: ProKnight,
		Silver: ProSilver,
		Bishop: ProBishop,
		Rook:   ProRook,
	}
	for base, promoted := range pairs {
		got, ok := base.Promote()
		if !ok || got != promoted {
			t.Errorf("%s.Promote() = %s, %v", base, got, ok)
		}
		back, ok := promoted.Unpromote()
		if !ok || back != base {
			t.Errorf("%s.Unpromote() = %s, %v", promoted, back, ok)
		}
	}
	for _, k := range []PieceKind{Gold, King, ProPawn, ProRook} {
		if _, ok := k.Promote(); ok {
			t.Errorf("%s unexpectedly promotable", k)
		}
	}
	for _, k := range []PieceKind{Pawn, Gold, King} {
		if _, ok := k.Unpromote(); ok {
			t.Errorf("%s unexpectedly unpromotable", k)
		}
	}
}

func TestDroppable(t *testing.T) {
	for _, k := range []PieceKind{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook} {
		if !k.Droppable() {
			t.Errorf("%s should be droppable", k)
		}
	}
	for _, k := range []PieceKind{NoPieceKind, King, ProPawn, ProRook} {
		if k.Droppable() {
			t.Errorf("%s should not be droppable", k)
		}
	}
}

func TestPiecePacking(t *testing.T) {
	for _, k := range AllPieceKinds() {
		for _, c := range [2]Color{Black, White} {
			p := NewPiece(k, c)
			if !p.Valid() {
				t.Fatalf("NewPiece(%s, %s) invalid", k, c)
			}
			if p.Kind() != k || p.Color() != c {
				t.Fatalf("NewPiece(%s, %s) decodes to (%s, %s)", k, c, p.Kind(), p.Color())
			}
		}
	}
	if NoPiece.Valid() {
		t.Error("NoPiece should be invalid")
	}
	if Piece(15).Valid() || Piece(16).Valid() {
		t.Error("gap bytes should be invalid")
	}
}

func TestPieceString(t *testing.T) {
	cases := []struct {
		p    Piece
		want string
	}{
		{NewPiece(Pawn, Black), "P"},
		{NewPiece(Pawn, White), "p"},
		{NewPiece(ProRook, Black), "+R"},
		{NewPiece(ProBishop, White), "+b"},
		{NoPiece, "-"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.p, got, c.want)
		}
	}
}
