// path: internal/legality/candidates_test.go
package legality

import (
	"testing"

	"shogi_kifu/internal/shogi"
)

func TestCandidatesFindsAllOrigins(t *testing.T) {
	// Two golds, both able to reach 8b.
	pos := mustPosition(t, "4k4/2G6/G8/9/9/9/9/9/4K4 b - 1")
	origins, dropLegal := Candidates(pos, shogi.Black, shogi.Gold, mustSq(t, "8b"))
	if want := squareSet(t, "7b", "9c"); origins != want {
		t.Errorf("origins = %v, want %v", origins.Squares(), want.Squares())
	}
	if dropLegal {
		t.Error("drop reported legal with an empty hand")
	}

	// Only the 9c gold reaches 9b.
	origins, _ = Candidates(pos, shogi.Black, shogi.Gold, mustSq(t, "9b"))
	if want := squareSet(t, "9c"); origins != want {
		t.Errorf("origins = %v, want %v", origins.Squares(), want.Squares())
	}
}

func TestCandidatesIncludesForcedPromotions(t *testing.T) {
	// A pawn on 1b can only reach 1a by promoting; it still counts.
	pos := mustPosition(t, "4k4/8P/9/9/9/9/9/9/4K4 b - 1")
	origins, _ := Candidates(pos, shogi.Black, shogi.Pawn, mustSq(t, "1a"))
	if want := squareSet(t, "1b"); origins != want {
		t.Errorf("origins = %v, want %v", origins.Squares(), want.Squares())
	}
}

func TestCandidatesReportsDropEligibility(t *testing.T) {
	pos := mustPosition(t, "4k4/9/9/9/9/9/9/4G4/4K4 b G 1")
	origins, dropLegal := Candidates(pos, shogi.Black, shogi.Gold, mustSq(t, "4h"))
	if want := squareSet(t, "5h"); origins != want {
		t.Errorf("origins = %v, want %v", origins.Squares(), want.Squares())
	}
	if !dropLegal {
		t.Error("drop on an empty square with a gold in hand should be legal")
	}

	// Occupied destination: the board gold can capture, a drop cannot.
	pos = mustPosition(t, "4k4/9/9/9/9/9/9/4Gp3/4K4 b G 1")
	origins, dropLegal = Candidates(pos, shogi.Black, shogi.Gold, mustSq(t, "4h"))
	if want := squareSet(t, "5h"); origins != want {
		t.Errorf("origins = %v, want %v", origins.Squares(), want.Squares())
	}
	if dropLegal {
		t.Error("drop on an occupied square should be illegal")
	}
}
