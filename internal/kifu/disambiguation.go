// path: internal/kifu/disambiguation.go
package kifu

import "shogi_kifu/internal/shogi"

// disambiguate picks the glyph that tells the moved piece apart from
// the other candidates sharing its kind and destination. candidates is
// the full origin set for that kind/destination pair; it must contain
// from itself, otherwise the move does not exist in pos.
//
// Preference order: no glyph, the vertical classifier alone, the
// horizontal classifier alone, then the pair horizontal+vertical.
func disambiguate(pos *shogi.Position, from, to shogi.Square, candidates shogi.Bitboard) (string, error) {
	if !candidates.Has(from) {
		return "", ErrIllegalMove
	}
	if candidates.Count() == 1 {
		return "", nil
	}
	verticalSet, verticalGlyph := classifyVertical(pos, from, to, candidates)
	if verticalSet.Count() == 1 {
		return verticalGlyph, nil
	}
	horizontalSet, horizontalGlyph, ok := classifyHorizontal(pos, from, to, candidates)
	if !ok {
		return "", ErrAmbiguityUnresolved
	}
	if horizontalSet.Count() == 1 {
		return horizontalGlyph, nil
	}
	if horizontalSet.And(verticalSet).Count() == 1 {
		return horizontalGlyph + verticalGlyph, nil
	}
	return "", ErrAmbiguityUnresolved
}

// classifyVertical buckets the move by the direction of rank travel as
// seen by the mover: 上 toward the opponent, 引 back toward home, 寄
// along the rank. The returned subset holds the candidates sharing
// that direction.
func classifyVertical(pos *shogi.Position, from, to shogi.Square, candidates shogi.Bitboard) (shogi.Bitboard, string) {
	side := pos.SideToMove()
	delta := sign(int(from.RelativeRank(side)) - int(to.RelativeRank(side)))
	var subset shogi.Bitboard
	for _, c := range candidates.Squares() {
		if sign(int(c.RelativeRank(side))-int(to.RelativeRank(side))) == delta {
			subset = subset.Add(c)
		}
	}
	var glyph string
	switch {
	case delta > 0:
		glyph = glyphAdvance
	case delta < 0:
		glyph = glyphRetreat
	default:
		glyph = glyphSideways
	}
	return subset, glyph
}

// classifyHorizontal buckets the move by file, as seen by the mover.
//
// Gold-like kinds step at most one square, so the signed file offset of
// the move itself carries the information: zero offset while advancing
// is the dedicated 直 glyph, otherwise the offset's sign picks 右 or 左
// and the subset holds the candidates with the same offset. All other
// kinds come in pairs at most, so the two origins are ordered by file
// from the mover's point of view and named 右 and 左 directly.
func classifyHorizontal(pos *shogi.Position, from, to shogi.Square, candidates shogi.Bitboard) (shogi.Bitboard, string, bool) {
	side := pos.SideToMove()
	kind := pos.PieceAt(from).Kind()
	if goldLike(kind) {
		fileDiff := int(from.File()) - int(to.File())
		advancing := from.RelativeRank(side) > to.RelativeRank(side)
		if fileDiff == 0 && advancing {
			return shogi.BB(from), glyphStraight, true
		}
		rel := fileDiff
		if side == shogi.White {
			rel = -rel
		}
		if rel == 0 {
			// A straight retreat has no left/right reading. Only the
			// square directly in front of to can make that move, so
			// the vertical pass has already settled it.
			return shogi.Bitboard{}, "", false
		}
		glyph := glyphLeft
		if rel < 0 {
			glyph = glyphRight
		}
		var subset shogi.Bitboard
		for _, c := range candidates.Squares() {
			if int(c.File())-int(to.File()) == fileDiff {
				subset = subset.Add(c)
			}
		}
		return subset, glyph, true
	}
	// Long-range kinds and knights never field more than two candidates.
	if candidates.Count() != 2 {
		return shogi.Bitboard{}, "", false
	}
	pair := candidates.Squares()
	a, b := pair[0], pair[1]
	if a.File() == b.File() {
		// A shared file leaves nothing to call left or right; the
		// vertical pass separates such pairs.
		return shogi.Bitboard{}, "", false
	}
	lowFirst := a.File() < b.File()
	if side == shogi.White {
		lowFirst = !lowFirst
	}
	right := a
	if !lowFirst {
		right = b
	}
	glyph := glyphLeft
	if from == right {
		glyph = glyphRight
	}
	return shogi.BB(from), glyph, true
}

// goldLike covers the kinds whose move pattern is the gold's, plus the
// gold and silver themselves. They step one square, which lets the
// horizontal classifier read the direction off the move itself.
func goldLike(k shogi.PieceKind) bool {
	switch k {
	case shogi.Gold, shogi.Silver, shogi.ProPawn, shogi.ProLance, shogi.ProKnight, shogi.ProSilver:
		return true
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
