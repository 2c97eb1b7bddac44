// path: internal/legality/attack.go
package legality

import "shogi_kifu/internal/shogi"

// Attacking computes the pseudo-legal destination set for pc standing
// on from: every square the piece covers, minus squares occupied by
// the owner's own pieces. Long-range pieces stop at (and include) the
// first blocker.
func Attacking(pos *shogi.Position, pc shogi.Piece, from shogi.Square) shogi.Bitboard {
	kind := pc.Kind()
	color := pc.Color()
	var covered shogi.Bitboard
	switch kind {
	case shogi.Lance, shogi.Bishop, shogi.Rook, shogi.ProBishop, shogi.ProRook:
		occupied := pos.OccupiedBitboard()
		switch kind {
		case shogi.Lance:
			covered = lanceRange(color, from, occupied)
		case shogi.Bishop:
			covered = bishopRange(from, occupied)
		case shogi.Rook:
			covered = rookRange(from, occupied)
		case shogi.ProBishop:
			covered = bishopRange(from, occupied).Or(kingSteps(from))
		case shogi.ProRook:
			covered = rookRange(from, occupied).Or(kingSteps(from))
		}
	default:
		covered = shortRange(pc, from)
	}
	return covered.AndNot(pos.PlayerBitboard(color))
}

func shortRange(pc shogi.Piece, from shogi.Square) shogi.Bitboard {
	c := pc.Color()
	switch pc.Kind() {
	case shogi.Pawn:
		return pawnSteps(c, from)
	case shogi.Knight:
		return knightSteps(c, from)
	case shogi.Silver:
		return silverSteps(c, from)
	case shogi.Gold, shogi.ProPawn, shogi.ProLance, shogi.ProKnight, shogi.ProSilver:
		return goldSteps(c, from)
	case shogi.King:
		return kingSteps(from)
	default:
		return shogi.Bitboard{}
	}
}

func pawnSteps(c shogi.Color, from shogi.Square) shogi.Bitboard {
	var b shogi.Bitboard
	dr := -1
	if c == shogi.White {
		dr = 1
	}
	if sq, ok := from.Shift(0, dr); ok {
		b = b.Add(sq)
	}
	return b
}

func knightSteps(c shogi.Color, from shogi.Square) shogi.Bitboard {
	var b shogi.Bitboard
	rank := from.RelativeRank(c)
	if rank <= 2 {
		return b
	}
	file := from.RelativeFile(c)
	if sq, ok := shogi.NewRelativeSquare(file-1, rank-2, c); ok {
		b = b.Add(sq)
	}
	if sq, ok := shogi.NewRelativeSquare(file+1, rank-2, c); ok {
		b = b.Add(sq)
	}
	return b
}

func silverSteps(c shogi.Color, from shogi.Square) shogi.Bitboard {
	var b shogi.Bitboard
	file := from.RelativeFile(c)
	rank := from.RelativeRank(c)
	for df := -1; df <= 1; df++ {
		if sq, ok := shogi.NewRelativeSquare(file+df, rank-1, c); ok {
			b = b.Add(sq)
		}
	}
	for _, df := range [2]int{-1, 1} {
		if sq, ok := shogi.NewRelativeSquare(file+df, rank+1, c); ok {
			b = b.Add(sq)
		}
	}
	return b
}

func goldSteps(c shogi.Color, from shogi.Square) shogi.Bitboard {
	var b shogi.Bitboard
	file := from.RelativeFile(c)
	rank := from.RelativeRank(c)
	for df := -1; df <= 1; df++ {
		if sq, ok := shogi.NewRelativeSquare(file+df, rank-1, c); ok {
			b = b.Add(sq)
		}
	}
	for _, df := range [2]int{-1, 1} {
		if sq, ok := shogi.NewRelativeSquare(file+df, rank, c); ok {
			b = b.Add(sq)
		}
	}
	if sq, ok := shogi.NewRelativeSquare(file, rank+1, c); ok {
		b = b.Add(sq)
	}
	return b
}

func kingSteps(from shogi.Square) shogi.Bitboard {
	var b shogi.Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if sq, ok := from.Shift(df, dr); ok {
				b = b.Add(sq)
			}
		}
	}
	return b
}

func lanceRange(c shogi.Color, from shogi.Square, occupied shogi.Bitboard) shogi.Bitboard {
	if c == shogi.Black {
		return ray(from, occupied, 0, -1)
	}
	return ray(from, occupied, 0, 1)
}

func bishopRange(from shogi.Square, occupied shogi.Bitboard) shogi.Bitboard {
	b := ray(from, occupied, 1, 1)
	b = b.Or(ray(from, occupied, 1, -1))
	b = b.Or(ray(from, occupied, -1, 1))
	b = b.Or(ray(from, occupied, -1, -1))
	return b
}

func rookRange(from shogi.Square, occupied shogi.Bitboard) shogi.Bitboard {
	b := ray(from, occupied, 0, 1)
	b = b.Or(ray(from, occupied, 0, -1))
	b = b.Or(ray(from, occupied, 1, 0))
	b = b.Or(ray(from, occupied, -1, 0))
	return b
}

// ray walks from the square in one direction; the first occupied
// square is included and stops the walk.
func ray(from shogi.Square, occupied shogi.Bitboard, fileDelta, rankDelta int) shogi.Bitboard {
	var b shogi.Bitboard
	current := from
	for {
		next, ok := current.Shift(fileDelta, rankDelta)
		if !ok {
			return b
		}
		b = b.Add(next)
		if occupied.Has(next) {
			return b
		}
		current = next
	}
}
