// path: internal/legality/candidates.go
package legality

import "shogi_kifu/internal/shogi"

// Candidates answers the disambiguation query for transcript
// rendering: the set of board squares from which a c-owned piece of
// exactly kind (promotion state included) can legally move to
// destination, and whether dropping that kind there is also legal.
// Both answers are computed against the full move legality above, so
// they only make sense when c is the side to move.
func Candidates(pos *shogi.Position, c shogi.Color, kind shogi.PieceKind, to shogi.Square) (shogi.Bitboard, bool) {
	var origins shogi.Bitboard
	piece := shogi.NewPiece(kind, c)
	for from := shogi.Square(1); from <= shogi.NumSquares; from++ {
		if pos.PieceAt(from) != piece {
			continue
		}
		plain := shogi.BoardMove{From: from, To: to}
		forced := shogi.BoardMove{From: from, To: to, Promote: true}
		if isLegal(pos, plain, true) || isLegal(pos, forced, true) {
			origins = origins.Add(from)
		}
	}
	dropLegal := kind.Droppable() && isLegal(pos, shogi.DropMove{Kind: kind, To: to}, true)
	return origins, dropLegal
}
