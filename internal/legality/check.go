// path: internal/legality/check.go
package legality

import "shogi_kifu/internal/shogi"

// IsLegal reports whether mv is playable in pos for the side to move.
// The check covers ownership, stuck pieces, the promotion zone, hand
// contents, drop vacancy and the pawn-drop-mate rule. Like the
// position snapshot itself it cannot see move history, so repetition
// is out of scope.
func IsLegal(pos *shogi.Position, mv shogi.Move) bool {
	return isLegal(pos, mv, true)
}

// isLegal optionally skips the pawn-drop-mate search. The mate search
// itself enumerates the defender's replies with checkDropMate=false,
// which keeps the recursion to one level.
func isLegal(pos *shogi.Position, mv shogi.Move, checkDropMate bool) bool {
	side := pos.SideToMove()
	switch m := mv.(type) {
	case shogi.BoardMove:
		pc := pos.PieceAt(m.From)
		if pc == shogi.NoPiece || pc.Color() != side {
			return false
		}
		if target := pos.PieceAt(m.To); target != shogi.NoPiece && target.Color() == side {
			return false
		}
		relRank := m.To.RelativeRank(side)
		if relRank == 1 && !m.Promote && stuckOnLastRank(pc.Kind()) {
			return false
		}
		if relRank == 2 && !m.Promote && pc.Kind() == shogi.Knight {
			return false
		}
		if m.Promote {
			if _, ok := pc.Kind().Promote(); !ok {
				return false
			}
			if m.From.RelativeRank(side) > 3 && relRank > 3 {
				return false
			}
		}
		return Attacking(pos, pc, m.From).Has(m.To)
	case shogi.DropMove:
		if !m.Kind.Droppable() {
			return false
		}
		if pos.HandCount(side, m.Kind) == 0 {
			return false
		}
		if pos.PieceAt(m.To) != shogi.NoPiece {
			return false
		}
		relRank := m.To.RelativeRank(side)
		if relRank == 1 && stuckOnLastRank(m.Kind) {
			return false
		}
		if relRank == 2 && m.Kind == shogi.Knight {
			return false
		}
		if checkDropMate && m.Kind == shogi.Pawn {
			next := pos.Clone()
			if err := next.MakeMove(mv); err != nil {
				return false
			}
			mate, ok := isMate(next)
			if !ok || mate {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func stuckOnLastRank(k shogi.PieceKind) bool {
	return k == shogi.Pawn || k == shogi.Lance || k == shogi.Knight
}

// AllMoves enumerates every legal move in pos.
func AllMoves(pos *shogi.Position) []shogi.Move {
	var out []shogi.Move
	for from := shogi.Square(1); from <= shogi.NumSquares; from++ {
		for to := shogi.Square(1); to <= shogi.NumSquares; to++ {
			for _, promote := range [2]bool{false, true} {
				mv := shogi.BoardMove{From: from, To: to, Promote: promote}
				if isLegal(pos, mv, true) {
					out = append(out, mv)
				}
			}
		}
	}
	for kind := shogi.Pawn; kind <= shogi.Rook; kind++ {
		for to := shogi.Square(1); to <= shogi.NumSquares; to++ {
			mv := shogi.DropMove{Kind: kind, To: to}
			if isLegal(pos, mv, true) {
				out = append(out, mv)
			}
		}
	}
	return out
}

// willKingBeCaptured reports whether the side to move can capture the
// opponent's king outright. The second result is false when that king
// is not on the board.
func willKingBeCaptured(pos *shogi.Position) (bool, bool) {
	side := pos.SideToMove()
	king, ok := kingSquare(pos, side.Flip())
	if !ok {
		return false, false
	}
	for from := shogi.Square(1); from <= shogi.NumSquares; from++ {
		pc := pos.PieceAt(from)
		if pc == shogi.NoPiece || pc.Color() != side {
			continue
		}
		if Attacking(pos, pc, from).Has(king) {
			return true, true
		}
	}
	return false, true
}

func kingSquare(pos *shogi.Position, c shogi.Color) (shogi.Square, bool) {
	king := shogi.NewPiece(shogi.King, c)
	for sq := shogi.Square(1); sq <= shogi.NumSquares; sq++ {
		if pos.PieceAt(sq) == king {
			return sq, true
		}
	}
	return 0, false
}

// isMate reports whether the side to move has no reply that saves
// their king. The second result is false when a king is missing.
func isMate(pos *shogi.Position) (bool, bool) {
	for from := shogi.Square(1); from <= shogi.NumSquares; from++ {
		for to := shogi.Square(1); to <= shogi.NumSquares; to++ {
			for _, promote := range [2]bool{false, true} {
				mv := shogi.BoardMove{From: from, To: to, Promote: promote}
				if escaped, ok := escapes(pos, mv); !ok {
					return false, false
				} else if escaped {
					return false, true
				}
			}
		}
	}
	for kind := shogi.Pawn; kind <= shogi.Rook; kind++ {
		for to := shogi.Square(1); to <= shogi.NumSquares; to++ {
			mv := shogi.DropMove{Kind: kind, To: to}
			if escaped, ok := escapes(pos, mv); !ok {
				return false, false
			} else if escaped {
				return false, true
			}
		}
	}
	return true, true
}

func escapes(pos *shogi.Position, mv shogi.Move) (bool, bool) {
	if !isLegal(pos, mv, false) {
		return false, true
	}
	next := pos.Clone()
	if err := next.MakeMove(mv); err != nil {
		return false, true
	}
	captured, ok := willKingBeCaptured(next)
	if !ok {
		return false, false
	}
	return !captured, true
}
