// path: internal/usi/piece.go

// Package usi reads and writes the USI text formats: SFEN position
// records, square coordinates and move strings.
package usi

import "shogi_kifu/internal/shogi"

// parsePieceLetter maps a single SFEN letter to its kind and owner.
// Uppercase letters belong to black, lowercase to white.
func parsePieceLetter(c byte) (shogi.PieceKind, shogi.Color, bool) {
	color := shogi.Black
	if c >= 'a' && c <= 'z' {
		color = shogi.White
		c -= 'a' - 'A'
	}
	var kind shogi.PieceKind
	switch c {
	case 'P':
		kind = shogi.Pawn
	case 'L':
		kind = shogi.Lance
	case 'N':
		kind = shogi.Knight
	case 'S':
		kind = shogi.Silver
	case 'G':
		kind = shogi.Gold
	case 'B':
		kind = shogi.Bishop
	case 'R':
		kind = shogi.Rook
	case 'K':
		kind = shogi.King
	default:
		return shogi.NoPieceKind, shogi.Black, false
	}
	return kind, color, true
}
