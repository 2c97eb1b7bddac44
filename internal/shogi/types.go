// path: internal/shogi/types.go
package shogi

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	Black Color = iota // moves first, plays "up" the board (toward rank 1)
	White
)

func (c Color) Flip() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	ProBishop
	ProRook
)

// NumPieceKinds counts the valid kinds, NoPieceKind excluded.
const NumPieceKinds = 14

// NumHandKinds counts the droppable kinds (pawn through rook).
const NumHandKinds = 7

func (k PieceKind) Valid() bool { return k >= Pawn && k <= ProRook }

// Promote returns the promoted form of k, or false for kinds that
// cannot promote (king, gold, already-promoted kinds).
func (k PieceKind) Promote() (PieceKind, bool) {
	switch k {
	case Pawn:
		return ProPawn, true
	case Lance:
		return ProLance, true
	case Knight:
		return ProKnight, true
	case Silver:
		return ProSilver, true
	case Bishop:
		return ProBishop, true
	case Rook:
		return ProRook, true
	default:
		return k, false
	}
}

// Unpromote returns the base form of a promoted kind, or false if k is
// not promoted.
func (k PieceKind) Unpromote() (PieceKind, bool) {
	switch k {
	case ProPawn:
		return Pawn, true
	case ProLance:
		return Lance, true
	case ProKnight:
		return Knight, true
	case ProSilver:
		return Silver, true
	case ProBishop:
		return Bishop, true
	case ProRook:
		return Rook, true
	default:
		return k, false
	}
}

func (k PieceKind) IsPromoted() bool { return k >= ProPawn && k <= ProRook }

// Droppable reports whether a captured piece of this kind may be held
// in hand and dropped.
func (k PieceKind) Droppable() bool { return k >= Pawn && k <= Rook }

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "P"
	case Lance:
		return "L"
	case Knight:
		return "N"
	case Silver:
		return "S"
	case Gold:
		return "G"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case King:
		return "K"
	case ProPawn:
		return "+P"
	case ProLance:
		return "+L"
	case ProKnight:
		return "+N"
	case ProSilver:
		return "+S"
	case ProBishop:
		return "+B"
	case ProRook:
		return "+R"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func AllPieceKinds() [NumPieceKinds]PieceKind {
	return [NumPieceKinds]PieceKind{
		Pawn, Lance, Knight, Silver, Gold, Bishop, Rook, King,
		ProPawn, ProLance, ProKnight, ProSilver, ProBishop, ProRook,
	}
}

// Piece packs a kind and an owner into one byte: black pieces are
// 1..14, white pieces 17..30, zero is the empty square. The layout
// matches the fixed bridge encoding.
type Piece uint8

const NoPiece Piece = 0

func NewPiece(k PieceKind, c Color) Piece {
	return Piece(uint8(k) | uint8(c)<<4)
}

func (p Piece) Kind() PieceKind { return PieceKind(p & 0x0f) }

func (p Piece) Color() Color { return Color(p>>4) & 1 }

func (p Piece) Valid() bool {
	return p.Kind().Valid() && uint8(p)&0xe0 == 0
}

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	s := p.Kind().String()
	if p.Color() == White {
		return strings.ToLower(s)
	}
	return s
}
