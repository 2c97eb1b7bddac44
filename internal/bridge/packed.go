// path: internal/bridge/packed.go
package bridge

import (
	"fmt"

	"shogi_kifu/internal/shogi"
)

// PackedPosition is a position snapshot with a fixed byte layout.
// Board squares hold piece bytes in file-major square order, hands are
// counted per droppable kind, and Side is 1 for black, 2 for white.
// LastMove is zero when no previous move is recorded.
type PackedPosition struct {
	Side     uint8
	Ply      uint16
	Hands    [2][shogi.NumHandKinds]uint8
	Board    [shogi.NumSquares]uint8
	LastMove CompactMove
}

// EncodePosition flattens pos into the fixed layout.
func EncodePosition(pos *shogi.Position) PackedPosition {
	var pp PackedPosition
	pp.Side = uint8(pos.SideToMove()) + 1
	pp.Ply = pos.Ply()
	for c := shogi.Black; c <= shogi.White; c++ {
		for k := shogi.Pawn; k <= shogi.Rook; k++ {
			pp.Hands[c.Index()][k-1] = uint8(pos.HandCount(c, k))
		}
	}
	for sq := shogi.Square(1); sq <= shogi.NumSquares; sq++ {
		pp.Board[sq.Index()] = uint8(pos.PieceAt(sq))
	}
	if last, ok := pos.LastMoveDestination(); ok {
		// Only the destination survives the snapshot; a degenerate
		// board move to that square carries it.
		pp.LastMove = CompactMove(last)<<8 | CompactMove(last)
	}
	return pp
}

// DecodePosition rebuilds a Position, validating every byte.
func (pp *PackedPosition) DecodePosition() (*shogi.Position, error) {
	pos := shogi.NewPosition()
	switch pp.Side {
	case 1:
		pos.SetSideToMove(shogi.Black)
	case 2:
		pos.SetSideToMove(shogi.White)
	default:
		return nil, fmt.Errorf("%w: side byte %d", shogi.ErrInvalidMove, pp.Side)
	}
	pos.SetPly(pp.Ply)
	for c := shogi.Black; c <= shogi.White; c++ {
		var h shogi.Hand
		for k := shogi.Pawn; k <= shogi.Rook; k++ {
			h[k-1] = pp.Hands[c.Index()][k-1]
		}
		pos.SetHand(c, h)
	}
	for sq := shogi.Square(1); sq <= shogi.NumSquares; sq++ {
		b := shogi.Piece(pp.Board[sq.Index()])
		if b == shogi.NoPiece {
			continue
		}
		if !b.Valid() {
			return nil, fmt.Errorf("%w: board byte 0x%02x at %s", shogi.ErrInvalidPiece, uint8(b), sq)
		}
		pos.SetPieceAt(sq, b)
	}
	if pp.LastMove != 0 {
		mv, err := pp.LastMove.Unpack()
		if err != nil {
			return nil, err
		}
		pos.SetLastMoveDestination(mv.Destination())
	}
	return pos, nil
}
