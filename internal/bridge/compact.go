// path: internal/bridge/compact.go

// Package bridge defines fixed-layout encodings of positions and moves
// for storage and foreign callers, plus rendering straight from them.
package bridge

import (
	"fmt"

	"shogi_kifu/internal/shogi"
)

// CompactMove packs one move into sixteen bits.
//
// Board move: bit 15 is the promotion flag, bits 8..14 the origin
// square and bits 0..7 the destination. Drop: bits 8..15 carry the
// dropped piece byte and bit 7 is set, which no board move can have
// since square values stop at 81.
type CompactMove uint16

const dropFlag = 0x80

// PackMove encodes mv as played by side. The side only matters for
// drops, whose piece byte records the owner.
func PackMove(mv shogi.Move, side shogi.Color) CompactMove {
	switch m := mv.(type) {
	case shogi.BoardMove:
		cm := CompactMove(m.From)<<8 | CompactMove(m.To)
		if m.Promote {
			cm |= 1 << 15
		}
		return cm
	case shogi.DropMove:
		pc := shogi.NewPiece(m.Kind, side)
		return CompactMove(pc)<<8 | dropFlag | CompactMove(m.To)
	}
	return 0
}

// IsDrop reports whether cm encodes a drop.
func (cm CompactMove) IsDrop() bool { return cm&dropFlag != 0 }

// DropPiece returns the colored piece byte of a drop encoding.
func (cm CompactMove) DropPiece() shogi.Piece { return shogi.Piece(cm >> 8) }

// Unpack decodes cm. The drop owner recorded in the piece byte is not
// returned; callers who care read it via DropPiece.
func (cm CompactMove) Unpack() (shogi.Move, error) {
	if cm.IsDrop() {
		pc := cm.DropPiece()
		to := shogi.Square(cm & 0x7f)
		if !pc.Valid() || !pc.Kind().Droppable() {
			return nil, fmt.Errorf("%w: drop byte 0x%02x", shogi.ErrInvalidPiece, uint8(pc))
		}
		if !to.Valid() {
			return nil, fmt.Errorf("%w: drop destination %d", shogi.ErrInvalidSquare, to)
		}
		return shogi.DropMove{Kind: pc.Kind(), To: to}, nil
	}
	from := shogi.Square(cm >> 8 & 0x7f)
	to := shogi.Square(cm & 0xff)
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: move 0x%04x", shogi.ErrInvalidSquare, uint16(cm))
	}
	return shogi.BoardMove{From: from, To: to, Promote: cm>>15 != 0}, nil
}
