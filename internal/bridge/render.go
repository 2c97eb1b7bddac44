// path: internal/bridge/render.go
package bridge

import (
	"fmt"

	"shogi_kifu/internal/kifu"
)

// RenderCompact renders cm as played from pp straight into buf and
// returns the number of bytes written. A drop whose recorded owner is
// not the side to move fails with kifu.ErrIllegalMove; a result longer
// than buf fails with kifu.ErrSinkCapacity, leaving buf untouched.
func RenderCompact(pp *PackedPosition, cm CompactMove, style kifu.Style, buf []byte) (int, error) {
	pos, err := pp.DecodePosition()
	if err != nil {
		return 0, err
	}
	mv, err := cm.Unpack()
	if err != nil {
		return 0, err
	}
	if cm.IsDrop() && cm.DropPiece().Color() != pos.SideToMove() {
		return 0, fmt.Errorf("%w: drop by the wrong side", kifu.ErrIllegalMove)
	}
	s, err := kifu.Render(pos, mv, style)
	if err != nil {
		return 0, err
	}
	if len(s) > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", kifu.ErrSinkCapacity, len(s), len(buf))
	}
	return copy(buf, s), nil
}
