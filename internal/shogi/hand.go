// path: internal/shogi/hand.go
package shogi

// Hand is one player's multiset of captured pieces, indexed by the
// seven droppable kinds. Promoted pieces revert to their base kind
// when captured, so only base kinds appear.
type Hand [NumHandKinds]uint8

// Count returns how many pieces of kind k are in hand; false for
// kinds that can never be held (king, promoted kinds).
func (h Hand) Count(k PieceKind) (int, bool) {
	if !k.Droppable() {
		return 0, false
	}
	return int(h[k-1]), true
}

func (h Hand) Added(k PieceKind) (Hand, bool) {
	if !k.Droppable() {
		return h, false
	}
	h[k-1]++
	return h, true
}

func (h Hand) Removed(k PieceKind) (Hand, bool) {
	if !k.Droppable() || h[k-1] == 0 {
		return h, false
	}
	h[k-1]--
	return h, true
}

func (h Hand) IsEmpty() bool {
	for _, n := range h {
		if n != 0 {
			return false
		}
	}
	return true
}
