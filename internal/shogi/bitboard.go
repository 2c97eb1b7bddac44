// path: internal/shogi/bitboard.go
package shogi

import "math/bits"

// Bitboard represents a set of the 81 squares.
type Bitboard [2]uint64

func BB(s Square) Bitboard {
	var b Bitboard
	return b.Add(s)
}

func (b Bitboard) Empty() bool { return b[0] == 0 && b[1] == 0 }

func (b Bitboard) Has(s Square) bool {
	i := s.Index()
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b Bitboard) Add(s Square) Bitboard {
	i := s.Index()
	b[i>>6] |= 1 << (uint(i) & 63)
	return b
}

func (b Bitboard) Remove(s Square) Bitboard {
	i := s.Index()
	b[i>>6] &^= 1 << (uint(i) & 63)
	return b
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1])
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1]}
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1]}
}

func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b[0] &^ o[0], b[1] &^ o[1]}
}

func (b Bitboard) PopLSB() (Square, Bitboard) {
	if b[0] != 0 {
		i := bits.TrailingZeros64(b[0])
		b[0] &= b[0] - 1
		return Square(i + 1), b
	}
	if b[1] != 0 {
		i := bits.TrailingZeros64(b[1])
		b[1] &= b[1] - 1
		return Square(i + 65), b
	}
	return 0, b
}

func (b Bitboard) Iter(fn func(Square)) {
	bb := b
	for !bb.Empty() {
		var sq Square
		sq, bb = bb.PopLSB()
		fn(sq)
	}
}

// Squares lists the members in ascending square order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	b.Iter(func(s Square) { out = append(out, s) })
	return out
}
