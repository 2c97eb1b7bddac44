// path: internal/shogi/square.go
package shogi

import "fmt"

// Square identifies one of the 81 board squares. Valid values are
// 1..81 in file-major order (file*9 + rank - 9); zero is "no square".
// Files and ranks both run 1..9, file 1 being the rightmost column
// from black's point of view and rank 1 the row farthest from black.
type Square uint8

const NumSquares = 81

// NewSquare builds a square from 1-based file and rank coordinates.
func NewSquare(file, rank int) (Square, bool) {
	if file < 1 || file > 9 || rank < 1 || rank > 9 {
		return 0, false
	}
	return Square(file*9 + rank - 9), true
}

// NewRelativeSquare interprets file and rank from c's point of view:
// for white the board is rotated 180 degrees.
func NewRelativeSquare(file, rank int, c Color) (Square, bool) {
	if c == White {
		file, rank = 10-file, 10-rank
	}
	return NewSquare(file, rank)
}

func (s Square) Valid() bool { return s >= 1 && s <= NumSquares }

func (s Square) File() int { return (int(s) + 8) / 9 }

func (s Square) Rank() int { return (int(s)-1)%9 + 1 }

// RelativeFile is the file as seen by c.
func (s Square) RelativeFile(c Color) int {
	if c == White {
		return 10 - s.File()
	}
	return s.File()
}

// RelativeRank is the rank as seen by c: rank 1 is always the row the
// player is advancing toward.
func (s Square) RelativeRank(c Color) int {
	if c == White {
		return 10 - s.Rank()
	}
	return s.Rank()
}

// Shift offsets the square by absolute file/rank deltas.
func (s Square) Shift(fileDelta, rankDelta int) (Square, bool) {
	return NewSquare(s.File()+fileDelta, s.Rank()+rankDelta)
}

// Flip rotates the square 180 degrees.
func (s Square) Flip() Square { return 82 - s }

// Index is the 0-based array offset of the square.
func (s Square) Index() int { return int(s) - 1 }

// String renders the USI coordinate form, e.g. "7g" for file 7 rank 7.
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return fmt.Sprintf("%d%c", s.File(), 'a'+s.Rank()-1)
}
