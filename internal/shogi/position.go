// path: internal/shogi/position.go
package shogi

import "fmt"

// Position is a snapshot of a game: board occupancy, both hands, the
// side to move, the ply counter and the destination of the previous
// move (used by transcript rendering for the "same square" form).
// It deliberately omits the move history, so repetition cannot be
// judged from it.
type Position struct {
	board  [NumSquares]Piece
	hands  [2]Hand
	side   Color
	ply    uint16
	lastTo Square // 0 when unknown or at game start
}

// NewPosition returns an empty board with black to move at ply 1.
func NewPosition() *Position {
	return &Position{side: Black, ply: 1}
}

// StartPosition returns the standard initial setup.
func StartPosition() *Position {
	p := NewPosition()
	back := [9]PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for file := 1; file <= 9; file++ {
		sq, _ := NewSquare(file, 1)
		p.board[sq.Index()] = NewPiece(back[file-1], White)
		sq, _ = NewSquare(file, 9)
		p.board[sq.Index()] = NewPiece(back[file-1], Black)
		sq, _ = NewSquare(file, 3)
		p.board[sq.Index()] = NewPiece(Pawn, White)
		sq, _ = NewSquare(file, 7)
		p.board[sq.Index()] = NewPiece(Pawn, Black)
	}
	place := func(file, rank int, k PieceKind, c Color) {
		sq, _ := NewSquare(file, rank)
		p.board[sq.Index()] = NewPiece(k, c)
	}
	place(8, 2, Rook, White)
	place(2, 2, Bishop, White)
	place(8, 8, Bishop, Black)
	place(2, 8, Rook, Black)
	return p
}

// Clone copies the snapshot; the copy is fully independent.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.board[sq.Index()]
}

func (p *Position) SetPieceAt(sq Square, pc Piece) {
	if sq.Valid() {
		p.board[sq.Index()] = pc
	}
}

func (p *Position) SideToMove() Color { return p.side }

func (p *Position) SetSideToMove(c Color) { p.side = c }

func (p *Position) Ply() uint16 { return p.ply }

func (p *Position) SetPly(ply uint16) { p.ply = ply }

func (p *Position) Hand(c Color) Hand { return p.hands[c.Index()] }

func (p *Position) SetHand(c Color, h Hand) { p.hands[c.Index()] = h }

// HandCount returns the number of kind-k pieces c holds in hand.
func (p *Position) HandCount(c Color, k PieceKind) int {
	n, _ := p.hands[c.Index()].Count(k)
	return n
}

// LastMoveDestination reports where the previous move landed, if known.
func (p *Position) LastMoveDestination() (Square, bool) {
	if p.lastTo == 0 {
		return 0, false
	}
	return p.lastTo, true
}

func (p *Position) SetLastMoveDestination(sq Square) { p.lastTo = sq }

// PlayerBitboard is the set of squares occupied by c's pieces.
func (p *Position) PlayerBitboard(c Color) Bitboard {
	var b Bitboard
	for i, pc := range p.board {
		if pc != NoPiece && pc.Color() == c {
			b = b.Add(Square(i + 1))
		}
	}
	return b
}

// OccupiedBitboard is the set of all occupied squares.
func (p *Position) OccupiedBitboard() Bitboard {
	var b Bitboard
	for i, pc := range p.board {
		if pc != NoPiece {
			b = b.Add(Square(i + 1))
		}
	}
	return b
}

// MakeMove applies mv for the side to move, updating the board, hands,
// ply, side and last destination. It checks structural validity only;
// callers needing full legality consult the legality package first.
func (p *Position) MakeMove(mv Move) error {
	switch m := mv.(type) {
	case BoardMove:
		pc := p.PieceAt(m.From)
		if pc == NoPiece || pc.Color() != p.side {
			return fmt.Errorf("%w: no %s piece on %s", ErrInvalidMove, p.side, m.From)
		}
		target := p.PieceAt(m.To)
		if target != NoPiece {
			if target.Color() == p.side {
				return fmt.Errorf("%w: %s is occupied by own piece", ErrInvalidMove, m.To)
			}
			captured := target.Kind()
			if base, ok := captured.Unpromote(); ok {
				captured = base
			}
			h, ok := p.hands[p.side.Index()].Added(captured)
			if !ok {
				return fmt.Errorf("%w: cannot capture %s", ErrInvalidMove, target.Kind())
			}
			p.hands[p.side.Index()] = h
		}
		kind := pc.Kind()
		if m.Promote {
			promoted, ok := kind.Promote()
			if !ok {
				return fmt.Errorf("%w: %s cannot promote", ErrInvalidMove, kind)
			}
			kind = promoted
		}
		p.board[m.From.Index()] = NoPiece
		p.board[m.To.Index()] = NewPiece(kind, p.side)
	case DropMove:
		if p.PieceAt(m.To) != NoPiece {
			return fmt.Errorf("%w: %s is occupied", ErrInvalidMove, m.To)
		}
		h, ok := p.hands[p.side.Index()].Removed(m.Kind)
		if !ok {
			return fmt.Errorf("%w: no %s in hand", ErrInvalidMove, m.Kind)
		}
		p.hands[p.side.Index()] = h
		p.board[m.To.Index()] = NewPiece(m.Kind, p.side)
	default:
		return ErrInvalidMove
	}
	p.lastTo = mv.Destination()
	p.side = p.side.Flip()
	p.ply++
	return nil
}
