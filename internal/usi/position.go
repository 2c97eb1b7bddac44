// path: internal/usi/position.go
package usi

import (
	"fmt"
	"strconv"
	"strings"

	"shogi_kifu/internal/shogi"
)

// ParsePosition reads a USI position record. Accepted forms:
//
//	[sfen] <board> <side> <hands> [ply] [moves <move>...]
//	startpos [moves <move>...]
//
// The "sfen" keyword is optional. Moves, when present, are applied in
// order, so the result reflects the position after the last of them.
func ParsePosition(s string) (*shogi.Position, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "sfen" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty position", ErrSyntax)
	}
	var pos *shogi.Position
	if fields[0] == "startpos" {
		pos = shogi.StartPosition()
		fields = fields[1:]
	} else {
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: want board, side and hands", ErrSyntax)
		}
		pos = shogi.NewPosition()
		if err := parseBoard(pos, fields[0]); err != nil {
			return nil, err
		}
		switch fields[1] {
		case "b":
			pos.SetSideToMove(shogi.Black)
		case "w":
			pos.SetSideToMove(shogi.White)
		default:
			return nil, fmt.Errorf("%w: side %q", ErrSyntax, fields[1])
		}
		if err := parseHands(pos, fields[2]); err != nil {
			return nil, err
		}
		fields = fields[3:]
		if len(fields) > 0 && fields[0] != "moves" {
			ply, err := strconv.ParseUint(fields[0], 10, 16)
			if err != nil || ply == 0 {
				return nil, fmt.Errorf("%w: ply %q", ErrSyntax, fields[0])
			}
			pos.SetPly(uint16(ply))
			fields = fields[1:]
		}
	}
	if len(fields) == 0 {
		return pos, nil
	}
	if fields[0] != "moves" {
		return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, fields[0])
	}
	for _, token := range fields[1:] {
		mv, err := ParseMove(token)
		if err != nil {
			return nil, err
		}
		if err := pos.MakeMove(mv); err != nil {
			return nil, fmt.Errorf("%w: move %q: %v", ErrSyntax, token, err)
		}
	}
	return pos, nil
}

// parseBoard fills the 81 squares from the first SFEN field: nine
// rank rows top to bottom, each row running from file 9 down to 1.
func parseBoard(pos *shogi.Position, board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != 9 {
		return fmt.Errorf("%w: board has %d rows", ErrSyntax, len(rows))
	}
	for r, row := range rows {
		file := 9
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '9' {
				file -= int(c - '0')
				if file < 0 {
					return fmt.Errorf("%w: rank %d overflows", ErrSyntax, r+1)
				}
				continue
			}
			promoted := false
			if c == '+' {
				promoted = true
				i++
				if i == len(row) {
					return fmt.Errorf("%w: dangling '+' in rank %d", ErrSyntax, r+1)
				}
				c = row[i]
			}
			kind, color, ok := parsePieceLetter(c)
			if !ok {
				return fmt.Errorf("%w: piece %q in rank %d", ErrSyntax, c, r+1)
			}
			if promoted {
				kind, ok = kind.Promote()
				if !ok {
					return fmt.Errorf("%w: unpromotable piece in rank %d", ErrSyntax, r+1)
				}
			}
			sq, ok := shogi.NewSquare(file, r+1)
			if !ok {
				return fmt.Errorf("%w: rank %d overflows", ErrSyntax, r+1)
			}
			pos.SetPieceAt(sq, shogi.NewPiece(kind, color))
			file--
		}
		if file != 0 {
			return fmt.Errorf("%w: rank %d has %d files", ErrSyntax, r+1, 9-file)
		}
	}
	return nil
}

// parseHands fills both hands from the third SFEN field, e.g.
// "RG4P2b2s3p" or "-". Counts default to one.
func parseHands(pos *shogi.Position, hands string) error {
	if hands == "-" {
		return nil
	}
	for i := 0; i < len(hands); i++ {
		count, digits := 0, 0
		for i < len(hands) && hands[i] >= '0' && hands[i] <= '9' {
			count = count*10 + int(hands[i]-'0')
			digits++
			if count > 18 {
				return fmt.Errorf("%w: hand count %d", ErrSyntax, count)
			}
			i++
		}
		if digits > 0 && count == 0 {
			return fmt.Errorf("%w: zero hand count", ErrSyntax)
		}
		if count == 0 {
			count = 1
		}
		if i == len(hands) {
			return fmt.Errorf("%w: dangling hand count", ErrSyntax)
		}
		kind, color, ok := parsePieceLetter(hands[i])
		if !ok || !kind.Droppable() {
			return fmt.Errorf("%w: hand piece %q", ErrSyntax, hands[i])
		}
		h := pos.Hand(color)
		for j := 0; j < count; j++ {
			if h, ok = h.Added(kind); !ok {
				return fmt.Errorf("%w: hand piece %q", ErrSyntax, hands[i])
			}
		}
		pos.SetHand(color, h)
	}
	return nil
}

// sfenHandOrder is the conventional piece order in the hands field.
var sfenHandOrder = [7]shogi.PieceKind{
	shogi.Rook, shogi.Bishop, shogi.Gold, shogi.Silver,
	shogi.Knight, shogi.Lance, shogi.Pawn,
}

// FormatPosition renders pos as the four SFEN fields, without the
// leading "sfen" keyword and without any move list.
func FormatPosition(pos *shogi.Position) string {
	var b strings.Builder
	for rank := 1; rank <= 9; rank++ {
		if rank > 1 {
			b.WriteByte('/')
		}
		empty := 0
		for file := 9; file >= 1; file-- {
			sq, _ := shogi.NewSquare(file, rank)
			pc := pos.PieceAt(sq)
			if pc == shogi.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
	}
	if pos.SideToMove() == shogi.Black {
		b.WriteString(" b ")
	} else {
		b.WriteString(" w ")
	}
	start := b.Len()
	for _, color := range [2]shogi.Color{shogi.Black, shogi.White} {
		for _, kind := range sfenHandOrder {
			n := pos.HandCount(color, kind)
			if n == 0 {
				continue
			}
			if n > 1 {
				b.WriteString(strconv.Itoa(n))
			}
			letter := shogi.NewPiece(kind, color).String()
			b.WriteString(letter)
		}
	}
	if b.Len() == start {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(pos.Ply())))
	return b.String()
}
