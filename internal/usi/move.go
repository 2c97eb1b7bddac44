// path: internal/usi/move.go
package usi

import (
	"fmt"

	"shogi_kifu/internal/shogi"
)

// ParseSquare reads a two-character USI coordinate such as "7g".
func ParseSquare(s string) (shogi.Square, error) {
	if len(s) != 2 || s[0] < '1' || s[0] > '9' || s[1] < 'a' || s[1] > 'i' {
		return 0, fmt.Errorf("%w: square %q", ErrSyntax, s)
	}
	sq, _ := shogi.NewSquare(int(s[0]-'0'), int(s[1]-'a')+1)
	return sq, nil
}

// ParseMove reads a USI move: "7g7f", "8h2b+" or the drop form "P*3d".
// Drop letters must be uppercase; the mover is implied by the position
// the move is played from.
func ParseMove(s string) (shogi.Move, error) {
	if len(s) == 4 && s[1] == '*' {
		kind, color, ok := parsePieceLetter(s[0])
		if !ok || color != shogi.Black || !kind.Droppable() {
			return nil, fmt.Errorf("%w: drop piece %q", ErrSyntax, s)
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return nil, err
		}
		return shogi.DropMove{Kind: kind, To: to}, nil
	}
	if len(s) != 4 && !(len(s) == 5 && s[4] == '+') {
		return nil, fmt.Errorf("%w: move %q", ErrSyntax, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return nil, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return nil, err
	}
	return shogi.BoardMove{From: from, To: to, Promote: len(s) == 5}, nil
}
