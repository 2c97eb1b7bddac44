// path: internal/shogi/move.go
package shogi

import "fmt"

// Move is either a BoardMove or a DropMove. The union is sealed so a
// drop can never carry an origin square.
type Move interface {
	Destination() Square
	String() string
	sealed()
}

// BoardMove relocates the piece standing on From to To, optionally
// promoting it on the way.
type BoardMove struct {
	From    Square
	To      Square
	Promote bool
}

func (m BoardMove) Destination() Square { return m.To }

func (m BoardMove) String() string {
	if m.Promote {
		return fmt.Sprintf("%s%s+", m.From, m.To)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}

func (BoardMove) sealed() {}

// DropMove places a piece of Kind from the mover's hand onto To.
type DropMove struct {
	Kind PieceKind
	To   Square
}

func (m DropMove) Destination() Square { return m.To }

func (m DropMove) String() string {
	return fmt.Sprintf("%s*%s", m.Kind, m.To)
}

func (DropMove) sealed() {}
