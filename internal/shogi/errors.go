// path: internal/shogi/errors.go
package shogi

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidPiece  = errors.New("invalid piece")
)
