// path: internal/kifu/errors.go
package kifu

import "errors"

var (
	ErrIllegalMove         = errors.New("move inconsistent with position")
	ErrAmbiguityUnresolved = errors.New("ambiguity unresolved")
	ErrSinkCapacity        = errors.New("sink capacity exceeded")
)
