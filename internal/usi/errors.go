// path: internal/usi/errors.go
package usi

import "errors"

var ErrSyntax = errors.New("malformed usi input")
