// path: internal/kifu/narrow.go
package kifu

import "golang.org/x/text/width"

// Narrow folds the full-width digits of a rendered move to their ASCII
// forms, for logs and terminals without East Asian wide glyphs. The
// markers and piece names pass through unchanged.
func Narrow(s string) string {
	return width.Narrow.String(s)
}
