// path: internal/kifu/style.go
package kifu

// Style selects the rank numeral system. Files, piece names and all
// other glyphs are identical across styles.
type Style uint8

const (
	Arabic Style = iota // full-width Arabic digits for both coordinates
	TraditionalKanji    // kansuji rank, as printed in books and magazines
)

func (s Style) String() string {
	if s == TraditionalKanji {
		return "traditional"
	}
	return "arabic"
}

func ParseStyle(s string) (Style, bool) {
	switch s {
	case "", "arabic":
		return Arabic, true
	case "traditional", "kansuji":
		return TraditionalKanji, true
	default:
		return Arabic, false
	}
}
