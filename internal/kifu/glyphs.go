// path: internal/kifu/glyphs.go
package kifu

import "shogi_kifu/internal/shogi"

// Glyph tables for official transcript notation.
// Ref: https://www.shogi.or.jp/faq/kihuhyouki.html

// Full-width Arabic digits, used for files in both styles and for
// ranks in the Arabic style.
var fullWidthDigits = [9]string{"１", "２", "３", "４", "５", "６", "７", "８", "９"}

// Classical kanji numerals, used for ranks in the traditional style.
var kansujiDigits = [9]string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}

const (
	markerBlack   = "▲"
	markerWhite   = "△"
	markerSame    = "同"
	markerDrop    = "打"
	markerPromote = "成"
	markerDecline = "不成"

	glyphAdvance  = "上"
	glyphRetreat  = "引"
	glyphSideways = "寄"
	glyphLeft     = "左"
	glyphRight    = "右"
	glyphStraight = "直"
)

// PieceKanji resolves the canonical printed name of a piece kind.
// Promoted kinds have their own names; the empty string marks an
// invalid kind.
func PieceKanji(k shogi.PieceKind) string {
	switch k {
	case shogi.King:
		return "玉"
	case shogi.Rook:
		return "飛"
	case shogi.Bishop:
		return "角"
	case shogi.Gold:
		return "金"
	case shogi.Silver:
		return "銀"
	case shogi.Knight:
		return "桂"
	case shogi.Lance:
		return "香"
	case shogi.Pawn:
		return "歩"
	case shogi.ProRook:
		return "竜"
	case shogi.ProBishop:
		return "馬"
	case shogi.ProSilver:
		return "成銀"
	case shogi.ProKnight:
		return "成桂"
	case shogi.ProLance:
		return "成香"
	case shogi.ProPawn:
		return "と"
	default:
		return ""
	}
}

// FormatSquare renders a destination as its file and rank glyphs.
// The square must be valid; Style selects the rank numeral system.
func FormatSquare(sq shogi.Square, style Style) (fileGlyph, rankGlyph string) {
	fileGlyph = fullWidthDigits[sq.File()-1]
	if style == TraditionalKanji {
		rankGlyph = kansujiDigits[sq.Rank()-1]
	} else {
		rankGlyph = fullWidthDigits[sq.Rank()-1]
	}
	return fileGlyph, rankGlyph
}
