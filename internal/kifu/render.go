// path: internal/kifu/render.go

// Package kifu renders single shogi moves in the official transcript
// notation published by the Japan Shogi Association.
// Ref: https://www.shogi.or.jp/faq/kihuhyouki.html
package kifu

import (
	"strings"

	"shogi_kifu/internal/legality"
	"shogi_kifu/internal/shogi"
)

// Render produces the printed form of mv as played from pos by the
// side to move: side marker, destination (or 同 when it repeats the
// previous destination), piece name, then whatever disambiguation and
// promotion or drop markers the position calls for.
//
// Errors are ErrIllegalMove when mv cannot be played from pos and
// ErrAmbiguityUnresolved when no glyph combination separates the
// origin from its rivals. pos is not modified.
func Render(pos *shogi.Position, mv shogi.Move, style Style) (string, error) {
	var b strings.Builder
	side := pos.SideToMove()
	if side == shogi.Black {
		b.WriteString(markerBlack)
	} else {
		b.WriteString(markerWhite)
	}
	to := mv.Destination()
	if last, ok := pos.LastMoveDestination(); ok && last == to {
		b.WriteString(markerSame)
	} else {
		fileGlyph, rankGlyph := FormatSquare(to, style)
		b.WriteString(fileGlyph)
		b.WriteString(rankGlyph)
	}
	switch m := mv.(type) {
	case shogi.BoardMove:
		pc := pos.PieceAt(m.From)
		if pc == shogi.NoPiece || pc.Color() != side {
			return "", ErrIllegalMove
		}
		b.WriteString(PieceKanji(pc.Kind()))
		origins, _ := legality.Candidates(pos, side, pc.Kind(), to)
		glyph, err := disambiguate(pos, m.From, to, origins)
		if err != nil {
			return "", err
		}
		b.WriteString(glyph)
		_, promotable := pc.Kind().Promote()
		inZone := m.From.RelativeRank(side) <= 3 || to.RelativeRank(side) <= 3
		if m.Promote {
			b.WriteString(markerPromote)
		} else if promotable && inZone {
			b.WriteString(markerDecline)
		}
	case shogi.DropMove:
		b.WriteString(PieceKanji(m.Kind))
		// 打 is only needed when a board piece of the same kind could
		// reach the same square.
		origins, _ := legality.Candidates(pos, side, m.Kind, to)
		if !origins.Empty() {
			b.WriteString(markerDrop)
		}
	}
	return b.String(), nil
}
