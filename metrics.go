package straddler

import (
	"fmt"

	"github.com/tdewolff/font"
)

// FaceMetrics holds the font table values that position decoration lines, in
// font units scaled by UnitsPerEm. The zero value has no tables and falls
// back to the default distance fractions for every line type.
type FaceMetrics struct {
	UnitsPerEm         uint16
	UnderlinePosition  int16 // post table, positive above the baseline
	UnderlineThickness int16 // post table
	StrikeoutPosition  int16 // OS/2 table, positive above the baseline
	StrikeoutSize      int16 // OS/2 table
	Ascender           int16 // hhea table
}

// ParseFaceMetrics parses an SFNT font (TTF, OTF, WOFF) and extracts its
// decoration metrics.
func ParseFaceMetrics(b []byte) (FaceMetrics, error) {
	sfnt, err := font.ParseSFNT(b, 0)
	if err != nil {
		return FaceMetrics{}, fmt.Errorf("parse font: %w", err)
	}
	return SFNTMetrics(sfnt), nil
}

// SFNTMetrics extracts the decoration metrics from a parsed font.
func SFNTMetrics(sfnt *font.SFNT) FaceMetrics {
	m := FaceMetrics{}
	if sfnt.Head != nil {
		m.UnitsPerEm = sfnt.Head.UnitsPerEm
	}
	if sfnt.Post != nil {
		m.UnderlinePosition = sfnt.Post.UnderlinePosition
		m.UnderlineThickness = sfnt.Post.UnderlineThickness
	}
	if sfnt.OS2 != nil {
		m.StrikeoutPosition = sfnt.OS2.YStrikeoutPosition
		m.StrikeoutSize = sfnt.OS2.YStrikeoutSize
	}
	if sfnt.Hhea != nil {
		m.Ascender = sfnt.Hhea.Ascender
	}
	return m
}

// Offset returns the vertical offset from the baseline for a line of the
// given type at the given em size, positive downwards. Table values of zero
// fall back to the default distance fractions.
func (m FaceMetrics) Offset(ty LineType, size float64) float64 {
	scale := 0.0
	if m.UnitsPerEm != 0 {
		scale = size / float64(m.UnitsPerEm)
	}
	switch ty {
	case StrikeThrough:
		if m.StrikeoutPosition != 0 {
			return -float64(m.StrikeoutPosition) * scale
		}
		return -size * DefaultStrikethroughDistance
	case Overline:
		if m.Ascender != 0 {
			return -float64(m.Ascender) * scale
		}
		return -size * DefaultOverlineDistance
	}
	if m.UnderlinePosition != 0 {
		return -float64(m.UnderlinePosition) * scale
	}
	return size * DefaultUnderlineDistance
}

// Thickness returns the stroke width the font recommends for decoration
// lines at the given em size.
func (m FaceMetrics) Thickness(ty LineType, size float64) float64 {
	if m.UnitsPerEm != 0 {
		if ty == StrikeThrough && m.StrikeoutSize != 0 {
			return float64(m.StrikeoutSize) * size / float64(m.UnitsPerEm)
		}
		if m.UnderlineThickness != 0 {
			return float64(m.UnderlineThickness) * size / float64(m.UnitsPerEm)
		}
	}
	return size * DefaultThickness
}
