package straddler

import (
	"testing"

	"github.com/tdewolff/test"
)

var dejavu = FaceMetrics{
	UnitsPerEm:         2048,
	UnderlinePosition:  -130,
	UnderlineThickness: 90,
	StrikeoutPosition:  612,
	StrikeoutSize:      102,
	Ascender:           1901,
}

func TestMetricsOffset(t *testing.T) {
	m := FaceMetrics{
		UnitsPerEm:         1000,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		StrikeoutPosition:  300,
		StrikeoutSize:      50,
		Ascender:           750,
	}
	test.Float(t, m.Offset(Underline, 10.0), 1.0)
	test.Float(t, m.Offset(StrikeThrough, 10.0), -3.0)
	test.Float(t, m.Offset(Overline, 10.0), -7.5)
}

func TestMetricsThickness(t *testing.T) {
	m := FaceMetrics{UnitsPerEm: 1000, UnderlineThickness: 50, StrikeoutSize: 80}
	test.Float(t, m.Thickness(Underline, 10.0), 0.5)
	test.Float(t, m.Thickness(StrikeThrough, 10.0), 0.8)

	// strikeout size falls back to the underline thickness
	m.StrikeoutSize = 0
	test.Float(t, m.Thickness(StrikeThrough, 10.0), 0.5)
}

func TestMetricsZeroValue(t *testing.T) {
	// missing tables use the default distance fractions
	m := FaceMetrics{}
	test.Float(t, m.Offset(Underline, 10.0), 10.0*DefaultUnderlineDistance)
	test.Float(t, m.Offset(StrikeThrough, 10.0), -10.0*DefaultStrikethroughDistance)
	test.Float(t, m.Offset(Overline, 10.0), -10.0*DefaultOverlineDistance)
	test.Float(t, m.Thickness(Underline, 10.0), 10.0*DefaultThickness)
}

func TestMetricsGenerator(t *testing.T) {
	lg := NewLineGenerator(Underline)
	lg.Face = &dejavu
	lines := collect(lg, glyph(100.0, 0.0, 2.0, black), glyph(100.0, 2.0, 2.0, black))
	test.T(t, len(lines), 1)
	test.Float(t, lines[0].Y, 100.0+130.0*4.0/2048.0)

	lg = NewLineGenerator(StrikeThrough)
	lg.Face = &dejavu
	lines = collect(lg, glyph(100.0, 0.0, 2.0, black))
	test.T(t, len(lines), 1)
	test.Float(t, lines[0].Y, 100.0-612.0*4.0/2048.0)
}
