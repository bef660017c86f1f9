// Package straddler computes where the lines of text decorations (underline,
// overline, strikethrough) should be drawn for a run of positioned glyphs. It
// does not shape text or draw anything; feed it the glyphs a shaper produced
// and it returns the straight line segments a renderer should stroke,
// merging consecutive glyphs that share a baseline and a style into a single
// segment.
package straddler

import "math"

// Glyph is a single positioned glyph from a shaped line of text. LineY is
// the baseline of the glyph's visual line, X its left edge in the same
// coordinate space, Width its advance width, and FontSize the em size.
// Glyphs must be fed in left-to-right order and LineY must be stable across
// the glyphs of one visual line.
type Glyph struct {
	LineY    float64
	FontSize float64
	Width    float64
	X        float64
	Style    Style
}

// LineGenerator merges consecutive glyphs that share a baseline and a style
// and that touch horizontally into decoration lines. Feed glyphs in order
// with AddGlyph and call PopLine once after the last glyph of a run, or the
// final pending segment is lost. A generator must not be used from multiple
// goroutines concurrently; independent generators are fully independent.
type LineGenerator struct {
	// Tolerance is the maximum horizontal gap between glyphs that still
	// merges. It is also the tolerance for baseline equality.
	Tolerance float64

	// UnderlineDistance, StrikethroughDistance, and OverlineDistance are the
	// fractions of the em by which the line is offset from the baseline.
	UnderlineDistance     float64
	StrikethroughDistance float64
	OverlineDistance      float64

	// Face optionally derives the offsets from font tables instead of the
	// distance fractions above.
	Face *FaceMetrics

	ty      LineType
	pending pendingLine
	active  bool
}

// pendingLine is the open segment being extended by incoming glyphs. Its
// style and baseline are fixed by the first glyph, endX only ever grows.
type pendingLine struct {
	startX, endX float64
	lineY        float64
	maxFontSize  float64
	style        Style
}

// NewLineGenerator returns an empty line generator for the given decoration
// type with the default tolerance and offset distances.
func NewLineGenerator(ty LineType) *LineGenerator {
	return &LineGenerator{
		Tolerance:             DefaultTolerance,
		UnderlineDistance:     DefaultUnderlineDistance,
		StrikethroughDistance: DefaultStrikethroughDistance,
		OverlineDistance:      DefaultOverlineDistance,
		ty:                    ty,
	}
}

// AddGlyph adds the next glyph of the run. When the glyph extends the
// pending segment nothing is returned. When it breaks the segment, the
// closed segment is returned and the glyph starts a new one; a closed
// segment of zero width is dropped.
func (lg *LineGenerator) AddGlyph(g Glyph) (Line, bool) {
	if lg.active && lg.continues(g) {
		if lg.pending.endX < g.X+g.Width {
			lg.pending.endX = g.X + g.Width
		}
		if lg.pending.maxFontSize < g.FontSize {
			lg.pending.maxFontSize = g.FontSize
		}
		return Line{}, false
	}

	line := Line{}
	ok := false
	if lg.active {
		line, ok = lg.finalize()
	}
	lg.pending = pendingLine{
		startX:      g.X,
		endX:        g.X + g.Width,
		lineY:       g.LineY,
		maxFontSize: g.FontSize,
		style:       g.Style,
	}
	lg.active = true
	return line, ok
}

// PopLine closes and returns the pending segment. It must be called once
// after the last glyph of a run; calling it again, or on an empty generator,
// returns false.
func (lg *LineGenerator) PopLine() (Line, bool) {
	if !lg.active {
		return Line{}, false
	}
	lg.active = false
	return lg.finalize()
}

// continues is true when g extends the pending segment: same baseline, same
// style, no visible horizontal gap, and merging would not shrink the
// segment below its start.
func (lg *LineGenerator) continues(g Glyph) bool {
	return math.Abs(g.LineY-lg.pending.lineY) < lg.Tolerance &&
		g.Style == lg.pending.style &&
		g.X <= lg.pending.endX+lg.Tolerance &&
		lg.pending.startX < g.X+g.Width
}

// finalize converts the pending segment into a line. Zero and negative
// widths are dropped so that every returned line has StartX < EndX.
func (lg *LineGenerator) finalize() (Line, bool) {
	if lg.pending.endX <= lg.pending.startX {
		return Line{}, false
	}
	return Line{
		StartX: lg.pending.startX,
		EndX:   lg.pending.endX,
		Y:      lg.pending.lineY + lg.offset(lg.pending.maxFontSize),
		Style:  lg.pending.style,
	}, true
}

// offset returns the vertical offset from the baseline, positive downwards.
// The largest font size seen in the segment decides the offset, so mixed
// sizes get one straight line clear of the tallest glyph.
func (lg *LineGenerator) offset(size float64) float64 {
	if lg.Face != nil {
		return lg.Face.Offset(lg.ty, size)
	}
	switch lg.ty {
	case StrikeThrough:
		return -size * lg.StrikethroughDistance
	case Overline:
		return -size * lg.OverlineDistance
	}
	return size * lg.UnderlineDistance
}
