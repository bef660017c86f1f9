// Package shape positions plain text as a sequence of glyphs for the line
// generator. It walks advances and pair kerning only; complex text layout
// (ligatures, scripts, bidi) should be done by a full shaper upstream, with
// its output converted to straddler.Glyph directly.
package shape

import (
	"fmt"

	"github.com/tdewolff/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tdewolff/straddler"
)

// Face provides the glyph metrics needed to position a run of text, in font
// units.
type Face interface {
	GlyphIndex(r rune) uint16
	GlyphAdvance(glyphID uint16) uint16
	Kerning(left, right uint16) int16
	UnitsPerEm() uint16
}

// NewFace parses an SFNT font (TTF, OTF) at the given index in a collection.
func NewFace(b []byte, index int) (Face, error) {
	sfnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return sfntFace{sfnt}, nil
}

type sfntFace struct {
	sfnt *font.SFNT
}

func (f sfntFace) GlyphIndex(r rune) uint16 {
	return f.sfnt.GlyphIndex(r)
}

func (f sfntFace) GlyphAdvance(glyphID uint16) uint16 {
	return f.sfnt.GlyphAdvance(glyphID)
}

func (f sfntFace) Kerning(left, right uint16) int16 {
	return f.sfnt.Kerning(left, right)
}

func (f sfntFace) UnitsPerEm() uint16 {
	return f.sfnt.Head.UnitsPerEm
}

// Shaper positions text at a given em size and style.
type Shaper struct {
	Face  Face
	Size  float64 // em size in output units
	Style straddler.Style
}

// Shape positions text starting at x on the line with baseline lineY. Each
// glyph's width is its advance, so the glyphs of a word touch and merge into
// a single decoration line.
func (s Shaper) Shape(text string, x, lineY float64) []straddler.Glyph {
	rs := []rune(text)
	glyphs := make([]straddler.Glyph, 0, len(rs))
	scale := s.Size / float64(s.Face.UnitsPerEm())
	var prevIndex uint16
	for i, r := range rs {
		index := s.Face.GlyphIndex(r)
		if 0 < i {
			x += float64(s.Face.Kerning(prevIndex, index)) * scale
		}
		w := float64(s.Face.GlyphAdvance(index)) * scale
		glyphs = append(glyphs, straddler.Glyph{
			LineY:    lineY,
			FontSize: s.Size,
			Width:    w,
			X:        x,
			Style:    s.Style,
		})
		x += w
		prevIndex = index
	}
	return glyphs
}

// Width returns the advance width of text at the shaper's size.
func (s Shaper) Width(text string) float64 {
	w := 0.0
	scale := s.Size / float64(s.Face.UnitsPerEm())
	var prevIndex uint16
	for i, r := range []rune(text) {
		index := s.Face.GlyphIndex(r)
		if 0 < i {
			w += float64(s.Face.Kerning(prevIndex, index)) * scale
		}
		w += float64(s.Face.GlyphAdvance(index)) * scale
		prevIndex = index
	}
	return w
}

// ShapeFace positions text using a golang.org/x/image font.Face, for glyphs
// coming from that ecosystem. Size must be the em size the face was created
// with; runes the face cannot map are skipped.
func ShapeFace(face xfont.Face, text string, x, lineY, size float64, style straddler.Style) []straddler.Glyph {
	glyphs := []straddler.Glyph{}
	prev := rune(-1)
	for _, r := range text {
		if 0 <= prev {
			x += fromI26_6(face.Kern(prev, r))
		}
		advance, ok := face.GlyphAdvance(r)
		prev = r
		if !ok {
			continue
		}
		w := fromI26_6(advance)
		glyphs = append(glyphs, straddler.Glyph{
			LineY:    lineY,
			FontSize: size,
			Width:    w,
			X:        x,
			Style:    style,
		})
		x += w
	}
	return glyphs
}

func fromI26_6(f fixed.Int26_6) float64 {
	return float64(f) / 64.0
}
