package straddler

import "image/color"

// Font weights for Style.Boldness, as commonly classified.
const (
	ExtraLight = 100
	Light      = 200
	Book       = 300
	Regular    = 400
	Medium     = 500
	Semibold   = 600
	Bold       = 700
	Black      = 800
	ExtraBlack = 900
)

// Style is the appearance of a glyph as far as its decoration is concerned.
// Two styles are equal exactly when color and boldness both are; glyphs keep
// merging into the same line only while their style stays equal, so every
// emitted line has one color and one weight.
type Style struct {
	Color    color.RGBA
	Boldness int
}
