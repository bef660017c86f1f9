// Package render strokes decoration lines onto a canvas.
package render

import (
	"github.com/tdewolff/canvas"

	"github.com/tdewolff/straddler"
)

// StrokeWidth scales the base thickness by the boldness of the style, so
// that bold text gets a heavier decoration. A boldness of zero leaves the
// base unchanged.
func StrokeWidth(base float64, style straddler.Style) float64 {
	if style.Boldness <= 0 {
		return base
	}
	return base * float64(style.Boldness) / float64(straddler.Regular)
}

// Draw strokes each line onto ctx from (StartX,Y) to (EndX,Y) with the
// stroke color of its style and base scaled by its boldness. Lines use a
// y-down coordinate space; set the context to canvas.CartesianIV to match.
func Draw(ctx *canvas.Context, lines []straddler.Line, base float64) {
	for _, line := range lines {
		ctx.SetStrokeColor(line.Style.Color)
		ctx.SetStrokeWidth(StrokeWidth(base, line.Style))
		p := &canvas.Path{}
		p.MoveTo(0.0, 0.0)
		p.LineTo(line.EndX-line.StartX, 0.0)
		ctx.DrawPath(line.StartX, line.Y, p)
	}
}
