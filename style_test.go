package straddler

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestStyleEquality(t *testing.T) {
	// independently constructed values describing the same appearance
	a := Style{Color: color.RGBA{10, 20, 30, 255}, Boldness: Regular}
	b := Style{Color: color.RGBA{10, 20, 30, 255}, Boldness: Regular}
	test.That(t, a == b)

	test.That(t, a != Style{Color: color.RGBA{10, 20, 31, 255}, Boldness: Regular})
	test.That(t, a != Style{Color: a.Color, Boldness: Medium})
}
