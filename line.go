package straddler

// Default tolerance and offset distances. The distances are fractions of the
// em; tune them per font with the fields on LineGenerator or use FaceMetrics
// for the font's own values.
const (
	DefaultTolerance             = 0.001
	DefaultUnderlineDistance     = 0.15
	DefaultStrikethroughDistance = 0.35
	DefaultOverlineDistance      = 0.65
	DefaultThickness             = 0.075
)

// LineType defines the kind of decoration line to generate. It fixes the
// vertical offset formula for the lifetime of a generator.
type LineType int

// see LineType
const (
	Underline LineType = iota
	Overline
	StrikeThrough
)

func (ty LineType) String() string {
	switch ty {
	case Underline:
		return "Underline"
	case Overline:
		return "Overline"
	case StrikeThrough:
		return "StrikeThrough"
	}
	return "Invalid"
}

// Line is a single decoration line to be stroked from (StartX,Y) to
// (EndX,Y), with StartX < EndX always. Y grows downwards. Stroke color and
// thickness derive from Style.
type Line struct {
	StartX float64
	EndX   float64
	Y      float64
	Style  Style
}
