package properties

import "math"

const ( // zero field corresponds to null content
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)
	Em
	Rem
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
)

// Inf is an infinite length.
var Inf = Float(math.Inf(+1))

// Point is a (width, height) pair.
type Point [2]Dimension

// ToPixels converts absolute lengths to pixels.
func (p Point) ToPixels() Point {
	return Point{
		{Value: p[0].Value * LengthsToPixels[p[0].Unit], Unit: Px},
		{Value: p[1].Value * LengthsToPixels[p[1].Unit], Unit: Px},
	}
}

var (
	ZeroPixels      = Dimension{Unit: Px}
	zeroPixelsValue = ZeroPixels.ToValue()

	// How many CSS pixels is one <unit>?
	// http://www.w3.org/TR/CSS21/syndata.html#length-units
	LengthsToPixels = map[Unit]Float{
		Px: 1,
		Pt: 1. / 0.75,
		Pc: 16.,             // LengthsToPixels["pt"] * 12
		In: 96.,             // LengthsToPixels["pt"] * 72
		Cm: 96. / 2.54,      // LengthsToPixels["in"] / 2.54
		Mm: 96. / 25.4,      // LengthsToPixels["in"] / 25.4
		Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
	}

	// DefaultFontSize is the computed value of 'medium', used for
	// 'em' and 'rem' units.
	DefaultFontSize Float = 16

	// http://www.w3.org/TR/css3-page/#size
	PageSizes = map[string]Point{
		"a5":     {Dimension{Value: 148, Unit: Mm}, Dimension{Value: 210, Unit: Mm}},
		"a4":     A4,
		"a3":     {Dimension{Value: 297, Unit: Mm}, Dimension{Value: 420, Unit: Mm}},
		"b5":     {Dimension{Value: 176, Unit: Mm}, Dimension{Value: 250, Unit: Mm}},
		"b4":     {Dimension{Value: 250, Unit: Mm}, Dimension{Value: 353, Unit: Mm}},
		"letter": {Dimension{Value: 8.5, Unit: In}, Dimension{Value: 11, Unit: In}},
		"legal":  {Dimension{Value: 8.5, Unit: In}, Dimension{Value: 14, Unit: In}},
		"ledger": {Dimension{Value: 11, Unit: In}, Dimension{Value: 17, Unit: In}},
	}

	A4 = Point{Dimension{Value: 210, Unit: Mm}, Dimension{Value: 297, Unit: Mm}}
)
