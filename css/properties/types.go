package properties

import (
	"fmt"
	"math"
)

type Unit uint8

func (u Unit) String() string {
	switch u {
	case Scalar: // means no unit, but a valid value
		return ""
	case Perc: // percentage (%)
		return "%"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Px:
		return "px"
	case Pt:
		return "pt"
	case Pc:
		return "pc"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	case Q:
		return "q"
	default:
		return "<invalid unit>"
	}
}

// UnitFromString returns the unit for the given CSS suffix, or 0.
func UnitFromString(s string) Unit {
	for u := Scalar; u <= Q; u++ {
		if u.String() == s {
			return u
		}
	}
	return 0
}

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Float
	Unit  Unit
}

func NewDim(v Float, u Unit) Dimension { return Dimension{v, u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g %s>", d.Value, d.Unit)
}

// ToValue wraps the dimension.
func (d Dimension) ToValue() Value { return Value{Dimension: d} }

// Value is the computed value of a length like property :
// either a keyword (S is not empty) or a Dimension.
type Value struct {
	S string
	Dimension
}

// SToV returns a keyword value.
func SToV(s string) Value { return Value{S: s} }

// FToV returns a value in pixels.
func FToV(f Float) Value { return Value{Dimension: Dimension{Value: f, Unit: Px}} }

// PercToV returns a percentage value.
func PercToV(f Float) Value { return Value{Dimension: Dimension{Value: f, Unit: Perc}} }

func (v Value) String() string {
	if v.S != "" {
		return v.S
	}
	return v.Dimension.String()
}

// IsNone returns true for the 'none' keyword.
func (v Value) IsNone() bool { return v.S == "none" }

// String is a keyword value, like 'ltr'.
type String string

func (Value) isCssProperty()  {}
func (String) isCssProperty() {}

// ValueError is raised (as a panic) when a computed value is not
// acceptable at layout time.
type ValueError struct {
	Value  Value
	Reason string
}

func (err ValueError) Error() string {
	return fmt.Sprintf("invalid computed value %s: %s", err.Value, err.Reason)
}

// ResolvePercentage returns the used value of a length, with [referTo] as the
// length for 100%.
//
// Pixel lengths are returned as is, percentages are resolved, a zero
// without unit is always 0 and 'auto' gives [AutoF].
// Any other value is a bug in the computed values step, and panics with
// a [ValueError].
func ResolvePercentage(value Value, referTo Float) MaybeFloat {
	switch {
	case value.S == "auto":
		return AutoF
	case value.S != "":
		panic(ValueError{Value: value, Reason: "only auto is accepted as keyword"})
	case math.IsNaN(float64(value.Value)):
		panic(ValueError{Value: value, Reason: "non numeric magnitude"})
	case value.Unit == Px:
		return value.Value
	case value.Value == 0: // 0 may not have a unit
		return Float(0)
	case value.Unit == Perc:
		return value.Value * referTo / 100.
	default:
		panic(ValueError{Value: value, Reason: "not a pixel length nor a percentage"})
	}
}
