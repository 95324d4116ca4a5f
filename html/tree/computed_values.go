package tree

import (
	"fmt"

	pr "github.com/benoitkugler/boxgeom/css/properties"
)

// Convert *declared* property values into *computed* values.

// These are unspecified, other than 'thin' <='medium' <= 'thick'.
// Values are in pixels.
var borderWidthKeywords = map[string]pr.Float{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

type computerFunc = func(style pr.Properties, name pr.KnownProp, value pr.CssProperty) pr.CssProperty

// Maps property names to functions returning the computed values
var computerFunctions = map[pr.KnownProp]computerFunc{
	pr.PTextIndent: length,
	pr.PWidth:      length,
	pr.PHeight:     length,
	pr.PMinWidth:   length,
	pr.PMinHeight:  length,
	pr.PMaxWidth:   length,
	pr.PMaxHeight:  length,
}

func init() {
	for _, side := range pr.Sides {
		computerFunctions[side.Margin()] = length
		computerFunctions[side.Padding()] = length
		computerFunctions[side.BorderWidth()] = borderWidth
	}
}

// ComputedFromDeclarations returns the computed values of an element,
// given its declared values and the computed style of its parent,
// which is nil for the root element.
//
// The returned map has an entry for every known property.
func ComputedFromDeclarations(declared, parentStyle pr.Properties) pr.Properties {
	out := make(pr.Properties, len(pr.InitialValues))
	for name, initial := range pr.InitialValues {
		value, ok := declared[name]
		if !ok {
			if pr.Inherited[name] && parentStyle != nil {
				value = parentStyle.Get(name)
			} else {
				value = initial
			}
		}
		out[name] = value
	}
	for name, value := range out {
		if computer := computerFunctions[name]; computer != nil {
			out[name] = computer(out, name, value)
		}
	}
	return out
}

// AnonymousFrom returns the style of an anonymous box, which only
// inherits from its parent.
func AnonymousFrom(parentStyle pr.Properties) pr.Properties {
	return ComputedFromDeclarations(nil, parentStyle)
}

// Compute a length ``value``, converting it to pixels.
// Keywords and percentages are resolved at layout time.
func length(_ pr.Properties, name pr.KnownProp, _value pr.CssProperty) pr.CssProperty {
	value := _value.(pr.Value)
	if value.S != "" {
		return value
	}
	if value.Value == 0 {
		return pr.ZeroPixels.ToValue()
	}

	switch unit := value.Unit; unit {
	case pr.Px, pr.Perc:
		return value
	case pr.Pt, pr.Pc, pr.In, pr.Cm, pr.Mm, pr.Q:
		// Convert absolute lengths to pixels
		return pr.FToV(value.Value * pr.LengthsToPixels[unit])
	case pr.Em, pr.Rem:
		// no font-size support: both are relative to the initial value
		return pr.FToV(value.Value * pr.DefaultFontSize)
	default:
		panic(fmt.Sprintf("invalid unit %s for %s", unit, name))
	}
}

// Compute the “border-*-width“ properties.
func borderWidth(style pr.Properties, name pr.KnownProp, _value pr.CssProperty) pr.CssProperty {
	value := _value.(pr.Value)
	// style prop is just before width
	borderStyle := style.Get(name - 1).(pr.String)

	if borderStyle == "none" || borderStyle == "hidden" {
		return pr.FToV(0)
	}
	if bw, in := borderWidthKeywords[value.S]; in {
		return pr.FToV(bw)
	}
	return length(style, name, value)
}
