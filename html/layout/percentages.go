package layout

import (
	"fmt"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/utils/testutils/tracer"
)

// Resolve percentages into fixed values.

// Compute a used length value from a computed length value.
//
// the return value should be set on the box
func resolveOnePercentage(value pr.Value, propertyName pr.KnownProp, referTo pr.Float) pr.MaybeFloat {
	// box attributes are used values
	percent := pr.ResolvePercentage(value, referTo)

	if traceMode {
		traceLogger.Dump(fmt.Sprintf("resolveOnePercentage %s: %v %s -> %s", propertyName,
			value, tracer.FormatMaybeFloat(referTo), tracer.FormatMaybeFloat(percent)))
	}

	return percent
}

// 'none' is resolved to nil
func resolveMaxPercentage(value pr.Value, propertyName pr.KnownProp, referTo pr.Float) pr.MaybeFloat {
	if value.IsNone() {
		return nil
	}
	return resolveOnePercentage(value, propertyName, referTo)
}

// Set used values as attributes of the box object.
// [cbHeight] is nil when the height of the containing block is not known yet.
func resolvePercentages(box_ Box, cbWidth pr.Float, cbHeight pr.MaybeFloat) {
	if traceMode {
		traceLogger.Dump(fmt.Sprintf("resolvePercentages: %s %s",
			tracer.FormatMaybeFloat(cbWidth), tracer.FormatMaybeFloat(cbHeight)))
	}

	// vertical margins and paddings refer to the width of the containing block,
	// except for page boxes
	// https://www.w3.org/TR/css-page-3/#page-model
	maybeHeight := cbWidth
	if bo.PageT.IsInstance(box_) {
		maybeHeight = cbHeight.V()
	}
	box := box_.Box()
	style := box.Style
	box.MarginLeft = resolveOnePercentage(style.GetMarginLeft(), pr.PMarginLeft, cbWidth)
	box.MarginRight = resolveOnePercentage(style.GetMarginRight(), pr.PMarginRight, cbWidth)
	box.MarginTop = resolveOnePercentage(style.GetMarginTop(), pr.PMarginTop, maybeHeight)
	box.MarginBottom = resolveOnePercentage(style.GetMarginBottom(), pr.PMarginBottom, maybeHeight)
	box.PaddingLeft = resolveOnePercentage(style.GetPaddingLeft(), pr.PPaddingLeft, cbWidth)
	box.PaddingRight = resolveOnePercentage(style.GetPaddingRight(), pr.PPaddingRight, cbWidth)
	box.PaddingTop = resolveOnePercentage(style.GetPaddingTop(), pr.PPaddingTop, maybeHeight)
	box.PaddingBottom = resolveOnePercentage(style.GetPaddingBottom(), pr.PPaddingBottom, maybeHeight)
	box.TextIndent = resolveOnePercentage(style.GetTextIndent(), pr.PTextIndent, cbWidth)
	box.Width = resolveOnePercentage(style.GetWidth(), pr.PWidth, cbWidth)
	box.MinWidth = resolveOnePercentage(style.GetMinWidth(), pr.PMinWidth, cbWidth)
	box.MaxWidth = resolveMaxPercentage(style.GetMaxWidth(), pr.PMaxWidth, cbWidth)

	// XXX later: top, bottom, left && right on positioned elements

	if cbHeight == nil {
		// Special handling when the height of the containing block
		// is not known yet.
		box.MinHeight = pr.Float(0)
		box.MaxHeight = nil
		box.Height = pr.AutoF
	} else {
		cbHeight := cbHeight.V()
		box.MaxHeight = resolveMaxPercentage(style.GetMaxHeight(), pr.PMaxHeight, cbHeight)
		box.MinHeight = resolveOnePercentage(style.GetMinHeight(), pr.PMinHeight, cbHeight)
		box.Height = resolveOnePercentage(style.GetHeight(), pr.PHeight, cbHeight)
	}

	// Used value == computed value
	box.BorderTopWidth = borderWidth(style.GetBorderTopWidth())
	box.BorderRightWidth = borderWidth(style.GetBorderRightWidth())
	box.BorderBottomWidth = borderWidth(style.GetBorderBottomWidth())
	box.BorderLeftWidth = borderWidth(style.GetBorderLeftWidth())
}

// percentages are not allowed on borders
func borderWidth(value pr.Value) pr.Float {
	if value.S != "" || (value.Unit != pr.Px && value.Value != 0) {
		panic(pr.ValueError{Value: value, Reason: "border widths must be computed to pixels"})
	}
	return value.Value
}
