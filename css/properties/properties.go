package properties

const (
	_ KnownProp = iota

	// the following properties are grouped by side,
	// in the [bottom, left, right, top] order,
	// so that, if side in an index (0, 1, 2 or 3),
	// the property is a PBorderBottomStyle + side * 4
	PBorderBottomStyle
	PBorderBottomWidth
	PMarginBottom
	PPaddingBottom

	PBorderLeftStyle
	PBorderLeftWidth
	PMarginLeft
	PPaddingLeft

	PBorderRightStyle
	PBorderRightWidth
	PMarginRight
	PPaddingRight

	PBorderTopStyle
	PBorderTopWidth
	PMarginTop
	PPaddingTop

	PDirection
	PDisplay
	PTextIndent

	PHeight
	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	PWidth
)

// Side is an index in the [bottom, left, right, top] order.
type Side uint8

const (
	SBottom Side = iota
	SLeft
	SRight
	STop
)

// Sides lists the sides in CSS shorthand order (top, right, bottom, left).
var Sides = [4]Side{STop, SRight, SBottom, SLeft}

func (s Side) String() string {
	return [...]string{"bottom", "left", "right", "top"}[s]
}

// BorderStyle returns the border-<side>-style property.
func (s Side) BorderStyle() KnownProp { return PBorderBottomStyle + KnownProp(s)*4 }

// BorderWidth returns the border-<side>-width property.
func (s Side) BorderWidth() KnownProp { return PBorderBottomWidth + KnownProp(s)*4 }

// Margin returns the margin-<side> property.
func (s Side) Margin() KnownProp { return PMarginBottom + KnownProp(s)*4 }

// Padding returns the padding-<side> property.
func (s Side) Padding() KnownProp { return PPaddingBottom + KnownProp(s)*4 }

var propsNames = [...]string{
	PBorderBottomStyle: "border-bottom-style",
	PBorderBottomWidth: "border-bottom-width",
	PMarginBottom:      "margin-bottom",
	PPaddingBottom:     "padding-bottom",
	PBorderLeftStyle:   "border-left-style",
	PBorderLeftWidth:   "border-left-width",
	PMarginLeft:        "margin-left",
	PPaddingLeft:       "padding-left",
	PBorderRightStyle:  "border-right-style",
	PBorderRightWidth:  "border-right-width",
	PMarginRight:       "margin-right",
	PPaddingRight:      "padding-right",
	PBorderTopStyle:    "border-top-style",
	PBorderTopWidth:    "border-top-width",
	PMarginTop:         "margin-top",
	PPaddingTop:        "padding-top",
	PDirection:         "direction",
	PDisplay:           "display",
	PTextIndent:        "text-indent",
	PHeight:            "height",
	PMaxHeight:         "max-height",
	PMaxWidth:          "max-width",
	PMinHeight:         "min-height",
	PMinWidth:          "min-width",
	PWidth:             "width",
}

var propsFromNames = map[string]KnownProp{}

func init() {
	for p, name := range propsNames {
		if name != "" {
			propsFromNames[name] = KnownProp(p)
		}
	}
}

// InitialValues stores the default values for the CSS properties.
var InitialValues = Properties{
	// CSS 2.1: https://www.w3.org/TR/CSS21/propidx.html
	PDirection: String("ltr"),
	PDisplay:   String("inline"),

	PMarginTop:    zeroPixelsValue,
	PMarginRight:  zeroPixelsValue,
	PMarginBottom: zeroPixelsValue,
	PMarginLeft:   zeroPixelsValue,

	PPaddingTop:    zeroPixelsValue,
	PPaddingRight:  zeroPixelsValue,
	PPaddingBottom: zeroPixelsValue,
	PPaddingLeft:   zeroPixelsValue,

	PBorderBottomStyle: String("none"),
	PBorderLeftStyle:   String("none"),
	PBorderRightStyle:  String("none"),
	PBorderTopStyle:    String("none"),
	PBorderBottomWidth: FToV(3), // computed value for "medium"
	PBorderLeftWidth:   FToV(3),
	PBorderTopWidth:    FToV(3),
	PBorderRightWidth:  FToV(3),

	PTextIndent: zeroPixelsValue,

	PHeight:    SToV("auto"),
	PMaxHeight: SToV("none"),
	PMaxWidth:  SToV("none"),
	PMinHeight: zeroPixelsValue,
	PMinWidth:  zeroPixelsValue,
	PWidth:     SToV("auto"),
}

// Inherited lists the inherited properties.
var Inherited = map[KnownProp]bool{
	PDirection: true,
}
