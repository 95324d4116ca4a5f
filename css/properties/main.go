// This package defines the types needed to handle the CSS properties
// involved in the box model.
//
// Values are stored after the computed value step: lengths have been
// converted to pixels, and only percentages and the 'auto' or 'none' keywords
// remain to be resolved against a containing block, which is done during layout.
package properties

import (
	"fmt"

	"github.com/benoitkugler/boxgeom/utils"
)

type Fl = utils.Fl

// CssProperty is a computed value, one of [Value] or [String].
type CssProperty interface {
	isCssProperty()
}

// KnownProp efficiently encode a known CSS property
type KnownProp uint8

func (p KnownProp) String() string { return propsNames[p] }

// PropFromName returns the property with the given CSS name, or 0.
func PropFromName(name string) KnownProp { return propsFromNames[name] }

// Properties is a general container for computed properties.
//
// Missing keys are resolved to their initial value by the GetXXX methods,
// so that an empty map is a valid, default style.
// A Properties is never modified once attached to a box.
type Properties map[KnownProp]CssProperty

// UpdateWith merge the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// MaybeFloat is a used value, either a [Float] or [AutoF].
//
// A nil MaybeFloat is used for values which are not known (yet), or have no
// constraint, like 'max-width: none'.
type MaybeFloat interface {
	// V returns the numeric value.
	// It panics for [AutoF].
	V() Float
}

// Float is a numeric used value.
type Float Fl

func (f Float) V() Float { return f }

func (f Float) String() string { return fmt.Sprintf("%g", Fl(f)) }

type autoFloat uint8

// AutoF is the used value of the 'auto' keyword.
const AutoF autoFloat = 1

func (autoFloat) V() Float {
	panic(ValueError{Value: SToV("auto"), Reason: "auto has no numeric value"})
}

func (autoFloat) String() string { return "auto" }
