package properties

import "fmt"

// Get returns the value for [key], defaulting to the initial value.
func (p Properties) Get(key KnownProp) CssProperty {
	if v, ok := p[key]; ok {
		return v
	}
	return InitialValues[key]
}

func (p Properties) value(key KnownProp) Value {
	v, ok := p.Get(key).(Value)
	if !ok {
		panic(fmt.Sprintf("invalid type %T for property %s", p.Get(key), key))
	}
	return v
}

func (p Properties) keyword(key KnownProp) String {
	v, ok := p.Get(key).(String)
	if !ok {
		panic(fmt.Sprintf("invalid type %T for property %s", p.Get(key), key))
	}
	return v
}

func (p Properties) GetDirection() String { return p.keyword(PDirection) }
func (p Properties) GetDisplay() String   { return p.keyword(PDisplay) }

func (p Properties) GetMarginTop() Value    { return p.value(PMarginTop) }
func (p Properties) GetMarginRight() Value  { return p.value(PMarginRight) }
func (p Properties) GetMarginBottom() Value { return p.value(PMarginBottom) }
func (p Properties) GetMarginLeft() Value   { return p.value(PMarginLeft) }

func (p Properties) GetPaddingTop() Value    { return p.value(PPaddingTop) }
func (p Properties) GetPaddingRight() Value  { return p.value(PPaddingRight) }
func (p Properties) GetPaddingBottom() Value { return p.value(PPaddingBottom) }
func (p Properties) GetPaddingLeft() Value   { return p.value(PPaddingLeft) }

func (p Properties) GetBorderTopWidth() Value    { return p.value(PBorderTopWidth) }
func (p Properties) GetBorderRightWidth() Value  { return p.value(PBorderRightWidth) }
func (p Properties) GetBorderBottomWidth() Value { return p.value(PBorderBottomWidth) }
func (p Properties) GetBorderLeftWidth() Value   { return p.value(PBorderLeftWidth) }

func (p Properties) GetBorderTopStyle() String    { return p.keyword(PBorderTopStyle) }
func (p Properties) GetBorderRightStyle() String  { return p.keyword(PBorderRightStyle) }
func (p Properties) GetBorderBottomStyle() String { return p.keyword(PBorderBottomStyle) }
func (p Properties) GetBorderLeftStyle() String   { return p.keyword(PBorderLeftStyle) }

func (p Properties) GetTextIndent() Value { return p.value(PTextIndent) }

func (p Properties) GetWidth() Value     { return p.value(PWidth) }
func (p Properties) GetMinWidth() Value  { return p.value(PMinWidth) }
func (p Properties) GetMaxWidth() Value  { return p.value(PMaxWidth) }
func (p Properties) GetHeight() Value    { return p.value(PHeight) }
func (p Properties) GetMinHeight() Value { return p.value(PMinHeight) }
func (p Properties) GetMaxHeight() Value { return p.value(PMaxHeight) }
