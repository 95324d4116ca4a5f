// Package boxes defines the box tree consumed by the layout.
//
// The tree is made of four kinds of boxes :
//   - [PageBox] : the root, with a fixed outer size
//   - [BlockContainerBox] : a plain container, which is not block-level
//   - [BlockBox] : a block-level box, which is also a block container
//   - [LineBox] : a placeholder for inline content, ignored by this package
//
// Boxes store the computed style (shared, read-only) and the
// used values (see http://www.w3.org/TR/CSS21/cascade.html#used-value)
// set by the layout.
package boxes

import (
	"fmt"

	pr "github.com/benoitkugler/boxgeom/css/properties"
)

// Box is one of [*PageBox], [*BlockContainerBox], [*BlockBox], [*LineBox].
type Box interface {
	// Box gives access to the common fields.
	Box() *BoxFields
	Type() BoxType
	// ContainingBlockSize returns the size of the reference frame
	// used to resolve percentages. The height is nil when it is not known yet.
	ContainingBlockSize() (pr.Float, pr.MaybeFloat)
	String() string
}

// BoxFields stores the fields common to all the boxes.
type BoxFields struct {
	// Style is the computed style, never modified by the layout.
	Style pr.Properties
	// ElementTag is the tag of the element which generated the box, if any.
	ElementTag string

	Children []Box
	// Parent is nil for the root. It is only used to
	// read the style of the parent.
	Parent Box

	// Used values

	PositionX, PositionY pr.Float

	Width, Height       pr.MaybeFloat
	MinWidth, MinHeight pr.MaybeFloat
	// MaxWidth and MaxHeight are nil when unconstrained
	MaxWidth, MaxHeight pr.MaybeFloat

	MarginTop, MarginRight, MarginBottom, MarginLeft     pr.MaybeFloat
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft pr.MaybeFloat

	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth pr.Float

	TextIndent pr.MaybeFloat
}

func (b *BoxFields) Box() *BoxFields { return b }

// setChildren attaches [children] to [parent].
func setChildren(parent Box, children []Box) {
	parent.Box().Children = children
	for _, child := range children {
		child.Box().Parent = parent
	}
}

// ContainingBlockError is raised (as a panic) when the containing
// block of a box is missing or not resolved.
type ContainingBlockError struct {
	ElementTag string
	Reason     string
}

func (err *ContainingBlockError) Error() string {
	return fmt.Sprintf("containing block of <%s>: %s", err.ElementTag, err.Reason)
}

// ContainingBlockSize returns the used width and height of the parent,
// since the containing block of a box in normal flow is formed by its parent.
// It panics with a [*ContainingBlockError] if the parent width is not resolved.
func (b *BoxFields) ContainingBlockSize() (pr.Float, pr.MaybeFloat) {
	if b.Parent == nil {
		panic(&ContainingBlockError{ElementTag: b.ElementTag, Reason: "no parent box"})
	}
	parent := b.Parent.Box()
	width, ok := parent.Width.(pr.Float)
	if !ok {
		panic(&ContainingBlockError{ElementTag: b.ElementTag, Reason: fmt.Sprintf("width is not resolved (%v)", parent.Width)})
	}
	height, ok := parent.Height.(pr.Float)
	if !ok {
		return width, nil
	}
	return width, height
}

// PaddingWidth returns the width of the padding box.
func (b *BoxFields) PaddingWidth() pr.Float {
	return b.Width.V() + b.PaddingLeft.V() + b.PaddingRight.V()
}

// BorderWidth returns the width of the border box.
func (b *BoxFields) BorderWidth() pr.Float {
	return b.PaddingWidth() + b.BorderLeftWidth + b.BorderRightWidth
}

// MarginWidth returns the width of the margin box.
func (b *BoxFields) MarginWidth() pr.Float {
	return b.BorderWidth() + b.MarginLeft.V() + b.MarginRight.V()
}

// ContentBoxX returns the absolute horizontal position of the content box.
func (b *BoxFields) ContentBoxX() pr.Float {
	return b.PositionX + b.MarginLeft.V() + b.PaddingLeft.V() + b.BorderLeftWidth
}

// PageBox is the root of the tree.
type PageBox struct {
	BoxFields

	OuterWidth, OuterHeight pr.Float
}

// BlockContainerBox is a box containing block-level boxes,
// which is not itself block-level.
type BlockContainerBox struct {
	BoxFields
}

// BlockBox is a block-level box, which is also a block container.
type BlockBox struct {
	BoxFields
}

// LineBox holds inline content.
type LineBox struct {
	BoxFields

	Text string
}

func NewPageBox(style pr.Properties, children []Box) *PageBox {
	out := &PageBox{BoxFields: BoxFields{Style: style}}
	setChildren(out, children)
	return out
}

func NewBlockContainerBox(style pr.Properties, elementTag string, children []Box) *BlockContainerBox {
	out := &BlockContainerBox{BoxFields: BoxFields{Style: style, ElementTag: elementTag}}
	setChildren(out, children)
	return out
}

func NewBlockBox(style pr.Properties, elementTag string, children []Box) *BlockBox {
	out := &BlockBox{BoxFields: BoxFields{Style: style, ElementTag: elementTag}}
	setChildren(out, children)
	return out
}

func NewLineBox(style pr.Properties, text string) *LineBox {
	return &LineBox{BoxFields: BoxFields{Style: style}, Text: text}
}

// ContainingBlockSize returns the outer size of the page: a page box
// is its own frame of reference.
func (b *PageBox) ContainingBlockSize() (pr.Float, pr.MaybeFloat) {
	return b.OuterWidth, b.OuterHeight
}

func (*PageBox) Type() BoxType           { return PageT }
func (*BlockContainerBox) Type() BoxType { return BlockContainerT }
func (*BlockBox) Type() BoxType          { return BlockT }
func (*LineBox) Type() BoxType           { return LineT }

func (b *PageBox) String() string {
	return fmt.Sprintf("<PageBox %gx%g>", b.OuterWidth, b.OuterHeight)
}

func (b *BlockContainerBox) String() string {
	return fmt.Sprintf("<BlockContainerBox %s>", b.ElementTag)
}

func (b *BlockBox) String() string {
	return fmt.Sprintf("<BlockBox %s>", b.ElementTag)
}

func (b *LineBox) String() string {
	return fmt.Sprintf("<LineBox %q>", b.Text)
}

// Descendants returns [box] and all its descendants, parents first.
func Descendants(box Box) []Box {
	out := []Box{box}
	for _, child := range box.Box().Children {
		out = append(out, Descendants(child)...)
	}
	return out
}
