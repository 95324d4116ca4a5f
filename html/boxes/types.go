package boxes

// BoxType identifies the concrete type of a box,
// and also the abstract capabilities shared by several types.
type BoxType uint8

const (
	_ BoxType = iota
	PageT
	BlockContainerT
	BlockLevelT
	BlockT
	LineT
)

func (t BoxType) String() string {
	switch t {
	case PageT:
		return "PageBox"
	case BlockContainerT:
		return "BlockContainerBox"
	case BlockLevelT:
		return "BlockLevelBox"
	case BlockT:
		return "BlockBox"
	case LineT:
		return "LineBox"
	default:
		return "<invalid box type>"
	}
}

// IsInstance returns true if [box] has the capabilities of [t].
//   - pages, plain block containers and blocks are block containers
//   - only blocks are block-level
func (t BoxType) IsInstance(box Box) bool {
	concrete := box.Type()
	switch t {
	case BlockContainerT:
		return concrete == PageT || concrete == BlockContainerT || concrete == BlockT
	case BlockLevelT:
		return concrete == BlockT
	default:
		return concrete == t
	}
}
