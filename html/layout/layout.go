// Compute the used values of the boxes of a "before layout" tree :
// position, widths, heights, margins, paddings and borders.
//
// Boxes in the tree have `used values` in their PositionX,
// PositionY, Width and Height attributes, amongst others.
// (see http://www.w3.org/TR/CSS21/cascade.html#used-value)
//
// Line boxes are left untouched : inline layout is performed in a
// subsequent step.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/logger"
	"github.com/benoitkugler/boxgeom/utils/testutils/tracer"
)

// if true, print debug information into a temporary file
const traceMode = false

var traceLogger tracer.Tracer // used only when traceMode is true

func init() {
	if traceMode {
		traceLogger = tracer.NewTracer(filepath.Join(os.TempDir(), "trace_go.txt"))
	}
}

type Box = bo.Box

// Tolerance is the maximum difference accepted when checking
// that the margin box of a block fills its containing block.
const Tolerance pr.Float = 1e-6

// ContractError is raised (as a panic) when the input tree
// does not respect the expectations of the layout.
type ContractError struct {
	Box     Box
	Message string
}

func (err *ContractError) Error() string {
	return fmt.Sprintf("layout of %s: %s", err.Box, err.Message)
}

func contractViolation(box Box, format string, args ...interface{}) {
	panic(&ContractError{Box: box, Message: fmt.Sprintf(format, args...)})
}

// recoverContract turns a contract violation into an error,
// and propagates any other panic.
func recoverContract(r interface{}) error {
	switch r := r.(type) {
	case nil:
		return nil
	case *ContractError:
		return r
	case *bo.ContainingBlockError:
		return r
	case pr.ValueError:
		return r
	default:
		panic(r)
	}
}

// Layout computes the used values of [page] and all its descendants,
// modifying the tree in place.
//
// [width] and [height] are the outer size of the page, defaulting
// to A4 when nil.
//
// Invalid computed values in the tree are a programming error,
// which triggers a panic.
func Layout(page *bo.PageBox, width, height pr.MaybeFloat) {
	logger.ProgressLogger.Debug("Resolving used values")

	pageDimensions(page, width, height)

	if traceMode {
		traceLogger.DumpTree(page, "after layout")
	}
}

// Resolve is the same as [Layout], but returns an error
// for invalid computed values.
func Resolve(page *bo.PageBox, width, height pr.MaybeFloat) (err error) {
	defer func() {
		err = recoverContract(recover())
	}()
	Layout(page, width, height)
	return nil
}

// ComputeDimensions computes width, height and absolute position
// for [box] and its descendants.
func ComputeDimensions(box Box) {
	switch box := box.(type) {
	case *bo.PageBox:
		pageDimensions(box, nil, nil)
	case *bo.BlockBox:
		blockDimensions(box)
	case *bo.BlockContainerBox:
		blockContainerDimensions(box)
	case *bo.LineBox:
		lineDimensions(box)
	default:
		contractViolation(box, "unsupported box type %T", box)
	}
}

// The geometry of a plain container is set by its caller.
func blockContainerDimensions(box Box) {
	for _, child := range box.Box().Children {
		ComputeDimensions(child)
	}
}

// Block boxes are both block-level and block containers :
// the box itself is resolved first, then its children.
func blockDimensions(box *bo.BlockBox) {
	blockLevelDimensions(box)
	blockContainerDimensions(box)
}

// Line boxes are handled by the inline layout.
func lineDimensions(*bo.LineBox) {}
