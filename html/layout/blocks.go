package layout

import (
	"golang.org/x/text/unicode/bidi"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/utils"
)

// Layout for block-level boxes.

// containingBlockDirection returns the direction of the containing block of [box].
//
// The containing block of a block-level box in normal flow is formed by its
// parent. This would not hold for floats and absolutely positioned
// boxes, which are not supported.
func containingBlockDirection(box *bo.BoxFields) bidi.Direction {
	if box.Parent != nil && box.Parent.Box().Style.GetDirection() == "rtl" {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

// blockLevelDimensions resolves the horizontal box model of a block-level box.
// https://www.w3.org/TR/CSS21/visudet.html#blockwidth
func blockLevelDimensions(box_ Box) {
	// "cb" stands for "containing block"
	cbWidth, cbHeight := box_.ContainingBlockSize()
	resolvePercentages(box_, cbWidth, cbHeight)

	box := box_.Box()

	// These names are waaay too long
	marginL := box.MarginLeft
	marginR := box.MarginRight
	width := box.Width
	paddingL := box.PaddingLeft.V()
	paddingR := box.PaddingRight.V()
	borderL := box.BorderLeftWidth
	borderR := box.BorderRightWidth

	// Only margin-left, margin-right and width can be "auto".
	// We want:  width of containing block ==
	//               margin-left + border-left-width + padding-left + width
	//               + padding-right + border-right-width + margin-right

	paddingsPlusBorders := paddingL + paddingR + borderL + borderR
	if width != pr.AutoF {
		total := paddingsPlusBorders + width.V()
		if marginL != pr.AutoF {
			total += marginL.V()
		}
		if marginR != pr.AutoF {
			total += marginR.V()
		}
		if total > cbWidth {
			if marginL == pr.AutoF {
				marginL = pr.Float(0)
				box.MarginLeft = pr.Float(0)
			}
			if marginR == pr.AutoF {
				marginR = pr.Float(0)
				box.MarginRight = pr.Float(0)
			}
		}
	}
	if width != pr.AutoF && marginL != pr.AutoF && marginR != pr.AutoF {
		// The equation is over-constrained.
		marginSum := cbWidth - paddingsPlusBorders - width.V()
		if containingBlockDirection(box) == bidi.LeftToRight {
			marginR = marginSum - marginL.V()
			box.MarginRight = marginR
		} else {
			marginL = marginSum - marginR.V()
			box.MarginLeft = marginL
		}
	}
	if width == pr.AutoF {
		if marginL == pr.AutoF {
			marginL = pr.Float(0)
			box.MarginLeft = pr.Float(0)
		}
		if marginR == pr.AutoF {
			marginR = pr.Float(0)
			box.MarginRight = pr.Float(0)
		}
		width = cbWidth - (paddingsPlusBorders + marginL.V() + marginR.V())
		box.Width = width
	}
	marginSum := cbWidth - paddingsPlusBorders - width.V()
	if marginL == pr.AutoF && marginR == pr.AutoF {
		box.MarginLeft = marginSum / 2.
		box.MarginRight = marginSum / 2.
	} else if marginL == pr.AutoF && marginR != pr.AutoF {
		box.MarginLeft = marginSum - marginR.V()
	} else if marginL != pr.AutoF && marginR == pr.AutoF {
		box.MarginRight = marginSum - marginL.V()
	}

	// Sanity check
	total := box.MarginLeft.V() + box.MarginRight.V() + paddingsPlusBorders + box.Width.V()
	if !utils.IsClose(utils.Fl(total), utils.Fl(cbWidth), utils.Fl(Tolerance)) {
		contractViolation(box_, "margin box width %g does not match containing block width %g", total, cbWidth)
	}
}
