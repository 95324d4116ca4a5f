package layout

import (
	"fmt"

	"go.uber.org/multierr"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/utils"
)

// Check verifies that every block-level box of a resolved tree
// fills its containing block horizontally, and that the page content
// box fills the page inside its margins.
// All the violations are reported.
func Check(page *bo.PageBox) error {
	var errs error
	for _, box := range bo.Descendants(page) {
		errs = multierr.Append(errs, checkBox(box))
	}
	return errs
}

func resolved(box Box, name string, value pr.MaybeFloat) (pr.Float, error) {
	if v, ok := value.(pr.Float); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%s: %s is not resolved (%v)", box, name, value)
}

func checkBox(box Box) error {
	fields := box.Box()
	var (
		outer   pr.Float
		content pr.Float
	)
	switch box := box.(type) {
	case *bo.PageBox:
		// paddings and borders of the page are inside its width
		outer = box.OuterWidth
	case *bo.BlockBox:
		if fields.Parent == nil {
			return fmt.Errorf("%s: no containing block", box)
		}
		cbWidth, errCb := resolved(fields.Parent, "width", fields.Parent.Box().Width)
		paddingL, errL := resolved(box, "padding-left", fields.PaddingLeft)
		paddingR, errR := resolved(box, "padding-right", fields.PaddingRight)
		if err := multierr.Combine(errCb, errL, errR); err != nil {
			return err
		}
		outer = cbWidth
		content = paddingL + paddingR + fields.BorderLeftWidth + fields.BorderRightWidth
	default:
		return nil
	}

	marginL, errL := resolved(box, "margin-left", fields.MarginLeft)
	marginR, errR := resolved(box, "margin-right", fields.MarginRight)
	width, errW := resolved(box, "width", fields.Width)
	if err := multierr.Combine(errL, errR, errW); err != nil {
		return err
	}

	total := marginL + marginR + content + width
	if !utils.IsClose(utils.Fl(total), utils.Fl(outer), utils.Fl(Tolerance)) {
		return fmt.Errorf("%s: margin box width %g does not match containing block width %g", box, total, outer)
	}
	return nil
}
