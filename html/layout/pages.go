package layout

import (
	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
)

// Layout for page boxes

func pageDimensions(box *bo.PageBox, width, height pr.MaybeFloat) {
	pageSize(box, width, height)
	blockContainerDimensions(box)
}

// pageSize sets the used values of the page box itself.
func pageSize(box *bo.PageBox, width, height pr.MaybeFloat) {
	// Page size is fixed to A4 when not given.
	a4 := pr.A4.ToPixels()
	if width == nil {
		box.OuterWidth = a4[0].Value
	} else {
		box.OuterWidth = width.V()
	}

	if height == nil {
		box.OuterHeight = a4[1].Value
	} else {
		box.OuterHeight = height.V()
	}

	cbWidth, cbHeight := box.ContainingBlockSize()
	resolvePercentages(box, cbWidth, cbHeight)

	box.PositionX = box.MarginLeft.V()
	box.PositionY = box.MarginTop.V()
	box.Width = box.OuterWidth - box.MarginLeft.V() - box.MarginRight.V()
	box.Height = box.OuterHeight - box.MarginTop.V() - box.MarginBottom.V()
}
