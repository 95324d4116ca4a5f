package layout

import (
	"context"

	"golang.org/x/sync/errgroup"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
)

// LayoutParallel is the same as [Resolve], but the subtrees rooted
// at the children of the page are resolved concurrently, using at most
// [limit] goroutines (no limit if [limit] <= 0).
//
// Subtrees are independent once the page is sized, since a box only
// reads its own style, the used width and height of its parent and the
// direction of its parent.
func LayoutParallel(ctx context.Context, page *bo.PageBox, width, height pr.MaybeFloat, limit int) error {
	err := func() (err error) {
		defer func() {
			err = recoverContract(recover())
		}()
		pageSize(page, width, height)
		return nil
	}()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, child := range page.Children {
		g.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer func() {
				err = recoverContract(recover())
			}()
			ComputeDimensions(child)
			return nil
		})
	}
	return g.Wait()
}
