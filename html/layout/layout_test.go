package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	bo "github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/html/tree"
	tu "github.com/benoitkugler/boxgeom/utils/testutils"
)

type Fl = pr.Float

// computed returns the computed style for the given inline declarations.
func computed(t *testing.T, declarations string, parent pr.Properties) pr.Properties {
	t.Helper()
	declared, err := tree.ParseDeclarations(declarations)
	if err != nil {
		t.Fatal(err)
	}
	return tree.ComputedFromDeclarations(declared, parent)
}

func parseAndBuild(t *testing.T, content string) *bo.PageBox {
	t.Helper()
	page, err := bo.BuildFromHTML(strings.NewReader(content), nil)
	if err != nil {
		t.Fatalf("building boxes failed: %s", err)
	}
	return page
}

// renderOnePage lays out [content] on a 1000x2000 page without margins.
func renderOnePage(t *testing.T, content string) *bo.PageBox {
	t.Helper()
	page := parseAndBuild(t, content)
	Layout(page, Fl(1000), Fl(2000))
	return page
}

func unpack1(box Box) Box {
	if L := len(box.Box().Children); L != 1 {
		panic(fmt.Sprintf("expected one child, got %d", L))
	}
	return box.Box().Children[0]
}

// body returns the <body> box of a page built from HTML.
func body(page *bo.PageBox) Box {
	html := unpack1(page)
	return unpack1(html)
}

func TestDispatch(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	page := renderOnePage(t, `<div>Hello</div>`)
	html := unpack1(page)
	tu.AssertEqual(t, html.Box().ElementTag, "html")
	tu.AssertEqual(t, html.Box().Width, pr.MaybeFloat(Fl(1000)))
	div := unpack1(body(page))
	tu.AssertEqual(t, div.Box().Width, pr.MaybeFloat(Fl(1000)))

	// line boxes are left untouched
	line := unpack1(div)
	tu.AssertEqual(t, line.Type(), bo.LineT)
	tu.AssertEqual(t, line.Box().Width, pr.MaybeFloat(nil))
	tu.AssertEqual(t, line.Box().MarginLeft, pr.MaybeFloat(nil))
}

func TestBlockContainer(t *testing.T) {
	parent := computed(t, "", nil)
	inner := bo.NewBlockBox(computed(t, "margin: 0 10px", parent), "p", nil)
	container := bo.NewBlockContainerBox(parent, "td", []Box{inner})
	container.Width = Fl(300)
	container.Height = Fl(100)

	ComputeDimensions(container)

	// the container itself is not modified
	tu.AssertEqual(t, container.MarginLeft, pr.MaybeFloat(nil))
	tu.AssertEqual(t, inner.Width, pr.MaybeFloat(Fl(280)))
	tu.AssertEqual(t, inner.MarginRight, pr.MaybeFloat(Fl(10)))
}

type unknownBox struct {
	bo.BoxFields
}

func (unknownBox) Type() bo.BoxType { return bo.BlockLevelT }
func (unknownBox) String() string   { return "<unknownBox>" }

func TestUnsupportedBox(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*ContractError); !ok {
			t.Fatalf("expected contract violation, got %v", r)
		}
	}()
	ComputeDimensions(&unknownBox{})
}

func TestResolveInvalidValues(t *testing.T) {
	for _, modify := range []func(style pr.Properties){
		func(style pr.Properties) { style[pr.PPaddingLeft] = pr.SToV("auto") },
		func(style pr.Properties) { style[pr.PWidth] = pr.SToV("none") },
		func(style pr.Properties) { style[pr.PMarginLeft] = pr.Value{Dimension: pr.NewDim(2, pr.Em)} },
		func(style pr.Properties) { style[pr.PBorderLeftWidth] = pr.PercToV(10) },
		func(style pr.Properties) { style[pr.PMarginLeft] = pr.FToV(Fl(math.NaN())) },
	} {
		pageStyle := computed(t, "", nil)
		style := computed(t, "", pageStyle)
		modify(style)
		page := bo.NewPageBox(pageStyle, []Box{bo.NewBlockBox(style, "div", nil)})

		err := Resolve(page, nil, nil)
		if _, ok := err.(pr.ValueError); !ok {
			t.Fatalf("expected invalid value, got %v", err)
		}
	}
}

func TestResolveContractViolation(t *testing.T) {
	pageStyle := computed(t, "", nil)
	style := computed(t, "", pageStyle)
	style[pr.PWidth] = pr.FToV(pr.Inf)
	page := bo.NewPageBox(pageStyle, []Box{bo.NewBlockBox(style, "div", nil)})

	err := Resolve(page, nil, nil)
	var contract *ContractError
	if !errors.As(err, &contract) {
		t.Fatalf("expected contract violation, got %v", err)
	}
	tu.AssertEqual(t, contract.Box.Box().ElementTag, "div")
}

func TestResolve(t *testing.T) {
	page := parseAndBuild(t, `<p style="margin: auto; width: 50%">`)
	if err := Resolve(page, Fl(500), Fl(800)); err != nil {
		t.Fatal(err)
	}
	p := unpack1(body(page))
	tu.AssertEqual(t, p.Box().Width, pr.MaybeFloat(Fl(250)))
	tu.AssertEqual(t, p.Box().MarginLeft, pr.MaybeFloat(Fl(125)))
	tu.AssertEqual(t, p.Box().MarginRight, pr.MaybeFloat(Fl(125)))
	if err := Check(page); err != nil {
		t.Fatal(err)
	}
}

func TestResolveUnresolvedContainingBlock(t *testing.T) {
	newPage := func() *bo.PageBox {
		pageStyle := computed(t, "", nil)
		p := bo.NewBlockBox(computed(t, "", pageStyle), "p", nil)
		// the geometry of a plain container is never set by the layout
		container := bo.NewBlockContainerBox(pageStyle, "td", []Box{p})
		return bo.NewPageBox(pageStyle, []Box{container})
	}

	var cbErr *bo.ContainingBlockError
	if err := Resolve(newPage(), nil, nil); !errors.As(err, &cbErr) {
		t.Fatalf("expected containing block error, got %v", err)
	}
	tu.AssertEqual(t, cbErr.ElementTag, "p")

	err := LayoutParallel(context.Background(), newPage(), nil, nil, 2)
	if !errors.As(err, &cbErr) {
		t.Fatalf("expected containing block error, got %v", err)
	}

	orphan := bo.NewBlockBox(computed(t, "", nil), "div", nil)
	defer func() {
		if _, ok := recover().(*bo.ContainingBlockError); !ok {
			t.Fatal("expected containing block error for a box without parent")
		}
	}()
	ComputeDimensions(orphan)
}
