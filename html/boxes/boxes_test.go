package boxes

import (
	"strings"
	"testing"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	tu "github.com/benoitkugler/boxgeom/utils/testutils"
)

var (
	_ Box = (*PageBox)(nil)
	_ Box = (*BlockContainerBox)(nil)
	_ Box = (*BlockBox)(nil)
	_ Box = (*LineBox)(nil)
)

//  Test that the box tree is correctly constructed.

func parse(t *testing.T, content string) *PageBox {
	t.Helper()
	page, err := BuildFromHTML(strings.NewReader(content), nil)
	if err != nil {
		t.Fatalf("building boxes failed: %s", err)
	}
	return page
}

type serBox struct {
	Tag      string
	Type     BoxType
	Children []serBox
}

func serialize(box Box) serBox {
	out := serBox{Tag: box.Box().ElementTag, Type: box.Type()}
	if line, ok := box.(*LineBox); ok {
		out.Tag = line.Text
	}
	for _, child := range box.Box().Children {
		out.Children = append(out.Children, serialize(child))
	}
	return out
}

func TestBoxTree(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	page := parse(t, `<html><head><style>p { color: red }</style></head>
	<body><p>Hello <em>world</em></p><div style="display: none"><p>hidden</p></div>
	<script>var a = 1</script><section></section></body></html>`)
	tu.AssertEqual(t, serialize(page), serBox{Type: PageT, Children: []serBox{
		{Tag: "html", Type: BlockT, Children: []serBox{
			{Tag: "body", Type: BlockT, Children: []serBox{
				{Tag: "p", Type: BlockT, Children: []serBox{
					{Tag: "Hello", Type: LineT},
					{Tag: "em", Type: BlockT, Children: []serBox{{Tag: "world", Type: LineT}}},
				}},
				{Tag: "section", Type: BlockT},
			}},
		}},
	}})
}

func TestParents(t *testing.T) {
	page := parse(t, `<div><p>text</p></div>`)
	for _, box := range Descendants(page)[1:] {
		parent := box.Box().Parent
		if parent == nil {
			t.Fatalf("missing parent for %s", box)
		}
		found := false
		for _, child := range parent.Box().Children {
			if child == box {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s is not a child of its parent %s", box, parent)
		}
	}
	tu.AssertEqual(t, page.Box().Parent == nil, true)
}

func TestStyles(t *testing.T) {
	page := parse(t, `<html style="direction: rtl"><body style="width: 50%; margin: auto"><p>a</p></body></html>`)
	html := page.Children[0]
	body := html.Box().Children[0]
	p := body.Box().Children[0]
	tu.AssertEqual(t, body.Box().Style.GetWidth(), pr.PercToV(50))
	tu.AssertEqual(t, body.Box().Style.GetMarginLeft(), pr.SToV("auto"))
	tu.AssertEqual(t, p.Box().Style.GetDirection(), pr.String("rtl"))
	tu.AssertEqual(t, p.Box().Style.GetMarginLeft(), pr.FToV(0))
	line := p.Box().Children[0]
	tu.AssertEqual(t, line.Box().Style.GetDirection(), pr.String("rtl"))
}

func TestInvalidStyle(t *testing.T) {
	logs := tu.CaptureLogs()
	page := parse(t, `<div style="width: 12; margin-left: 3px"></div>`)
	tu.AssertEqual(t, len(logs.Logs()), 1)
	div := page.Children[0].Box().Children[0].Box().Children[0] // html > body > div
	tu.AssertEqual(t, div.Box().ElementTag, "div")
	tu.AssertEqual(t, div.Box().Style.GetWidth(), pr.SToV("auto"))
	tu.AssertEqual(t, div.Box().Style.GetMarginLeft(), pr.FToV(3))
}

func TestBoxTypes(t *testing.T) {
	page := NewPageBox(nil, nil)
	container := NewBlockContainerBox(nil, "", nil)
	block := NewBlockBox(nil, "div", nil)
	line := NewLineBox(nil, "text")

	tu.AssertEqual(t, BlockContainerT.IsInstance(page), true)
	tu.AssertEqual(t, BlockContainerT.IsInstance(container), true)
	tu.AssertEqual(t, BlockContainerT.IsInstance(block), true)
	tu.AssertEqual(t, BlockContainerT.IsInstance(line), false)

	tu.AssertEqual(t, BlockLevelT.IsInstance(block), true)
	tu.AssertEqual(t, BlockLevelT.IsInstance(page), false)
	tu.AssertEqual(t, BlockLevelT.IsInstance(container), false)

	tu.AssertEqual(t, PageT.IsInstance(page), true)
	tu.AssertEqual(t, BlockT.IsInstance(block), true)
	tu.AssertEqual(t, LineT.IsInstance(line), true)
	tu.AssertEqual(t, BlockT.IsInstance(line), false)
	tu.AssertEqual(t, BlockLevelT.String(), "BlockLevelBox")
}

func TestContainingBlock(t *testing.T) {
	child := NewBlockBox(nil, "p", nil)
	parent := NewBlockBox(nil, "div", []Box{child})
	parent.Width = pr.Float(200)
	parent.Height = pr.AutoF
	w, h := child.ContainingBlockSize()
	tu.AssertEqual(t, w, pr.Float(200))
	tu.AssertEqual(t, h == nil, true)

	parent.Height = pr.Float(50)
	_, h = child.ContainingBlockSize()
	tu.AssertEqual(t, h, pr.MaybeFloat(pr.Float(50)))

	page := NewPageBox(nil, nil)
	page.OuterWidth, page.OuterHeight = 100, 300
	w, h = page.ContainingBlockSize()
	tu.AssertEqual(t, w, pr.Float(100))
	tu.AssertEqual(t, h, pr.MaybeFloat(pr.Float(300)))
}

func TestWidths(t *testing.T) {
	box := NewBlockBox(nil, "div", nil)
	box.Width = pr.Float(100)
	box.PaddingLeft, box.PaddingRight = pr.Float(1), pr.Float(2)
	box.BorderLeftWidth, box.BorderRightWidth = 3, 4
	box.MarginLeft, box.MarginRight = pr.Float(5), pr.Float(6)
	box.PositionX = 10
	tu.AssertEqual(t, box.PaddingWidth(), pr.Float(103))
	tu.AssertEqual(t, box.BorderWidth(), pr.Float(110))
	tu.AssertEqual(t, box.MarginWidth(), pr.Float(121))
	tu.AssertEqual(t, box.ContentBoxX(), pr.Float(19))
}
