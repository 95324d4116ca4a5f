package boxes

import (
	"fmt"
	"io"
	"strings"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	"github.com/benoitkugler/boxgeom/html/tree"
	"github.com/benoitkugler/boxgeom/logger"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elements never rendered
var skippedElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

// BuildFromHTML builds a box tree from an HTML document.
//
// This is a minimal builder, enough to feed the layout : every rendered
// element generates a [BlockBox], styled by its 'style' attribute,
// and every non blank text generates a [LineBox].
// The root element is wrapped in a [PageBox], whose style is [pageStyle]
// (initial values if nil).
func BuildFromHTML(r io.Reader, pageStyle pr.Properties) (*PageBox, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("invalid HTML: %w", err)
	}
	var rootElement *html.Node
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			rootElement = child
			break
		}
	}
	if rootElement == nil {
		return nil, fmt.Errorf("missing root element")
	}
	if pageStyle == nil {
		pageStyle = tree.ComputedFromDeclarations(nil, nil)
	}

	logger.ProgressLogger.Debug("Creating formatting structure")

	var children []Box
	rootBox, err := elementToBox(rootElement, pageStyle)
	if err != nil {
		return nil, err
	}
	if rootBox != nil {
		children = append(children, rootBox)
	}
	return NewPageBox(pageStyle, children), nil
}

func attribute(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// elementToBox returns nil for elements not rendered.
func elementToBox(element *html.Node, parentStyle pr.Properties) (Box, error) {
	if skippedElements[element.DataAtom] {
		return nil, nil
	}
	declared, err := tree.ParseDeclarations(attribute(element, "style"))
	if err != nil {
		return nil, fmt.Errorf("element <%s>: %w", element.Data, err)
	}
	style := tree.ComputedFromDeclarations(declared, parentStyle)
	if style.GetDisplay() == "none" {
		return nil, nil
	}

	var children []Box
	for child := element.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			box, err := elementToBox(child, style)
			if err != nil {
				return nil, err
			}
			if box != nil {
				children = append(children, box)
			}
		case html.TextNode:
			if text := strings.TrimSpace(child.Data); text != "" {
				children = append(children, NewLineBox(tree.AnonymousFrom(style), text))
			}
		}
	}
	return NewBlockBox(style, element.Data, children), nil
}
