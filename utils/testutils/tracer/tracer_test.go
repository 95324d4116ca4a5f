package tracer

import (
	"strings"
	"testing"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	"github.com/benoitkugler/boxgeom/html/boxes"
)

func TestFormatMaybeFloat(t *testing.T) {
	for _, test := range []struct {
		v   pr.MaybeFloat
		exp string
	}{
		{pr.Float(12), "12"},
		{pr.Float(793.7007874), "793.701"},
		{pr.AutoF, "auto"},
		{nil, "none"},
	} {
		if got := FormatMaybeFloat(test.v); got != test.exp {
			t.Fatalf("expected %s, got %s", test.exp, got)
		}
	}
}

func TestDumpTree(t *testing.T) {
	div := boxes.NewBlockBox(nil, "div", []boxes.Box{boxes.NewLineBox(nil, "hello")})
	div.Width, div.Height = pr.Float(100), pr.AutoF
	div.MarginLeft, div.MarginRight = pr.Float(10), pr.Float(5)
	div.PositionX = 10

	var sb strings.Builder
	NewTracerWriter(&sb).DumpTree(div, "after layout")
	exp := "after layout\n<BlockBox div>: 10 0 100 auto (10 5)\n <LineBox \"hello\">\n\n"
	if sb.String() != exp {
		t.Fatalf("unexpected dump:\n%q", sb.String())
	}
}
