// Package tracer provides a function to dump the current layout tree,
// which may be used in debug mode.
package tracer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/boxgeom/css/properties"
	"github.com/benoitkugler/boxgeom/html/boxes"
	"github.com/benoitkugler/boxgeom/utils"
)

type Tracer struct {
	out io.Writer
}

// NewTracer panics if an error occurs.
func NewTracer(outFile string) Tracer {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}

	return Tracer{out: f}
}

// NewTracerWriter writes to [out].
func NewTracerWriter(out io.Writer) Tracer { return Tracer{out: out} }

func FormatMaybeFloat(v properties.MaybeFloat) string {
	if v, ok := v.(properties.Float); ok {
		return strconv.FormatFloat(utils.RoundPrec(float64(v), 3), 'g', -1, 64)
	}
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%v", v)
}

func (t Tracer) Dump(line string) {
	fmt.Fprintln(t.out, line)
}

// DumpTree writes one line per box, with its position, size and horizontal margins.
func (t Tracer) DumpTree(box boxes.Box, context string) {
	fmt.Fprintln(t.out, context)

	var printer func(box boxes.Box, indent int)
	printer = func(box boxes.Box, indent int) {
		fields := box.Box()
		fmt.Fprint(t.out, strings.Repeat(" ", indent))
		if _, isLine := box.(*boxes.LineBox); isLine {
			fmt.Fprintf(t.out, "%s\n", box)
			return
		}
		fmt.Fprintf(t.out, "%s: %s %s %s %s (%s %s)\n", box,
			FormatMaybeFloat(fields.PositionX),
			FormatMaybeFloat(fields.PositionY),
			FormatMaybeFloat(fields.Width),
			FormatMaybeFloat(fields.Height),
			FormatMaybeFloat(fields.MarginLeft),
			FormatMaybeFloat(fields.MarginRight),
		)

		for _, child := range fields.Children {
			printer(child, indent+1)
		}
	}

	printer(box, 0)

	fmt.Fprintln(t.out)
}
