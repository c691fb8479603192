package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of the statement tree, mirroring the
// indentation-by-walk style used to dump tokens and parsed chunks.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// WithSpans includes each node's byte span in the printed output.
	WithSpans bool
}

// Print walks n and writes one indented line per node.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, withSpans: p.WithSpans}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w         io.Writer
	withSpans bool
	depth     int
	err       error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}
	p.printNode(n, p.depth)
	p.depth++
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}
	format := "%s"
	args := []interface{}{strings.Repeat(". ", indent)}
	if p.withSpans {
		sp := n.Span()
		format += "[%d:%d] "
		args = append(args, sp.Start, sp.End)
	}
	format += "%v\n"
	args = append(args, n)
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
