package presenter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes rendered lines to a terminal, colouring each column.
type Printer struct {
	out     io.Writer
	heading *color.Color
	id      *color.Color
	name    *color.Color
	done    *color.Color
	pending *color.Color
	time    *color.Color
}

// NewPrinter creates a printer writing to out. Colour is used only when
// enabled is true and fatih/color has not turned it off globally (no TTY or
// NO_COLOR set).
func NewPrinter(out io.Writer, enabled bool) *Printer {
	p := &Printer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		id:      color.New(color.FgHiCyan),
		name:    color.New(color.Bold),
		done:    color.New(color.FgGreen),
		pending: color.New(color.FgRed),
		time:    color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.heading, p.id, p.name, p.done, p.pending, p.time} {
			c.DisableColor()
		}
	}
	return p
}

// Heading writes a title line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out, p.heading.Sprint(text))
}

// Lines writes each line with its columns coloured.
func (p *Printer) Lines(lines []Line) {
	for _, l := range lines {
		status := p.pending
		if l.Done {
			status = p.done
		}
		fmt.Fprintf(p.out, "%s | %s %s %s\n",
			p.id.Sprint(l.ID),
			p.name.Sprint(l.Name),
			status.Sprint(l.Status),
			p.time.Sprint(l.Timestamp),
		)
	}
}

// Message writes a plain line of text.
func (p *Printer) Message(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
