package cli

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is
// not a terminal.
var ErrNotInteractive = stderrors.New("cannot ask for confirmation: input is not a terminal (use --yes)")

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// PromptConfirmer asks on out and reads the answer from in
type PromptConfirmer struct {
	in     io.Reader
	out    io.Writer
	prompt *color.Color
}

// NewPromptConfirmer creates a confirmer reading answers from in
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{
		in:     in,
		out:    out,
		prompt: color.New(color.FgHiRed, color.Bold),
	}
}

// Confirm writes the prompt and returns true only for "y" or "yes"
func (p *PromptConfirmer) Confirm(prompt string) (bool, error) {
	if f, ok := p.in.(*os.File); ok && !isTerminal(f) {
		return false, ErrNotInteractive
	}

	p.prompt.Fprintf(p.out, "%s [y/N]: ", prompt)

	answer, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && (!stderrors.Is(err, io.EOF) || answer == "") {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
