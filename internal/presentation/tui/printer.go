package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/muesli/termenv"
)

// EmptyWord is how the empty word is displayed.
const EmptyWord = "ε"

// Printer writes exploration results, colored when the writer supports it.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter creates a printer over w. Options are passed through to termenv,
// e.g. termenv.WithProfile(termenv.Ascii) to disable colors.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w, opts...)}
}

// Words prints one word per line.
func (p *Printer) Words(words []string) {
	for _, w := range words {
		fmt.Fprintln(p.w, DisplayWord(w))
	}
}

// Match prints the outcome of a match query.
func (p *Printer) Match(found bool, path domain.Path) {
	if !found {
		fmt.Fprintln(p.w, p.out.String("rejected").Foreground(p.out.Color("#f87171")).Bold())
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.out.String("accepted").Foreground(p.out.Color("#4ade80")).Bold(), path)
}

// Warn prints a highlighted warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.out.String("warning: "+msg).Foreground(p.out.Color("#fbbf24")))
}

// DisplayWord renders the empty word visibly.
func DisplayWord(w string) string {
	if w == "" {
		return EmptyWord
	}
	return w
}
