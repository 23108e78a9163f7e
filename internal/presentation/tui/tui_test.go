package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/lingo/internal/presentation/tui"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(buf *bytes.Buffer) *tui.Printer {
	return tui.NewPrinter(buf, termenv.WithProfile(termenv.Ascii))
}

func TestPrinter_Words(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Words([]string{"", "ab"})
	assert.Equal(t, "ε\nab\n", buf.String())
}

func TestPrinter_Match(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	p.Match(true, domain.Path{0, 1, 1, 2})
	p.Match(false, nil)
	assert.Equal(t, "accepted 0 -> 1 -> 1 -> 2\nrejected\n", buf.String())
}

func TestPrinter_Warn(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Warn("state 3 is unreachable")
	assert.Equal(t, "warning: state 3 is unreachable\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), "|___/")
}

func TestReport_Markdown(t *testing.T) {
	r := tui.Report{
		Title:    "generate",
		Facts:    [][2]string{{"bound", "8"}, {"label", "a|b"}},
		Words:    []string{"", "ab"},
		Warnings: []string{"state 2 cannot reach a terminal state"},
	}
	md := r.Markdown()

	assert.Contains(t, md, "# generate\n")
	assert.Contains(t, md, "| bound | `8` |")
	assert.Contains(t, md, "| label | `a\\|b` |")
	assert.Contains(t, md, "## Words (2)\n\n```\nε\nab\n```")
	assert.Contains(t, md, "- state 2 cannot reach a terminal state")
}

func TestReport_NoWordsSection(t *testing.T) {
	md := tui.Report{Title: "match"}.Markdown()
	assert.NotContains(t, md, "## Words")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer()
	require.NoError(t, err)

	out, err := render("# Title")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
