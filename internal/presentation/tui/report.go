package tui

import (
	"fmt"
	"strings"
)

// Report is a markdown summary of one command run.
type Report struct {
	Title    string
	Facts    [][2]string
	Words    []string
	Warnings []string
}

// Markdown renders the report. Words are listed in a fenced block so labels
// are never interpreted as markup.
func (r Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Title))

	if len(r.Facts) > 0 {
		sb.WriteString("| | |\n|---|---|\n")
		for _, f := range r.Facts {
			sb.WriteString(fmt.Sprintf("| %s | `%s` |\n", f[0], strings.ReplaceAll(f[1], "|", `\|`)))
		}
		sb.WriteString("\n")
	}

	if r.Words != nil {
		sb.WriteString(fmt.Sprintf("## Words (%d)\n\n", len(r.Words)))
		sb.WriteString("```\n")
		for _, w := range r.Words {
			sb.WriteString(DisplayWord(w))
			sb.WriteString("\n")
		}
		sb.WriteString("```\n\n")
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			sb.WriteString("- " + w + "\n")
		}
	}
	return sb.String()
}
