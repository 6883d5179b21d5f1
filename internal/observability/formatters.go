// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxTitleWidth bounds a course title on its line
	maxTitleWidth = 44
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintCatalog outputs where the catalog came from and whether scoring is available.
func (p *Printer) PrintCatalog(count int, source string, modelReady bool) {
	model := "ready"
	if !modelReady {
		model = "not ready (neutral scores)"
	}
	content := fmt.Sprintf("Courses:  %d\nSource:   %s\nModel:    %s", count, source, model)
	p.printBox("CATALOG", content)
}

// PrintRecommendations outputs ranked recommendations with their scores.
func (p *Printer) PrintRecommendations(resp types.RecommendationsResponse) {
	if resp.Error != "" {
		p.printBox("RECOMMENDATIONS", "Error: "+resp.Error)
		return
	}
	if len(resp.Recommendations) == 0 {
		p.printBox("RECOMMENDATIONS", "No courses found")
		return
	}

	var sb strings.Builder
	for i, rec := range resp.Recommendations {
		c := rec.Course
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(c.Title, maxTitleWidth)))
		sb.WriteString(fmt.Sprintf("    Score: %.3f\n", rec.Score))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s · %s\n", c.Category, c.SkillLevel, c.Type, c.Duration))
		if c.Platform != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Platform))
		}
		if c.URL != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.URL))
		}
		if i < len(resp.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	title := fmt.Sprintf("RECOMMENDATIONS (%d)", resp.TotalCount)
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
