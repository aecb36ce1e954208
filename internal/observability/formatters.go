// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a score bar
	barWidth = 20
)

// Printer handles formatted output for human-readable mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreBar renders a 0-100 score as a fixed-width bar.
func scoreBar(score int) string {
	score = max(0, min(score, 100))
	filled := score * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintScoreBreakdown outputs the overall and per-category scores.
func (p *Printer) PrintScoreBreakdown(b *types.ScoreBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %3d  %s\n", b.Overall, scoreBar(b.Overall)))
	sb.WriteString("\n")
	for _, cat := range types.AllCategories() {
		score := b.CategoryScore(cat)
		sb.WriteString(fmt.Sprintf("%-12s %3d  %s\n", strings.ToUpper(string(cat[:1]))+string(cat[1:])+":", score, scoreBar(score)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Lexical:  %.3f  Semantic: %.3f\n", b.Lexical, b.Semantic))
	sb.WriteString(fmt.Sprintf("Method:   %s (%.1f/%.1f)", b.Method, b.Weights.Lexical, b.Weights.Semantic))
	if b.SemanticDegraded {
		sb.WriteString("\n⚠ semantic matcher unavailable")
	}

	p.printBox("ATS SCORE", sb.String())
}

// PrintAnalysis outputs the score, keyword report and recommendations of an analysis.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	title := "ATS SCORE"
	if a.Label != "" {
		title = fmt.Sprintf("ATS SCORE: %s", a.Label)
	}
	p.PrintScoreBreakdown(&a.Breakdown)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %.2f%%  Priority: %s  Recommendation score: %d\n",
		a.Keywords.Coverage, a.Priority, a.RecommendationScore))

	if len(a.PriorityActions) > 0 {
		sb.WriteString("\nPriority actions:\n")
		for i, action := range a.PriorityActions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, action))
		}
	}

	if len(a.Keywords.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(a.Keywords.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.Keywords.MissingKeywords[i]))
		}
		if len(a.Keywords.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.Keywords.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(a.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range a.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	for _, cat := range append([]types.Category{types.SectionSummary}, types.AllCategories()...) {
		for _, rec := range a.Sections[cat].Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if len(a.Format.Warnings)+len(a.Format.Tips) > 0 {
		sb.WriteString(fmt.Sprintf("\nFormat (%d words):\n", a.Format.WordCount))
		for _, w := range a.Format.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
		for _, tip := range a.Format.Tips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox(title+" | RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs a one-line summary per stored analysis.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(analyses []types.Analysis) {
	if len(analyses) == 0 {
		fmt.Fprintln(p.out, "No analyses stored.")
		return
	}

	var sb strings.Builder
	for i, a := range analyses {
		label := a.Label
		if label == "" {
			label = "-"
		}
		sb.WriteString(fmt.Sprintf("%s  %3d  %-8s %s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Breakdown.Overall, a.Priority, label))
		sb.WriteString(fmt.Sprintf("  %s", a.ID))
		if i < len(analyses)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("HISTORY (%d)", len(analyses)), sb.String())
}
