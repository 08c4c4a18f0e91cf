// Package observability provides formatted output utilities for the CLI's
// human-readable report mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of an analysis report.
func (p *Printer) PrintReport(report *analysis.Report) {
	if report == nil {
		return
	}

	p.printScores(report)
	p.printSkills(report)
	p.printMissingKeywords(report)
	p.printGrammarIssues(report)
}

func (p *Printer) printScores(report *analysis.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score:      %d / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("ATS score:          %.2f\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("  keywords:         %.1f\n", report.KeywordScore))
	sb.WriteString(fmt.Sprintf("  phrases:          %.1f\n", report.PhraseScore))
	sb.WriteString(fmt.Sprintf("  achievements:     %.1f\n", report.AchievementScore))
	sb.WriteString(fmt.Sprintf("Skill score:        %d", report.SkillScore))
	if report.SimilarityWithJD != nil {
		sb.WriteString(fmt.Sprintf("\nJD similarity:      %.2f", *report.SimilarityWithJD))
	}
	if report.GrammarPenalty > 0 {
		sb.WriteString(fmt.Sprintf("\nGrammar penalty:    -%d", report.GrammarPenalty))
	}

	p.printBox("RESUME ANALYSIS", sb.String())
}

func (p *Printer) printSkills(report *analysis.Report) {
	if len(report.SkillsFound) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.SkillsFound), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", report.SkillsFound[i]))
	}
	if len(report.SkillsFound) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.SkillsFound)-maxItemsToShow))
	}

	p.printBox("SKILLS FOUND", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printMissingKeywords(report *analysis.Report) {
	if len(report.MissingKeywords) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.MissingKeywords), maxItemsToShow)
	sb.WriteString(strings.Join(report.MissingKeywords[:count], ", "))
	if len(report.MissingKeywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(report.MissingKeywords)-maxItemsToShow))
	}

	p.printBox("MISSING KEYWORDS", sb.String())
}

func (p *Printer) printGrammarIssues(report *analysis.Report) {
	if len(report.GrammarIssues) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.GrammarIssues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := report.GrammarIssues[i]
		sb.WriteString(fmt.Sprintf("• %s\n", issue.Message))
		if len(issue.Suggestions) > 0 {
			sb.WriteString(fmt.Sprintf("  suggestion: %s\n", issue.Suggestions[0]))
		}
	}
	if len(report.GrammarIssues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.GrammarIssues)-maxItemsToShow))
	}

	p.printBox("GRAMMAR FINDINGS", strings.TrimSuffix(sb.String(), "\n"))
}
