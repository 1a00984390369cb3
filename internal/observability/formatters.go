// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchReport outputs a human-readable summary of a matching run.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:         %s\n", report.JobTitle))
	sb.WriteString(fmt.Sprintf("Evaluated:   %d candidates\n", report.TotalCandidatesEvaluated))
	sb.WriteString(fmt.Sprintf("Shortlisted: %d\n", report.ShortlistedCandidates))
	sb.WriteString("\n")

	summary := report.MatchingSummary
	sb.WriteString(fmt.Sprintf("Average score:   %.2f\n", summary.AverageMatchScore))
	sb.WriteString(fmt.Sprintf("Highest score:   %.2f\n", summary.HighestMatchScore))
	sb.WriteString(fmt.Sprintf("Above threshold: %d\n", summary.CandidatesAboveThreshold))

	dist := summary.ScoreDistribution
	sb.WriteString(fmt.Sprintf("Distribution:    %d excellent / %d good / %d fair / %d poor",
		dist.Excellent, dist.Good, dist.Fair, dist.Poor))

	p.printBox("MATCH REPORT", sb.String())
	p.printTopCandidates(report.TopCandidates)
}

// printTopCandidates outputs the shortlist with scores and match reasons.
func (p *Printer) printTopCandidates(candidates []types.RankedCandidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rc.Rank, rc.CandidateID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (top %.0f%%)\n", rc.ScoreBreakdown.OverallScore, rc.Percentile))
		sb.WriteString(fmt.Sprintf("    %s\n", rc.Recommendation))
		if len(rc.MatchReasons) > 0 {
			reasons := strings.Join(rc.MatchReasons, "; ")
			if len(reasons) > 48 {
				reasons = reasons[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Reasons: %s\n", reasons))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("TOP CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendationReport outputs a career recommendation report.
func (p *Printer) PrintRecommendationReport(report *types.RecommendationReport) {
	if report == nil || len(report.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall confidence: %.2f\n\n", report.ConfidenceScore))

	for i, rec := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Career))
		sb.WriteString(fmt.Sprintf("    Confidence: %.2f (%s)\n", rec.Confidence, rec.Source))
		reason := rec.Reason
		if len(reason) > 44 {
			reason = reason[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", reason))
		if i < len(report.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
	p.printSkillGaps(report.SkillGaps)
}

// printSkillGaps outputs the missing skills per recommended career.
func (p *Printer) printSkillGaps(gaps map[string]types.SkillGap) {
	if len(gaps) == 0 {
		return
	}

	careers := make([]string, 0, len(gaps))
	for career := range gaps {
		careers = append(careers, career)
	}
	sort.Strings(careers)

	var sb strings.Builder
	for i, career := range careers {
		gap := gaps[career]
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%s (%s priority)\n", career, gap.Priority))
		missing := strings.Join(gap.MissingSkills, ", ")
		if len(missing) > 44 {
			missing = missing[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		for _, resource := range gap.LearningResources {
			sb.WriteString(fmt.Sprintf("    %s: %s (%s)\n", resource.Skill, resource.Platform, resource.Duration))
		}
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalytics outputs feedback analytics.
func (p *Printer) PrintAnalytics(analytics *types.MatchingAnalytics) {
	if analytics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Feedback entries: %d\n", analytics.TotalEntries))
	sb.WriteString(fmt.Sprintf("Positive rate:    %.0f%%\n", analytics.PositiveRate*100))
	sb.WriteString(fmt.Sprintf("Hire rate:        %.0f%%\n", analytics.HireRate*100))
	sb.WriteString(fmt.Sprintf("Average rating:   %.1f", analytics.AverageRating))

	p.printBox("MATCHING ANALYTICS", sb.String())
}
