package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// Summarize renders a terse terminal summary of a report. The JSON
// artifact stays the contract for machines; this is for humans at the
// prompt.
func Summarize(rpt *models.RiskReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s (last %d days)\n",
		rpt.Params.ProjectPath, rpt.Params.AnalysisPeriodDays)
	fmt.Fprintf(&b, "Overall risk: %.1f (%s)\n\n", rpt.Overall.Score, rpt.Overall.Level)

	categories := make([]string, 0, len(rpt.Categories))
	for name := range rpt.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	fmt.Fprintf(&b, "%-12s %7s %-9s %6s %6s  %s\n",
		"CATEGORY", "SCORE", "LEVEL", "PROB", "IMPACT", "INDICATORS")
	for _, name := range categories {
		risk := rpt.Categories[name]
		fmt.Fprintf(&b, "%-12s %7.1f %-9s %6.1f %6.1f  %s\n",
			name, risk.Score, risk.Level, risk.Probability, risk.Impact,
			joinOrDash(risk.Indicators))
	}

	if short, ok := rpt.Predictions[models.TimeframeShort]; ok {
		var rising []string
		for _, name := range categories {
			if p, ok := short[name]; ok && p.Trend == "increasing" {
				rising = append(rising, name)
			}
		}
		if len(rising) > 0 {
			fmt.Fprintf(&b, "\nRising short-term: %s\n", strings.Join(rising, ", "))
		}
	}

	if len(rpt.Mitigations) > 0 {
		fmt.Fprintf(&b, "\nTop mitigations:\n")
		limit := len(rpt.Mitigations)
		if limit > 5 {
			limit = 5
		}
		for _, m := range rpt.Mitigations[:limit] {
			fmt.Fprintf(&b, "  [%s/%s] %s: %s\n", m.Priority, m.Effort, m.Category, m.Text)
		}
	}

	if len(rpt.DataQuality.FailedCategories) > 0 {
		fmt.Fprintf(&b, "\nNo data for: %s\n",
			strings.Join(rpt.DataQuality.FailedCategories, ", "))
	}

	return b.String()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, "; ")
}
