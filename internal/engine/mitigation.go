package engine

import (
	"sort"
	"strings"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/collectors"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// strategyTable maps category name to its fixed list of mitigation texts,
// emitted in order for every category at medium or high level.
var strategyTable = map[string][]string{
	"technical": {
		"Refactor the most complex modules and reduce coupling",
		"Implement stricter code review for high-risk areas",
		"Establish a dependency upgrade cadence",
	},
	"schedule": {
		"Re-plan milestones against observed delivery pace",
		"Implement scope triage for the next iteration",
	},
	"quality": {
		"Implement automated regression tests for fix-prone areas",
		"Establish a definition of done with coverage gates",
		"Schedule exploratory testing sessions",
	},
	"security": {
		"Patch vulnerable dependencies without delay",
		"Establish a recurring dependency audit",
		"Provide security training for the team",
	},
	"resource": {
		"Hire or contract additional engineers for bottleneck areas",
		"Run cross-training to raise the bus factor",
		"Document critical subsystems",
	},
	"operational": {
		"Implement a CI pipeline covering every branch",
		"Establish a reproducible build configuration",
	},
	"business": {
		"Review release cadence with stakeholders",
		"Establish a public roadmap and regular releases",
	},
}

// effortRule tags a strategy's effort from a keyword in its text. The
// table is checked in order and the first match wins; strategies matching
// nothing are low effort. Deliberately crude, kept as a rule table so it
// stays testable and swappable.
type effortRule struct {
	Keyword string
	Effort  string
}

var effortRules = []effortRule{
	{"hire", "high"},
	{"training", "high"},
	{"implement", "medium"},
	{"establish", "medium"},
}

// EffortFor derives the effort tag for a strategy text.
func EffortFor(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range effortRules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Effort
		}
	}
	return "low"
}

// Advise emits the mitigation strategies for every category at medium or
// high level, high-priority entries first. Categories below medium, and
// unknown ones, produce nothing.
func Advise(risks map[string]models.CategoryRisk) []models.MitigationStrategy {
	strategies := []models.MitigationStrategy{}

	for _, def := range collectors.Registry {
		risk, ok := risks[def.Category]
		if !ok {
			continue
		}
		if risk.Level != models.LevelMedium && risk.Level != models.LevelHigh {
			continue
		}

		priority := "medium"
		if risk.Level == models.LevelHigh {
			priority = "high"
		}

		for _, text := range strategyTable[def.Category] {
			strategies = append(strategies, models.MitigationStrategy{
				Category: def.Category,
				Text:     text,
				Priority: priority,
				Effort:   EffortFor(text),
			})
		}
	}

	// High priority first; registry order is preserved within each tier.
	sort.SliceStable(strategies, func(i, j int) bool {
		return strategies[i].Priority == "high" && strategies[j].Priority != "high"
	})

	return strategies
}
