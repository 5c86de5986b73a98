package engine

import (
	"github.com/glebbrain/manager-arent-ai-sub002/internal/collectors"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// criticalFactors is the fixed subset used for the impact component.
// Absent critical factors are skipped.
var criticalFactors = []string{"complexity", "dependencies", "vulnerabilities", "team_size"}

// IndicatorRule raises a human-readable flag when a factor exceeds its
// trigger value. Rules are evaluated in table order and every firing rule
// is retained.
type IndicatorRule struct {
	Factor  string
	Trigger float64
	Message string
}

// indicatorRules per category, in evaluation order.
var indicatorRules = map[string][]IndicatorRule{
	"technical": {
		{"complexity", 15, "High code complexity detected"},
		{"dependencies", 50, "Large share of outdated dependencies"},
		{"vulnerabilities", 0, "Vulnerable dependencies present"},
		{"code_churn", 70, "Elevated code churn"},
	},
	"schedule": {
		{"velocity", 80, "Commit velocity near saturation"},
		{"activity_gap", 60, "Repository activity has stalled"},
	},
	"quality": {
		{"bug_density", 30, "High share of fix commits"},
		{"test_presence", 60, "Low test coverage signal"},
		{"doc_presence", 60, "Documentation missing"},
	},
	"security": {
		{"vulnerabilities", 0, "Vulnerable dependencies present"},
		{"outdated_ratio", 50, "Outdated dependencies widespread"},
		{"sensitive_files", 0, "Sensitive files tracked in the project tree"},
	},
	"resource": {
		{"team_size", 60, "Very small active team"},
		{"bus_factor", 70, "Knowledge concentrated in one contributor"},
	},
	"operational": {
		{"ci_presence", 50, "No CI configuration found"},
		{"build_config", 50, "No reproducible build configuration"},
	},
	"business": {
		{"project_age", 60, "Project is very young"},
		{"release_cadence", 70, "No regular releases"},
	},
}

// ScoreCategory aggregates a category's factors into a CategoryRisk.
//
// The score is the mean of the values present for the category's declared
// factors; a factor the collector could not produce is excluded from the
// mean, not treated as zero. An entirely empty factor set degrades the
// category to score 0 and level "unknown" instead of aborting the run.
func ScoreCategory(def collectors.Definition, factors models.FactorSet, thresholds models.Thresholds) models.CategoryRisk {
	risk := models.CategoryRisk{
		Category:   def.Category,
		Indicators: []string{},
		Factors:    factors,
	}

	sum := 0.0
	present := 0
	for _, name := range def.Factors {
		if v, ok := factors[name]; ok {
			sum += v
			present++
		}
	}

	if present == 0 {
		risk.Level = models.LevelUnknown
		risk.Factors = models.FactorSet{}
		return risk
	}

	risk.Score = sum / float64(present)
	risk.Level = models.LevelFromScore(risk.Score, thresholds)
	risk.Probability = meanAll(factors)
	risk.Impact = impact(factors, risk.Score)
	risk.Indicators = evaluateIndicators(def.Category, factors)

	return risk
}

// meanAll is the probability component: the mean of every factor value in
// the set. Intentionally the same computation as the score when no declared
// factor is missing.
func meanAll(factors models.FactorSet) float64 {
	if len(factors) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range factors {
		sum += v
	}
	return sum / float64(len(factors))
}

// impact averages the critical-factor subset present in the set, falling
// back to the category score when none of them apply to this category.
func impact(factors models.FactorSet, score float64) float64 {
	sum := 0.0
	present := 0
	for _, name := range criticalFactors {
		if v, ok := factors[name]; ok {
			sum += v
			present++
		}
	}
	if present == 0 {
		return score
	}
	return sum / float64(present)
}

func evaluateIndicators(category string, factors models.FactorSet) []string {
	indicators := []string{}
	for _, rule := range indicatorRules[category] {
		if v, ok := factors[rule.Factor]; ok && v > rule.Trigger {
			indicators = append(indicators, rule.Message)
		}
	}
	return indicators
}
