package models

import "time"

// Risk levels assigned to category scores via configurable thresholds.
const (
	LevelVeryLow = "very-low"
	LevelLow     = "low"
	LevelMedium  = "medium"
	LevelHigh    = "high"

	// LevelUnknown marks a category whose collector produced no factors at all.
	LevelUnknown = "unknown"
)

// Prediction timeframes.
const (
	TimeframeShort  = "short"
	TimeframeMedium = "medium"
	TimeframeLong   = "long"
)

// Thresholds are the score cutoffs for level assignment.
type Thresholds struct {
	High   float64 `json:"high" yaml:"high"`
	Medium float64 `json:"medium" yaml:"medium"`
	Low    float64 `json:"low" yaml:"low"`
}

// DefaultThresholds returns the standard 80/60/40 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 80, Medium: 60, Low: 40}
}

// LevelFromScore returns a human-readable risk level from a category score
func LevelFromScore(score float64, t Thresholds) string {
	switch {
	case score >= t.High:
		return LevelHigh
	case score >= t.Medium:
		return LevelMedium
	case score >= t.Low:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

// FactorSet maps factor name to a normalized risk value in [0,100].
// A factor a collector could not measure is absent, not zero.
type FactorSet map[string]float64

// Clamp bounds a factor value to [0,100] before it leaves a collector.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CollectionResult represents the outcome of one category collector
type CollectionResult struct {
	Category  string
	Factors   FactorSet
	Defaulted []string // factor names filled with their documented neutral default
	Err       error
	Duration  time.Duration
}

// CategoryRisk is the scored view of a single category. Immutable once built.
type CategoryRisk struct {
	Category    string    `json:"category"`
	Score       float64   `json:"score"`
	Level       string    `json:"level"`
	Probability float64   `json:"probability"`
	Impact      float64   `json:"impact"`
	Indicators  []string  `json:"indicators"`
	Factors     FactorSet `json:"factors"`
}

// OverallRisk is the weight-normalized combination of all enabled categories.
type OverallRisk struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// Prediction extrapolates a category score over one timeframe.
type Prediction struct {
	Score      float64 `json:"score"`
	Trend      string  `json:"trend"`      // "increasing" or "stable"
	Confidence float64 `json:"confidence"` // [0,95]
}

// MitigationStrategy is a recommended action for a medium or high category.
type MitigationStrategy struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Priority string `json:"priority"` // "high" or "medium"
	Effort   string `json:"effort"`   // "low", "medium" or "high"
}

// RunParams records the resolved inputs of an analysis run.
type RunParams struct {
	ProjectPath        string     `json:"project_path"`
	AnalysisPeriodDays int        `json:"analysis_period_days"`
	EnabledCategories  []string   `json:"enabled_categories"`
	Thresholds         Thresholds `json:"thresholds"`
}

// HostProfile describes the machine the analysis ran on.
type HostProfile struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	Architecture    string `json:"architecture"`
	NumCPUs         int    `json:"num_cpus"`
}

// DataQuality surfaces which factors were defaulted or lost per category.
type DataQuality struct {
	DefaultedFactors map[string][]string `json:"defaulted_factors,omitempty"`
	FailedCategories []string            `json:"failed_categories,omitempty"`
}

// RiskReport is the root aggregate of one analysis run. It is constructed
// once by the assembler and never mutated afterwards; the JSON encoding of
// this struct is the sole contract with the external renderer.
type RiskReport struct {
	ID          string                           `json:"id"`
	GeneratedAt time.Time                        `json:"generated_at"`
	Params      RunParams                        `json:"params"`
	Host        HostProfile                      `json:"host"`
	Categories  map[string]CategoryRisk          `json:"categories"`
	Overall     OverallRisk                      `json:"overall"`
	Predictions map[string]map[string]Prediction `json:"predictions"` // timeframe -> category -> prediction
	Mitigations []MitigationStrategy             `json:"mitigations"`
	DataQuality DataQuality                      `json:"data_quality"`
	DurationMs  int64                            `json:"duration_ms"`
}
