package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// Collector interface that all category collectors must implement
type Collector interface {
	// Category returns the risk category this collector feeds
	Category() string

	// Name returns a human-readable name
	Name() string

	// Description returns what this collector measures
	Description() string

	// Collect gathers the category's factors using read-only collaborator
	// queries. A factor that could not be measured is filled with its
	// documented neutral default and reported in the second return value.
	// A non-nil error means the whole category failed and degrades to
	// level "unknown"; collectors never fail merely because a collaborator
	// (VCS, dependency manifest) is absent.
	Collect(ctx context.Context) (models.FactorSet, []string, error)
}

// Options carries the per-run inputs collectors need.
type Options struct {
	ProjectPath string
	PeriodDays  int
}

// Definition is one row of the static category registry: the category name,
// its weight in the overall score, its declared factor names in evaluation
// order, and the collector constructor.
type Definition struct {
	Category string
	Weight   float64
	Factors  []string
	New      func(deps Deps, opts Options) Collector
}

// Registry holds all known categories in evaluation order. Weights do not
// need to sum to 1; the aggregator normalizes by the total enabled weight.
var Registry = []Definition{
	{
		Category: "technical",
		Weight:   0.25,
		Factors:  []string{"complexity", "dependencies", "code_churn", "vulnerabilities"},
		New: func(deps Deps, opts Options) Collector {
			return &TechnicalCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "schedule",
		Weight:   0.20,
		Factors:  []string{"velocity", "activity_gap"},
		New: func(deps Deps, opts Options) Collector {
			return &ScheduleCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "quality",
		Weight:   0.15,
		Factors:  []string{"bug_density", "test_presence", "doc_presence"},
		New: func(deps Deps, opts Options) Collector {
			return &QualityCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "security",
		Weight:   0.15,
		Factors:  []string{"vulnerabilities", "outdated_ratio", "sensitive_files"},
		New: func(deps Deps, opts Options) Collector {
			return &SecurityCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "resource",
		Weight:   0.10,
		Factors:  []string{"team_size", "bus_factor"},
		New: func(deps Deps, opts Options) Collector {
			return &ResourceCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "operational",
		Weight:   0.10,
		Factors:  []string{"build_config", "ci_presence", "env_sprawl"},
		New: func(deps Deps, opts Options) Collector {
			return &OperationalCollector{deps: deps, opts: opts}
		},
	},
	{
		Category: "business",
		Weight:   0.05,
		Factors:  []string{"project_age", "release_cadence"},
		New: func(deps Deps, opts Options) Collector {
			return &BusinessCollector{deps: deps, opts: opts}
		},
	},
}

// CategoryNames returns all registered category names in registry order.
func CategoryNames() []string {
	names := make([]string, len(Registry))
	for i, def := range Registry {
		names[i] = def.Category
	}
	return names
}

// Lookup returns the definition for a category name.
func Lookup(category string) (Definition, bool) {
	for _, def := range Registry {
		if def.Category == category {
			return def, true
		}
	}
	return Definition{}, false
}
