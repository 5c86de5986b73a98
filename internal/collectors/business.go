package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	defaultProjectAge     = 40.0
	defaultReleaseCadence = 50.0

	// tagDiscount is how much each release tag lowers cadence risk.
	tagDiscount = 12.0
	cadenceMin  = 10.0
)

// BusinessCollector measures project maturity signals.
type BusinessCollector struct {
	deps Deps
	opts Options
}

func (c *BusinessCollector) Category() string { return "business" }
func (c *BusinessCollector) Name() string     { return "Business Risk" }
func (c *BusinessCollector) Description() string {
	return "Measures project maturity and release cadence"
}

func (c *BusinessCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	if age, err := c.deps.History.AgeDays(ctx); err == nil {
		factors["project_age"] = ageRisk(age)
	} else {
		factors["project_age"] = defaultProjectAge
		defaulted = append(defaulted, "project_age")
	}

	if tags, err := c.deps.History.TagCount(ctx); err == nil {
		cadence := 100 - float64(tags)*tagDiscount
		if cadence < cadenceMin {
			cadence = cadenceMin
		}
		factors["release_cadence"] = models.Clamp(cadence)
	} else {
		factors["release_cadence"] = defaultReleaseCadence
		defaulted = append(defaulted, "release_cadence")
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}

// ageRisk treats very young projects as risky and mature ones as settled.
func ageRisk(days int) float64 {
	switch {
	case days < 30:
		return 70
	case days < 180:
		return 40
	default:
		return 15
	}
}
