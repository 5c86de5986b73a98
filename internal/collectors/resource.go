package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	defaultTeamSize  = 50.0
	defaultBusFactor = 50.0
)

// ResourceCollector measures team size and knowledge concentration from
// commit authorship.
type ResourceCollector struct {
	deps Deps
	opts Options
}

func (c *ResourceCollector) Category() string { return "resource" }
func (c *ResourceCollector) Name() string     { return "Resource Risk" }
func (c *ResourceCollector) Description() string {
	return "Measures active team size and knowledge concentration"
}

func (c *ResourceCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	contributors, err := c.deps.History.Contributors(ctx, c.opts.PeriodDays)
	if err != nil {
		factors["team_size"] = defaultTeamSize
		factors["bus_factor"] = defaultBusFactor
		defaulted = append(defaulted, "team_size", "bus_factor")
		return factors, defaulted, nil
	}

	factors["team_size"] = teamSizeRisk(len(contributors))
	factors["bus_factor"] = busFactorRisk(len(contributors))

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}

// teamSizeRisk maps active contributor count to risk: a five-person team
// (or larger) carries none, a solo project nearly all of it.
func teamSizeRisk(n int) float64 {
	if n <= 0 {
		return 100
	}
	return models.Clamp(100 - float64(n-1)*25)
}

// busFactorRisk is a fixed ladder: knowledge concentrated in one or two
// people is the dominant resource risk.
func busFactorRisk(n int) float64 {
	switch {
	case n <= 1:
		return 90
	case n == 2:
		return 60
	case n == 3:
		return 35
	default:
		return 15
	}
}
