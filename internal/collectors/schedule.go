package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	// velocityScale converts commits per day into the velocity factor:
	// ten commits a day saturates the scale.
	velocityScale = 10.0

	// gapScale converts days since the last commit into the activity_gap
	// factor: a twenty-day silence saturates the scale.
	gapScale = 5.0

	defaultVelocity    = 30.0
	defaultActivityGap = 50.0
)

// ScheduleCollector measures delivery pace from commit activity.
type ScheduleCollector struct {
	deps Deps
	opts Options
}

func (c *ScheduleCollector) Category() string { return "schedule" }
func (c *ScheduleCollector) Name() string     { return "Schedule Risk" }
func (c *ScheduleCollector) Description() string {
	return "Measures delivery pace and activity gaps from VCS history"
}

func (c *ScheduleCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	if commits, err := c.deps.History.CommitCount(ctx, c.opts.PeriodDays); err == nil {
		perDay := float64(commits) / float64(c.opts.PeriodDays)
		factors["velocity"] = models.Clamp(perDay * velocityScale)
	} else {
		factors["velocity"] = defaultVelocity
		defaulted = append(defaulted, "velocity")
	}

	if days, err := c.deps.History.DaysSinceLastCommit(ctx); err == nil {
		factors["activity_gap"] = models.Clamp(float64(days) * gapScale)
	} else {
		factors["activity_gap"] = defaultActivityGap
		defaulted = append(defaulted, "activity_gap")
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}
