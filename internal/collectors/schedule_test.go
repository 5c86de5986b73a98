package collectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCollect(t *testing.T) {
	deps := testDeps()
	deps.History = &fakeHistory{commits: 15, lastCommit: 4}

	c := &ScheduleCollector{deps: deps, opts: Options{PeriodDays: 30}}
	factors, defaulted, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, defaulted)

	assert.InDelta(t, 5.0, factors["velocity"], 1e-9)      // 0.5 commits/day * 10
	assert.InDelta(t, 20.0, factors["activity_gap"], 1e-9) // 4 days * 5
}

func TestScheduleIdleRepository(t *testing.T) {
	deps := testDeps()
	deps.History = &fakeHistory{commits: 0, lastCommit: 45}

	c := &ScheduleCollector{deps: deps, opts: Options{PeriodDays: 30}}
	factors, _, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, factors["velocity"])
	assert.Equal(t, 100.0, factors["activity_gap"]) // clamped
}

func TestScheduleDefaultsWithoutHistory(t *testing.T) {
	deps := testDeps()
	deps.History = &fakeHistory{err: ErrNoHistory}

	c := &ScheduleCollector{deps: deps, opts: Options{PeriodDays: 30}}
	factors, defaulted, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, defaultVelocity, factors["velocity"])
	assert.Equal(t, defaultActivityGap, factors["activity_gap"])
	assert.ElementsMatch(t, []string{"velocity", "activity_gap"}, defaulted)
}
