package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShape(t *testing.T) {
	assert.Equal(t, []string{
		"technical", "schedule", "quality", "security",
		"resource", "operational", "business",
	}, CategoryNames())

	total := 0.0
	for _, def := range Registry {
		assert.NotEmpty(t, def.Factors, def.Category)
		assert.Greater(t, def.Weight, 0.0, def.Category)
		require.NotNil(t, def.New, def.Category)
		total += def.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestRegistryConstructors(t *testing.T) {
	deps := testDeps()
	opts := Options{ProjectPath: "/tmp/project", PeriodDays: 30}

	for _, def := range Registry {
		c := def.New(deps, opts)
		require.NotNil(t, c, def.Category)
		assert.Equal(t, def.Category, c.Category())
		assert.NotEmpty(t, c.Name())
		assert.NotEmpty(t, c.Description())
	}
}

func TestLookup(t *testing.T) {
	def, ok := Lookup("technical")
	require.True(t, ok)
	assert.Equal(t, 0.25, def.Weight)

	_, ok = Lookup("astrology")
	assert.False(t, ok)
}
