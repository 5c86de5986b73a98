package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromScore(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		score float64
		want  string
	}{
		{0, LevelVeryLow},
		{39.9, LevelVeryLow},
		{40, LevelLow},
		{50, LevelLow},
		{59.9, LevelLow},
		{60, LevelMedium},
		{79.9, LevelMedium},
		{80, LevelHigh},
		{100, LevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromScore(tt.score, thresholds),
			"score %.1f", tt.score)
	}
}

func TestLevelFromScoreCustomThresholds(t *testing.T) {
	thresholds := Thresholds{High: 70, Medium: 50, Low: 30}

	assert.Equal(t, LevelHigh, LevelFromScore(70, thresholds))
	assert.Equal(t, LevelMedium, LevelFromScore(50, thresholds))
	assert.Equal(t, LevelLow, LevelFromScore(30, thresholds))
	assert.Equal(t, LevelVeryLow, LevelFromScore(29.9, thresholds))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 0.0, Clamp(0))
	assert.Equal(t, 42.5, Clamp(42.5))
	assert.Equal(t, 100.0, Clamp(100))
	assert.Equal(t, 100.0, Clamp(250))
}
