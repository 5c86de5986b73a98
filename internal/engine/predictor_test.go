package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

func TestPredictHighRisk(t *testing.T) {
	risk := models.CategoryRisk{Category: "technical", Score: 85}

	predictions := Predict(risk)
	require.Len(t, predictions, 3)

	short := predictions[models.TimeframeShort]
	assert.InDelta(t, 93.5, short.Score, 1e-9) // 85 * 1.1
	assert.Equal(t, TrendIncreasing, short.Trend)
	assert.Equal(t, 70.0, short.Confidence)

	medium := predictions[models.TimeframeMedium]
	assert.InDelta(t, 100.0, medium.Score, 1e-9) // 85 * 1.2 capped
	assert.Equal(t, TrendIncreasing, medium.Trend)
	assert.Equal(t, 60.0, medium.Confidence)

	long := predictions[models.TimeframeLong]
	assert.Equal(t, 100.0, long.Score)
	assert.Equal(t, TrendIncreasing, long.Trend)
	assert.Equal(t, 50.0, long.Confidence)
}

func TestPredictTrendActivation(t *testing.T) {
	// at 65 only the long horizon (activation 50) and the medium one
	// (activation 60) mark the trend increasing
	predictions := Predict(models.CategoryRisk{Score: 65})

	assert.Equal(t, TrendStable, predictions[models.TimeframeShort].Trend)
	assert.Equal(t, TrendIncreasing, predictions[models.TimeframeMedium].Trend)
	assert.Equal(t, TrendIncreasing, predictions[models.TimeframeLong].Trend)
}

func TestPredictLowRiskStaysStable(t *testing.T) {
	predictions := Predict(models.CategoryRisk{Score: 20})

	for _, name := range Timeframes() {
		p := predictions[name]
		assert.Equal(t, TrendStable, p.Trend, name)
		assert.LessOrEqual(t, p.Score, 100.0)
	}
	// longer horizons extrapolate further
	assert.Less(t,
		predictions[models.TimeframeShort].Score,
		predictions[models.TimeframeLong].Score)
}

func TestPredictConfidenceGrowsWithIndicators(t *testing.T) {
	base := Predict(models.CategoryRisk{Score: 50})
	four := Predict(models.CategoryRisk{Score: 50,
		Indicators: []string{"a", "b", "c", "d"}})
	six := Predict(models.CategoryRisk{Score: 50,
		Indicators: []string{"a", "b", "c", "d", "e", "f"}})

	short := models.TimeframeShort
	assert.Equal(t, 70.0, base[short].Confidence)
	assert.Equal(t, 90.0, four[short].Confidence)
	assert.Equal(t, 95.0, six[short].Confidence) // capped

	long := models.TimeframeLong
	assert.Equal(t, 50.0, base[long].Confidence)
	assert.Equal(t, 70.0, four[long].Confidence)
	assert.Equal(t, 80.0, six[long].Confidence)
}

func TestPredictDeterministic(t *testing.T) {
	risk := models.CategoryRisk{Score: 72, Indicators: []string{"a", "b"}}
	assert.Equal(t, Predict(risk), Predict(risk))
}

func TestTimeframesOrder(t *testing.T) {
	assert.Equal(t, []string{
		models.TimeframeShort, models.TimeframeMedium, models.TimeframeLong,
	}, Timeframes())
}
