package engine

import "github.com/glebbrain/manager-arent-ai-sub002/internal/models"

// Prediction constants. The predictor is a closed-form heuristic, not a
// statistical model: identical inputs always produce identical forecasts.
const (
	confidenceBase = 50.0
	confidenceCap  = 95.0

	TrendIncreasing = "increasing"
	TrendStable     = "stable"
)

type timeframe struct {
	name       string
	multiplier float64
	activation float64 // score above this marks the trend "increasing"
	bonus      float64 // confidence bonus: nearer forecasts are surer
}

var timeframes = []timeframe{
	{models.TimeframeShort, 1.1, 70, 20},
	{models.TimeframeMedium, 1.2, 60, 10},
	{models.TimeframeLong, 1.3, 50, 0},
}

// Timeframes returns the prediction horizon names in order.
func Timeframes() []string {
	names := make([]string, len(timeframes))
	for i, tf := range timeframes {
		names[i] = tf.name
	}
	return names
}

// Predict extrapolates a category's score into one forecast per timeframe.
func Predict(risk models.CategoryRisk) map[string]models.Prediction {
	predictions := make(map[string]models.Prediction, len(timeframes))
	indicators := len(risk.Indicators)

	for _, tf := range timeframes {
		predicted := risk.Score * tf.multiplier
		if predicted > 100 {
			predicted = 100
		}

		trend := TrendStable
		if risk.Score > tf.activation {
			trend = TrendIncreasing
		}

		confidence := confidenceBase + tf.bonus
		if indicators > 3 {
			confidence += 20
		}
		if indicators > 5 {
			confidence += 10
		}
		if confidence > confidenceCap {
			confidence = confidenceCap
		}
		if confidence < 0 {
			confidence = 0
		}

		predictions[tf.name] = models.Prediction{
			Score:      predicted,
			Trend:      trend,
			Confidence: confidence,
		}
	}

	return predictions
}
