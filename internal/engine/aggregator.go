package engine

import (
	"github.com/glebbrain/manager-arent-ai-sub002/internal/collectors"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// Aggregate combines the category risks of all enabled categories into one
// overall score, weighted per the registry and normalized by the total
// enabled weight.
//
// Categories at level "unknown" still contribute their zero score together
// with their full weight. Missing data therefore pulls the overall score
// down instead of being ignored, which surfaces data-quality gaps in the
// headline number.
func Aggregate(risks map[string]models.CategoryRisk, thresholds models.Thresholds) models.OverallRisk {
	weighted := 0.0
	totalWeight := 0.0

	for _, def := range collectors.Registry {
		risk, ok := risks[def.Category]
		if !ok {
			continue // category not enabled for this run
		}
		weighted += risk.Score * def.Weight
		totalWeight += def.Weight
	}

	overall := models.OverallRisk{}
	if totalWeight > 0 {
		overall.Score = weighted / totalWeight
	}
	overall.Level = models.LevelFromScore(overall.Score, thresholds)
	return overall
}
