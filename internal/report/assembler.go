package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// RunContext carries the outputs of every engine stage into assembly.
// It is threaded through explicitly rather than accumulated in shared
// state; no stage mutates another stage's output.
type RunContext struct {
	Params      models.RunParams
	Host        models.HostProfile
	Risks       map[string]models.CategoryRisk
	Overall     models.OverallRisk
	Predictions map[string]map[string]models.Prediction
	Mitigations []models.MitigationStrategy
	DataQuality models.DataQuality
	Duration    time.Duration
}

// Assemble builds the immutable RiskReport from the run's outputs. Pure
// composition: no scoring logic lives here.
func Assemble(rc RunContext) *models.RiskReport {
	return &models.RiskReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Params:      rc.Params,
		Host:        rc.Host,
		Categories:  rc.Risks,
		Overall:     rc.Overall,
		Predictions: rc.Predictions,
		Mitigations: rc.Mitigations,
		DataQuality: rc.DataQuality,
		DurationMs:  rc.Duration.Milliseconds(),
	}
}
