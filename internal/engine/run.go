package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/collectors"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/config"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/report"
)

// Progress receives collector lifecycle events. Implemented by the
// terminal progress tracker; a nil Progress disables reporting.
type Progress interface {
	Start(name string)
	Success(category string, factorCount int)
	Fail(category string, err error)
}

// Runner executes one analysis run end to end: parallel collection, then
// scoring, aggregation, prediction, mitigation, and report assembly.
type Runner struct {
	cfg      config.Config
	deps     collectors.Deps
	logger   *slog.Logger
	progress Progress
}

// NewRunner creates a Runner. The config must already be validated.
func NewRunner(cfg config.Config, deps collectors.Deps, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, deps: deps, logger: logger}
}

// SetProgress attaches a collector progress sink.
func (r *Runner) SetProgress(p Progress) {
	r.progress = p
}

// Run produces a complete RiskReport or fails fast. Collector failures
// never abort the run: the affected category degrades to level "unknown".
// Cancellation of ctx abandons in-flight collectors, whose categories
// degrade the same way.
func (r *Runner) Run(ctx context.Context) (*models.RiskReport, error) {
	start := time.Now()

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	defs := r.enabledDefinitions()
	results := r.collect(ctx, defs)

	thresholds := r.cfg.Thresholds
	risks := make(map[string]models.CategoryRisk, len(defs))
	quality := models.DataQuality{DefaultedFactors: map[string][]string{}}

	for i, def := range defs {
		res := results[i]
		if res.Err != nil {
			r.logger.Warn("collector failed, category degrades to unknown",
				"category", def.Category, "error", res.Err)
			quality.FailedCategories = append(quality.FailedCategories, def.Category)
			risks[def.Category] = ScoreCategory(def, nil, thresholds)
			continue
		}
		if len(res.Defaulted) > 0 {
			quality.DefaultedFactors[def.Category] = res.Defaulted
		}
		risks[def.Category] = ScoreCategory(def, res.Factors, thresholds)
	}
	if len(quality.DefaultedFactors) == 0 {
		quality.DefaultedFactors = nil
	}

	overall := Aggregate(risks, thresholds)

	predictions := make(map[string]map[string]models.Prediction)
	for _, name := range Timeframes() {
		predictions[name] = make(map[string]models.Prediction, len(defs))
	}
	for category, risk := range risks {
		for name, prediction := range Predict(risk) {
			predictions[name][category] = prediction
		}
	}

	mitigations := Advise(risks)

	rpt := report.Assemble(report.RunContext{
		Params:      r.cfg.Params(),
		Host:        collectors.CollectHostProfile(),
		Risks:       risks,
		Overall:     overall,
		Predictions: predictions,
		Mitigations: mitigations,
		DataQuality: quality,
		Duration:    time.Since(start),
	})

	r.logger.Info("analysis complete",
		"overall_score", overall.Score,
		"overall_level", overall.Level,
		"categories", len(risks),
		"mitigations", len(mitigations),
		"duration", time.Since(start).Round(time.Millisecond))

	return rpt, nil
}

func (r *Runner) enabledDefinitions() []collectors.Definition {
	var defs []collectors.Definition
	for _, def := range collectors.Registry {
		if r.cfg.Enabled(def.Category) {
			defs = append(defs, def)
		}
	}
	return defs
}

// collect runs every enabled collector in parallel. Each goroutine writes
// only its own slot of the results slice, so the join is race-free without
// locks. A failing or cancelled collector affects only its own slot.
func (r *Runner) collect(ctx context.Context, defs []collectors.Definition) []models.CollectionResult {
	opts := collectors.Options{
		ProjectPath: r.cfg.ProjectPath,
		PeriodDays:  r.cfg.AnalysisPeriodDays,
	}

	results := make([]models.CollectionResult, len(defs))
	g := new(errgroup.Group)

	for i, def := range defs {
		i, def := i, def
		c := def.New(r.deps, opts)
		if r.progress != nil {
			r.progress.Start(c.Name())
		}
		g.Go(func() error {
			t0 := time.Now()
			factors, defaulted, err := c.Collect(ctx)
			results[i] = models.CollectionResult{
				Category:  def.Category,
				Factors:   factors,
				Defaulted: defaulted,
				Err:       err,
				Duration:  time.Since(t0),
			}
			if r.progress != nil {
				if err != nil {
					r.progress.Fail(def.Category, err)
				} else {
					r.progress.Success(def.Category, len(factors))
				}
			}
			return nil
		})
	}

	// Collectors isolate their own failures; the group only joins.
	_ = g.Wait()
	return results
}
