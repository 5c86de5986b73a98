package output

import (
	"fmt"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// Writer is the interface that all report writers must implement
type Writer interface {
	Write(report *models.RiskReport) error
	Close() error
}

// PersistenceError wraps a failure to durably write a report. It is
// surfaced only after the report is fully assembled in memory, so callers
// can retry persistence without re-running the analysis.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting report to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
