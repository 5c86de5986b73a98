package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// JSONWriter persists the report as a date-stamped JSON document. This
// file is the sole contract with the external HTML renderer.
type JSONWriter struct {
	dir      string
	lastPath string
}

// compile-time interface check
var _ Writer = (*JSONWriter)(nil)

// NewJSONWriter creates a JSON report writer targeting the given directory.
func NewJSONWriter(dir string) *JSONWriter {
	return &JSONWriter{dir: dir}
}

// Write marshals the report and writes risk-report-YYYY-MM-DD.json.
func (w *JSONWriter) Write(report *models.RiskReport) error {
	filename := "risk-report-" + report.GeneratedAt.Format("2006-01-02") + ".json"
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}

	w.lastPath = path
	return nil
}

// LastPath returns the path of the most recently written report.
func (w *JSONWriter) LastPath() string { return w.lastPath }

// Close is a no-op; every Write is already durable.
func (w *JSONWriter) Close() error { return nil }
