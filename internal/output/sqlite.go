package output

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// SQLiteWriter appends each run to a local history database so scores can
// be compared across runs.
type SQLiteWriter struct {
	db   *sql.DB
	path string
}

// compile-time interface check
var _ Writer = (*SQLiteWriter)(nil)

// RunSummary is one row of the run history.
type RunSummary struct {
	ID           string
	GeneratedAt  time.Time
	ProjectPath  string
	PeriodDays   int
	OverallScore float64
	OverallLevel string
	DurationMs   int64
}

// NewSQLiteWriter opens (or creates) the history database.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}

	w := &SQLiteWriter{db: db, path: path}
	if err := w.createSchema(); err != nil {
		db.Close()
		return nil, &PersistenceError{Path: path, Err: err}
	}
	return w, nil
}

func (w *SQLiteWriter) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		generated_at TEXT NOT NULL,
		project_path TEXT NOT NULL,
		period_days INTEGER NOT NULL,
		overall_score REAL NOT NULL,
		overall_level TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS category_scores (
		run_id TEXT NOT NULL REFERENCES runs(id),
		category TEXT NOT NULL,
		score REAL NOT NULL,
		level TEXT NOT NULL,
		probability REAL NOT NULL,
		impact REAL NOT NULL,
		indicators TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at);
	CREATE INDEX IF NOT EXISTS idx_category_scores_run ON category_scores(run_id);
	`
	_, err := w.db.Exec(schema)
	return err
}

// Write appends the run and its per-category scores in one transaction.
func (w *SQLiteWriter) Write(report *models.RiskReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return &PersistenceError{Path: w.path, Err: err}
	}

	tx, err := w.db.Begin()
	if err != nil {
		return &PersistenceError{Path: w.path, Err: err}
	}

	_, err = tx.Exec(
		`INSERT INTO runs (id, generated_at, project_path, period_days,
			overall_score, overall_level, duration_ms, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.GeneratedAt.Format(time.RFC3339),
		report.Params.ProjectPath,
		report.Params.AnalysisPeriodDays,
		report.Overall.Score,
		report.Overall.Level,
		report.DurationMs,
		string(reportJSON),
	)
	if err != nil {
		tx.Rollback()
		return &PersistenceError{Path: w.path, Err: err}
	}

	stmt, err := tx.Prepare(
		`INSERT INTO category_scores (run_id, category, score, level, probability, impact, indicators)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return &PersistenceError{Path: w.path, Err: err}
	}
	defer stmt.Close()

	for _, category := range report.Params.EnabledCategories {
		risk, ok := report.Categories[category]
		if !ok {
			continue
		}
		indicators, err := json.Marshal(risk.Indicators)
		if err != nil {
			tx.Rollback()
			return &PersistenceError{Path: w.path, Err: err}
		}
		if _, err := stmt.Exec(report.ID, category, risk.Score, risk.Level,
			risk.Probability, risk.Impact, string(indicators)); err != nil {
			tx.Rollback()
			return &PersistenceError{Path: w.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &PersistenceError{Path: w.path, Err: err}
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (w *SQLiteWriter) ListRuns(limit int) ([]RunSummary, error) {
	rows, err := w.db.Query(
		`SELECT id, generated_at, project_path, period_days,
			overall_score, overall_level, duration_ms
		 FROM runs ORDER BY generated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var run RunSummary
		var generatedAt string
		if err := rows.Scan(&run.ID, &generatedAt, &run.ProjectPath, &run.PeriodDays,
			&run.OverallScore, &run.OverallLevel, &run.DurationMs); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			run.GeneratedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the history database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
