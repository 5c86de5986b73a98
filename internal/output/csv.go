package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// CSVWriter writes one row per category with its score and predictions.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	path   string
}

// compile-time interface check
var _ Writer = (*CSVWriter)(nil)

// NewCSVWriter creates a new CSV writer
func NewCSVWriter(path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}

	w := csv.NewWriter(file)
	header := []string{
		"run_id", "generated_at", "category", "score", "level",
		"probability", "impact",
		"predicted_short", "predicted_medium", "predicted_long",
	}
	if err := w.Write(header); err != nil {
		file.Close()
		return nil, &PersistenceError{Path: path, Err: err}
	}

	return &CSVWriter{file: file, writer: w, path: path}, nil
}

// Write appends the report's categories to the CSV file.
func (cw *CSVWriter) Write(report *models.RiskReport) error {
	for _, category := range report.Params.EnabledCategories {
		risk, ok := report.Categories[category]
		if !ok {
			continue
		}
		record := []string{
			report.ID,
			report.GeneratedAt.Format("2006-01-02T15:04:05Z"),
			category,
			formatFloat(risk.Score),
			risk.Level,
			formatFloat(risk.Probability),
			formatFloat(risk.Impact),
			predictedScore(report, models.TimeframeShort, category),
			predictedScore(report, models.TimeframeMedium, category),
			predictedScore(report, models.TimeframeLong, category),
		}
		if err := cw.writer.Write(record); err != nil {
			return &PersistenceError{Path: cw.path, Err: err}
		}
	}
	return nil
}

// Close flushes and closes the CSV writer
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.file.Close()
		return &PersistenceError{Path: cw.path, Err: err}
	}
	return cw.file.Close()
}

func predictedScore(report *models.RiskReport, timeframe, category string) string {
	if byCategory, ok := report.Predictions[timeframe]; ok {
		if p, ok := byCategory[category]; ok {
			return formatFloat(p.Score)
		}
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
