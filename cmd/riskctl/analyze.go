package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/collectors"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/config"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/engine"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/logging"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/output"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/progress"
	"github.com/glebbrain/manager-arent-ai-sub002/internal/report"
)

var (
	analyzeProject    string
	analyzePeriod     int
	analyzeCategories []string
	analyzeOutputDir  string
	analyzeHistoryDB  string
	analyzeCSV        string
	analyzeConfigFile string
	analyzeTimeout    int
	analyzeHigh       float64
	analyzeMedium     float64
	analyzeLow        float64
	analyzeJSON       bool
	analyzeQuiet      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full risk analysis of a project",
	Long: `Collect risk factors across all enabled categories, score and
aggregate them, predict trends, and write the report JSON.

Examples:
  riskctl analyze --project .
  riskctl analyze --project ./repo --period 90
  riskctl analyze --project . --categories technical,security
  riskctl analyze --project . --high 70 --medium 50 --low 30
  riskctl analyze --project . --history-db runs.db --csv scores.csv`,
	RunE: runAnalyze,
}

func init() {
	registerAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func registerAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&analyzeProject, "project", ".",
		"Project path to analyze")
	cmd.Flags().IntVar(&analyzePeriod, "period", 30,
		"Analysis window in days")
	cmd.Flags().StringSliceVar(&analyzeCategories, "categories", nil,
		"Categories to analyze (default: all)")
	cmd.Flags().StringVar(&analyzeOutputDir, "output-dir", ".",
		"Directory for the report JSON")
	cmd.Flags().StringVar(&analyzeHistoryDB, "history-db", "",
		"SQLite file recording run history")
	cmd.Flags().StringVar(&analyzeCSV, "csv", "",
		"Also write per-category scores as CSV")
	cmd.Flags().StringVar(&analyzeConfigFile, "config", "",
		"YAML config file (flags override it)")
	cmd.Flags().IntVar(&analyzeTimeout, "timeout", 60,
		"Total timeout in seconds")
	cmd.Flags().Float64Var(&analyzeHigh, "high", 80,
		"High risk threshold")
	cmd.Flags().Float64Var(&analyzeMedium, "medium", 60,
		"Medium risk threshold")
	cmd.Flags().Float64Var(&analyzeLow, "low", 40,
		"Low risk threshold")
	cmd.Flags().BoolVar(&analyzeJSON, "json", false,
		"Print the report JSON path only")
	cmd.Flags().BoolVar(&analyzeQuiet, "quiet", false,
		"Suppress progress and summary output")
}

// buildConfig resolves the run configuration: defaults, then the config
// file, then only the flags the user actually passed. A flag left at its
// default never clobbers a value the file set.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if analyzeConfigFile != "" {
		if err := config.LoadFile(analyzeConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("project") || cfg.ProjectPath == "" {
		cfg.ProjectPath = analyzeProject
	}
	if flags.Changed("period") {
		cfg.AnalysisPeriodDays = analyzePeriod
	}
	if flags.Changed("categories") {
		cfg.EnabledCategories = analyzeCategories
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = analyzeOutputDir
	}
	if flags.Changed("history-db") {
		cfg.HistoryDB = analyzeHistoryDB
	}
	if flags.Changed("csv") {
		cfg.CSVPath = analyzeCSV
	}
	if flags.Changed("timeout") {
		cfg.Timeout = time.Duration(analyzeTimeout) * time.Second
	}
	if flags.Changed("high") {
		cfg.Thresholds.High = analyzeHigh
	}
	if flags.Changed("medium") {
		cfg.Thresholds.Medium = analyzeMedium
	}
	if flags.Changed("low") {
		cfg.Thresholds.Low = analyzeLow
	}
	if rootCmd.PersistentFlags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = flagLogLevel
	}
	if rootCmd.PersistentFlags().Changed("log-format") || cfg.LogFormat == "" {
		cfg.LogFormat = flagLogFormat
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Configuration problems surface before any collection starts.
	if err := cfg.Validate(collectors.CategoryNames()); err != nil {
		return err
	}

	deps := collectors.Deps{
		Scanner: collectors.NewFSScanner(),
		History: collectors.NewGitHistory(cfg.ProjectPath),
		Audit:   collectors.NewManifestAuditor(cfg.ProjectPath),
	}

	runner := engine.NewRunner(cfg, deps, logger)
	tracker := progress.NewTracker(len(cfg.EnabledCategories), analyzeQuiet || analyzeJSON)
	runner.SetProgress(tracker)

	rpt, err := runner.Run(cmd.Context())
	tracker.Finish()
	if err != nil {
		return err
	}

	writers := []output.Writer{output.NewJSONWriter(cfg.OutputDir)}
	if cfg.HistoryDB != "" {
		hw, err := output.NewSQLiteWriter(cfg.HistoryDB)
		if err != nil {
			return err
		}
		writers = append(writers, hw)
	}
	if cfg.CSVPath != "" {
		cw, err := output.NewCSVWriter(cfg.CSVPath)
		if err != nil {
			return err
		}
		writers = append(writers, cw)
	}

	multi := output.NewMultiWriter(writers...)
	writeErr := multi.Write(rpt)
	if closeErr := multi.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		var perr *output.PersistenceError
		if errors.As(writeErr, &perr) {
			logger.Error("report computed but not persisted", "error", perr)
		}
		return writeErr
	}

	jsonWriter := writers[0].(*output.JSONWriter)
	if analyzeJSON {
		fmt.Println(jsonWriter.LastPath())
		return nil
	}
	if !analyzeQuiet {
		fmt.Println()
		fmt.Print(report.Summarize(rpt))
		fmt.Printf("\nReport written to %s\n", jsonWriter.LastPath())
	}
	return nil
}
