package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAnalyzeFlagSet rebinds the analyze flag variables onto a throwaway
// command, resetting their values and Changed state between tests.
func newAnalyzeFlagSet() *cobra.Command {
	cmd := &cobra.Command{Use: "analyze"}
	registerAnalyzeFlags(cmd)
	return cmd
}

func writeConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskctl.yaml")
	content := `
project_path: /srv/app
analysis_period_days: 90
enabled_categories: [technical, security]
thresholds:
  high: 75
  medium: 55
  low: 35
output_dir: /var/reports
history_db: /var/reports/runs.db
timeout: 30s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildConfigFileValuesSurviveUnsetFlags(t *testing.T) {
	cmd := newAnalyzeFlagSet()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", writeConfigFile(t),
	}))

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "/srv/app", cfg.ProjectPath)
	assert.Equal(t, 90, cfg.AnalysisPeriodDays)
	assert.Equal(t, []string{"technical", "security"}, cfg.EnabledCategories)
	assert.Equal(t, 75.0, cfg.Thresholds.High)
	assert.Equal(t, 55.0, cfg.Thresholds.Medium)
	assert.Equal(t, 35.0, cfg.Thresholds.Low)
	assert.Equal(t, "/var/reports", cfg.OutputDir)
	assert.Equal(t, "/var/reports/runs.db", cfg.HistoryDB)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestBuildConfigPassedFlagsOverrideFile(t *testing.T) {
	cmd := newAnalyzeFlagSet()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", writeConfigFile(t),
		"--project", "/other/app",
		"--period", "14",
		"--high", "85",
		"--output-dir", "/tmp/out",
	}))

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "/other/app", cfg.ProjectPath)
	assert.Equal(t, 14, cfg.AnalysisPeriodDays)
	assert.Equal(t, 85.0, cfg.Thresholds.High)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)

	// flags not passed still come from the file
	assert.Equal(t, 55.0, cfg.Thresholds.Medium)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestBuildConfigDefaultsWithoutFile(t *testing.T) {
	cmd := newAnalyzeFlagSet()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.ProjectPath)
	assert.Equal(t, 30, cfg.AnalysisPeriodDays)
	assert.Equal(t, 80.0, cfg.Thresholds.High)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestBuildConfigMissingFile(t *testing.T) {
	cmd := newAnalyzeFlagSet()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
	}))

	_, err := buildConfig(cmd)
	assert.Error(t, err)
}
