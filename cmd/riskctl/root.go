package main

import (
	"github.com/spf13/cobra"
)

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "riskctl",
	Short: "Multi-factor risk scoring and prediction for software projects",
	Long: `riskctl scores a project's risk across technical, schedule, quality,
security, resource, operational, and business categories, predicts
short/medium/long-term trends, and recommends mitigations.

The engine is a deterministic weighted-scoring model: identical inputs
always produce identical scores.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text",
		"Log format: text or json")
}
