package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/output"
)

var (
	historyDB    string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analysis runs from the history database",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "history-db", "runs.db",
		"SQLite file recording run history")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"Maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := output.NewSQLiteWriter(historyDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %7s  %-9s  %s\n",
		"RUN", "GENERATED", "SCORE", "LEVEL", "PROJECT")
	for _, run := range runs {
		fmt.Printf("%-36s  %-20s  %7.1f  %-9s  %s\n",
			run.ID,
			run.GeneratedAt.Format("2006-01-02 15:04:05"),
			run.OverallScore,
			run.OverallLevel,
			run.ProjectPath)
	}
	return nil
}
