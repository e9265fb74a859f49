package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/usecase"
)

// statsOutput is the JSON document printed by the stats command.
type statsOutput struct {
	*domain.Summary
	Commits domain.Distribution `json:"commit_distribution"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregates the repository portfolio and outputs it as JSON",
	Long:  `Aggregates languages, commit activity and stars of the authenticated user's repositories, and outputs the result in JSON format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd, os.Stderr)
		aggregator, cfg, _, err := setup(cmd, logger)
		if err != nil {
			return err
		}

		summary, err := aggregator.Summary(cmd.Context(), cfg, time.Now())
		if err != nil {
			return fmt.Errorf("failed to aggregate stats: %w", err)
		}

		out := statsOutput{
			Summary: summary,
			Commits: usecase.Describe(usecase.LifetimeCommits(summary.Activity)),
		}
		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
