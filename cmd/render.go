package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders the stats card as SVG",
	Long:  `Fetches the repositories of the authenticated user, aggregates them and writes the SVG stats card to a file or standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd, os.Stderr)
		aggregator, cfg, _, err := setup(cmd, logger)
		if err != nil {
			return err
		}

		doc, _, err := aggregator.Render(cmd.Context(), cfg, time.Now())
		if err != nil {
			return fmt.Errorf("failed to render stats card: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(doc.Bytes())
			return err
		}
		if err := os.WriteFile(output, doc.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		logger.Info("stats card written", "path", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: standard output)")
}
