// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/gateway"
	"github.com/naka-gawa/github-stats-card/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "github-stats-card",
	Short: "Renders a GitHub repository portfolio as an SVG stats card.",
	Long: `github-stats-card summarizes the repositories of the authenticated GitHub user
(top languages, lifetime commits, recent commits and total stars) and renders
the summary as an SVG chart that can be embedded in a profile page.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to the TOML rules file")
	rootCmd.PersistentFlags().String("colors", "", "Local copy of linguist languages.yml (skips the download)")
}

// newLogger writes info and above to stderr, debug too with --verbose.
func newLogger(cmd *cobra.Command, w io.Writer) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setup loads the rules file and the environment, then builds the aggregator.
func setup(cmd *cobra.Command, logger *log.Logger) (*usecase.Aggregator, config.Config, config.Env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, config.Config{}, config.Env{}, err
	}

	env, err := config.LoadEnv()
	if err != nil {
		return nil, config.Config{}, config.Env{}, err
	}

	var opts []usecase.AggregatorOption
	if colorsPath, _ := cmd.Flags().GetString("colors"); colorsPath != "" {
		colors, err := gateway.LoadLanguageColors(colorsPath)
		if err != nil {
			return nil, config.Config{}, config.Env{}, err
		}
		logger.Debug("using local language colors", "path", colorsPath, "count", len(colors))
		opts = append(opts, usecase.WithColors(colors))
	}

	githubGateway, err := gateway.NewGitHubGateway(env.Token, logger)
	if err != nil {
		return nil, config.Config{}, config.Env{}, err
	}
	return usecase.NewAggregator(githubGateway, logger, opts...), cfg, env, nil
}
