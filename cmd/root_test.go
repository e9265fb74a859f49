package cmd

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Verbose(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected log.Level
	}{
		{name: "default is info", args: nil, expected: log.InfoLevel},
		{name: "verbose is debug", args: []string{"--verbose"}, expected: log.DebugLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().BoolP("verbose", "v", false, "")
			require.NoError(t, cmd.ParseFlags(tc.args))

			logger := newLogger(cmd, &bytes.Buffer{})

			assert.Equal(t, tc.expected, logger.GetLevel())
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"render", "stats", "serve"})
}
