// Package cli implements the tick command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nicou/tick-api/tick"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tick",
	Short: "tick – command line access to the Tick time-tracking API",
	Long: `tick talks to the Tick v2 API using credentials from the environment:
TICK_SUBSCRIPTION_ID, TICK_API_TOKEN and TICK_USER_AGENT.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request to stderr")
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(logCmd)
}

// newClient builds an API client from the environment.
func newClient() (*tick.Tick, error) {
	cfg, err := tick.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
	return tick.New(cfg, tick.WithLogger(logger))
}

// printJSON writes v to stdout, indented.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
