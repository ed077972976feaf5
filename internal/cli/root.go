// Package cli implements the statsctl command tree. Every subcommand talks
// to a running match-stats-service instance over HTTP and renders the
// response as terminal tables.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "statsctl",
	Short: "Match statistics inspection tool",
	Long:  "Query a running match-stats-service and render team, player, segment and pass-network tables.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8080", "base URL of the stats service")

	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(networkCmd)
}
