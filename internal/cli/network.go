package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovasylenko/match-stats-service/internal/report"
)

var networkCmd = &cobra.Command{
	Use:   "network <match-id>",
	Short: "Show the pass network (who passed to whom)",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	matchID := args[0]

	match, err := fetchMatch(matchID)
	if err != nil {
		return fmt.Errorf("fetch match: %w", err)
	}
	agg, err := fetchStats(matchID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	report.PrintMatchHeader(os.Stdout, match)
	report.PrintPassNetwork(os.Stdout, agg.PlayerStats)
	return nil
}
