package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovasylenko/match-stats-service/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players <match-id>",
	Short: "Show per-player statistics for a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	matchID := args[0]

	match, err := fetchMatch(matchID)
	if err != nil {
		return fmt.Errorf("fetch match: %w", err)
	}
	agg, err := fetchStats(matchID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}
	if len(agg.PlayerStats) == 0 {
		fmt.Fprintln(os.Stdout, "No player-attributed events recorded for this match yet.")
		return nil
	}

	report.PrintMatchHeader(os.Stdout, match)
	report.PrintPlayerTable(os.Stdout, agg.PlayerStats)
	return nil
}
