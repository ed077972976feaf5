package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovasylenko/match-stats-service/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <match-id>",
	Short: "Show the full-match team comparison",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
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
	report.PrintTeamComparison(os.Stdout, match, agg)
	if agg.SkippedEvents > 0 {
		fmt.Fprintf(os.Stdout, "\n%d source events could not be interpreted and were skipped.\n", agg.SkippedEvents)
	}
	return nil
}
