package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ovasylenko/match-stats-service/internal/report"
)

var segmentInterval int

var segmentsCmd = &cobra.Command{
	Use:   "segments <match-id>",
	Short: "Show the per-interval timeline for a match",
	Args:  cobra.ExactArgs(1),
	RunE:  runSegments,
}

func init() {
	segmentsCmd.Flags().IntVar(&segmentInterval, "interval", 0, "segment width in minutes (server default when omitted)")
}

func runSegments(cmd *cobra.Command, args []string) error {
	matchID := args[0]

	match, err := fetchMatch(matchID)
	if err != nil {
		return fmt.Errorf("fetch match: %w", err)
	}
	segs, err := fetchSegments(matchID, segmentInterval)
	if err != nil {
		return fmt.Errorf("fetch segments: %w", err)
	}

	report.PrintMatchHeader(os.Stdout, match)
	report.PrintSegmentTable(os.Stdout, segs)
	return nil
}
