package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var matchesLimit int

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List tracked matches",
	Args:  cobra.NoArgs,
	RunE:  runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&matchesLimit, "limit", 20, "maximum number of matches to list")
}

func runMatches(cmd *cobra.Command, args []string) error {
	matches, err := fetchMatches(matchesLimit)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded yet.")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("ID", "HOME", "AWAY", "DATE", "STATUS", "DURATION")
	for _, m := range matches {
		table.Append(
			m.ID,
			m.HomeTeamName,
			m.AwayTeamName,
			m.Date.Format("2006-01-02"),
			m.Status,
			fmt.Sprintf("%d min", m.DurationMinutes),
		)
	}
	table.Render()
	return nil
}
