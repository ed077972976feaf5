// Package report renders aggregated match statistics as terminal tables
// for the statsctl command.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/ovasylenko/match-stats-service/internal/analytics"
	"github.com/ovasylenko/match-stats-service/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
			// Team and player names appear in header cells; keep them verbatim
			// instead of letting the library upper-case them.
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
	}))
}

// PrintMatchHeader prints a one-line summary header for the match.
func PrintMatchHeader(w io.Writer, m model.Match) {
	fmt.Fprintf(w, "\n%s vs %s  |  Date: %s  |  Status: %s  |  Duration: %d min\n\n",
		m.HomeTeamName, m.AwayTeamName, m.Date.Format("2006-01-02"), m.Status, m.DurationMinutes)
}

// PrintTeamComparison prints the side-by-side team table: one metric per
// row, home and away columns.
func PrintTeamComparison(w io.Writer, m model.Match, agg model.AggregatedStats) {
	home, away := agg.HomeTeamStats, agg.AwayTeamStats
	table := newTable(w)
	table.Header("METRIC", m.HomeTeamName, m.AwayTeamName)

	rows := []struct {
		name string
		home string
		away string
	}{
		{"Possession %", pct(home.PossessionPercentage), pct(away.PossessionPercentage)},
		{"Goals", itoa(home.Goals), itoa(away.Goals)},
		{"Shots", itoa(home.Shots), itoa(away.Shots)},
		{"On Target", itoa(home.ShotsOnTarget), itoa(away.ShotsOnTarget)},
		{"Shot Acc %", pct(analytics.ShotAccuracy(home.ActionCounts)), pct(analytics.ShotAccuracy(away.ActionCounts))},
		{"xG", fmt.Sprintf("%.2f", home.TotalXG), fmt.Sprintf("%.2f", away.TotalXG)},
		{"Passes", itoa(home.PassesAttempted), itoa(away.PassesAttempted)},
		{"Pass Acc %", pct(analytics.PassAccuracy(home.ActionCounts)), pct(analytics.PassAccuracy(away.ActionCounts))},
		{"Crosses", itoa(home.Crosses), itoa(away.Crosses)},
		{"Duels Won", itoa(home.DuelsWon), itoa(away.DuelsWon)},
		{"Tackles", itoa(home.Tackles), itoa(away.Tackles)},
		{"Interceptions", itoa(home.Interceptions), itoa(away.Interceptions)},
		{"Balls Lost", itoa(home.BallsLost), itoa(away.BallsLost)},
		{"Fouls", itoa(home.FoulsCommitted), itoa(away.FoulsCommitted)},
		{"Yellow Cards", itoa(home.YellowCards), itoa(away.YellowCards)},
		{"Red Cards", itoa(home.RedCards), itoa(away.RedCards)},
		{"Corners", itoa(home.Corners), itoa(away.Corners)},
		{"Offsides", itoa(home.Offsides), itoa(away.Offsides)},
	}
	for _, r := range rows {
		table.Append(r.name, r.home, r.away)
	}
	table.Render()
}

// PrintPlayerTable prints per-player rows sorted by balls played, busiest
// first. A zero-activity roster entry never appears because summaries only
// exist for players with events.
func PrintPlayerTable(w io.Writer, players []model.PlayerStatSummary) {
	sorted := make([]model.PlayerStatSummary, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BallsPlayed > sorted[j].BallsPlayed
	})

	table := newTable(w)
	table.Header("PLAYER", "#", "SIDE", "BALLS", "PASSES", "PASS%", "RECV", "SHOTS", "GOALS", "xG", "DUELS W/L", "TKL", "LOST")
	for _, p := range sorted {
		table.Append(
			p.PlayerName,
			itoa(p.JerseyNumber),
			string(p.Team),
			itoa(p.BallsPlayed),
			itoa(p.PassesAttempted),
			pct(analytics.PassAccuracy(p.ActionCounts)),
			itoa(p.BallsReceived),
			itoa(p.Shots),
			itoa(p.Goals),
			fmt.Sprintf("%.2f", p.TotalXG),
			fmt.Sprintf("%d/%d", p.DuelsWon, p.DuelsLost),
			itoa(p.Tackles),
			itoa(p.BallsLost),
		)
	}
	table.Render()
}

// PrintSegmentTable prints the per-interval timeline for both sides.
func PrintSegmentTable(w io.Writer, segs []model.SegmentStats) {
	table := newTable(w)
	table.Header("WINDOW", "H POSS%", "H PASS", "H SHOT", "H GOAL", "A POSS%", "A PASS", "A SHOT", "A GOAL")
	for _, s := range segs {
		table.Append(
			fmt.Sprintf("%d'-%d'", s.StartSecond/60, s.EndSecond/60),
			pct(s.HomeTeamStats.PossessionPercentage),
			itoa(s.HomeTeamStats.PassesAttempted),
			itoa(s.HomeTeamStats.Shots),
			itoa(s.HomeTeamStats.Goals),
			pct(s.AwayTeamStats.PossessionPercentage),
			itoa(s.AwayTeamStats.PassesAttempted),
			itoa(s.AwayTeamStats.Shots),
			itoa(s.AwayTeamStats.Goals),
		)
	}
	table.Render()
}

// PrintPassNetwork prints every pass edge, heaviest first.
func PrintPassNetwork(w io.Writer, players []model.PlayerStatSummary) {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.PlayerID] = p.PlayerName
	}

	type edge struct {
		from string
		link model.PassLink
	}
	var edges []edge
	for _, p := range players {
		for _, l := range p.PassNetworkSent {
			edges = append(edges, edge{from: p.PlayerName, link: l})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].link.Count > edges[j].link.Count })

	table := newTable(w)
	table.Header("FROM", "TO", "PASSES", "COMPLETED", "ACC%")
	for _, e := range edges {
		to := names[e.link.ToPlayerID]
		if to == "" {
			to = "Player " + e.link.ToPlayerID
		}
		table.Append(
			e.from,
			to,
			itoa(e.link.Count),
			itoa(e.link.SuccessfulCount),
			pct(analytics.Ratio(float64(e.link.SuccessfulCount), float64(e.link.Count), true)),
		)
	}
	table.Render()
}

func itoa(n int) string { return strconv.Itoa(n) }

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v) }
