package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/report"
)

func sampleMatch() model.Match {
	return model.Match{
		ID:              "m-1",
		HomeTeamName:    "Harbor FC",
		AwayTeamName:    "Valley United",
		Status:          "finished",
		DurationMinutes: 90,
		Date:            time.Date(2026, 5, 14, 19, 0, 0, 0, time.UTC),
	}
}

func TestPrintTeamComparison(t *testing.T) {
	var agg model.AggregatedStats
	agg.HomeTeamStats.Goals = 2
	agg.HomeTeamStats.PassesAttempted = 40
	agg.HomeTeamStats.PassesCompleted = 30
	agg.HomeTeamStats.PossessionPercentage = 58.3
	agg.AwayTeamStats.Goals = 1
	agg.AwayTeamStats.PossessionPercentage = 41.7

	var buf bytes.Buffer
	report.PrintTeamComparison(&buf, sampleMatch(), agg)

	out := buf.String()
	for _, want := range []string{"Harbor FC", "Valley United", "Possession %", "58.3%", "75.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "HARBOR FC") {
		t.Fatalf("team name must render verbatim, not upper-cased:\n%s", out)
	}
}

func TestPrintPlayerTable_SortsByActivity(t *testing.T) {
	players := []model.PlayerStatSummary{
		{PlayerID: "p-1", PlayerName: "Quiet", Team: model.SideHome},
		{PlayerID: "p-2", PlayerName: "Busy", Team: model.SideHome},
	}
	players[0].BallsPlayed = 3
	players[1].BallsPlayed = 20

	var buf bytes.Buffer
	report.PrintPlayerTable(&buf, players)

	out := buf.String()
	if strings.Index(out, "Busy") > strings.Index(out, "Quiet") {
		t.Fatalf("expected busiest player first:\n%s", out)
	}
}

func TestPrintPassNetwork_ResolvesNames(t *testing.T) {
	players := []model.PlayerStatSummary{
		{
			PlayerID:   "p-1",
			PlayerName: "Ada",
			PassNetworkSent: []model.PassLink{
				{ToPlayerID: "p-2", Count: 4, SuccessfulCount: 3},
				{ToPlayerID: "p-9", Count: 1, SuccessfulCount: 1},
			},
		},
		{PlayerID: "p-2", PlayerName: "Grace"},
	}

	var buf bytes.Buffer
	report.PrintPassNetwork(&buf, players)

	out := buf.String()
	if !strings.Contains(out, "Grace") {
		t.Fatalf("expected receiver name resolved:\n%s", out)
	}
	if !strings.Contains(out, "Player p-9") {
		t.Fatalf("expected fallback label for unknown receiver:\n%s", out)
	}
}
