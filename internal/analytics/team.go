package analytics

import (
	"math"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

// AccumulateTeam produces one side's detailed stats in a single forward
// pass. The full event list is taken (not a pre-filtered one) because the
// possession share needs both sides' event counts; only events attributed
// to the requested side feed the counters. Order-independent: all counter
// updates commute.
func AccumulateTeam(events []model.MatchEvent, side model.TeamSide) model.TeamDetailedStats {
	var stats model.TeamDetailedStats
	var own, opponent int

	for _, ev := range events {
		if ev.Type == model.TypeUnknown || !ev.Team.Valid() {
			continue
		}
		if ev.Team != side {
			opponent++
			continue
		}
		own++
		ApplyEvent(&stats.ActionCounts, ev)
		stats.PossessionSeconds += ev.PossessionSeconds
	}

	stats.PossessionPercentage = possessionShare(own, opponent)
	return stats
}

// possessionShare is the event-share possession proxy: this side's share of
// known, team-attributed events. Not stopwatch time; real ball-time, when
// tracked, lives in PossessionSeconds. An empty match splits 50/50 so
// dashboards never render a 0/0 donut.
func possessionShare(own, opponent int) float64 {
	total := own + opponent
	if total == 0 {
		return 50.0
	}
	return math.Round(float64(own)/float64(total)*1000) / 10
}
