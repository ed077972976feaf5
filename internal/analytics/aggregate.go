package analytics

import "github.com/ovasylenko/match-stats-service/internal/model"

// AggregateMatchEvents converts a canonical event log into the full-match
// summary every statistics view consumes: one TeamDetailedStats per side
// and one PlayerStatSummary per player that produced at least one event.
// Pure and idempotent; callers re-run it wholesale on every data refresh
// instead of patching previous results.
func AggregateMatchEvents(events []model.MatchEvent, homePlayers, awayPlayers []model.Player) model.AggregatedStats {
	roster := NewRoster(homePlayers, awayPlayers)
	return model.AggregatedStats{
		HomeTeamStats: AccumulateTeam(events, model.SideHome),
		AwayTeamStats: AccumulateTeam(events, model.SideAway),
		PlayerStats:   AccumulatePlayers(events, roster),
	}
}

// AggregateRawEvents is the boundary-facing form: it normalizes the loose
// store records first and carries the skip count into the result.
func AggregateRawEvents(raw []model.RawEvent, homePlayers, awayPlayers []model.Player) model.AggregatedStats {
	events, skipped := NormalizeEvents(raw)
	agg := AggregateMatchEvents(events, homePlayers, awayPlayers)
	agg.SkippedEvents = skipped
	return agg
}
