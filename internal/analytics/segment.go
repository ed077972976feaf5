package analytics

import "github.com/ovasylenko/match-stats-service/internal/model"

// Segment re-partitions the event list into fixed-width time buckets and
// runs the team accumulator per bucket. Buckets are contiguous, half-open
// [i*interval, (i+1)*interval) windows in seconds starting at zero; the
// final bucket may be partial but is always emitted. Input order does not
// matter; events are bucketed by timestamp, never assumed sorted.
//
// intervalMinutes <= 0 has no meaningful segmentation, so the result is an
// explicit empty list rather than a guess.
func Segment(events []model.MatchEvent, intervalMinutes int) []model.SegmentStats {
	if intervalMinutes <= 0 {
		return nil
	}
	intervalSec := int64(intervalMinutes) * 60

	var maxTS int64
	for _, ev := range events {
		if ev.Timestamp > maxTS {
			maxTS = ev.Timestamp
		}
	}
	// The bucket holding the latest event, inclusive. An empty log still
	// produces one zero-valued segment so timeline charts have a data point.
	segments := int(maxTS/intervalSec) + 1

	out := make([]model.SegmentStats, 0, segments)
	window := make([]model.MatchEvent, 0, len(events))
	for i := 0; i < segments; i++ {
		start := int64(i) * intervalSec
		end := start + intervalSec

		window = window[:0]
		for _, ev := range events {
			if ev.Timestamp >= start && ev.Timestamp < end {
				window = append(window, ev)
			}
		}

		out = append(out, model.SegmentStats{
			Index:         i,
			StartSecond:   start,
			EndSecond:     end,
			HomeTeamStats: AccumulateTeam(window, model.SideHome),
			AwayTeamStats: AccumulateTeam(window, model.SideAway),
		})
	}
	return out
}
