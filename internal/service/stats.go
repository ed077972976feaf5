package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ovasylenko/match-stats-service/internal/analytics"
	"github.com/ovasylenko/match-stats-service/internal/cache"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

const defaultSegmentIntervalMinutes = 15

// StatsCache is the read-through cache contract the stats service consumes.
// Satisfied by cache.StatsCache; a nil cache disables caching entirely.
type StatsCache interface {
	Get(ctx context.Context, matchID string, eventCount int) (model.AggregatedStats, error)
	Set(ctx context.Context, matchID string, eventCount int, status string, stats model.AggregatedStats)
}

type statsService struct {
	matches repository.MatchRepository
	roster  repository.RosterRepository
	events  repository.EventRepository
	cache   StatsCache
	log     zerolog.Logger
}

func NewStatsService(matches repository.MatchRepository, roster repository.RosterRepository, events repository.EventRepository, statsCache StatsCache, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{matches: matches, roster: roster, events: events, cache: statsCache, log: l}
}

// GetMatchStats returns the full-match aggregate, recomputing from the event
// log on a cache miss. The cache key includes the event count, so a live
// match naturally invalidates as events arrive.
func (s *statsService) GetMatchStats(ctx context.Context, matchID string) (model.AggregatedStats, error) {
	if strings.TrimSpace(matchID) == "" {
		return model.AggregatedStats{}, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must not be empty"}})
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return model.AggregatedStats{}, err
	}
	count, err := s.events.CountByMatch(ctx, matchID)
	if err != nil {
		return model.AggregatedStats{}, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, matchID, count); err == nil {
			s.log.Debug().Str("match_id", matchID).Int("events", count).Msg("stats served from cache")
			return cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn().Err(err).Str("match_id", matchID).Msg("unexpected cache error")
		}
	}

	agg, err := s.computeStats(ctx, matchID)
	if err != nil {
		return model.AggregatedStats{}, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, matchID, count, match.Status, agg)
	}
	return agg, nil
}

// GetMatchStatsSegments recomputes per-interval team stats. Segments are
// cheap relative to the full aggregate and interval varies per request, so
// they bypass the cache.
func (s *statsService) GetMatchStatsSegments(ctx context.Context, matchID string, intervalMinutes int) ([]model.SegmentStats, error) {
	var ferrs []FieldError
	if strings.TrimSpace(matchID) == "" {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must not be empty"})
	}
	if intervalMinutes == 0 {
		intervalMinutes = defaultSegmentIntervalMinutes
	}
	if intervalMinutes < 1 {
		ferrs = append(ferrs, FieldError{Field: "interval", Message: "must be >= 1"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return nil, err
	}

	if _, err := s.matches.GetByID(ctx, matchID); err != nil {
		return nil, err
	}
	raw, err := s.events.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	events, skipped := analytics.NormalizeEvents(raw)
	if skipped > 0 {
		s.log.Debug().Str("match_id", matchID).Int("skipped", skipped).Msg("typeless events excluded from segments")
	}
	return analytics.Segment(events, intervalMinutes), nil
}

func (s *statsService) computeStats(ctx context.Context, matchID string) (model.AggregatedStats, error) {
	raw, err := s.events.ListByMatch(ctx, matchID)
	if err != nil {
		return model.AggregatedStats{}, err
	}
	roster, err := s.roster.ListByMatch(ctx, matchID)
	if err != nil {
		return model.AggregatedStats{}, err
	}
	var home, away []model.Player
	for _, p := range roster {
		switch p.Team {
		case model.SideHome:
			home = append(home, p)
		case model.SideAway:
			away = append(away, p)
		}
	}
	agg := analytics.AggregateRawEvents(raw, home, away)
	s.log.Debug().
		Str("match_id", matchID).
		Int("events", len(raw)).
		Int("skipped", agg.SkippedEvents).
		Int("players", len(agg.PlayerStats)).
		Msg("stats recomputed")
	return agg, nil
}
