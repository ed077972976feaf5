package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

const maxBatchSize = 5000

type eventService struct {
	events  repository.EventRepository
	matches repository.MatchRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewEventService(events repository.EventRepository, matches repository.MatchRepository, tx repository.TxManager, logger zerolog.Logger) EventService {
	l := logger.With().Str("module", "service").Str("component", "event").Logger()
	return &eventService{events: events, matches: matches, tx: tx, log: l}
}

// IngestEvent validates the structural minimum and appends. Events with a
// missing or unknown type are still stored (the aggregation layer decides
// what to do with them), but a missing match reference is rejected here.
func (s *eventService) IngestEvent(ctx context.Context, ev model.RawEvent) (model.RawEvent, error) {
	var ferrs []FieldError
	if strings.TrimSpace(ev.MatchID) == "" {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must not be empty"})
	}
	if ev.Team != "" && !model.TeamSide(ev.Team).Valid() {
		ferrs = append(ferrs, FieldError{Field: "team", Message: "must be home or away when set"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.RawEvent{}, err
	}

	exists, err := s.matches.Exists(ctx, ev.MatchID)
	if err != nil {
		return model.RawEvent{}, err
	}
	if !exists {
		return model.RawEvent{}, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "match does not exist"}})
	}

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		s.log.Error().Err(err).Str("match_id", ev.MatchID).Str("type", ev.Type).Msg("append event failed")
		return model.RawEvent{}, err
	}
	return stored, nil
}

// IngestBatch appends a tracker export in one transaction. Validation errors
// carry the offending index so clients can pinpoint bad records.
func (s *eventService) IngestBatch(ctx context.Context, matchID string, evs []model.RawEvent) (int, error) {
	var ferrs []FieldError
	if strings.TrimSpace(matchID) == "" {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must not be empty"})
	}
	if len(evs) == 0 {
		ferrs = append(ferrs, FieldError{Field: "events", Message: "must not be empty"})
	}
	if len(evs) > maxBatchSize {
		ferrs = append(ferrs, FieldError{Field: "events", Message: fmt.Sprintf("must not exceed %d records", maxBatchSize)})
	}
	for i, ev := range evs {
		if ev.MatchID != "" && ev.MatchID != matchID {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("events[%d].match_id", i), Message: "must match the batch match_id"})
		}
		if ev.Team != "" && !model.TeamSide(ev.Team).Valid() {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("events[%d].team", i), Message: "must be home or away when set"})
		}
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("batch validation failed")
		return 0, err
	}

	var inserted int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.matches.GetByID(ctx, matchID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return NewInvalidInputError([]FieldError{{Field: "match_id", Message: "match does not exist"}})
			}
			return err
		}
		for i := range evs {
			evs[i].MatchID = matchID
		}
		n, err := s.events.AppendBatch(ctx, evs)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			s.log.Error().Err(err).Str("match_id", matchID).Int("events", len(evs)).Msg("append batch failed")
		}
		return 0, err
	}
	s.log.Info().Str("match_id", matchID).Int("inserted", inserted).Msg("event batch ingested")
	return inserted, nil
}

func (s *eventService) ListEvents(ctx context.Context, matchID string) ([]model.RawEvent, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must not be empty"}})
	}
	exists, err := s.matches.Exists(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}
	return s.events.ListByMatch(ctx, matchID)
}
