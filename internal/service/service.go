// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// MatchService defines match and roster use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, homeTeam, awayTeam, status string, durationMinutes int, date time.Time) (model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error)
	UpdateMatchStatus(ctx context.Context, id, status string) error
	AddPlayer(ctx context.Context, p model.Player) (model.Player, error)
	GetRoster(ctx context.Context, matchID string) ([]model.Player, error)
}

// EventService defines event ingestion use cases.
type EventService interface {
	IngestEvent(ctx context.Context, ev model.RawEvent) (model.RawEvent, error)
	IngestBatch(ctx context.Context, matchID string, evs []model.RawEvent) (int, error)
	ListEvents(ctx context.Context, matchID string) ([]model.RawEvent, error)
}

// StatsService defines the aggregation-facing use cases.
type StatsService interface {
	GetMatchStats(ctx context.Context, matchID string) (model.AggregatedStats, error)
	GetMatchStatsSegments(ctx context.Context, matchID string, intervalMinutes int) ([]model.SegmentStats, error)
}
