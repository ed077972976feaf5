package repository

import (
	"context"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// It decouples health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// Context is threaded through so nested calls honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// A single entry point keeps transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MatchRepository declares persistence operations for matches.
// Implementations return domain models and surface domain errors from
// errors.go rather than PG codes.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id string) (model.Match, error)
	List(ctx context.Context, p Page) (PageResult[model.Match], error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// RosterRepository declares persistence operations for match rosters.
type RosterRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id string) (model.Player, error)
	ListByMatch(ctx context.Context, matchID string) ([]model.Player, error)
}

// EventRepository declares persistence operations for the match event log.
// Events are append-only; corrections arrive as new events upstream.
type EventRepository interface {
	Append(ctx context.Context, ev model.RawEvent) (model.RawEvent, error)
	AppendBatch(ctx context.Context, evs []model.RawEvent) (int, error)
	ListByMatch(ctx context.Context, matchID string) ([]model.RawEvent, error)
	CountByMatch(ctx context.Context, matchID string) (int, error)
}
