package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

type eventRepository struct{ pool *pgxpool.Pool }

func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

// Append stores a single raw event exactly as it arrived. Coordinates and
// event_data land in jsonb columns; the aggregation layer owns all coercion,
// so the store never rejects a loosely-shaped payload.
func (r *eventRepository) Append(ctx context.Context, ev model.RawEvent) (model.RawEvent, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.RawEvent{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO match_events (id, match_id, type, team, player_id, ts, coordinates, event_data)
		 VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, match_id, type, team, player_id, ts, coordinates, event_data`,
		ev.ID, ev.MatchID, ev.Type, ev.Team, coerceText(ev.PlayerID), coerceNumeric(ev.Timestamp), ev.Coordinates, ev.EventData,
	)
	return scanRawEvent(row)
}

// AppendBatch inserts a slice of events in one round trip via pgx batching
// and reports how many rows landed.
func (r *eventRepository) AppendBatch(ctx context.Context, evs []model.RawEvent) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	if len(evs) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, ev := range evs {
		batch.Queue(
			`INSERT INTO match_events (id, match_id, type, team, player_id, ts, coordinates, event_data)
			 VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8)`,
			ev.ID, ev.MatchID, ev.Type, ev.Team, coerceText(ev.PlayerID), coerceNumeric(ev.Timestamp), ev.Coordinates, ev.EventData,
		)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	inserted := 0
	for range evs {
		tag, err := results.Exec()
		if err != nil {
			return inserted, repository.MapPgError(err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// ListByMatch returns the full event log in timestamp order. Aggregation is
// order-insensitive but a stable order keeps exports reproducible.
func (r *eventRepository) ListByMatch(ctx context.Context, matchID string) ([]model.RawEvent, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, match_id, type, team, player_id, ts, coordinates, event_data
		 FROM match_events
		 WHERE match_id = $1
		 ORDER BY ts NULLS FIRST, id`,
		matchID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.RawEvent, 0, 256)
	for rows.Next() {
		ev, err := scanRawEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// CountByMatch backs cache keys: the aggregate for (match, count) is
// immutable because the log is append-only.
func (r *eventRepository) CountByMatch(ctx context.Context, matchID string) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var count int
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM match_events WHERE match_id = $1`, matchID).Scan(&count)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return count, nil
}

func scanRawEvent(row pgx.Row) (model.RawEvent, error) {
	var ev model.RawEvent
	var playerID *string
	var ts *float64
	if err := row.Scan(&ev.ID, &ev.MatchID, &ev.Type, &ev.Team, &playerID, &ts, &ev.Coordinates, &ev.EventData); err != nil {
		return model.RawEvent{}, repository.MapPgError(err)
	}
	if playerID != nil {
		ev.PlayerID = *playerID
	}
	if ts != nil {
		ev.Timestamp = *ts
	}
	return ev, nil
}

// coerceText flattens the loosely-typed player id into a nullable text
// parameter without losing numeric ids.
func coerceText(v any) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return &t
	default:
		s := asString(v)
		if s == "" {
			return nil
		}
		return &s
	}
}

func coerceNumeric(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case float32:
		f := float64(t)
		return &f
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	default:
		return nil
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}
