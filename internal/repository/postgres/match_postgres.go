package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	// An empty id lets the database mint one; trackers that bring their own
	// ids keep them.
	row := exec.QueryRow(ctx,
		`INSERT INTO matches (id, home_team_name, away_team_name, status, duration_minutes, date)
		 VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6)
		 RETURNING id, home_team_name, away_team_name, status, duration_minutes, date, created_at, updated_at`,
		m.ID, m.HomeTeamName, m.AwayTeamName, m.Status, m.DurationMinutes, m.Date,
	)
	var out model.Match
	if err := row.Scan(&out.ID, &out.HomeTeamName, &out.AwayTeamName, &out.Status, &out.DurationMinutes, &out.Date, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, home_team_name, away_team_name, status, duration_minutes, date, created_at, updated_at
		 FROM matches WHERE id = $1`, id,
	)
	var out model.Match
	if err := row.Scan(&out.ID, &out.HomeTeamName, &out.AwayTeamName, &out.Status, &out.DurationMinutes, &out.Date, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Match]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, home_team_name, away_team_name, status, duration_minutes, date, created_at, updated_at,
		        COUNT(*) OVER() AS total
		 FROM matches
		 ORDER BY date DESC, id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Match]{Items: make([]model.Match, 0, limit)}
	for rows.Next() {
		var m model.Match
		var total int
		if err := rows.Scan(&m.ID, &m.HomeTeamName, &m.AwayTeamName, &m.Status, &m.DurationMinutes, &m.Date, &m.CreatedAt, &m.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Match]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx,
		`UPDATE matches SET status = $2, updated_at = now() WHERE id = $1`, id, status,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Exists performs a lightweight check so callers can validate references
// without pulling the full row.
func (r *matchRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM matches WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
