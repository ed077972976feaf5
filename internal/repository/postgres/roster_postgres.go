package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

type rosterRepository struct{ pool *pgxpool.Pool }

func NewRosterRepository(pool *pgxpool.Pool) repository.RosterRepository {
	return &rosterRepository{pool: pool}
}

func (r *rosterRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO players (id, match_id, name, jersey_number, team, position)
		 VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6)
		 RETURNING id, match_id, name, jersey_number, team, position, created_at, updated_at`,
		p.ID, p.MatchID, p.Name, p.JerseyNumber, p.Team, p.Position,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.MatchID, &out.Name, &out.JerseyNumber, &out.Team, &out.Position, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *rosterRepository) GetByID(ctx context.Context, id string) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, match_id, name, jersey_number, team, position, created_at, updated_at
		 FROM players WHERE id = $1`, id,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.MatchID, &out.Name, &out.JerseyNumber, &out.Team, &out.Position, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return out, nil
}

// ListByMatch returns the full roster for both sides, ordered by side and
// jersey number. Rosters are small so no pagination here.
func (r *rosterRepository) ListByMatch(ctx context.Context, matchID string) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, match_id, name, jersey_number, team, position, created_at, updated_at
		 FROM players
		 WHERE match_id = $1
		 ORDER BY team, jersey_number, id`,
		matchID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Player, 0, 32)
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.MatchID, &p.Name, &p.JerseyNumber, &p.Team, &p.Position, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, p)
	}
	return out, nil
}

var _ repository.RosterRepository = (*rosterRepository)(nil)
