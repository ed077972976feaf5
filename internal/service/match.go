package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type matchService struct {
	matches repository.MatchRepository
	roster  repository.RosterRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, roster repository.RosterRepository, tx repository.TxManager, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, roster: roster, tx: tx, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, homeTeam, awayTeam, status string, durationMinutes int, date time.Time) (model.Match, error) {
	homeTrimmed := strings.TrimSpace(homeTeam)
	awayTrimmed := strings.TrimSpace(awayTeam)
	statusNorm := normalizeStatus(status)
	if statusNorm == "" {
		statusNorm = "scheduled"
	}
	if durationMinutes == 0 {
		durationMinutes = 90
	}

	var ferrs []FieldError
	if homeTrimmed == "" {
		ferrs = append(ferrs, FieldError{Field: "home_team_name", Message: "must not be empty"})
	}
	if awayTrimmed == "" {
		ferrs = append(ferrs, FieldError{Field: "away_team_name", Message: "must not be empty"})
	}
	if homeTrimmed != "" && homeTrimmed == awayTrimmed {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "home and away must differ"})
	}
	if !isValidMatchStatus(statusNorm) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of scheduled|live|finished"})
	}
	if durationMinutes < 1 || durationMinutes > maxMatchDurationMinutes {
		ferrs = append(ferrs, FieldError{Field: "duration_minutes", Message: "must be between 1 and 150"})
	}
	if date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be set"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.Match{}, err
	}

	created, err := s.matches.Create(ctx, model.Match{
		HomeTeamName:    homeTrimmed,
		AwayTeamName:    awayTrimmed,
		Status:          statusNorm,
		DurationMinutes: durationMinutes,
		Date:            date,
	})
	if err != nil {
		s.log.Error().Err(err).Str("home", homeTrimmed).Str("away", awayTrimmed).Msg("create match failed")
		return model.Match{}, err
	}
	return created, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (model.Match, error) {
	if strings.TrimSpace(id) == "" {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error) {
	p := normalizePage(page)
	res, err := s.matches.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list matches failed")
		return repository.PageResult[model.Match]{}, err
	}
	return res, nil
}

func (s *matchService) UpdateMatchStatus(ctx context.Context, id, status string) error {
	statusNorm := normalizeStatus(status)
	var ferrs []FieldError
	if strings.TrimSpace(id) == "" {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must not be empty"})
	}
	if !isValidMatchStatus(statusNorm) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of scheduled|live|finished"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return err
	}
	return s.matches.UpdateStatus(ctx, id, statusNorm)
}

func (s *matchService) AddPlayer(ctx context.Context, p model.Player) (model.Player, error) {
	nameTrimmed := strings.TrimSpace(p.Name)

	var ferrs []FieldError
	if strings.TrimSpace(p.MatchID) == "" {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must not be empty"})
	}
	if nameTrimmed == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if !isValidTeamSide(p.Team) {
		ferrs = append(ferrs, FieldError{Field: "team", Message: "must be home or away"})
	}
	if p.JerseyNumber < 0 || p.JerseyNumber > 99 {
		ferrs = append(ferrs, FieldError{Field: "jersey_number", Message: "must be between 0 and 99"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	// Existence check before insert so a missing match surfaces as a field
	// error instead of a bare FK conflict.
	var existenceErrs []FieldError
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.matches.GetByID(ctx, p.MatchID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				existenceErrs = append(existenceErrs, FieldError{Field: "match_id", Message: "match does not exist"})
				return nil
			}
			return err
		}
		return nil
	}); err != nil {
		return model.Player{}, err
	}
	if err := NewInvalidInputError(existenceErrs); err != nil {
		return model.Player{}, err
	}

	p.Name = nameTrimmed
	created, err := s.roster.Create(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Str("match_id", p.MatchID).Str("name", p.Name).Msg("add player failed")
		return model.Player{}, err
	}
	return created, nil
}

func (s *matchService) GetRoster(ctx context.Context, matchID string) ([]model.Player, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must not be empty"}})
	}
	return s.roster.ListByMatch(ctx, matchID)
}
