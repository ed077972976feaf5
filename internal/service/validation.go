package service

import (
	"strings"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func isValidMatchStatus(status string) bool {
	switch status {
	case "scheduled", "live", "finished":
		return true
	default:
		return false
	}
}

func isValidTeamSide(side model.TeamSide) bool {
	return side.Valid()
}

const maxMatchDurationMinutes = 150 // covers extra time and shootouts
