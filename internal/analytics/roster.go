package analytics

import (
	"fmt"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

// Roster indexes both teams' players by id so every event lookup is O(1).
// Read-only once built; the aggregation never mutates the source slices.
type Roster struct {
	byID map[string]model.Player
}

// NewRoster builds the player index from the two team lists. Duplicate ids
// keep the first entry seen (home first, matching how rosters are stored).
func NewRoster(home, away []model.Player) *Roster {
	r := &Roster{byID: make(map[string]model.Player, len(home)+len(away))}
	for _, p := range home {
		p.Team = model.SideHome
		r.add(p)
	}
	for _, p := range away {
		p.Team = model.SideAway
		r.add(p)
	}
	return r
}

func (r *Roster) add(p model.Player) {
	if p.ID == "" {
		return
	}
	if _, exists := r.byID[p.ID]; !exists {
		r.byID[p.ID] = p
	}
}

// Resolve returns the roster entry for the id. When the roster misses (trackers
// sometimes log ids before the roster sync lands), a placeholder
// named "Player <id>" is synthesized on the event's team so aggregation
// never stalls on a single unknown reference.
func (r *Roster) Resolve(playerID string, eventTeam model.TeamSide) model.Player {
	if p, ok := r.byID[playerID]; ok {
		return p
	}
	return model.Player{
		ID:   playerID,
		Name: fmt.Sprintf("Player %s", playerID),
		Team: eventTeam,
	}
}
