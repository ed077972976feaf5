package analytics

import "github.com/ovasylenko/match-stats-service/internal/model"

// Pitch model for the derived pass qualities. Matches the coordinate space
// the trackers record in.
const (
	pitchLength        = 105.0
	finalThirdX        = pitchLength * 2 / 3
	progressiveGainMin = 15.0
)

// AccumulatePlayers builds one summary per player that produced at least one
// event. Summaries are created lazily on the first event referencing the
// player and returned in that insertion order; ranking is the caller's job.
func AccumulatePlayers(events []model.MatchEvent, roster *Roster) []model.PlayerStatSummary {
	if roster == nil {
		roster = NewRoster(nil, nil)
	}

	summaries := make([]model.PlayerStatSummary, 0, 16)
	index := make(map[string]int)

	lookup := func(playerID string, team model.TeamSide) *model.PlayerStatSummary {
		if i, ok := index[playerID]; ok {
			return &summaries[i]
		}
		p := roster.Resolve(playerID, team)
		summaries = append(summaries, model.PlayerStatSummary{
			PlayerID:     playerID,
			PlayerName:   p.Name,
			JerseyNumber: p.JerseyNumber,
			Team:         p.Team,
		})
		index[playerID] = len(summaries) - 1
		return &summaries[len(summaries)-1]
	}

	for _, ev := range events {
		if ev.Type == model.TypeUnknown || ev.PlayerID == "" {
			continue
		}
		ps := lookup(ev.PlayerID, ev.Team)
		ApplyEvent(&ps.ActionCounts, ev)

		if ev.Pass == nil {
			continue
		}
		applyPassExtras(ps, ev)
		if ev.Pass.RecipientPlayerID != "" {
			recordPassLink(ps, ev.Pass)
			if ev.Pass.Success {
				recipient := lookup(ev.Pass.RecipientPlayerID, ev.Team)
				recipient.BallsReceived++
			}
		}
	}
	return summaries
}

// applyPassExtras derives the positional pass qualities the team table does
// not carry: progressive passes and passes into the final third, both gated
// on completion. Start position rides on the event coordinates; a pass
// without end coordinates contributes nothing here.
func applyPassExtras(ps *model.PlayerStatSummary, ev model.MatchEvent) {
	p := ev.Pass
	if !p.Success || p.EndCoordinates == nil {
		return
	}
	if p.EndCoordinates.X-ev.Coordinates.X >= progressiveGainMin {
		ps.ProgressivePasses++
	}
	if p.EndCoordinates.X >= finalThirdX {
		ps.PassesToFinalThird++
	}
}

// recordPassLink upserts the edge towards the recipient in the player's
// outgoing pass network.
func recordPassLink(ps *model.PlayerStatSummary, p *model.PassDetail) {
	for i := range ps.PassNetworkSent {
		if ps.PassNetworkSent[i].ToPlayerID == p.RecipientPlayerID {
			ps.PassNetworkSent[i].Count++
			if p.Success {
				ps.PassNetworkSent[i].SuccessfulCount++
			}
			return
		}
	}
	link := model.PassLink{ToPlayerID: p.RecipientPlayerID, Count: 1}
	if p.Success {
		link.SuccessfulCount = 1
	}
	ps.PassNetworkSent = append(ps.PassNetworkSent, link)
}
