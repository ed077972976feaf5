package analytics

import (
	"testing"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

func passEvent(id string, team model.TeamSide, ts int64, success bool) model.MatchEvent {
	return model.MatchEvent{
		ID: id, Type: model.TypePass, Team: team, Timestamp: ts,
		Pass: &model.PassDetail{Success: success},
	}
}

func TestAccumulateTeam_Conservation(t *testing.T) {
	events := []model.MatchEvent{
		passEvent("p1", model.SideHome, 10, true),
		passEvent("p2", model.SideHome, 20, false),
		passEvent("p3", model.SideAway, 30, true),
		{ID: "s1", Type: model.TypeShot, Team: model.SideHome, Timestamp: 40, Shot: &model.ShotDetail{OnTarget: true, BodyPart: model.BodyFoot, Outcome: model.OutcomeOnTarget, XG: 0.1}},
	}
	home := AccumulateTeam(events, model.SideHome)
	if home.PassesAttempted != 2 {
		t.Fatalf("home passes attempted: want 2, got %d", home.PassesAttempted)
	}
	if home.PassesCompleted != 1 {
		t.Fatalf("home passes completed: want 1, got %d", home.PassesCompleted)
	}
	away := AccumulateTeam(events, model.SideAway)
	if away.PassesAttempted != 1 || away.Shots != 0 {
		t.Fatalf("away leaked home events: %+v", away.ActionCounts)
	}
}

func TestAccumulateTeam_MonotonicSubTotals(t *testing.T) {
	events := []model.MatchEvent{
		{ID: "s1", Type: model.TypeShot, Team: model.SideHome, Shot: &model.ShotDetail{OnTarget: true, Outcome: model.OutcomeOnTarget, BodyPart: model.BodyFoot}},
		{ID: "s2", Type: model.TypeShot, Team: model.SideHome, Shot: &model.ShotDetail{Outcome: model.OutcomeOffTarget, BodyPart: model.BodyFoot}},
		{ID: "g1", Type: model.TypeGoal, Team: model.SideHome, Shot: &model.ShotDetail{OnTarget: true, Outcome: model.OutcomeOnTarget, BodyPart: model.BodyFoot}},
		passEvent("p1", model.SideHome, 0, true),
		passEvent("p2", model.SideHome, 0, false),
	}
	st := AccumulateTeam(events, model.SideHome)
	if st.ShotsOnTarget > st.Shots {
		t.Fatalf("shotsOnTarget %d > shots %d", st.ShotsOnTarget, st.Shots)
	}
	if st.PassesCompleted > st.PassesAttempted {
		t.Fatalf("passesCompleted %d > passesAttempted %d", st.PassesCompleted, st.PassesAttempted)
	}
	// A goal counts as a shot as well.
	if st.Shots != 3 || st.Goals != 1 {
		t.Fatalf("want shots=3 goals=1, got shots=%d goals=%d", st.Shots, st.Goals)
	}
}

func TestAccumulateTeam_ShotCrossTabs(t *testing.T) {
	events := []model.MatchEvent{
		{ID: "s1", Type: model.TypeShot, Team: model.SideHome, Shot: &model.ShotDetail{OnTarget: true, Outcome: model.OutcomeOnTarget, BodyPart: model.BodyFoot, Dangerous: true, XG: 0.2}},
		{ID: "s2", Type: model.TypeShot, Team: model.SideHome, Shot: &model.ShotDetail{Outcome: model.OutcomePostHit, BodyPart: model.BodyFoot, XG: 0.05}},
		{ID: "s3", Type: model.TypeShot, Team: model.SideHome, Shot: &model.ShotDetail{Outcome: model.OutcomeOffTarget, BodyPart: model.BodyHeader, XG: 0.05}},
	}
	st := AccumulateTeam(events, model.SideHome)
	if st.DangerousFootShots != 1 || st.NonDangerousFootShots != 1 {
		t.Fatalf("danger split wrong: %+v", st.ActionCounts)
	}
	if st.FootShotsOnTarget != 1 || st.FootShotsPostHits != 1 || st.HeaderShotsOffTarget != 1 {
		t.Fatalf("outcome split wrong: %+v", st.ActionCounts)
	}
	if got, want := st.TotalXG, 0.30; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("totalXg: want %v, got %v", want, got)
	}
}

func TestAccumulateTeam_CrossIsAlsoAPass(t *testing.T) {
	events := []model.MatchEvent{
		{ID: "c1", Type: model.TypeCross, Team: model.SideHome, Pass: &model.PassDetail{Success: true}},
		{ID: "c2", Type: model.TypeCross, Team: model.SideHome, Pass: &model.PassDetail{}},
	}
	st := AccumulateTeam(events, model.SideHome)
	if st.Crosses != 2 || st.SuccessfulCrosses != 1 {
		t.Fatalf("cross counters: %+v", st.ActionCounts)
	}
	if st.PassesAttempted != 2 || st.PassesCompleted != 1 {
		t.Fatalf("crosses must feed pass totals: %+v", st.ActionCounts)
	}
}

func TestAccumulateTeam_AerialDuelFeedsBothLedgers(t *testing.T) {
	win, loss := true, false
	events := []model.MatchEvent{
		{ID: "d1", Type: model.TypeAerialDuel, Team: model.SideHome, Success: &win},
		{ID: "d2", Type: model.TypeAerialDuel, Team: model.SideHome, Success: &loss},
		{ID: "d3", Type: model.TypeDuel, Team: model.SideHome, Success: &win},
	}
	st := AccumulateTeam(events, model.SideHome)
	if st.AerialDuelsWon != 1 || st.AerialDuelsLost != 1 {
		t.Fatalf("aerial ledger: %+v", st.ActionCounts)
	}
	if st.DuelsWon != 2 || st.DuelsLost != 1 {
		t.Fatalf("general duel ledger: %+v", st.ActionCounts)
	}
}

func TestAccumulateTeam_PossessionShare(t *testing.T) {
	cases := []struct {
		name     string
		home     int
		away     int
		wantHome float64
	}{
		{"empty splits even", 0, 0, 50.0},
		{"two thirds", 2, 1, 66.7},
		{"all home", 3, 0, 100.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var events []model.MatchEvent
			for i := 0; i < tc.home; i++ {
				events = append(events, passEvent("h", model.SideHome, 0, true))
			}
			for i := 0; i < tc.away; i++ {
				events = append(events, passEvent("a", model.SideAway, 0, true))
			}
			home := AccumulateTeam(events, model.SideHome)
			away := AccumulateTeam(events, model.SideAway)
			if home.PossessionPercentage != tc.wantHome {
				t.Fatalf("home possession: want %v, got %v", tc.wantHome, home.PossessionPercentage)
			}
			if tc.home+tc.away > 0 {
				if sum := home.PossessionPercentage + away.PossessionPercentage; sum < 99.9 || sum > 100.1 {
					t.Fatalf("shares do not sum to 100: %v", sum)
				}
			}
		})
	}
}

func TestAccumulateTeam_UnknownAndTeamlessEventsAreNeutral(t *testing.T) {
	events := []model.MatchEvent{
		passEvent("p1", model.SideHome, 0, true),
		{ID: "u1", Type: model.TypeUnknown, Team: model.SideAway},
		{ID: "t1", Type: model.TypePass, Pass: &model.PassDetail{Success: true}}, // no team
	}
	home := AccumulateTeam(events, model.SideHome)
	if home.PossessionPercentage != 100.0 {
		t.Fatalf("unknown/teamless events must not dilute possession, got %v", home.PossessionPercentage)
	}
	away := AccumulateTeam(events, model.SideAway)
	if away.BallsPlayed != 0 {
		t.Fatalf("unknown type fed a counter: %+v", away.ActionCounts)
	}
}

func TestAccumulateTeam_PossessionSecondsFromMetadata(t *testing.T) {
	events := []model.MatchEvent{
		{ID: "p1", Type: model.TypePass, Team: model.SideHome, Pass: &model.PassDetail{Success: true}, PossessionSeconds: 12.5},
		{ID: "p2", Type: model.TypePass, Team: model.SideHome, Pass: &model.PassDetail{Success: true}, PossessionSeconds: 7.5},
	}
	st := AccumulateTeam(events, model.SideHome)
	if st.PossessionSeconds != 20.0 {
		t.Fatalf("possession seconds: want 20, got %v", st.PossessionSeconds)
	}
}
