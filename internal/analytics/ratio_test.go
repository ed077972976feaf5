package analytics

import (
	"math"
	"testing"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name    string
		num     float64
		den     float64
		percent bool
		want    float64
	}{
		{"zero denominator", 5, 0, true, 0},
		{"negative denominator", 5, -2, true, 0},
		{"zero numerator", 0, 10, true, 0},
		{"half as percent", 1, 2, true, 50},
		{"half as fraction", 1, 2, false, 0.5},
		{"over one hundred", 3, 2, true, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.num, tc.den, tc.percent)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("non-finite result %v", got)
			}
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDerivedMetrics(t *testing.T) {
	c := model.ActionCounts{
		PassesAttempted:   50,
		PassesCompleted:   40,
		Shots:             10,
		ShotsOnTarget:     4,
		Goals:             2,
		Crosses:           8,
		SuccessfulCrosses: 2,
		DuelsWon:          6,
		DuelsLost:         4,
		BallsPlayed:       100,
		BallsLost:         12,
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"pass accuracy", PassAccuracy(c), 80},
		{"shot accuracy", ShotAccuracy(c), 40},
		{"goal conversion", GoalConversion(c), 20},
		{"cross accuracy", CrossAccuracy(c), 25},
		{"duel success", DuelSuccessRate(c), 60},
		{"ball loss", BallLossRatio(c), 12},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Fatalf("%s: want %v, got %v", ch.name, ch.want, ch.got)
		}
	}
}

func TestDerivedMetrics_EmptyCounts(t *testing.T) {
	var c model.ActionCounts
	for name, got := range map[string]float64{
		"pass accuracy":   PassAccuracy(c),
		"shot accuracy":   ShotAccuracy(c),
		"goal conversion": GoalConversion(c),
		"cross accuracy":  CrossAccuracy(c),
		"duel success":    DuelSuccessRate(c),
		"ball loss":       BallLossRatio(c),
	} {
		if got != 0 {
			t.Fatalf("%s on empty counts: want 0, got %v", name, got)
		}
	}
}
