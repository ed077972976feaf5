package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ovasylenko/match-stats-service/internal/cache"
	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
	"github.com/ovasylenko/match-stats-service/internal/service"
)

var errCacheMiss = cache.ErrMiss

func seedFixture() (*fakeMatchRepo, *fakeRosterRepo, *fakeEventRepo) {
	matches := newFakeMatchRepo(model.Match{
		ID: "m-1", HomeTeamName: "Harbor FC", AwayTeamName: "Valley United",
		Status: "live", DurationMinutes: 90, Date: time.Now(),
	})
	roster := &fakeRosterRepo{players: []model.Player{
		{ID: "1", MatchID: "m-1", Name: "Ada", JerseyNumber: 10, Team: model.SideHome},
		{ID: "2", MatchID: "m-1", Name: "Bo", JerseyNumber: 9, Team: model.SideAway},
	}}
	events := &fakeEventRepo{events: []model.RawEvent{
		{ID: "e1", MatchID: "m-1", Type: "pass", Team: "home", PlayerID: "1", Timestamp: 10.0, EventData: map[string]any{"success": true}},
		{ID: "e2", MatchID: "m-1", Type: "goal", Team: "away", PlayerID: "2", Timestamp: 30.0},
		{ID: "e3", MatchID: "m-1"}, // typeless, must be skipped not fatal
	}}
	return matches, roster, events
}

func TestStatsService_GetMatchStats(t *testing.T) {
	logger := zerolog.New(io.Discard)
	matches, roster, events := seedFixture()
	svc := service.NewStatsService(matches, roster, events, nil, logger)

	agg, err := svc.GetMatchStats(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.HomeTeamStats.PassesCompleted != 1 {
		t.Fatalf("home passes: %+v", agg.HomeTeamStats.ActionCounts)
	}
	if agg.AwayTeamStats.Goals != 1 || agg.AwayTeamStats.Shots != 1 {
		t.Fatalf("away goal not counted: %+v", agg.AwayTeamStats.ActionCounts)
	}
	if agg.SkippedEvents != 1 {
		t.Fatalf("skipped events: want 1, got %d", agg.SkippedEvents)
	}
	if len(agg.PlayerStats) != 2 {
		t.Fatalf("player rows: want 2, got %d", len(agg.PlayerStats))
	}
}

func TestStatsService_GetMatchStats_Validation(t *testing.T) {
	logger := zerolog.New(io.Discard)
	matches, roster, events := seedFixture()
	svc := service.NewStatsService(matches, roster, events, nil, logger)

	_, err := svc.GetMatchStats(context.Background(), "")
	if !serviceErrIsInvalid(err) {
		t.Fatalf("empty id must be invalid input, got %v", err)
	}
	_, err = svc.GetMatchStats(context.Background(), "missing")
	if err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsService_CacheReadThrough(t *testing.T) {
	logger := zerolog.New(io.Discard)
	matches, roster, events := seedFixture()
	c := newFakeStatsCache()
	svc := service.NewStatsService(matches, roster, events, c, logger)
	ctx := context.Background()

	first, err := svc.GetMatchStats(ctx, "m-1")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if c.sets != 1 || c.hits != 0 {
		t.Fatalf("first call must fill the cache: sets=%d hits=%d", c.sets, c.hits)
	}

	second, err := svc.GetMatchStats(ctx, "m-1")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if c.hits != 1 || c.sets != 1 {
		t.Fatalf("second call must hit the cache: sets=%d hits=%d", c.sets, c.hits)
	}
	if second.HomeTeamStats != first.HomeTeamStats {
		t.Fatalf("cached result differs")
	}

	// A new event changes the count, so the key rolls over and the cache refills.
	if _, err := events.Append(ctx, model.RawEvent{ID: "e4", MatchID: "m-1", Type: "pass", Team: "home"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.GetMatchStats(ctx, "m-1"); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if c.hits != 1 || c.sets != 2 {
		t.Fatalf("new event must invalidate by key: sets=%d hits=%d", c.sets, c.hits)
	}
}

func TestStatsService_GetMatchStatsSegments(t *testing.T) {
	logger := zerolog.New(io.Discard)
	matches, roster, events := seedFixture()
	svc := service.NewStatsService(matches, roster, events, nil, logger)
	ctx := context.Background()

	segs, err := svc.GetMatchStatsSegments(ctx, "m-1", 15)
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("all events within the first window: want 1 segment, got %d", len(segs))
	}

	// Zero interval falls back to the default.
	if _, err := svc.GetMatchStatsSegments(ctx, "m-1", 0); err != nil {
		t.Fatalf("default interval: %v", err)
	}

	_, err = svc.GetMatchStatsSegments(ctx, "m-1", -1)
	if !serviceErrIsInvalid(err) {
		t.Fatalf("negative interval must be invalid input, got %v", err)
	}
	_, err = svc.GetMatchStatsSegments(ctx, "missing", 15)
	if err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func serviceErrIsInvalid(err error) bool {
	return err != nil && len(service.FieldErrors(err)) > 0
}
