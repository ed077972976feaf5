// Package contract defines storage-agnostic test suites for the repository
// interfaces. Concrete backends wire their factories in and inherit the
// behavioral checks.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

type MatchFactory func(t *testing.T) (repository.MatchRepository, func())

type RosterFactory func(t *testing.T) (repo repository.RosterRepository, createMatch func(ctx context.Context) (string, error), cleanup func())

type EventFactory func(t *testing.T) (repo repository.EventRepository, createMatch func(ctx context.Context) (string, error), cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, matches repository.MatchRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func seedMatch() model.Match {
	return model.Match{
		HomeTeamName:    "Harbor FC",
		AwayTeamName:    "Valley United",
		Status:          "scheduled",
		DurationMinutes: 90,
		Date:            time.Now().UTC().Truncate(time.Second),
	}
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedMatch())
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.HomeTeamName != created.HomeTeamName {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("create_keeps_upstream_id", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		m := seedMatch()
		m.ID = "tracker-match-42"
		created, err := repo.Create(ctx, m)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID != "tracker-match-42" {
			t.Fatalf("upstream id replaced: %q", created.ID)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), "no-such-match")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, seedMatch()); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})

	t.Run("update_status", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, seedMatch())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.UpdateStatus(ctx, created.ID, "live"); err != nil {
			t.Fatalf("update status: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != "live" {
			t.Fatalf("status not updated: %q", got.Status)
		}
		if err := repo.UpdateStatus(ctx, "no-such-match", "live"); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound for missing match, got %v", err)
		}
	})
}

func RunRosterRepositoryContract(t *testing.T, makeRepo RosterFactory) {
	t.Helper()

	t.Run("create_and_list_by_match", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("seed match: %v", err)
		}
		seeds := []model.Player{
			{MatchID: matchID, Name: "Keeper", JerseyNumber: 1, Team: model.SideHome, Position: "GK"},
			{MatchID: matchID, Name: "Striker", JerseyNumber: 9, Team: model.SideHome, Position: "FW"},
			{MatchID: matchID, Name: "Visitor", JerseyNumber: 7, Team: model.SideAway},
		}
		for _, p := range seeds {
			if _, err := repo.Create(ctx, p); err != nil {
				t.Fatalf("create player: %v", err)
			}
		}
		roster, err := repo.ListByMatch(ctx, matchID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(roster) != 3 {
			t.Fatalf("expected 3 players, got %d", len(roster))
		}
		// Ordered home side first, then jersey number.
		if roster[0].Team != model.SideHome || roster[0].JerseyNumber != 1 {
			t.Fatalf("unexpected roster order: %+v", roster)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), "no-such-player")
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Player{MatchID: "no-such-match", Name: "Ghost", Team: model.SideHome})
		if err == nil || err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})
}

func RunEventRepositoryContract(t *testing.T, makeRepo EventFactory) {
	t.Helper()

	t.Run("append_and_list", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("seed match: %v", err)
		}
		ev := model.RawEvent{
			MatchID:     matchID,
			Type:        "pass",
			Team:        "home",
			PlayerID:    "p-1",
			Timestamp:   12.0,
			Coordinates: map[string]any{"x": 30.0, "y": 40.0},
			EventData:   map[string]any{"success": true},
		}
		stored, err := repo.Append(ctx, ev)
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if stored.ID == "" {
			t.Fatalf("expected generated event id")
		}
		list, err := repo.ListByMatch(ctx, matchID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("expected 1 event, got %d", len(list))
		}
		got := list[0]
		if got.Type != "pass" || got.Team != "home" {
			t.Fatalf("mismatch: %+v", got)
		}
		if got.EventData["success"] != true {
			t.Fatalf("event_data lost: %+v", got.EventData)
		}
	})

	t.Run("append_batch_and_count", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("seed match: %v", err)
		}
		batch := []model.RawEvent{
			{MatchID: matchID, Type: "pass", Team: "home", Timestamp: 1.0},
			{MatchID: matchID, Type: "shot", Team: "away", Timestamp: 2.0},
			{MatchID: matchID, Type: "goal", Team: "away", Timestamp: 3.0},
		}
		n, err := repo.AppendBatch(ctx, batch)
		if err != nil {
			t.Fatalf("append batch: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 inserts, got %d", n)
		}
		count, err := repo.CountByMatch(ctx, matchID)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 3 {
			t.Fatalf("expected count 3, got %d", count)
		}
	})

	t.Run("list_ordered_by_timestamp", func(t *testing.T) {
		repo, mkMatch, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		matchID, err := mkMatch(ctx)
		if err != nil {
			t.Fatalf("seed match: %v", err)
		}
		_, err = repo.AppendBatch(ctx, []model.RawEvent{
			{MatchID: matchID, Type: "shot", Team: "home", Timestamp: 50.0},
			{MatchID: matchID, Type: "pass", Team: "home", Timestamp: 5.0},
		})
		if err != nil {
			t.Fatalf("seed events: %v", err)
		}
		list, err := repo.ListByMatch(ctx, matchID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 || list[0].Type != "pass" {
			t.Fatalf("expected timestamp order, got %+v", list)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, matches, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := matches.Create(ctx, seedMatch())
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := matches.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, matches, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		errMarker := assertErr("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := matches.Create(ctx, seedMatch())
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := matches.GetByID(ctx, createdID); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

// assertErr builds a sentinel error without importing errors to keep helpers local.
func assertErr(msg string) error { return &sentinel{msg} }

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
