package service_test

import (
	"context"
	"strconv"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

type fakeMatchRepo struct {
	matches map[string]model.Match
	nextID  int
}

func newFakeMatchRepo(seed ...model.Match) *fakeMatchRepo {
	f := &fakeMatchRepo{matches: map[string]model.Match{}}
	for _, m := range seed {
		f.matches[m.ID] = m
	}
	return f
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	if m.ID == "" {
		f.nextID++
		m.ID = "m-" + strconv.Itoa(f.nextID)
	}
	if _, dup := f.matches[m.ID]; dup {
		return model.Match{}, repository.ErrAlreadyExists
	}
	f.matches[m.ID] = m
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id string) (model.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMatchRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	out := repository.PageResult[model.Match]{Total: len(f.matches)}
	for _, m := range f.matches {
		out.Items = append(out.Items, m)
	}
	return out, nil
}

func (f *fakeMatchRepo) UpdateStatus(_ context.Context, id, status string) error {
	m, ok := f.matches[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Status = status
	f.matches[id] = m
	return nil
}

func (f *fakeMatchRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.matches[id]
	return ok, nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type fakeRosterRepo struct {
	players []model.Player
}

func (f *fakeRosterRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	if p.ID == "" {
		p.ID = "p-" + strconv.Itoa(len(f.players)+1)
	}
	f.players = append(f.players, p)
	return p, nil
}

func (f *fakeRosterRepo) GetByID(_ context.Context, id string) (model.Player, error) {
	for _, p := range f.players {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Player{}, repository.ErrNotFound
}

func (f *fakeRosterRepo) ListByMatch(_ context.Context, matchID string) ([]model.Player, error) {
	var out []model.Player
	for _, p := range f.players {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.RosterRepository = (*fakeRosterRepo)(nil)

type fakeEventRepo struct {
	events []model.RawEvent
}

func (f *fakeEventRepo) Append(_ context.Context, ev model.RawEvent) (model.RawEvent, error) {
	if ev.ID == "" {
		ev.ID = "e-" + strconv.Itoa(len(f.events)+1)
	}
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventRepo) AppendBatch(_ context.Context, evs []model.RawEvent) (int, error) {
	f.events = append(f.events, evs...)
	return len(evs), nil
}

func (f *fakeEventRepo) ListByMatch(_ context.Context, matchID string) ([]model.RawEvent, error) {
	var out []model.RawEvent
	for _, ev := range f.events {
		if ev.MatchID == matchID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CountByMatch(_ context.Context, matchID string) (int, error) {
	n := 0
	for _, ev := range f.events {
		if ev.MatchID == matchID {
			n++
		}
	}
	return n, nil
}

var _ repository.EventRepository = (*fakeEventRepo)(nil)

type fakeTx struct{}

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

var _ repository.TxManager = (*fakeTx)(nil)

// fakeStatsCache records interactions so tests can assert read-through behavior.
type fakeStatsCache struct {
	entries map[string]model.AggregatedStats
	gets    int
	hits    int
	sets    int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: map[string]model.AggregatedStats{}}
}

func cacheKey(matchID string, count int) string { return matchID + "/" + strconv.Itoa(count) }

func (f *fakeStatsCache) Get(_ context.Context, matchID string, eventCount int) (model.AggregatedStats, error) {
	f.gets++
	if v, ok := f.entries[cacheKey(matchID, eventCount)]; ok {
		f.hits++
		return v, nil
	}
	return model.AggregatedStats{}, errCacheMiss
}

func (f *fakeStatsCache) Set(_ context.Context, matchID string, eventCount int, _ string, stats model.AggregatedStats) {
	f.sets++
	f.entries[cacheKey(matchID, eventCount)] = stats
}
