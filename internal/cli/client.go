package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ovasylenko/match-stats-service/internal/model"
	"github.com/ovasylenko/match-stats-service/internal/repository"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

func getJSON(path string, out any) error {
	resp, err := httpClient.Get(serverAddr + path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%s: server returned %d: %s", path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func fetchMatch(matchID string) (model.Match, error) {
	var m model.Match
	err := getJSON("/api/v1/matches/"+matchID, &m)
	return m, err
}

func fetchStats(matchID string) (model.AggregatedStats, error) {
	var agg model.AggregatedStats
	err := getJSON("/api/v1/matches/"+matchID+"/stats", &agg)
	return agg, err
}

func fetchSegments(matchID string, interval int) ([]model.SegmentStats, error) {
	path := "/api/v1/matches/" + matchID + "/stats/segments"
	if interval > 0 {
		path = fmt.Sprintf("%s?interval=%d", path, interval)
	}
	var segs []model.SegmentStats
	err := getJSON(path, &segs)
	return segs, err
}

func fetchMatches(limit int) ([]model.Match, error) {
	var page repository.PageResult[model.Match]
	if err := getJSON(fmt.Sprintf("/api/v1/matches?limit=%d", limit), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}
