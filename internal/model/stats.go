package model

// ActionCounts is the shared per-entity counter block. Team and player
// summaries embed it so the accumulators can drive both through one rule
// table. Every field is a plain non-negative count except TotalXG.
type ActionCounts struct {
	// Passing
	PassesAttempted int `json:"passes_attempted"`
	PassesCompleted int `json:"passes_completed"`
	ForwardPasses   int `json:"forward_passes"`
	BackwardPasses  int `json:"backward_passes"`
	LateralPasses   int `json:"lateral_passes"`
	LongPasses      int `json:"long_passes"`
	SupportPasses   int `json:"support_passes"`
	OffensivePasses int `json:"offensive_passes"`
	DecisivePasses  int `json:"decisive_passes"`

	// Crossing
	Crosses           int `json:"crosses"`
	SuccessfulCrosses int `json:"successful_crosses"`

	// Shooting
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	TotalXG       float64 `json:"total_xg"`

	FootShotsOnTarget    int `json:"foot_shots_on_target"`
	FootShotsOffTarget   int `json:"foot_shots_off_target"`
	FootShotsPostHits    int `json:"foot_shots_post_hits"`
	FootShotsBlocked     int `json:"foot_shots_blocked"`
	HeaderShotsOnTarget  int `json:"header_shots_on_target"`
	HeaderShotsOffTarget int `json:"header_shots_off_target"`
	HeaderShotsPostHits  int `json:"header_shots_post_hits"`
	HeaderShotsBlocked   int `json:"header_shots_blocked"`

	DangerousFootShots      int `json:"dangerous_foot_shots"`
	NonDangerousFootShots   int `json:"non_dangerous_foot_shots"`
	DangerousHeaderShots    int `json:"dangerous_header_shots"`
	NonDangerousHeaderShots int `json:"non_dangerous_header_shots"`

	// Duels
	DuelsWon        int `json:"duels_won"`
	DuelsLost       int `json:"duels_lost"`
	AerialDuelsWon  int `json:"aerial_duels_won"`
	AerialDuelsLost int `json:"aerial_duels_lost"`

	// Defensive actions
	Tackles       int `json:"tackles"`
	Interceptions int `json:"interceptions"`
	Clearances    int `json:"clearances"`
	Blocks        int `json:"blocks"`

	// Ball control
	BallsPlayed        int `json:"balls_played"`
	BallsLost          int `json:"balls_lost"`
	BallsRecovered     int `json:"balls_recovered"`
	Contacts           int `json:"contacts"`
	SuccessfulDribbles int `json:"successful_dribbles"`

	// Discipline and set pieces
	FoulsCommitted     int `json:"fouls_committed"`
	YellowCards        int `json:"yellow_cards"`
	RedCards           int `json:"red_cards"`
	Corners            int `json:"corners"`
	Offsides           int `json:"offsides"`
	FreeKicks          int `json:"free_kicks"`
	SixMeterViolations int `json:"six_meter_violations"`
}

// TeamDetailedStats is the full-match (or per-segment) summary for one side.
// Created fresh per aggregation call and never mutated afterwards.
type TeamDetailedStats struct {
	ActionCounts

	// PossessionPercentage is an event-share proxy (team's share of known,
	// team-attributed events), rounded to one decimal. 50.0 when neither
	// side produced events.
	PossessionPercentage float64 `json:"possession_percentage"`

	// PossessionSeconds is real ball-time, summed from event metadata when
	// upstream supplies it. Zero means "not tracked", not "no possession";
	// it is intentionally kept separate from the event-share proxy.
	PossessionSeconds float64 `json:"possession_seconds,omitempty"`
}

// PassLink is one edge of a player's outgoing pass network.
type PassLink struct {
	ToPlayerID      string `json:"to_player_id"`
	Count           int    `json:"count"`
	SuccessfulCount int    `json:"successful_count"`
}

// PlayerStatSummary scopes the action counters to a single player, plus the
// pass-network edges and receiving-side extras.
type PlayerStatSummary struct {
	PlayerID     string   `json:"player_id"`
	PlayerName   string   `json:"player_name"`
	JerseyNumber int      `json:"jersey_number,omitempty"`
	Team         TeamSide `json:"team"`

	ActionCounts

	BallsReceived      int `json:"balls_received"`
	ProgressivePasses  int `json:"progressive_passes"`
	PassesToFinalThird int `json:"passes_to_final_third"`

	// PassNetworkSent has one entry per distinct receiver, ordered by first
	// pass to that receiver.
	PassNetworkSent []PassLink `json:"pass_network_sent"`
}

// AggregatedStats is the top-level aggregation result for a match.
// PlayerStats preserves first-event insertion order; callers sort copies.
type AggregatedStats struct {
	HomeTeamStats TeamDetailedStats   `json:"home_team_stats"`
	AwayTeamStats TeamDetailedStats   `json:"away_team_stats"`
	PlayerStats   []PlayerStatSummary `json:"player_stats"`

	// SkippedEvents counts source records the normalizer could not use.
	// Diagnostic only; a non-zero value never fails the aggregation.
	SkippedEvents int `json:"skipped_events,omitempty"`
}

// SegmentStats is one fixed-width timeline bucket. Bounds are half-open
// [StartSecond, EndSecond) in the canonical event time unit.
type SegmentStats struct {
	Index         int               `json:"index"`
	StartSecond   int64             `json:"start_second"`
	EndSecond     int64             `json:"end_second"`
	HomeTeamStats TeamDetailedStats `json:"home_team_stats"`
	AwayTeamStats TeamDetailedStats `json:"away_team_stats"`
}
