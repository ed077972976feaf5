// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// TeamSide identifies which side of the match an event or player belongs to.
type TeamSide string

const (
	SideHome TeamSide = "home"
	SideAway TeamSide = "away"
)

// Valid reports whether the side is one of the two known values.
func (s TeamSide) Valid() bool { return s == SideHome || s == SideAway }

// EventType is the closed set of match event kinds the engine understands.
// Anything else is carried through as TypeUnknown and never feeds a counter.
type EventType string

const (
	TypePass         EventType = "pass"
	TypeCross        EventType = "cross"
	TypeShot         EventType = "shot"
	TypeGoal         EventType = "goal"
	TypeAssist       EventType = "assist"
	TypeTackle       EventType = "tackle"
	TypeInterception EventType = "interception"
	TypeClearance    EventType = "clearance"
	TypeBlock        EventType = "block"
	TypeDribble      EventType = "dribble"
	TypeDuel         EventType = "duel"
	TypeAerialDuel   EventType = "aerialDuel"
	TypeBallRecovery EventType = "ballRecovery"
	TypeBallLost     EventType = "ballLost"
	TypeContact      EventType = "contact"
	TypeFoul         EventType = "foul"
	TypeYellowCard   EventType = "yellowCard"
	TypeRedCard      EventType = "redCard"
	TypeCorner       EventType = "corner"
	TypeOffside      EventType = "offside"
	TypeFreeKick     EventType = "freeKick"
	TypeSixMeter     EventType = "sixMeterViolation"
	TypeSubstitution EventType = "substitution"
	TypeUnknown      EventType = "unknown"
)

// KnownEventTypes is the dispatch domain of the accumulator rule table.
var KnownEventTypes = map[EventType]struct{}{
	TypePass: {}, TypeCross: {}, TypeShot: {}, TypeGoal: {}, TypeAssist: {},
	TypeTackle: {}, TypeInterception: {}, TypeClearance: {}, TypeBlock: {},
	TypeDribble: {}, TypeDuel: {}, TypeAerialDuel: {}, TypeBallRecovery: {},
	TypeBallLost: {}, TypeContact: {}, TypeFoul: {}, TypeYellowCard: {},
	TypeRedCard: {}, TypeCorner: {}, TypeOffside: {}, TypeFreeKick: {},
	TypeSixMeter: {}, TypeSubstitution: {},
}

// Coordinates is a pitch-relative position in meters, (0,0) at the home
// corner, attack direction towards increasing X on a 105x68 pitch.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Match represents a tracked match.
type Match struct {
	ID              string    `json:"id"`
	HomeTeamName    string    `json:"home_team_name"`
	AwayTeamName    string    `json:"away_team_name"`
	Status          string    `json:"status"` // scheduled, live, finished
	DurationMinutes int       `json:"duration_minutes"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Player represents a roster entry for one side of a match.
type Player struct {
	ID           string    `json:"id"`
	MatchID      string    `json:"match_id"`
	Name         string    `json:"name"`
	JerseyNumber int       `json:"jersey_number"`
	Team         TeamSide  `json:"team"`
	Position     string    `json:"position,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RawEvent is the loosely-typed source form of a match event as it arrives
// from the store or a tracker export. Field types are deliberately weak
// (any / maps); the normalizer owns every coercion so downstream code never
// re-checks shapes.
type RawEvent struct {
	ID          string         `json:"id"`
	MatchID     string         `json:"match_id"`
	Type        string         `json:"type"`
	Team        string         `json:"team,omitempty"`
	PlayerID    any            `json:"player_id,omitempty"` // string or number upstream
	Timestamp   any            `json:"timestamp,omitempty"` // seconds since match start
	Coordinates map[string]any `json:"coordinates,omitempty"`
	EventData   map[string]any `json:"event_data,omitempty"`
}

// PassDirection classifies a pass relative to the attacking direction.
type PassDirection string

const (
	DirectionForward  PassDirection = "forward"
	DirectionBackward PassDirection = "backward"
	DirectionLateral  PassDirection = "lateral"
)

// PassDetail carries the fields relevant to pass and cross events.
type PassDetail struct {
	RecipientPlayerID string        `json:"recipient_player_id,omitempty"`
	Success           bool          `json:"success"`
	Direction         PassDirection `json:"direction,omitempty"`
	Long              bool          `json:"long,omitempty"`
	Support           bool          `json:"support,omitempty"`
	Offensive         bool          `json:"offensive,omitempty"`
	Decisive          bool          `json:"decisive,omitempty"`
	EndCoordinates    *Coordinates  `json:"end_coordinates,omitempty"`
}

// BodyPart distinguishes shot execution for the cross-tabulated counters.
type BodyPart string

const (
	BodyFoot   BodyPart = "foot"
	BodyHeader BodyPart = "header"
	BodyOther  BodyPart = "other"
)

// ShotOutcome is the terminal result of a shot attempt.
type ShotOutcome string

const (
	OutcomeOnTarget  ShotOutcome = "onTarget"
	OutcomeOffTarget ShotOutcome = "offTarget"
	OutcomePostHit   ShotOutcome = "postHit"
	OutcomeBlocked   ShotOutcome = "blocked"
)

// ShotDetail carries the fields relevant to shot and goal events.
// XG is either supplied upstream or filled by the estimator during
// normalization; the accumulators only ever sum it.
type ShotDetail struct {
	OnTarget  bool        `json:"on_target"`
	BodyPart  BodyPart    `json:"body_part,omitempty"`
	Dangerous bool        `json:"dangerous,omitempty"`
	Outcome   ShotOutcome `json:"outcome,omitempty"`
	Situation string      `json:"situation,omitempty"`
	XG        float64     `json:"xg"`
}

// MatchEvent is the canonical event shape produced by the normalizer.
// Exactly one of Pass/Shot is set for the corresponding type families;
// everything else relies on Type, Team, Success and the shared fields.
type MatchEvent struct {
	ID                string      `json:"id"`
	MatchID           string      `json:"match_id"`
	Type              EventType   `json:"type"`
	Team              TeamSide    `json:"team,omitempty"`
	PlayerID          string      `json:"player_id,omitempty"`
	Timestamp         int64       `json:"timestamp"` // seconds since match start
	Coordinates       Coordinates `json:"coordinates"`
	Success           *bool       `json:"success,omitempty"` // tackle, dribble, duel outcomes
	PossessionSeconds float64     `json:"possession_seconds,omitempty"`
	Pass              *PassDetail `json:"pass,omitempty"`
	Shot              *ShotDetail `json:"shot,omitempty"`
}
