// Package analytics is the match-event aggregation core: it normalizes raw
// tracker records into canonical events and folds them into team-level,
// player-level and time-segmented statistical summaries. The whole package
// is a pure batch transform: no I/O, no shared state, same input always
// yields the same output, so callers may re-run it on every data refresh.
package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

// Tracker exports and the piano input log several pass/duel variants as
// dedicated event types. The normalizer folds them into the canonical tagged
// shape so the accumulators dispatch on one closed set.
var typeAliases = map[string]model.MatchEvent{
	"supportPass":       {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Support: true}},
	"offensivePass":     {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Offensive: true}},
	"longPass":          {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Long: true}},
	"forwardPass":       {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Direction: model.DirectionForward}},
	"backwardPass":      {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Direction: model.DirectionBackward}},
	"lateralPass":       {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Direction: model.DirectionLateral}},
	"decisivePass":      {Type: model.TypePass, Pass: &model.PassDetail{Success: true, Decisive: true}},
	"successfulCross":   {Type: model.TypeCross, Pass: &model.PassDetail{Success: true}},
	"successfulDribble": {Type: model.TypeDribble},
	"aerialDuelWon":     {Type: model.TypeAerialDuel},
	"aerialDuelLost":    {Type: model.TypeAerialDuel},
	"ballRecovered":     {Type: model.TypeBallRecovery},
	"6MeterViolation":   {Type: model.TypeSixMeter},
}

// NormalizeEvents validates and coerces raw records into canonical
// MatchEvents. Malformed fields are defaulted (timestamp to 0, coordinates
// to {0,0}); unknown types are kept as TypeUnknown so event totals stay
// honest without feeding any counter. Records with no type at all are
// dropped; the second return value is that skip count, surfaced to callers
// for diagnostics only. The input is never mutated and nothing ever panics
// or errors; one bad tracker record must not blank a dashboard.
func NormalizeEvents(raw []model.RawEvent) ([]model.MatchEvent, int) {
	out := make([]model.MatchEvent, 0, len(raw))
	skipped := 0

	for _, r := range raw {
		ev, ok := normalizeOne(r)
		if !ok {
			skipped++
			continue
		}
		out = append(out, ev)
	}
	return out, skipped
}

func normalizeOne(r model.RawEvent) (model.MatchEvent, bool) {
	typeName := strings.TrimSpace(r.Type)
	if typeName == "" {
		return model.MatchEvent{}, false
	}

	ev := model.MatchEvent{
		ID:          r.ID,
		MatchID:     r.MatchID,
		Timestamp:   coerceTimestamp(r.Timestamp),
		Coordinates: coerceCoordinates(r.Coordinates),
		PlayerID:    coerceID(r.PlayerID),
	}

	if side := model.TeamSide(strings.ToLower(strings.TrimSpace(r.Team))); side.Valid() {
		ev.Team = side
	}

	alias, aliased := typeAliases[typeName]
	switch {
	case aliased:
		ev.Type = alias.Type
		if alias.Pass != nil {
			p := *alias.Pass // copy, aliases are shared
			ev.Pass = &p
		}
		switch typeName {
		case "successfulDribble", "aerialDuelWon":
			ev.Success = boolPtr(true)
		case "aerialDuelLost":
			ev.Success = boolPtr(false)
		}
	default:
		t := model.EventType(typeName)
		if _, known := model.KnownEventTypes[t]; !known {
			t = model.TypeUnknown
		}
		ev.Type = t
	}

	if s, ok := coerceBool(r.EventData, "success"); ok {
		ev.Success = boolPtr(s)
	}
	if v, ok := coerceFloat(r.EventData["possession_seconds"]); ok && v > 0 {
		ev.PossessionSeconds = v
	}

	switch ev.Type {
	case model.TypePass, model.TypeCross:
		normalizePass(&ev, r.EventData)
	case model.TypeShot, model.TypeGoal:
		normalizeShot(&ev, r.EventData)
	}
	return ev, true
}

func normalizePass(ev *model.MatchEvent, data map[string]any) {
	if ev.Pass == nil {
		ev.Pass = &model.PassDetail{}
	}
	p := ev.Pass
	if ev.Success != nil {
		p.Success = *ev.Success
	}
	if id := coerceID(data["recipient_player_id"]); id != "" {
		p.RecipientPlayerID = id
	}
	switch model.PassDirection(coerceString(data["direction"])) {
	case model.DirectionForward:
		p.Direction = model.DirectionForward
	case model.DirectionBackward:
		p.Direction = model.DirectionBackward
	case model.DirectionLateral:
		p.Direction = model.DirectionLateral
	}
	if v, ok := coerceBool(data, "is_long", "long"); ok {
		p.Long = v
	}
	if v, ok := coerceBool(data, "support"); ok {
		p.Support = v
	}
	if v, ok := coerceBool(data, "offensive"); ok {
		p.Offensive = v
	}
	if v, ok := coerceBool(data, "decisive"); ok {
		p.Decisive = v
	}
	if end, ok := data["end_coordinates"].(map[string]any); ok {
		c := coerceCoordinates(end)
		p.EndCoordinates = &c
	}
}

func normalizeShot(ev *model.MatchEvent, data map[string]any) {
	s := &model.ShotDetail{BodyPart: model.BodyFoot}
	if header, ok := coerceBool(data, "isHeader", "is_header"); ok && header {
		s.BodyPart = model.BodyHeader
	}
	if model.BodyPart(coerceString(data["body_part"])) == model.BodyHeader {
		s.BodyPart = model.BodyHeader
	}
	if v, ok := coerceBool(data, "dangerous", "danger"); ok {
		s.Dangerous = v
	} else if coerceString(data["danger"]) == "dangerous" {
		s.Dangerous = true
	}
	s.Situation = coerceString(data["situation"])
	s.Outcome = shotOutcome(ev, data)
	s.OnTarget = s.Outcome == model.OutcomeOnTarget

	if xg, ok := coerceFloat(data["xg"]); ok && xg > 0 {
		s.XG = xg
	} else {
		s.XG = EstimateXG(ShotContext{
			Situation:   s.Situation,
			ShotType:    coerceString(data["shot_type"]),
			AssistType:  coerceString(data["assist_type"]),
			BodyPart:    s.BodyPart,
			Coordinates: &ev.Coordinates,
		})
	}
	ev.Shot = s
}

func shotOutcome(ev *model.MatchEvent, data map[string]any) model.ShotOutcome {
	switch model.ShotOutcome(coerceString(data["outcome"])) {
	case model.OutcomeOnTarget:
		return model.OutcomeOnTarget
	case model.OutcomeOffTarget:
		return model.OutcomeOffTarget
	case model.OutcomePostHit:
		return model.OutcomePostHit
	case model.OutcomeBlocked:
		return model.OutcomeBlocked
	}
	if v, ok := coerceBool(data, "hitPost", "hit_post"); ok && v {
		return model.OutcomePostHit
	}
	if v, ok := coerceBool(data, "blocked"); ok && v {
		return model.OutcomeBlocked
	}
	// A goal is on target by definition.
	if ev.Type == model.TypeGoal {
		return model.OutcomeOnTarget
	}
	if v, ok := coerceBool(data, "on_target", "onTarget"); ok && v {
		return model.OutcomeOnTarget
	}
	return model.OutcomeOffTarget
}

// ---- coercion helpers: the only place loose shapes are touched ----

func coerceTimestamp(v any) int64 {
	f, ok := coerceFloat(v)
	if !ok || math.IsNaN(f) || f < 0 {
		return 0
	}
	return int64(f)
}

func coerceCoordinates(m map[string]any) model.Coordinates {
	var c model.Coordinates
	if m == nil {
		return c
	}
	if x, ok := coerceFloat(m["x"]); ok && !math.IsNaN(x) {
		c.X = x
	}
	if y, ok := coerceFloat(m["y"]); ok && !math.IsNaN(y) {
		c.Y = y
	}
	return c
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceID renders player references uniformly as strings; upstream stores
// mix numeric and string ids for the same players.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		if id == math.Trunc(id) && !math.IsNaN(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func coerceBool(data map[string]any, keys ...string) (bool, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			if b, isBool := v.(bool); isBool {
				return b, true
			}
		}
	}
	return false, false
}

func boolPtr(b bool) *bool { return &b }
