package analytics

import (
	"math"

	"github.com/ovasylenko/match-stats-service/internal/model"
)

const (
	pitchWidth  = 68.0
	goalCenterY = pitchWidth / 2
	goalLineX   = pitchLength

	penaltyXG = 0.76
	baseXG    = 0.08
	minXG     = 0.01
	maxXG     = 0.95
)

// ShotContext is the pre-tagged shot classification the estimator consumes.
// Situation, shot type and assist type come straight from the tracker
// vocabulary; no video or image analysis happens here.
type ShotContext struct {
	Situation   string // penalty, direct_free_kick, corner_related, fast_break
	ShotType    string // header, volley, lob
	AssistType  string // through_ball, pull_back, cut_back, cross, rebound
	BodyPart    model.BodyPart
	Coordinates *model.Coordinates
}

// EstimateXG scores a shot's goal probability from its tagged context when
// upstream did not supply a value. A simple additive heuristic, not a
// trained model: situation and assist quality push up, awkward executions
// push down, distance to the goal center adjusts last. Clamped to
// [0.01, 0.95]; penalties are fixed at 0.76.
func EstimateXG(sc ShotContext) float64 {
	if sc.Situation == "penalty" {
		return penaltyXG
	}

	xg := baseXG

	switch sc.Situation {
	case "direct_free_kick":
		xg += 0.04
	case "corner_related":
		if sc.ShotType == "header" {
			xg += 0.05
		} else {
			xg += 0.02
		}
	case "fast_break":
		xg += 0.03
	}

	switch sc.ShotType {
	case "header":
		if sc.Situation != "corner_related" {
			xg -= 0.01
		}
	case "volley":
		xg -= 0.01
	case "lob":
		xg -= 0.02
	}

	// Only an explicitly tagged awkward body part lowers the estimate; most
	// trackers leave the field unset and that must stay neutral.
	if sc.BodyPart == model.BodyOther {
		xg -= 0.02
	}

	switch sc.AssistType {
	case "through_ball":
		xg += 0.06
	case "pull_back", "cut_back":
		xg += 0.05
	case "cross":
		xg += 0.01
	case "rebound":
		xg += 0.04
	}

	if sc.Coordinates != nil {
		xg += distanceAdjustment(*sc.Coordinates)
	}

	return math.Max(minXG, math.Min(xg, maxXG))
}

func distanceAdjustment(c model.Coordinates) float64 {
	d := math.Hypot(goalLineX-c.X, goalCenterY-c.Y)
	switch {
	case d < 5:
		return 0.10
	case d < 10:
		return 0.05
	case d > 25:
		return -0.03
	case d > 18:
		return -0.01
	default:
		return 0
	}
}
