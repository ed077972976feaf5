package analytics

import "github.com/ovasylenko/match-stats-service/internal/model"

// Ratio is the single division policy for every derived percentage in the
// system: a non-positive denominator yields 0, never NaN or Inf. Each chart
// and table used to re-implement this guard inline with slightly different
// edge behavior: all accuracy, success-rate and efficiency metrics must
// route through here instead.
func Ratio(numerator, denominator float64, asPercentage bool) float64 {
	if denominator <= 0 {
		return 0
	}
	r := numerator / denominator
	if asPercentage {
		r *= 100
	}
	return r
}

// PassAccuracy is completed / attempted as a percentage.
func PassAccuracy(c model.ActionCounts) float64 {
	return Ratio(float64(c.PassesCompleted), float64(c.PassesAttempted), true)
}

// ShotAccuracy is on-target / total shots as a percentage.
func ShotAccuracy(c model.ActionCounts) float64 {
	return Ratio(float64(c.ShotsOnTarget), float64(c.Shots), true)
}

// GoalConversion is goals / total shots as a percentage.
func GoalConversion(c model.ActionCounts) float64 {
	return Ratio(float64(c.Goals), float64(c.Shots), true)
}

// CrossAccuracy is successful / attempted crosses as a percentage.
func CrossAccuracy(c model.ActionCounts) float64 {
	return Ratio(float64(c.SuccessfulCrosses), float64(c.Crosses), true)
}

// DuelSuccessRate is duels won over all duels contested as a percentage.
func DuelSuccessRate(c model.ActionCounts) float64 {
	return Ratio(float64(c.DuelsWon), float64(c.DuelsWon+c.DuelsLost), true)
}

// BallLossRatio is balls lost per ball played as a percentage.
func BallLossRatio(c model.ActionCounts) float64 {
	return Ratio(float64(c.BallsLost), float64(c.BallsPlayed), true)
}
