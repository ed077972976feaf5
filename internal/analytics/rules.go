package analytics

import "github.com/ovasylenko/match-stats-service/internal/model"

// ballActions are the event types that count as the ball being played.
// Administrative events (cards, fouls, set-piece awards, substitutions) do
// not touch the ball counters.
var ballActions = map[model.EventType]struct{}{
	model.TypePass: {}, model.TypeCross: {}, model.TypeShot: {},
	model.TypeGoal: {}, model.TypeTackle: {}, model.TypeInterception: {},
	model.TypeClearance: {}, model.TypeBlock: {}, model.TypeDribble: {},
	model.TypeDuel: {}, model.TypeAerialDuel: {}, model.TypeBallRecovery: {},
	model.TypeBallLost: {}, model.TypeContact: {},
}

// ApplyEvent folds a single event into an ActionCounts block. This is the
// entire counter rule table: every increment is independent and commutative,
// so batch aggregation, per-segment re-runs and incremental live updates all
// reduce to repeated calls of this one function. Unknown types are a no-op.
func ApplyEvent(c *model.ActionCounts, ev model.MatchEvent) {
	if _, ok := ballActions[ev.Type]; ok {
		c.BallsPlayed++
	}

	switch ev.Type {
	case model.TypePass:
		applyPass(c, ev.Pass)
	case model.TypeCross:
		c.Crosses++
		applyPass(c, ev.Pass)
		if ev.Pass != nil && ev.Pass.Success {
			c.SuccessfulCrosses++
		}
	case model.TypeShot, model.TypeGoal:
		applyShot(c, ev.Shot)
		if ev.Type == model.TypeGoal {
			c.Goals++
		}
	case model.TypeAssist:
		c.Assists++
	case model.TypeTackle:
		c.Tackles++
	case model.TypeInterception:
		c.Interceptions++
	case model.TypeClearance:
		c.Clearances++
	case model.TypeBlock:
		c.Blocks++
	case model.TypeDribble:
		if ev.Success != nil && *ev.Success {
			c.SuccessfulDribbles++
		}
	case model.TypeDuel:
		if won(ev) {
			c.DuelsWon++
		} else {
			c.DuelsLost++
		}
	case model.TypeAerialDuel:
		// An aerial duel is still a duel; both ledgers move.
		if won(ev) {
			c.AerialDuelsWon++
			c.DuelsWon++
		} else {
			c.AerialDuelsLost++
			c.DuelsLost++
		}
	case model.TypeBallRecovery:
		c.BallsRecovered++
	case model.TypeBallLost:
		c.BallsLost++
	case model.TypeContact:
		c.Contacts++
	case model.TypeFoul:
		c.FoulsCommitted++
	case model.TypeYellowCard:
		c.YellowCards++
	case model.TypeRedCard:
		c.RedCards++
	case model.TypeCorner:
		c.Corners++
	case model.TypeOffside:
		c.Offsides++
	case model.TypeFreeKick:
		c.FreeKicks++
	case model.TypeSixMeter:
		c.SixMeterViolations++
	}
}

// applyPass handles the additive pass sub-classification: a long forward
// pass increments both LongPasses and ForwardPasses, each flag independent
// of the others.
func applyPass(c *model.ActionCounts, p *model.PassDetail) {
	c.PassesAttempted++
	if p == nil {
		return
	}
	if p.Success {
		c.PassesCompleted++
	}
	switch p.Direction {
	case model.DirectionForward:
		c.ForwardPasses++
	case model.DirectionBackward:
		c.BackwardPasses++
	case model.DirectionLateral:
		c.LateralPasses++
	}
	if p.Long {
		c.LongPasses++
	}
	if p.Support {
		c.SupportPasses++
	}
	if p.Offensive {
		c.OffensivePasses++
	}
	if p.Decisive {
		c.DecisivePasses++
	}
}

// applyShot cross-tabulates body part x danger x outcome on top of the
// plain shot counters.
func applyShot(c *model.ActionCounts, s *model.ShotDetail) {
	c.Shots++
	if s == nil {
		return
	}
	if s.OnTarget {
		c.ShotsOnTarget++
	}
	c.TotalXG += s.XG

	switch s.BodyPart {
	case model.BodyFoot:
		if s.Dangerous {
			c.DangerousFootShots++
		} else {
			c.NonDangerousFootShots++
		}
		switch s.Outcome {
		case model.OutcomeOnTarget:
			c.FootShotsOnTarget++
		case model.OutcomeOffTarget:
			c.FootShotsOffTarget++
		case model.OutcomePostHit:
			c.FootShotsPostHits++
		case model.OutcomeBlocked:
			c.FootShotsBlocked++
		}
	case model.BodyHeader:
		if s.Dangerous {
			c.DangerousHeaderShots++
		} else {
			c.NonDangerousHeaderShots++
		}
		switch s.Outcome {
		case model.OutcomeOnTarget:
			c.HeaderShotsOnTarget++
		case model.OutcomeOffTarget:
			c.HeaderShotsOffTarget++
		case model.OutcomePostHit:
			c.HeaderShotsPostHits++
		case model.OutcomeBlocked:
			c.HeaderShotsBlocked++
		}
	}
}

func won(ev model.MatchEvent) bool {
	return ev.Success != nil && *ev.Success
}
