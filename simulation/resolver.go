package simulation

import "github.com/maulepilot117/atbatsim/models"

// GameSituation is the context the resolver needs for its situational
// sub-decisions (GIDP and sacrifice fly eligibility). The resolver reads it
// but never mutates it.
type GameSituation struct {
	PriorOuts     int
	RunnerOnFirst bool
	RunnerOnThird bool
}

// AtBatResolver converts an unnormalized matchup EventRates into exactly one
// AtBatOutcome via the chained-binomial decision tree: a fixed sequence of
// independent uniform draws, each against a conditional probability derived
// from the ones before it, so the joint distribution reproduces the
// categorical exactly without ever normalizing the input.
type AtBatResolver struct {
	config Config
}

// NewAtBatResolver builds a resolver against the given config.
func NewAtBatResolver(config Config) *AtBatResolver {
	return &AtBatResolver{config: config}
}

// clamp confines a probability to [0,1]; conditional denominators can push a
// ratio slightly outside that range due to floating-point error.
func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// safeDiv returns 0 when the denominator is non-positive rather than
// dividing: a zero denominator here means a prior branch already took all the
// probability mass, so the conditional branch simply cannot happen.
func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return clamp(numerator / denominator)
}

// Resolve runs the fixed draw sequence against rates and situation, drawing
// from rng, and returns the resolved outcome.
func (r *AtBatResolver) Resolve(rates models.EventRates, situation GameSituation, rng Source) models.AtBatOutcome {
	// 1. Hit by pitch.
	if rng.Uniform() < rates.HitByPitch {
		return models.HitByPitch
	}

	pNotHBP := 1.0 - rates.HitByPitch

	// 2. Walk, conditional on not-HBP.
	if rng.Uniform() < safeDiv(rates.Walk, pNotHBP) {
		return models.Walk
	}

	// 3. Strikeout, conditional on not-HBP-or-walk.
	pNotHBPOrWalk := pNotHBP - rates.Walk
	if rng.Uniform() < safeDiv(rates.Strikeout, pNotHBPOrWalk) {
		return r.resolveStrikeoutMode(rng)
	}

	// 4. Contact was made. Home run, conditional on contact.
	pContact := pNotHBPOrWalk - rates.Strikeout
	if rng.Uniform() < safeDiv(rates.HomeRun, pContact) {
		return models.HomeRun
	}

	// 5. Extra-base-or-single vs in-play out, conditional on contact-minus-HR.
	pContactNonHR := pContact - rates.HomeRun
	pAnyHit := rates.Single + rates.Double + rates.Triple
	if rng.Uniform() >= safeDiv(pAnyHit, pContactNonHR) {
		return r.resolveInPlayOut(situation, rng)
	}

	// 6. Single vs extra-base, conditional on any-hit.
	pExtraBase := rates.Double + rates.Triple
	if rng.Uniform() >= safeDiv(pExtraBase, pAnyHit) {
		return r.resolveSingleType(rng)
	}

	// 7. Triple vs double, conditional on extra-base.
	if rng.Uniform() < safeDiv(rates.Triple, pExtraBase) {
		return models.Triple
	}
	return models.Double
}

func (r *AtBatResolver) resolveStrikeoutMode(rng Source) models.AtBatOutcome {
	if rng.Uniform() < r.config.StrikeoutSwingingShare {
		return models.StrikeoutSwinging
	}
	return models.StrikeoutLooking
}

func (r *AtBatResolver) resolveSingleType(rng Source) models.AtBatOutcome {
	if rng.Uniform() < r.config.InfieldSingleShare {
		return models.InfieldSingle
	}
	return models.Single
}

// resolveInPlayOut first checks for a reached-on-error conversion, then
// partitions the remaining outs by type, then applies the GIDP and
// sacrifice-fly situational overrides.
func (r *AtBatResolver) resolveInPlayOut(situation GameSituation, rng Source) models.AtBatOutcome {
	if rng.Uniform() < r.config.ErrorRateOnInPlayOut {
		return models.ReachedOnError
	}

	dist := r.config.OutTypeDistribution
	weights := []float64{dist.Groundout, dist.Flyout, dist.Lineout, dist.Popup}
	idx, err := rng.WeightedChoice(weights)
	outType := models.Groundout
	if err == nil {
		switch idx {
		case 0:
			outType = models.Groundout
		case 1:
			outType = models.Flyout
		case 2:
			outType = models.Lineout
		case 3:
			outType = models.Popup
		}
	}

	if outType == models.Groundout && situation.RunnerOnFirst && situation.PriorOuts < 2 {
		if rng.Uniform() < r.config.GIDPRateOnGroundoutWhenEligible {
			return models.GIDP
		}
	}
	if outType == models.Flyout && situation.RunnerOnThird && situation.PriorOuts < 2 {
		if rng.Uniform() < r.config.SacFlyRateOnFlyoutWhenEligible {
			return models.SacrificeFly
		}
	}

	return outType
}
