package simulation

import "github.com/maulepilot117/atbatsim/models"

// advancementOption is one row of an advancement matrix: the resulting base
// state, runs scored, and the probability of that row within its prior state.
type advancementOption struct {
	newState [3]bool
	runs     int
	prob     float64
}

type advancementMatrix map[[3]bool][]advancementOption

// singleAdvancement is keyed by the prior base state. The runner-on-first and
// runner-on-second rows are the glossary's explicit representative
// advancement figures (73.6%/26.4% and 57.6%/42.4%); the remaining combined
// rows are carried over from historical play-by-play frequencies where the
// spec leaves them unspecified.
var singleAdvancement = advancementMatrix{
	{false, false, false}: {{[3]bool{true, false, false}, 0, 1.0}},
	{true, false, false}: {
		{[3]bool{true, true, false}, 0, 0.736},
		{[3]bool{true, false, true}, 0, 0.264},
	},
	{false, true, false}: {
		{[3]bool{true, false, false}, 1, 0.576},
		{[3]bool{true, false, true}, 0, 0.424},
	},
	{false, false, true}: {{[3]bool{true, false, false}, 1, 1.0}},
	{true, true, false}: {
		{[3]bool{true, true, false}, 1, 0.35},
		{[3]bool{true, false, true}, 1, 0.25},
		{[3]bool{true, true, true}, 0, 0.40},
	},
	{true, false, true}: {
		{[3]bool{true, true, false}, 1, 0.70},
		{[3]bool{true, false, true}, 1, 0.30},
	},
	{false, true, true}: {
		{[3]bool{true, false, false}, 2, 0.60},
		{[3]bool{true, false, true}, 1, 0.40},
	},
	{true, true, true}: {
		{[3]bool{true, true, false}, 2, 0.35},
		{[3]bool{true, true, true}, 1, 0.45},
		{[3]bool{true, false, true}, 2, 0.20},
	},
}

var doubleAdvancement = advancementMatrix{
	{false, false, false}: {{[3]bool{false, true, false}, 0, 1.0}},
	{true, false, false}: {
		{[3]bool{false, true, false}, 1, 0.60},
		{[3]bool{false, true, true}, 0, 0.40},
	},
	{false, true, false}: {{[3]bool{false, true, false}, 1, 1.0}},
	{false, false, true}: {{[3]bool{false, true, false}, 1, 1.0}},
	{true, true, false}: {
		{[3]bool{false, true, false}, 2, 0.70},
		{[3]bool{false, true, true}, 1, 0.30},
	},
	{true, false, true}: {
		{[3]bool{false, true, false}, 2, 0.85},
		{[3]bool{false, true, true}, 1, 0.15},
	},
	{false, true, true}: {{[3]bool{false, true, false}, 2, 1.0}},
	{true, true, true}: {
		{[3]bool{false, true, false}, 3, 0.75},
		{[3]bool{false, true, true}, 2, 0.25},
	},
}

var tripleAdvancement = advancementMatrix{
	{false, false, false}: {{[3]bool{false, false, true}, 0, 1.0}},
	{true, false, false}:  {{[3]bool{false, false, true}, 1, 1.0}},
	{false, true, false}:  {{[3]bool{false, false, true}, 1, 1.0}},
	{false, false, true}:  {{[3]bool{false, false, true}, 1, 1.0}},
	{true, true, false}:   {{[3]bool{false, false, true}, 2, 1.0}},
	{true, false, true}:   {{[3]bool{false, false, true}, 2, 1.0}},
	{false, true, true}:   {{[3]bool{false, false, true}, 2, 1.0}},
	{true, true, true}:    {{[3]bool{false, false, true}, 3, 1.0}},
}

// walkAdvancement implements force-only advancement: batter to first, each
// runner advances only if forced by the runner behind them.
var walkAdvancement = advancementMatrix{
	{false, false, false}: {{[3]bool{true, false, false}, 0, 1.0}},
	{true, false, false}:  {{[3]bool{true, true, false}, 0, 1.0}},
	{false, true, false}:  {{[3]bool{true, true, false}, 0, 1.0}},
	{false, false, true}:  {{[3]bool{true, false, true}, 0, 1.0}},
	{true, true, false}:   {{[3]bool{true, true, true}, 0, 1.0}},
	{true, false, true}:   {{[3]bool{true, true, true}, 0, 1.0}},
	{false, true, true}:   {{[3]bool{true, true, true}, 0, 1.0}},
	{true, true, true}:    {{[3]bool{true, true, true}, 1, 1.0}},
}

// AdvancementEngine resolves an at-bat outcome and a prior base state into a
// new base state and runs scored, drawing from fixed probability matrices.
type AdvancementEngine struct{}

// NewAdvancementEngine validates that every matrix row set sums to 1 within
// epsilon before returning a ready engine.
func NewAdvancementEngine() (*AdvancementEngine, error) {
	for name, matrix := range map[string]advancementMatrix{
		"single": singleAdvancement, "double": doubleAdvancement,
		"triple": tripleAdvancement, "walk": walkAdvancement,
	} {
		for _, options := range matrix {
			sum := 0.0
			for _, opt := range options {
				sum += opt.prob
			}
			if diff := sum - 1.0; diff < -1e-9 || diff > 1e-9 {
				return nil, &models.InvalidAdvancementMatrixError{
					Outcome: name,
					Reason:  "row for base state does not sum to 1",
				}
			}
		}
	}
	return &AdvancementEngine{}, nil
}

// Advance applies outcome to base against the prior base state, drawing from
// rng when the outcome's matrix row has more than one possibility. Outs other
// than GIDP/sacrifice-fly leave the base state unchanged; GIDP and sacrifice
// fly are situational overrides applied by the resolver, not this engine, and
// are passed in as their own AtBatOutcome values with explicit base-state
// adjustments handled here.
func (e *AdvancementEngine) Advance(outcome models.AtBatOutcome, base models.BaseState, rng Source) (models.AdvancementResult, error) {
	if outcome == models.HomeRun {
		return models.AdvancementResult{
			NewBaseState: models.EmptyBases,
			RunsScored:   base.Count() + 1,
		}, nil
	}

	if outcome == models.GIDP {
		// The runner from first and the batter are both out: first is cleared,
		// any runner on second or third holds, and no run scores.
		return models.AdvancementResult{
			NewBaseState: base.WithFirst(false),
			RunsScored:   0,
			OutsAdded:    2,
		}, nil
	}

	if outcome == models.SacrificeFly {
		return models.AdvancementResult{
			NewBaseState: base.WithThird(false),
			RunsScored:   1,
			OutsAdded:    1,
		}, nil
	}

	outsAdded := models.OutsAddedFor(outcome)

	var matrix advancementMatrix
	switch outcome {
	case models.Single, models.InfieldSingle, models.ReachedOnError:
		matrix = singleAdvancement
	case models.Double:
		matrix = doubleAdvancement
	case models.Triple:
		matrix = tripleAdvancement
	case models.Walk, models.HitByPitch:
		matrix = walkAdvancement
	default:
		// Outs without situational advancement: state unchanged, no runs.
		return models.AdvancementResult{NewBaseState: base, RunsScored: 0, OutsAdded: outsAdded}, nil
	}

	options, ok := matrix[base.AsTuple()]
	if !ok || len(options) == 0 {
		return models.AdvancementResult{NewBaseState: base, RunsScored: 0, OutsAdded: outsAdded}, nil
	}
	if len(options) == 1 {
		return models.AdvancementResult{NewBaseState: models.FromTuple(options[0].newState), RunsScored: options[0].runs, OutsAdded: outsAdded}, nil
	}

	weights := make([]float64, len(options))
	for i, opt := range options {
		weights[i] = opt.prob
	}
	idx, err := rng.WeightedChoice(weights)
	if err != nil {
		return models.AdvancementResult{}, err
	}
	chosen := options[idx]
	return models.AdvancementResult{NewBaseState: models.FromTuple(chosen.newState), RunsScored: chosen.runs, OutsAdded: outsAdded}, nil
}
