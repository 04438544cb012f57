package simulation

import "github.com/maulepilot117/atbatsim/models"

// PlateAppearanceResult bundles everything a single call to
// SimulateAtBat produced: the resolved outcome, its advancement
// consequence, the matchup rates it was drawn from (for UI/debug display),
// whether either side's projection had to fall back to the league baseline
// (so an embedder can detect excessive fallback across a batch of calls),
// and the slice of RandomSource draws this call consumed (for audit replay).
type PlateAppearanceResult struct {
	Outcome             models.AtBatOutcome
	Advancement         models.AdvancementResult
	BeforeState         models.BaseState
	Matchup             models.EventRates
	BatterUsedFallback  bool
	PitcherUsedFallback bool
	AuditTrail          []DrawRecord
}

// SimulationEngine is the façade that composes projector, combiner, resolver,
// and advancement engine into one synchronous operation per plate appearance.
//
// A plate appearance is atomic from the engine's point of view: it never
// suspends mid-resolution. The engine owns no locks; an embedder running
// simulations from a worker goroutine must ensure only one goroutine touches
// a given RandomSource at a time.
type SimulationEngine struct {
	rng       *RandomSource
	baselines *models.LeagueBaselines
	config    Config
	projector *ProbabilityProjector
	resolver  *AtBatResolver
	advancer  *AdvancementEngine
}

// NewSimulationEngine constructs an engine from a RandomSource, a
// LeagueBaselines, and a Config. It validates the config up front so that a
// malformed configuration is rejected before any draw pollutes the audit
// history.
func NewSimulationEngine(rng *RandomSource, baselines *models.LeagueBaselines, config Config) (*SimulationEngine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	advancer, err := NewAdvancementEngine()
	if err != nil {
		return nil, err
	}
	return &SimulationEngine{
		rng:       rng,
		baselines: baselines,
		config:    config,
		projector: NewProbabilityProjector(baselines, config),
		resolver:  NewAtBatResolver(config),
		advancer:  advancer,
	}, nil
}

// SimulateAtBat runs one plate appearance to completion: project batter and
// pitcher rates for year, combine them against the league baseline,
// resolve the chained-binomial decision tree, then advance runners from
// priorBase given priorOuts. Any upstream validation failure (invalid stat
// lines) surfaces before the first RandomSource draw.
func (e *SimulationEngine) SimulateAtBat(
	batter models.BattingStatLine,
	pitcher models.PitchingStatLine,
	year int,
	priorBase models.BaseState,
	priorOuts int,
) (PlateAppearanceResult, error) {
	if err := batter.Validate(); err != nil {
		return PlateAppearanceResult{}, err
	}
	if err := pitcher.Validate(); err != nil {
		return PlateAppearanceResult{}, err
	}

	// START -> PROJECTED
	batterProjection := e.projector.ProjectBatter(batter, year)
	pitcherProjection := e.projector.ProjectPitcher(pitcher, year)
	league := e.baselines.Baseline(year)

	// PROJECTED -> COMBINED
	matchup, err := CombineMatchup(batterProjection.Rates, pitcherProjection.Rates, league)
	if err != nil {
		return PlateAppearanceResult{}, err
	}

	start := e.rng.Len()

	// COMBINED -> RESOLVED
	situation := GameSituation{
		PriorOuts:     priorOuts,
		RunnerOnFirst: priorBase.First(),
		RunnerOnThird: priorBase.Third(),
	}
	outcome := e.resolver.Resolve(matchup, situation, e.rng)

	// RESOLVED -> ADVANCED
	advancement, err := e.advancer.Advance(outcome, priorBase, e.rng)
	if err != nil {
		return PlateAppearanceResult{}, err
	}

	// ADVANCED -> DONE
	return PlateAppearanceResult{
		Outcome:             outcome,
		Advancement:         advancement,
		BeforeState:         priorBase,
		Matchup:             matchup,
		BatterUsedFallback:  batterProjection.UsedFallback,
		PitcherUsedFallback: pitcherProjection.UsedFallback,
		AuditTrail:          e.rng.Since(start),
	}, nil
}

// RandomSource exposes the engine's owned generator, so an embedder can reset
// it between games or inspect its full audit history.
func (e *SimulationEngine) RandomSource() *RandomSource {
	return e.rng
}
