package simulation

import "github.com/maulepilot117/atbatsim/models"

// ProjectionResult carries the projected per-event rate alongside whether the
// league baseline had to be substituted, so upstream tests can detect
// excessive fallback.
type ProjectionResult struct {
	Rates        models.EventRates
	UsedFallback bool
}

// ProbabilityProjector converts raw seasonal counts into per-plate-appearance
// (or per-batter-faced) event rates, falling back to the league baseline when
// data is thin or missing.
type ProbabilityProjector struct {
	baselines *models.LeagueBaselines
	config    Config
}

// NewProbabilityProjector builds a projector against the given baselines and config.
func NewProbabilityProjector(baselines *models.LeagueBaselines, config Config) *ProbabilityProjector {
	return &ProbabilityProjector{baselines: baselines, config: config}
}

// ProjectBatter computes per-PA event rates for a batter in a given year, then
// applies park factor at half strength to the four hit types. Below the
// configured plate-appearance floor, the full league baseline is substituted
// and UsedFallback is reported true.
func (p *ProbabilityProjector) ProjectBatter(stats models.BattingStatLine, year int) ProjectionResult {
	baseline := p.baselines.Baseline(year)
	pa := stats.PlateAppearances()

	if pa < p.config.MinPlateAppearancesForDirect {
		return ProjectionResult{Rates: p.applyParkFactor(baseline), UsedFallback: true}
	}

	denom := float64(pa)
	rates := models.EventRates{
		Strikeout:  float64(stats.Strikeouts) / denom,
		Walk:       float64(stats.Walks) / denom,
		HitByPitch: float64(stats.HitByPitch) / denom,
		Single:     float64(stats.Singles()) / denom,
		Double:     float64(stats.Doubles) / denom,
		Triple:     float64(stats.Triples) / denom,
		HomeRun:    float64(stats.HomeRuns) / denom,
	}
	return ProjectionResult{Rates: p.applyParkFactor(rates), UsedFallback: false}
}

// ProjectPitcher computes per-batters-faced event rates allowed by a pitcher
// in a given year. When the pitching line lacks an extra-base breakdown,
// hits allowed are distributed across single/double/triple according to the
// league's own proportions among non-home-run hits.
//
// Park factor is intentionally NOT applied on the pitcher side: it is folded
// into the batter's projection once per plate appearance.
func (p *ProbabilityProjector) ProjectPitcher(stats models.PitchingStatLine, year int) ProjectionResult {
	baseline := p.baselines.Baseline(year)

	if stats.BattersFaced < p.config.MinPlateAppearancesForDirect {
		return ProjectionResult{Rates: baseline, UsedFallback: true}
	}

	denom := float64(stats.BattersFaced)
	rates := models.EventRates{
		Strikeout:  float64(stats.Strikeouts) / denom,
		Walk:       float64(stats.WalksAllowed) / denom,
		HitByPitch: float64(stats.HitBatters) / denom,
		HomeRun:    float64(stats.HomeRunsAllowed) / denom,
	}

	nonHRHits := stats.HitsAllowed - stats.HomeRunsAllowed
	if nonHRHits < 0 {
		nonHRHits = 0
	}

	if stats.HasExtraBaseBreakdown() {
		rates.Double = float64(stats.DoublesAllowed) / denom
		rates.Triple = float64(stats.TriplesAllowed) / denom
		singles := nonHRHits - stats.DoublesAllowed - stats.TriplesAllowed
		if singles < 0 {
			singles = 0
		}
		rates.Single = float64(singles) / denom
	} else {
		nonHRBaselineTotal := baseline.Single + baseline.Double + baseline.Triple
		allocate := func(share float64) float64 {
			if nonHRBaselineTotal <= 0 {
				return 0
			}
			return (share / nonHRBaselineTotal) * (float64(nonHRHits) / denom)
		}
		rates.Single = allocate(baseline.Single)
		rates.Double = allocate(baseline.Double)
		rates.Triple = allocate(baseline.Triple)
	}

	return ProjectionResult{Rates: rates, UsedFallback: false}
}

// applyParkFactor scales the four hit-type rates by the configured park
// factor's half-strength multiplier. Strikeouts, walks, and HBP are untouched.
func (p *ProbabilityProjector) applyParkFactor(rates models.EventRates) models.EventRates {
	mult := p.config.ParkFactor.HitTypeMultiplier()
	rates.Single *= mult
	rates.Double *= mult
	rates.Triple *= mult
	rates.HomeRun *= mult
	return rates
}
