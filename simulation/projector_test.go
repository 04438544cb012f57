package simulation

import (
	"testing"

	"github.com/maulepilot117/atbatsim/models"
)

func TestProjectBatterDirectRates(t *testing.T) {
	baselines := models.NewLeagueBaselines()
	config := DefaultConfig()
	p := NewProbabilityProjector(baselines, config)

	// .300 hitter fixture: 540 AB, 162 H, 35 2B, 4 3B, 25 HR, 60 BB, 6 HBP, 5 SF.
	stats := models.BattingStatLine{
		AtBats: 540, Hits: 162, Doubles: 35, Triples: 4, HomeRuns: 25,
		Walks: 60, Strikeouts: 100, HitByPitch: 6, SacrificeFlies: 5,
	}
	result := p.ProjectBatter(stats, 2015)
	if result.UsedFallback {
		t.Fatal("expected direct rates, got fallback")
	}

	pa := float64(stats.PlateAppearances())
	wantHR := float64(stats.HomeRuns) / pa
	if diff := result.Rates.HomeRun - wantHR; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("HomeRun rate = %v, want %v (park factor neutral)", result.Rates.HomeRun, wantHR)
	}
}

func TestProjectBatterFallsBackBelowThreshold(t *testing.T) {
	baselines := models.NewLeagueBaselines()
	p := NewProbabilityProjector(baselines, DefaultConfig())

	thin := models.BattingStatLine{AtBats: 10, Hits: 3}
	result := p.ProjectBatter(thin, 2015)
	if !result.UsedFallback {
		t.Fatal("expected fallback for thin sample")
	}
	if result.Rates.Strikeout != baselines.Baseline(2015).Strikeout {
		t.Errorf("fallback strikeout rate = %v, want league baseline", result.Rates.Strikeout)
	}
}

func TestProjectBatterAppliesParkFactorOnlyToHitTypes(t *testing.T) {
	baselines := models.NewLeagueBaselines()
	config := DefaultConfig()
	config.ParkFactor = 120 // multiplier = 1.10
	p := NewProbabilityProjector(baselines, config)

	stats := models.BattingStatLine{
		AtBats: 540, Hits: 162, Doubles: 35, Triples: 4, HomeRuns: 25,
		Walks: 60, Strikeouts: 100, HitByPitch: 6, SacrificeFlies: 5,
	}
	result := p.ProjectBatter(stats, 2015)
	pa := float64(stats.PlateAppearances())

	wantK := float64(stats.Strikeouts) / pa
	if diff := result.Rates.Strikeout - wantK; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("strikeout rate scaled by park factor: got %v, want unscaled %v", result.Rates.Strikeout, wantK)
	}

	wantHR := (float64(stats.HomeRuns) / pa) * 1.10
	if diff := result.Rates.HomeRun - wantHR; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("home run rate = %v, want %v (scaled by 1.10)", result.Rates.HomeRun, wantHR)
	}
}

func TestProjectPitcherAllocatesMissingExtraBaseBreakdown(t *testing.T) {
	baselines := models.NewLeagueBaselines()
	p := NewProbabilityProjector(baselines, DefaultConfig())

	stats := models.PitchingStatLine{
		BattersFaced: 1000, HitsAllowed: 158, HomeRunsAllowed: 18,
		WalksAllowed: 45, Strikeouts: 300, HitBatters: 8,
	}
	result := p.ProjectPitcher(stats, 2015)
	if result.UsedFallback {
		t.Fatal("expected direct rates, got fallback")
	}

	sum := result.Rates.Single + result.Rates.Double + result.Rates.Triple
	nonHRHitRate := float64(stats.HitsAllowed-stats.HomeRunsAllowed) / float64(stats.BattersFaced)
	if diff := sum - nonHRHitRate; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("allocated single+double+triple = %v, want %v", sum, nonHRHitRate)
	}
}

func TestProjectPitcherUsesDirectBreakdownWhenAvailable(t *testing.T) {
	baselines := models.NewLeagueBaselines()
	p := NewProbabilityProjector(baselines, DefaultConfig())

	stats := models.PitchingStatLine{
		BattersFaced: 1000, HitsAllowed: 158, HomeRunsAllowed: 18,
		DoublesAllowed: 28, TriplesAllowed: 4,
		WalksAllowed: 45, Strikeouts: 300, HitBatters: 8,
	}
	result := p.ProjectPitcher(stats, 2015)
	wantDouble := float64(stats.DoublesAllowed) / float64(stats.BattersFaced)
	if diff := result.Rates.Double - wantDouble; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("double rate = %v, want %v", result.Rates.Double, wantDouble)
	}
}
