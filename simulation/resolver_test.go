package simulation

import (
	"testing"

	"github.com/maulepilot117/atbatsim/models"
)

func baseRates() models.EventRates {
	return models.EventRates{
		HitByPitch: 0.01,
		Walk:       0.08,
		Strikeout:  0.20,
		HomeRun:    0.03,
		Single:     0.15,
		Double:     0.05,
		Triple:     0.01,
	}
}

func TestResolveHitByPitchOnFirstDraw(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	src := &fakeSource{uniforms: []float64{0.005}}
	got := r.Resolve(baseRates(), GameSituation{}, src)
	if got != models.HitByPitch {
		t.Errorf("resolved %v, want hit_by_pitch", got)
	}
}

func TestResolveWalkWhenHBPMissedButWalkHits(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// draw1 >= HBP (0.01) misses step 1; draw2 < walk/(1-hbp) hits step 2.
	src := &fakeSource{uniforms: []float64{0.5, 0.01}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.Walk {
		t.Errorf("resolved %v, want walk", got)
	}
}

func TestResolveStrikeoutDelegatesToSwingingOrLooking(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// Miss HBP, miss walk, hit strikeout, then draw for swinging/looking.
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.01, 0.1}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.StrikeoutSwinging {
		t.Errorf("resolved %v, want strikeout_swinging (swinging share 0.70 > 0.1)", got)
	}

	src2 := &fakeSource{uniforms: []float64{0.9, 0.9, 0.01, 0.95}}
	got2 := r.Resolve(rates, GameSituation{}, src2)
	if got2 != models.StrikeoutLooking {
		t.Errorf("resolved %v, want strikeout_looking", got2)
	}
}

func TestResolveHomeRunAfterContact(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// Miss HBP, walk, strikeout; hit home run conditional draw.
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.001}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.HomeRun {
		t.Errorf("resolved %v, want home_run", got)
	}
}

func TestResolveInPlayOutWhenNoHitDrawn(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// Miss HBP, walk, strikeout, HR; miss any-hit (draw >= ratio) -> in-play out.
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.9, 0.999, 0.9}}
	got := r.Resolve(rates, GameSituation{}, src)
	if !got.IsOut() {
		t.Errorf("resolved %v, want an out variant", got)
	}
}

func TestResolveSingleVsExtraBase(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// Reach step 6 (any-hit true), then miss extra-base ratio -> single path,
	// then miss infield-single share -> plain single.
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.9, 0.01, 0.99, 0.99}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.Single {
		t.Errorf("resolved %v, want single", got)
	}
}

func TestResolveInfieldSingleWhenShareHits(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.9, 0.01, 0.99, 0.01}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.InfieldSingle {
		t.Errorf("resolved %v, want infield_single", got)
	}
}

func TestResolveTripleVsDouble(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	rates := baseRates()
	// Reach step 6 (any-hit true), hit extra-base ratio, then hit triple draw.
	src := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.9, 0.01, 0.01, 0.01}}
	got := r.Resolve(rates, GameSituation{}, src)
	if got != models.Triple {
		t.Errorf("resolved %v, want triple", got)
	}

	src2 := &fakeSource{uniforms: []float64{0.9, 0.9, 0.9, 0.9, 0.01, 0.01, 0.99}}
	got2 := r.Resolve(rates, GameSituation{}, src2)
	if got2 != models.Double {
		t.Errorf("resolved %v, want double", got2)
	}
}

func TestResolveInPlayOutReachedOnError(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	got := r.resolveInPlayOut(GameSituation{}, &fakeSource{uniforms: []float64{0.001}})
	if got != models.ReachedOnError {
		t.Errorf("resolved %v, want reached_on_error", got)
	}
}

func TestResolveInPlayOutGIDPWhenEligible(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	idx := 0 // groundout
	// draw1 misses error rate, groundout chosen via choiceIndex, draw2 hits GIDP rate.
	src := &fakeSource{uniforms: []float64{0.5, 0.01}, choiceIndex: &idx}
	got := r.resolveInPlayOut(GameSituation{PriorOuts: 0, RunnerOnFirst: true}, src)
	if got != models.GIDP {
		t.Errorf("resolved %v, want gidp", got)
	}
}

func TestResolveInPlayOutGIDPIneligibleWithTwoOuts(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	idx := 0
	src := &fakeSource{uniforms: []float64{0.5, 0.01}, choiceIndex: &idx}
	got := r.resolveInPlayOut(GameSituation{PriorOuts: 2, RunnerOnFirst: true}, src)
	if got != models.Groundout {
		t.Errorf("resolved %v, want groundout (GIDP ineligible with 2 outs)", got)
	}
}

func TestResolveInPlayOutSacFlyWhenEligible(t *testing.T) {
	r := NewAtBatResolver(DefaultConfig())
	idx := 1 // flyout
	src := &fakeSource{uniforms: []float64{0.5, 0.01}, choiceIndex: &idx}
	got := r.resolveInPlayOut(GameSituation{PriorOuts: 1, RunnerOnThird: true}, src)
	if got != models.SacrificeFly {
		t.Errorf("resolved %v, want sacrifice_fly", got)
	}
}
