package simulation

import (
	"reflect"
	"testing"
)

func TestRandomSourceUniformInRange(t *testing.T) {
	r := NewSeededRandomSource(1, 2)
	for i := 0; i < 1000; i++ {
		v := r.Uniform()
		if v < 0 || v >= 1 {
			t.Fatalf("Uniform() = %v, want in [0,1)", v)
		}
	}
}

func TestRandomSourceReproducibility(t *testing.T) {
	a := NewSeededRandomSource(42, 7)
	b := NewSeededRandomSource(42, 7)

	for i := 0; i < 50; i++ {
		av, bv := a.Uniform(), b.Uniform()
		if av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}

	ah, bh := a.History(), b.History()
	if len(ah) != len(bh) {
		t.Fatalf("history length diverged: %d != %d", len(ah), len(bh))
	}
	for i := range ah {
		if !reflect.DeepEqual(ah[i], bh[i]) {
			t.Fatalf("history entry %d diverged: %+v != %+v", i, ah[i], bh[i])
		}
	}
}

func TestRandomSourceResetRestoresSeedAndClearsHistory(t *testing.T) {
	r := NewSeededRandomSource(5, 9)
	first := r.Uniform()
	r.Uniform()
	r.Reset(nil, nil)

	if len(r.History()) != 0 {
		t.Fatalf("history not cleared after Reset, len = %d", len(r.History()))
	}
	if got := r.Uniform(); got != first {
		t.Fatalf("first draw after reset = %v, want %v (same seed)", got, first)
	}
}

func TestRandomSourceHistoryRecordsEveryDraw(t *testing.T) {
	r := NewSeededRandomSource(1, 1)
	r.Uniform()
	if _, err := r.WeightedChoice([]float64{1, 2, 3}); err != nil {
		t.Fatalf("WeightedChoice failed: %v", err)
	}
	h := r.History()
	if len(h) != 2 {
		t.Fatalf("history len = %d, want 2", len(h))
	}
	if h[0].Kind != DrawUniform {
		t.Errorf("first record kind = %v, want %v", h[0].Kind, DrawUniform)
	}
	if h[1].Kind != DrawWeightedChoice {
		t.Errorf("second record kind = %v, want %v", h[1].Kind, DrawWeightedChoice)
	}
	if len(h[1].Weights) != 3 {
		t.Errorf("weighted choice record weights len = %d, want 3", len(h[1].Weights))
	}
}

func TestRandomSourceWeightedChoiceRejectsNonPositiveWeights(t *testing.T) {
	r := NewSeededRandomSource(1, 1)
	if _, err := r.WeightedChoice([]float64{0, 0, -1}); err == nil {
		t.Fatal("expected error for all non-positive weights")
	}
}

func TestRandomSourceWeightedChoiceDoesNotMutateInput(t *testing.T) {
	r := NewSeededRandomSource(3, 4)
	weights := []float64{2, 3, 5}
	snapshot := append([]float64(nil), weights...)
	if _, err := r.WeightedChoice(weights); err != nil {
		t.Fatalf("WeightedChoice failed: %v", err)
	}
	for i := range weights {
		if weights[i] != snapshot[i] {
			t.Fatalf("caller's weights slice mutated: %v != %v", weights, snapshot)
		}
	}
}

func TestRandomSourceSince(t *testing.T) {
	r := NewSeededRandomSource(1, 1)
	r.Uniform()
	start := r.Len()
	r.Uniform()
	r.Uniform()
	if got := len(r.Since(start)); got != 2 {
		t.Fatalf("Since(%d) len = %d, want 2", start, got)
	}
}
