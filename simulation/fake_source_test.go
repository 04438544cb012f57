package simulation

// fakeSource replays a fixed sequence of uniform draws, letting tests pin an
// exact branch of the chained-binomial tree or a specific advancement-matrix
// row without depending on real PCG output for a given seed.
type fakeSource struct {
	uniforms []float64
	pos      int
	// choiceIndex, when non-nil, is returned directly by WeightedChoice
	// instead of computing inverse-CDF against the next uniform draw.
	choiceIndex *int
}

func (f *fakeSource) Uniform() float64 {
	if f.pos >= len(f.uniforms) {
		return 0.999999
	}
	v := f.uniforms[f.pos]
	f.pos++
	return v
}

func (f *fakeSource) WeightedChoice(weights []float64) (int, error) {
	if f.choiceIndex != nil {
		return *f.choiceIndex, nil
	}
	u := f.Uniform()
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := u * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if target < cum {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}
