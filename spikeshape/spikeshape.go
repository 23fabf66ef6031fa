// Package spikeshape synthesizes a canonical extracellular spike waveform.
//
// The template is built from two limbs of a Student's-t probability density
// sampled at fixed offsets: a coarse rising limb and a finer falling limb,
// concatenated and normalized so the dominant deflection is exactly -1
// (extracellular spikes deflect negative).
package spikeshape

import "gonum.org/v1/gonum/stat/distuv"

// Sampling offsets of the two density limbs. The rising limb is taken every
// 4th offset in [11, 60) and reversed; the falling limb every 2nd offset.
const (
	limbStart     = 11.0
	limbEnd       = 60.0
	risingStride  = 4.0
	fallingStride = 2.0
)

// Synth builds spike waveform templates from a parametrized density curve.
type Synth struct {
	dist distuv.StudentsT
}

// New returns a synthesizer with the canonical density parameters.
func New() *Synth {
	return &Synth{
		dist: distuv.StudentsT{Mu: 20, Sigma: 4, Nu: 5},
	}
}

// Template returns the canonical spike snippet. The extreme value of the
// returned sequence is exactly -1 and occurs on the negative deflection;
// the small positive overshoot precedes it.
func (s *Synth) Template() []float64 {
	var rising []float64
	for x := limbStart; x < limbEnd; x += risingStride {
		rising = append(rising, s.dist.Prob(x))
	}
	var falling []float64
	for x := limbStart; x < limbEnd; x += fallingStride {
		falling = append(falling, s.dist.Prob(x))
	}

	w := make([]float64, 0, len(rising)+len(falling))
	for i := len(rising) - 1; i >= 0; i-- {
		w = append(w, -rising[i]/3)
	}
	w = append(w, falling...)

	// Normalize on the positive peak, then flip so the peak lands at -1.
	peak := 0.0
	for _, v := range w {
		if v > peak {
			peak = v
		}
	}
	for i := range w {
		w[i] = -w[i] / peak
	}
	return w
}
