package neo

import "github.com/emer/etable/etensor"

// SpikeTrain is a sequence of discrete event times attributed to one
// putative unit, bounded by [TStart, TStop). When waveforms are captured,
// Waveforms holds one snippet per spike as an (spike, electrode, sample)
// tensor and len(Times) equals the tensor's first dimension.
type SpikeTrain struct {
	annotated

	SegmentID string
	Name      string

	// Times holds the spike timestamps in Units. Empty for lazy reads, in
	// which case LazyShape records the count that would have been loaded.
	Times []float64
	Units string

	TStart Quantity
	TStop  Quantity

	// Waveform fields are populated only for eager reads with snippets.
	Waveforms     *etensor.Float64
	WaveformUnits string
	SamplingRate  Quantity
	LeftSweep     Quantity

	// LazyShape is set only when the train was read lazily.
	LazyShape []int
}

// NewSpikeTrain creates a spike train over [tStart, tStop).
func NewSpikeTrain(times []float64, units string, tStart, tStop Quantity) *SpikeTrain {
	return &SpikeTrain{
		Times:  times,
		Units:  units,
		TStart: tStart,
		TStop:  tStop,
	}
}

// Len returns the number of spikes.
func (s *SpikeTrain) Len() int {
	return len(s.Times)
}

// IsLazy reports whether the train is a shape-only placeholder.
func (s *SpikeTrain) IsLazy() bool {
	return s.LazyShape != nil
}
