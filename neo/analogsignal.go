package neo

// AnalogSignal is one continuously sampled trace: a run of regularly spaced
// samples from a single channel, tagged with its unit, sampling rate and
// start time.
type AnalogSignal struct {
	annotated

	SegmentID string

	// Data holds the samples. Empty for lazy reads, in which case LazyShape
	// records the size the data would have had.
	Data  []float64
	Units string

	SamplingRate Quantity
	TStart       Quantity
	ChannelIndex int

	// LazyShape is set only when the signal was read lazily.
	LazyShape []int
}

// NewAnalogSignal creates a signal with the given samples and metadata.
func NewAnalogSignal(data []float64, units string, samplingRate, tStart Quantity, channelIndex int) *AnalogSignal {
	return &AnalogSignal{
		Data:         data,
		Units:        units,
		SamplingRate: samplingRate,
		TStart:       tStart,
		ChannelIndex: channelIndex,
	}
}

// Len returns the number of samples.
func (a *AnalogSignal) Len() int {
	return len(a.Data)
}

// IsLazy reports whether the signal is a shape-only placeholder.
func (a *AnalogSignal) IsLazy() bool {
	return a.LazyShape != nil
}
