package neo

// EpochArray is a collection of labeled time intervals: three parallel
// sequences of equal length holding onset times, durations and labels.
// All three are empty for lazy reads.
type EpochArray struct {
	annotated

	SegmentID string

	Times         []float64 // Onset times in TimeUnits
	Durations     []float64 // Interval lengths in DurationUnits
	Labels        []string
	TimeUnits     string
	DurationUnits string
}

// NewEpochArray creates an empty epoch array.
func NewEpochArray() *EpochArray {
	return &EpochArray{}
}

// Len returns the number of epochs.
func (e *EpochArray) Len() int {
	return len(e.Times)
}
