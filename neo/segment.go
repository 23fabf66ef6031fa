package neo

import "github.com/google/uuid"

// Segment is one time-bounded slice of a recording: the analog signals,
// spike trains and stimulus epochs that share a common clock. A Segment
// exclusively owns its children; nothing is shared across segments.
type Segment struct {
	annotated

	ID      string
	BlockID string // Owning block, set by Block.CreateManyToOneRelationship
	Name    string

	AnalogSignals []*AnalogSignal
	SpikeTrains   []*SpikeTrain
	Epochs        []*EpochArray

	// Duration is derived from the recording attributes at read time. It is
	// left zero for shallow (non-cascaded) reads.
	Duration Quantity
}

// NewSegment creates an empty segment with a fresh identity.
func NewSegment(name string) *Segment {
	return &Segment{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// CreateManyToOneRelationship stamps every child with this segment's ID.
// Children carry a back-reference by ID rather than a parent pointer so the
// object graph stays free of ownership cycles.
func (s *Segment) CreateManyToOneRelationship() {
	for _, sig := range s.AnalogSignals {
		sig.SegmentID = s.ID
	}
	for _, st := range s.SpikeTrains {
		st.SegmentID = s.ID
	}
	for _, epo := range s.Epochs {
		epo.SegmentID = s.ID
	}
}
