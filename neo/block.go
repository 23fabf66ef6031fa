package neo

import "github.com/google/uuid"

// Block is the top-level container: the segments of one recording session
// plus the channel groups describing how the data was acquired.
type Block struct {
	annotated

	ID         string
	Name       string
	FileOrigin string

	Segments      []*Segment
	ChannelGroups []*RecordingChannelGroup
}

// NewBlock creates an empty block with a fresh identity.
func NewBlock(name string) *Block {
	return &Block{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// CreateManyToOneRelationship stamps owned segments with this block's ID and
// recursively wires each segment's children.
func (b *Block) CreateManyToOneRelationship() {
	for _, seg := range b.Segments {
		seg.BlockID = b.ID
		seg.CreateManyToOneRelationship()
	}
}
