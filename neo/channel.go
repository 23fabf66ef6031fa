package neo

// RecordingChannel describes one physical electrode and collects the analog
// signals acquired through it.
type RecordingChannel struct {
	annotated

	Index         int
	Name          string
	AnalogSignals []*AnalogSignal
}

// NewRecordingChannel creates a channel with the given index and name.
func NewRecordingChannel(index int, name string) *RecordingChannel {
	return &RecordingChannel{Index: index, Name: name}
}

// Unit is one putative neuron isolated from a channel, collecting the spike
// trains attributed to it.
type Unit struct {
	annotated

	Name         string
	ChannelIndex int
	SpikeTrains  []*SpikeTrain
}

// NewUnit creates a unit recorded on the given channel.
func NewUnit(name string, channelIndex int) *Unit {
	return &Unit{Name: name, ChannelIndex: channelIndex}
}

// RecordingChannelGroup gathers channels that were acquired together (a
// probe or shank) along with the units isolated from them.
type RecordingChannelGroup struct {
	annotated

	Name           string
	ChannelIndexes []int
	Channels       []*RecordingChannel
	Units          []*Unit
}

// NewRecordingChannelGroup creates an empty channel group.
func NewRecordingChannelGroup(name string) *RecordingChannelGroup {
	return &RecordingChannelGroup{Name: name}
}
