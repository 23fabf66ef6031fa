package kwik

// Exported aliases so external tests (package kwik_test) can reference
// internal synthesis constants.
const (
	SpikeTrainsPerChannel = spikeTrainsPerChannel
	SpikesPerTrain        = spikesPerTrain
	SpikeSamplingRateHz   = spikeSamplingRateHz
	LeftSweepSeconds      = leftSweepSeconds
)
