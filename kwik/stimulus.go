package kwik

import (
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-kwik/neo"
)

const (
	// stimulusCount is the number of synthesized stimulus events.
	stimulusCount = 1000

	// stimulusDurationMs is the fixed length of every stimulus interval.
	stimulusDurationMs = 500.0
)

// Stimulus labels. TriggerA is the minority label: the draw compares
// against 0.6, so its probability is 0.4.
const (
	labelTriggerA = "TriggerA"
	labelTriggerB = "TriggerB"
)

// ReadStimulus synthesizes labeled stimulus intervals. Onsets are sampled
// with replacement from the supplied time vector (typically the recording's
// sample clock, see ReadSegment), durations are fixed at 500 ms, and labels
// are drawn independently with P(TriggerA) = 0.4. Lazy reads return an
// empty collection.
func (r *Reader) ReadStimulus(timeVector []float64, opts ...ReadOption) *neo.EpochArray {
	o := applyReadOptions(opts)
	return r.readStimulus(timeVector, o)
}

func (r *Reader) readStimulus(timeVector []float64, o readOptions) *neo.EpochArray {
	epo := neo.NewEpochArray()
	epo.TimeUnits = "s"
	epo.DurationUnits = "ms"

	if o.lazy || len(timeVector) == 0 {
		if !o.lazy {
			r.logger.Debug("empty time vector, no stimulus epochs synthesized")
		}
		return epo
	}

	times := make([]float64, stimulusCount)
	durations := make([]float64, stimulusCount)
	labels := make([]string, stimulusCount)
	for i := 0; i < stimulusCount; i++ {
		times[i] = timeVector[r.rng.Intn(len(timeVector))]
		durations[i] = stimulusDurationMs
		if r.rng.Float64() > 0.6 {
			labels[i] = labelTriggerA
		} else {
			labels[i] = labelTriggerB
		}
	}
	epo.Times = times
	epo.Durations = durations
	epo.Labels = labels

	r.logger.Debug("read stimulus epochs", zap.Int("count", epo.Len()))
	return epo
}
