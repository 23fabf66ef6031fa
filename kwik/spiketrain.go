package kwik

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/robert-malhotra/go-kwik/neo"
)

const (
	// spikeTrainsPerChannel models multiple isolated units per channel.
	spikeTrainsPerChannel = 3

	// spikesPerTrain is the number of events synthesized per train.
	spikesPerTrain = 40

	// spikeSamplingRateHz is the waveform snippet sampling rate.
	spikeSamplingRateHz = 10000.0

	// leftSweepSeconds is the pre-trigger offset of each snippet.
	leftSweepSeconds = 1.5
)

// ReadSpikeTrain synthesizes one spike train for the given channel,
// standing in for a real per-channel spike detector. Timestamps are drawn
// uniformly over [tStart, tStart+segmentDuration) and kept in draw order;
// they are not sorted, matching the detector stand-in's output.
//
// Requires a waveform synthesizer; without one the call reports
// ErrSpikeSynthUnavailable.
func (r *Reader) ReadSpikeTrain(channelIndex int, opts ...ReadOption) (*neo.SpikeTrain, error) {
	o := applyReadOptions(opts)
	return r.readSpikeTrain(channelIndex, o)
}

func (r *Reader) readSpikeTrain(channelIndex int, o readOptions) (*neo.SpikeTrain, error) {
	if r.synth == nil {
		return nil, fmt.Errorf("reading spike train: %w", ErrSpikeSynthUnavailable)
	}

	st := neo.NewSpikeTrain(nil, "s",
		neo.Quantity{Val: o.tStart, Unit: "s"},
		neo.Quantity{Val: o.tStart + o.segmentDuration, Unit: "s"})
	st.Name = fmt.Sprintf("channel %d spike train", channelIndex)

	if o.lazy {
		st.LazyShape = []int{spikesPerTrain}
	} else {
		uni := distuv.Uniform{Min: o.tStart, Max: o.tStart + o.segmentDuration, Src: r.src}
		times := make([]float64, spikesPerTrain)
		for i := range times {
			times[i] = uni.Rand()
		}
		st.Times = times

		tmpl := r.synth.Template()
		st.Waveforms = r.snippets(tmpl)
		st.WaveformUnits = "mV"
		st.SamplingRate = neo.Quantity{Val: spikeSamplingRateHz, Unit: "Hz"}
		st.LeftSweep = neo.Quantity{Val: leftSweepSeconds, Unit: "s"}
	}

	st.Annotate("channel_index", channelIndex)

	r.logger.Debug("read spike train",
		zap.Int("channel", channelIndex),
		zap.Bool("lazy", o.lazy))

	return st, nil
}

// snippets replicates the template across all spikes and perturbs each copy
// with independent multiplicative Gaussian noise (mean 1, scale 1/6) to
// emulate trial-to-trial variability. The middle dimension is the electrode
// count, fixed at 1 for a single-site recording.
func (r *Reader) snippets(tmpl []float64) *etensor.Float64 {
	noise := distuv.Normal{Mu: 1, Sigma: 1.0 / 6.0, Src: r.src}

	wf := etensor.NewFloat64(
		[]int{spikesPerTrain, 1, len(tmpl)},
		nil,
		[]string{"Spike", "Electrode", "Sample"},
	)
	for i := 0; i < spikesPerTrain; i++ {
		base := i * len(tmpl)
		for j, v := range tmpl {
			wf.Values[base+j] = v * noise.Rand()
		}
	}
	return wf
}
