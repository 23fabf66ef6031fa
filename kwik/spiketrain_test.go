package kwik_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-kwik/kwik"
	"github.com/robert-malhotra/go-kwik/synth"
)

// ReadSpikeTrain synthesizes; it never touches the session files, so these
// tests can use a reader over a path that does not exist.
func newSynthReader(opts ...kwik.Option) *kwik.Reader {
	return kwik.NewReader("unused.kwik", opts...)
}

func TestReadSpikeTrain(t *testing.T) {
	r := newSynthReader(kwik.WithSeed(11))

	st, err := r.ReadSpikeTrain(3)
	require.NoError(t, err)

	assert.Equal(t, kwik.SpikesPerTrain, st.Len())
	assert.Equal(t, "s", st.Units)
	assert.Equal(t, -1.0, st.TStart.Val)
	assert.Equal(t, 14.0, st.TStop.Val)
	assert.Equal(t, 3, st.Annotation("channel_index"))

	for i, ts := range st.Times {
		assert.GreaterOrEqual(t, ts, -1.0, "spike %d", i)
		assert.Less(t, ts, 14.0, "spike %d", i)
	}
}

func TestReadSpikeTrainWaveforms(t *testing.T) {
	r := newSynthReader(kwik.WithSeed(11))

	st, err := r.ReadSpikeTrain(0)
	require.NoError(t, err)

	wf := st.Waveforms
	require.NotNil(t, wf)
	require.Equal(t, 3, wf.NumDims())
	assert.Equal(t, kwik.SpikesPerTrain, wf.Dim(0))
	assert.Equal(t, 1, wf.Dim(1))
	assert.Equal(t, 38, wf.Dim(2))

	assert.Equal(t, "mV", st.WaveformUnits)
	assert.Equal(t, kwik.SpikeSamplingRateHz, st.SamplingRate.Val)
	assert.Equal(t, kwik.LeftSweepSeconds, st.LeftSweep.Val)

	// Multiplicative noise makes snippets differ spike to spike.
	n := wf.Dim(2)
	same := true
	for j := 0; j < n; j++ {
		if wf.Values[j] != wf.Values[n+j] {
			same = false
			break
		}
	}
	assert.False(t, same, "snippets should not be identical copies")
}

func TestReadSpikeTrainWindow(t *testing.T) {
	r := newSynthReader(kwik.WithSeed(5))

	st, err := r.ReadSpikeTrain(0, kwik.WithTStart(2), kwik.WithSegmentDuration(5))
	require.NoError(t, err)

	assert.Equal(t, 2.0, st.TStart.Val)
	assert.Equal(t, 7.0, st.TStop.Val)
	for _, ts := range st.Times {
		assert.GreaterOrEqual(t, ts, 2.0)
		assert.Less(t, ts, 7.0)
	}
}

func TestReadSpikeTrainLazy(t *testing.T) {
	r := newSynthReader(kwik.WithSeed(5))

	st, err := r.ReadSpikeTrain(1, kwik.Lazy())
	require.NoError(t, err)

	assert.True(t, st.IsLazy())
	assert.Empty(t, st.Times)
	assert.Nil(t, st.Waveforms)
	assert.Equal(t, []int{kwik.SpikesPerTrain}, st.LazyShape)
	assert.True(t, st.SamplingRate.IsZero())
	assert.Equal(t, 1, st.Annotation("channel_index"))
}

func TestReadSpikeTrainNoSynth(t *testing.T) {
	r := newSynthReader(kwik.WithSpikeSynth(nil))

	_, err := r.ReadSpikeTrain(0)
	require.ErrorIs(t, err, kwik.ErrSpikeSynthUnavailable)
}

func TestNoSynthLeavesSignalsReadable(t *testing.T) {
	name := filepath.Join(t.TempDir(), "session.kwik")
	require.NoError(t, synth.Write(name, synth.Params{Channels: 1, Samples: 50, SampleRate: 500}))

	r := kwik.NewReader(name, kwik.WithSpikeSynth(nil))
	sig, err := r.ReadAnalogSignal(0)
	require.NoError(t, err)
	assert.Equal(t, 50, sig.Len())

	_, err = r.ReadSegment()
	require.ErrorIs(t, err, kwik.ErrSpikeSynthUnavailable)
}
