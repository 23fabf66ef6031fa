package kwik

import (
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for debug output. The default is a nop
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSeed makes the reader's synthetic draws (spike times, waveform noise,
// stimulus onsets and labels) deterministic.
func WithSeed(seed uint64) Option {
	return func(r *Reader) {
		r.src = rand.NewSource(seed)
		r.rng = rand.New(r.src)
	}
}

// WithSpikeSynth replaces the waveform synthesizer. Passing nil disables
// spike-train reading: ReadSpikeTrain reports ErrSpikeSynthUnavailable while
// all other reads keep working.
func WithSpikeSynth(s SpikeSynth) Option {
	return func(r *Reader) {
		r.synth = s
	}
}

// ReadOption configures a single read call.
type ReadOption func(*readOptions)

type readOptions struct {
	lazy            bool
	cascade         bool
	dataset         int
	segmentDuration float64 // seconds
	tStart          float64 // seconds
}

func defaultReadOptions() readOptions {
	return readOptions{
		cascade:         true,
		dataset:         0,
		segmentDuration: 15.0,
		tStart:          -1.0,
	}
}

func applyReadOptions(opts []ReadOption) readOptions {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Lazy requests a shape-only read: returned entities carry no bulk data,
// only the shape it would have had.
func Lazy() ReadOption {
	return func(o *readOptions) {
		o.lazy = true
	}
}

// WithoutCascade limits ReadSegment to top-level metadata: the returned
// segment has no children and no duration.
func WithoutCascade() ReadOption {
	return func(o *readOptions) {
		o.cascade = false
	}
}

// WithDataset selects the recording index under /recordings. The default
// is 0.
func WithDataset(index int) ReadOption {
	return func(o *readOptions) {
		if index >= 0 {
			o.dataset = index
		}
	}
}

// WithSegmentDuration sets the spike-train window length in seconds. The
// default is 15.
func WithSegmentDuration(seconds float64) ReadOption {
	return func(o *readOptions) {
		o.segmentDuration = seconds
	}
}

// WithTStart sets the spike-train window start in seconds. The default
// is -1.
func WithTStart(seconds float64) ReadOption {
	return func(o *readOptions) {
		o.tStart = seconds
	}
}
