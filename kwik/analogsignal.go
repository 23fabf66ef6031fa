package kwik

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-kwik/hdf5"
	"github.com/robert-malhotra/go-kwik/neo"
)

// ReadAnalogSignal reads one channel's voltage trace from the raw
// container. Lazy reads skip the bulk transfer and record the would-be
// shape instead.
func (r *Reader) ReadAnalogSignal(channelIndex int, opts ...ReadOption) (*neo.AnalogSignal, error) {
	o := applyReadOptions(opts)

	rawName := r.rawPath()
	kwd, err := hdf5.Open(rawName)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", rawName, ErrSourceNotFound)
	}
	defer kwd.Close()

	rec, err := openRecording(kwd, o.dataset)
	if err != nil {
		return nil, err
	}

	return r.readAnalogSignal(rec, channelIndex, o)
}

// readAnalogSignal extracts one channel from an already-open recording.
func (r *Reader) readAnalogSignal(rec *recording, channelIndex int, o readOptions) (*neo.AnalogSignal, error) {
	rate, err := rec.attrFloat("sample_rate")
	if err != nil {
		return nil, err
	}
	start, err := rec.attrFloat("start_time")
	if err != nil {
		return nil, err
	}

	sig := neo.NewAnalogSignal(nil, "V",
		neo.Quantity{Val: rate, Unit: "Hz"},
		neo.Quantity{Val: start, Unit: "s"},
		channelIndex)

	if o.lazy {
		nSamples, err := rec.attrInt("shape")
		if err != nil {
			return nil, err
		}
		sig.LazyShape = []int{int(nSamples)}
	} else {
		data, err := rec.channelData(channelIndex)
		if err != nil {
			return nil, err
		}
		sig.Data = data
	}

	// Out-of-model metadata goes into annotations; the recording index is
	// the one entry this reader supplies.
	sig.Annotate("dataset", o.dataset)

	r.logger.Debug("read analog signal",
		zap.Int("channel", channelIndex),
		zap.Bool("lazy", o.lazy),
		zap.Int("samples", sig.Len()))

	return sig, nil
}
