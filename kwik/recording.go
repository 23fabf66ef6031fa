package kwik

import (
	"fmt"
	"strconv"

	"github.com/robert-malhotra/go-kwik/hdf5"
)

// recording wraps one /recordings/<n> entry of a raw .kwd container: the
// attribute-bearing group and its 2-D (samples, channels) data array.
type recording struct {
	group       *hdf5.Group
	data        *hdf5.Dataset
	numSamples  int
	numChannels int
}

// openRecording locates the recording group and data array for the given
// dataset index. Channel count is dimension 1 of the data shape.
func openRecording(kwd *hdf5.File, dataset int) (*recording, error) {
	group, err := kwd.OpenGroup("recordings/" + strconv.Itoa(dataset))
	if err != nil {
		return nil, fmt.Errorf("recordings/%d: %w", dataset, ErrMalformedContainer)
	}

	data, err := group.OpenDataset("data")
	if err != nil {
		return nil, fmt.Errorf("recordings/%d/data: %w", dataset, ErrMalformedContainer)
	}

	shape := data.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("recordings/%d/data has rank %d, want 2: %w",
			dataset, len(shape), ErrMalformedContainer)
	}

	return &recording{
		group:       group,
		data:        data,
		numSamples:  int(shape[0]),
		numChannels: int(shape[1]),
	}, nil
}

// attrFloat reads a required scalar float attribute from the recording
// group.
func (rec *recording) attrFloat(name string) (float64, error) {
	attr := rec.group.Attr(name)
	if attr == nil {
		return 0, fmt.Errorf("%s: %w", name, ErrMissingAttribute)
	}
	v, err := attr.ReadScalarFloat64()
	if err != nil {
		return 0, fmt.Errorf("reading attribute %s: %v: %w", name, err, ErrMalformedContainer)
	}
	return v, nil
}

// attrInt reads a required scalar integer attribute from the recording
// group.
func (rec *recording) attrInt(name string) (int64, error) {
	attr := rec.group.Attr(name)
	if attr == nil {
		return 0, fmt.Errorf("%s: %w", name, ErrMissingAttribute)
	}
	v, err := attr.ReadScalarInt64()
	if err != nil {
		return 0, fmt.Errorf("reading attribute %s: %v: %w", name, err, ErrMalformedContainer)
	}
	return v, nil
}

// channelData reads the full sample column for one channel. The on-disk
// array is row-major (samples, channels), so a channel trace is a strided
// column read.
func (rec *recording) channelData(channelIndex int) ([]float64, error) {
	if channelIndex < 0 || channelIndex >= rec.numChannels {
		return nil, fmt.Errorf("channel index %d out of range [0, %d)", channelIndex, rec.numChannels)
	}

	flat, err := rec.data.ReadFloat64()
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	out := make([]float64, rec.numSamples)
	for i := range out {
		out[i] = flat[i*rec.numChannels+channelIndex]
	}
	return out, nil
}

// timeVector materializes the recording's sample clock: one entry per
// attribute-declared sample at (i + start_time) / sample_rate seconds.
// Stimulus onsets are drawn from it and its maximum is the segment
// duration.
func (rec *recording) timeVector() ([]float64, error) {
	nSamples, err := rec.attrInt("shape")
	if err != nil {
		return nil, err
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("shape attribute is %d: %w", nSamples, ErrMalformedContainer)
	}
	start, err := rec.attrFloat("start_time")
	if err != nil {
		return nil, err
	}
	rate, err := rec.attrFloat("sample_rate")
	if err != nil {
		return nil, err
	}

	tv := make([]float64, nSamples)
	for i := range tv {
		tv[i] = (float64(i) + start) / rate
	}
	return tv, nil
}
