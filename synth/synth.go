// Package synth fabricates KWIK sessions: a metadata container plus a raw
// container holding sinusoidal per-channel data under /recordings/0. The
// output is valid input for the kwik reader and is used by tests and the
// CLI to produce self-contained sessions.
package synth

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-kwik/hdf5"
	"github.com/robert-malhotra/go-kwik/kwik"
)

// Params describes the synthetic session to write.
type Params struct {
	Channels   int     // Number of electrode channels (default 4)
	Samples    int     // Samples per channel (default 15000)
	SampleRate float64 // Hz (default 10000)
	StartTime  float64 // Seconds (default 0)
}

func (p Params) withDefaults() Params {
	if p.Channels <= 0 {
		p.Channels = 4
	}
	if p.Samples <= 0 {
		p.Samples = 15000
	}
	if p.SampleRate <= 0 {
		p.SampleRate = 10000
	}
	return p
}

// Write creates filename (the .kwik metadata container) and its companion
// raw container alongside it.
func Write(filename string, p Params) error {
	p = p.withDefaults()
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	if err := writeMeta(filename); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	rawName := base + kwik.RawDataSuffix
	if err := writeRaw(rawName, p); err != nil {
		return fmt.Errorf("writing %s: %w", rawName, err)
	}
	return nil
}

// writeMeta writes the .kwik metadata container. The reader only needs it
// to exist and open; a recording entry is included for tooling that walks
// the file.
func writeMeta(filename string) error {
	f, err := hdf5.Create(filename)
	if err != nil {
		return err
	}

	recordings, err := f.Root().CreateGroup("recordings")
	if err != nil {
		f.Close()
		return err
	}
	if _, err := recordings.CreateGroup("0",
		hdf5.WithGroupAttribute("name", "recording 0"),
	); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writeRaw writes the .raw.kwd container: /recordings/0 with sample_rate,
// start_time and shape attributes and a (samples, channels) data array.
func writeRaw(filename string, p Params) error {
	f, err := hdf5.Create(filename)
	if err != nil {
		return err
	}

	recordings, err := f.Root().CreateGroup("recordings")
	if err != nil {
		f.Close()
		return err
	}

	rec, err := recordings.CreateGroup("0",
		hdf5.WithGroupAttribute("sample_rate", p.SampleRate),
		hdf5.WithGroupAttribute("start_time", p.StartTime),
		hdf5.WithGroupAttribute("shape", int64(p.Samples)),
	)
	if err != nil {
		f.Close()
		return err
	}

	if _, err := rec.CreateDataset("data", channelSines(p)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// channelSines builds the (samples, channels) sample array: each channel is
// a sine at a channel-dependent frequency so traces are distinguishable.
func channelSines(p Params) [][]float64 {
	data := make([][]float64, p.Samples)
	for i := range data {
		row := make([]float64, p.Channels)
		t := (float64(i) + p.StartTime) / p.SampleRate
		for ch := range row {
			freq := 5.0 * float64(ch+1)
			row[ch] = math.Sin(2 * math.Pi * freq * t)
		}
		data[i] = row
	}
	return data
}
