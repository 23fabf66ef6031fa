// Command kwikdump inspects and generates KWIK electrophysiology sessions.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-kwik/hdf5"
	"github.com/robert-malhotra/go-kwik/kwik"
	"github.com/robert-malhotra/go-kwik/synth"
)

// Globals holds flags shared by all commands.
type Globals struct {
	Verbose bool `short:"v" help:"Enable debug logging."`
}

// CLI is the kwikdump command tree.
type CLI struct {
	Globals

	Info InfoCmd `cmd:"" help:"Inspect a .kwik session: container tree and segment summary."`
	Gen  GenCmd  `cmd:"" help:"Write a synthetic .kwik session."`
}

// InfoCmd walks both containers and prints a segment summary.
type InfoCmd struct {
	File    string `arg:"" help:"Path to the .kwik session file."`
	Dataset int    `help:"Recording index under /recordings." default:"0"`
	Lazy    bool   `help:"Shape-only read (skip bulk data)."`
}

func (c *InfoCmd) Run(g *Globals) error {
	logger := newLogger(g.Verbose)
	defer logger.Sync()

	fmt.Printf("=== %s ===\n", c.File)
	if err := dumpTree(c.File); err != nil {
		return err
	}

	r := kwik.NewReader(c.File, kwik.WithLogger(logger))
	opts := []kwik.ReadOption{kwik.WithDataset(c.Dataset)}
	if c.Lazy {
		opts = append(opts, kwik.Lazy())
	}

	seg, err := r.ReadSegment(opts...)
	if err != nil {
		return err
	}

	fmt.Printf("\nSegment %q (dataset %d)\n", seg.Name, c.Dataset)
	fmt.Printf("  Duration:       %s\n", seg.Duration)
	fmt.Printf("  Analog signals: %d\n", len(seg.AnalogSignals))
	for _, sig := range seg.AnalogSignals {
		if sig.IsLazy() {
			fmt.Printf("    channel %d: lazy, shape %v (%s, start %s)\n",
				sig.ChannelIndex, sig.LazyShape, sig.SamplingRate, sig.TStart)
		} else {
			fmt.Printf("    channel %d: %d samples (%s, start %s)\n",
				sig.ChannelIndex, sig.Len(), sig.SamplingRate, sig.TStart)
		}
	}
	fmt.Printf("  Spike trains:   %d\n", len(seg.SpikeTrains))
	fmt.Printf("  Epoch arrays:   %d\n", len(seg.Epochs))
	for _, epo := range seg.Epochs {
		fmt.Printf("    %d stimulus epochs\n", epo.Len())
	}
	return nil
}

// dumpTree prints the container hierarchy of an HDF5 file.
func dumpTree(filename string) error {
	f, err := hdf5.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return hdf5.Walk(f.Root(), func(path string, obj interface{}, err error) error {
		if err != nil {
			fmt.Printf("  %s: ERROR %v\n", path, err)
			return nil
		}
		switch o := obj.(type) {
		case *hdf5.Group:
			fmt.Printf("  %s/ attrs=%v\n", path, o.Attrs())
		case *hdf5.Dataset:
			fmt.Printf("  %s shape=%v attrs=%v\n", path, o.Shape(), o.Attrs())
		}
		return nil
	})
}

// GenCmd writes a synthetic session pair.
type GenCmd struct {
	File     string  `arg:"" help:"Output .kwik path (the .raw.kwd companion is written alongside)."`
	Channels int     `help:"Number of channels." default:"4"`
	Samples  int     `help:"Samples per channel." default:"15000"`
	Rate     float64 `help:"Sampling rate in Hz." default:"10000"`
}

func (c *GenCmd) Run(g *Globals) error {
	p := synth.Params{
		Channels:   c.Channels,
		Samples:    c.Samples,
		SampleRate: c.Rate,
	}
	if err := synth.Write(c.File, p); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d channels, %d samples @ %g Hz)\n", c.File, p.Channels, p.Samples, p.SampleRate)
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kwikdump"),
		kong.Description("Inspect and generate KWIK electrophysiology sessions."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
