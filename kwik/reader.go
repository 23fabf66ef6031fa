package kwik

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/robert-malhotra/go-kwik/hdf5"
	"github.com/robert-malhotra/go-kwik/neo"
	"github.com/robert-malhotra/go-kwik/spikeshape"
)

// RawDataSuffix is appended to the session base name to locate the
// companion raw-sample container.
const RawDataSuffix = ".raw.kwd"

// Extensions lists the file extensions this reader handles.
var Extensions = []string{"kwd", "kwx", "kwik"}

// SupportedObjects lists the neo entity kinds this reader can produce.
var SupportedObjects = []string{
	"Block", "Segment", "AnalogSignal", "SpikeTrain", "EpochArray",
	"Unit", "RecordingChannel", "RecordingChannelGroup",
}

// SpikeSynth produces the canonical spike waveform template used to build
// per-spike snippets.
type SpikeSynth interface {
	Template() []float64
}

// Reader reads one KWIK session. It holds no open file handles between
// calls; each read opens the containers, reads, and closes them.
type Reader struct {
	filename string
	logger   *zap.Logger
	src      rand.Source
	rng      *rand.Rand
	synth    SpikeSynth
}

// NewReader creates a reader for the given .kwik file. The file is not
// touched until the first read call.
func NewReader(filename string, opts ...Option) *Reader {
	r := &Reader{
		filename: filename,
		logger:   zap.NewNop(),
		synth:    spikeshape.New(),
	}
	r.src = rand.NewSource(uint64(time.Now().UnixNano()))
	r.rng = rand.New(r.src)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filename returns the session's .kwik path.
func (r *Reader) Filename() string {
	return r.filename
}

// rawPath derives the companion raw container path by replacing the
// session file's extension with the raw-data suffix.
func (r *Reader) rawPath() string {
	base := strings.TrimSuffix(r.filename, filepath.Ext(r.filename))
	return base + RawDataSuffix
}

// sessionName is the session base name without directory or extension.
func (r *Reader) sessionName() string {
	name := filepath.Base(r.filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ReadSegment reads one recording into a Segment: per-channel analog
// signals in channel order, three spike trains per channel, one stimulus
// epoch array, and the derived duration. With WithoutCascade only the empty
// segment shell is returned.
func (r *Reader) ReadSegment(opts ...ReadOption) (*neo.Segment, error) {
	o := applyReadOptions(opts)

	kwikFile, err := hdf5.Open(r.filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", r.filename, ErrSourceNotFound)
	}
	defer kwikFile.Close()

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

	seg := neo.NewSegment(r.sessionName())

	if o.cascade {
		for ch := 0; ch < rec.numChannels; ch++ {
			sig, err := r.readAnalogSignal(rec, ch, o)
			if err != nil {
				return nil, err
			}
			seg.AnalogSignals = append(seg.AnalogSignals, sig)
		}

		for ch := 0; ch < rec.numChannels; ch++ {
			for k := 0; k < spikeTrainsPerChannel; k++ {
				st, err := r.readSpikeTrain(ch, o)
				if err != nil {
					return nil, err
				}
				seg.SpikeTrains = append(seg.SpikeTrains, st)
			}
		}

		tv, err := rec.timeVector()
		if err != nil {
			return nil, err
		}
		seg.Epochs = append(seg.Epochs, r.readStimulus(tv, o))
		seg.Duration = neo.Quantity{Val: tv[len(tv)-1], Unit: "s"}

		r.logger.Debug("read segment",
			zap.Int("channels", rec.numChannels),
			zap.Int("spiketrains", len(seg.SpikeTrains)),
			zap.Float64("duration_s", seg.Duration.Val),
			zap.Bool("lazy", o.lazy))
	}

	seg.CreateManyToOneRelationship()
	return seg, nil
}

// ReadBlock reads the session as a Block: one segment plus a recording
// channel group describing the channels and the units isolated from them.
func (r *Reader) ReadBlock(opts ...ReadOption) (*neo.Block, error) {
	seg, err := r.ReadSegment(opts...)
	if err != nil {
		return nil, err
	}

	blk := neo.NewBlock(r.sessionName())
	blk.FileOrigin = r.filename
	blk.Segments = append(blk.Segments, seg)

	rcg := neo.NewRecordingChannelGroup("probe 0")
	for _, sig := range seg.AnalogSignals {
		ch := neo.NewRecordingChannel(sig.ChannelIndex, fmt.Sprintf("channel %d", sig.ChannelIndex))
		ch.AnalogSignals = append(ch.AnalogSignals, sig)
		rcg.Channels = append(rcg.Channels, ch)
		rcg.ChannelIndexes = append(rcg.ChannelIndexes, sig.ChannelIndex)
	}
	for i, st := range seg.SpikeTrains {
		chIdx, _ := st.Annotation("channel_index").(int)
		u := neo.NewUnit(fmt.Sprintf("unit %d", i), chIdx)
		u.SpikeTrains = append(u.SpikeTrains, st)
		rcg.Units = append(rcg.Units, u)
	}
	blk.ChannelGroups = append(blk.ChannelGroups, rcg)

	blk.CreateManyToOneRelationship()
	return blk, nil
}
