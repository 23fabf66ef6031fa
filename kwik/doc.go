// Package kwik reads KWIK-format electrophysiology sessions into the neo
// object model.
//
// A session is a pair of HDF5 containers related by name: the metadata file
// (name.kwik) and the raw-sample file (name.raw.kwd) holding per-recording
// groups under /recordings/<n>, each with sample_rate, start_time and shape
// attributes and a 2-D (samples, channels) data array.
//
// Usage:
//
//	r := kwik.NewReader("session.kwik")
//	seg, err := r.ReadSegment()
//	if err != nil {
//	    // ...
//	}
//	for _, sig := range seg.AnalogSignals {
//	    fmt.Println(sig.ChannelIndex, sig.Len())
//	}
//
// Lazy reads return structurally valid placeholders annotated with the shape
// the data would have had:
//
//	seg, err := r.ReadSegment(kwik.Lazy())
package kwik
