package kwik

import "errors"

// Common errors. Read failures abort the call in progress; no partial
// result is ever returned alongside an error.
var (
	// ErrSourceNotFound means the .kwik file or its companion .raw.kwd file
	// does not exist or cannot be opened.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrMalformedContainer means an expected group or dataset is absent,
	// or the sample array has the wrong rank.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrMissingAttribute means a required recording attribute
	// (sample_rate, start_time, shape) is absent.
	ErrMissingAttribute = errors.New("required attribute missing")

	// ErrSpikeSynthUnavailable means no waveform synthesizer is configured.
	// It is reported when spike-train reading is attempted, so signal-only
	// reads stay usable without one.
	ErrSpikeSynthUnavailable = errors.New("spike waveform synthesizer unavailable")
)
