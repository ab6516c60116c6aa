package sixelcore

import "errors"

var (
	// ErrInvalidPaletteLength is returned by NewCore when the requested
	// palette length falls outside [1, PaletteSize].
	ErrInvalidPaletteLength = errors.New("sixelcore: palette length out of range")

	// ErrNotSixel is returned by Decode (and so by the registered image
	// format) when the stream ends without completing a single band, for
	// example an empty stream or one with no '-'.
	ErrNotSixel = errors.New("sixelcore: input is not a SIXEL stream")

	// ErrAborted is a sentinel a BandHandler or ModeParsedHandler may return
	// to abort the decode. Core.Decode and Decode return whatever error the
	// handler returned, unchanged; they never produce ErrAborted themselves.
	ErrAborted = errors.New("sixelcore: decode aborted by host callback")
)
