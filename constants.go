package sixelcore

// Compile-time sizing constants. These mirror the WASM core's cmdline
// overridable #defines (CHUNK_SIZE, PALETTE_SIZE, MAX_WIDTH, PARAM_SIZE);
// Go has no equivalent override knob, so they are plain constants.
const (
	// ChunkSize is the default capacity hint for a single Decode call.
	// The core itself does not enforce this as a hard limit on the slice
	// passed to Decode; it only bounds the default buffer Decode(io.Reader)
	// reads at a time.
	ChunkSize = 4096

	// PaletteSize is the maximum number of palette registers.
	PaletteSize = 256

	// MaxWidth bounds the paint cursor, which counts the four guard
	// columns: the paint kernels drop any column at buffer index MaxWidth
	// or beyond, so at most MaxWidth-guardWidth image columns can be
	// painted per band. Row buffers hold MaxWidth+guardWidth entries.
	MaxWidth = 4096

	// ParamSize is the maximum number of numeric parameters collected for
	// a single introducer (raster attributes, compression, or color).
	ParamSize = 8

	// guardWidth is the number of throwaway columns prefixed to every row
	// buffer so that painting at cursor 0 lands at buffer index guardWidth.
	guardWidth = 4

	// clearChunk is the chunk size (in columns) used by mode M1 to grow and
	// clear band buffers on demand.
	clearChunk = 128
)

// parserState is the parser's current introducer context.
type parserState int

const (
	stateData parserState = iota
	stateCompression
	stateColor
	stateAttr
)

// Level is the detected SIXEL conformance level of the stream, decided by
// the raster-attribute preamble.
type Level int

const (
	// LevelUndecided means the preamble has not run yet.
	LevelUndecided Level = iota
	// LevelOne means no (or malformed) raster attributes were present.
	LevelOne
	// LevelTwo means a complete four-parameter "n;d;w;h raster-attribute
	// preamble was seen.
	LevelTwo
)

func (l Level) String() string {
	switch l {
	case LevelOne:
		return "L1"
	case LevelTwo:
		return "L2"
	default:
		return "undecided"
	}
}

// Mode is the decode strategy chosen after the raster-attribute preamble.
type Mode int

const (
	// ModeUndecided means the preamble has not committed a mode yet.
	ModeUndecided Mode = iota
	// ModeGrow decodes with on-demand width growth and chunked clearing.
	ModeGrow
	// ModeTruncate decodes against a fixed, pre-cleared raster width and
	// silently drops columns beyond it.
	ModeTruncate
)

func (m Mode) String() string {
	switch m {
	case ModeGrow:
		return "M1"
	case ModeTruncate:
		return "M2"
	default:
		return "undecided"
	}
}
