package sixelcore

import "image/color"

// BandHandler receives one completed band: the six row buffers (already
// sliced to width columns, guard columns excluded) plus that width. It
// returns a non-nil error to abort the decode.
type BandHandler func(width int, rows [6][]color.RGBA) error

// ModeParsedHandler is notified once the raster-attribute preamble (if
// any) has committed a decode mode. It returns a non-nil error to abort
// the decode before any band is produced.
type ModeParsedHandler func(mode Mode) error

// Options configures a new Core.
type Options struct {
	// SixelColor is the color a sixel paints before any color introducer
	// has been seen.
	SixelColor color.RGBA

	// FillColor is the background color used to clear newly exposed or
	// reset band columns.
	FillColor color.RGBA

	// PaletteLength is the number of addressable palette registers. Zero
	// defaults to PaletteSize; any other value outside [1, PaletteSize]
	// makes NewCore and Init return ErrInvalidPaletteLength.
	PaletteLength int

	// Truncate selects mode M2 (pre-cleared, fixed-width, truncating) for
	// level-2 streams instead of mode M1 (grow-and-clear-on-demand).
	Truncate bool

	// BandHandler is invoked once per completed band. It must be set for
	// Decode to be useful; a nil handler makes every band a silent no-op.
	BandHandler BandHandler

	// ModeParsedHandler is invoked once the raster preamble commits a
	// mode. It may be nil.
	ModeParsedHandler ModeParsedHandler
}

// Core is the SIXEL parser and rasterizer state for one image. It is not
// safe for concurrent use; decode multiple images in parallel by giving
// each its own Core.
type Core struct {
	opts Options

	state parserState

	params  [ParamSize]int
	pLength int

	cursor int
	color  uint32

	pal       palette
	fillColor uint32

	width, height                 int
	rNum, rDenom, rWidth, rHeight int

	realWidth    int
	clearedWidth int

	mode  Mode
	level Level

	truncate bool
	abort    bool

	bands bandBuffers

	// chunk is the core's own scratch copy of whatever was last passed to
	// Decode, with one extra sentinel byte appended past the caller's
	// data (mirroring the WASM core's chunk+1 buffer convention, but
	// owned internally so callers never need to think about it).
	chunk []byte
}

// NewCore constructs a Core ready to decode one image. It returns
// ErrInvalidPaletteLength if opts.PaletteLength is set and falls outside
// [1, PaletteSize].
func NewCore(opts Options) (*Core, error) {
	c := &Core{}
	if err := c.Init(opts); err != nil {
		return nil, err
	}
	return c, nil
}

// Init resets c for a new image, discarding any in-progress decode. The
// parser state is reset as for a fresh Core with the same Options, except
// that palette register contents are kept from any previous image. Init is
// idempotent: calling Init twice with the same Options leaves c byte-equal
// (ignoring the band buffer contents, which are cleared lazily on first
// use by the chosen mode's reset routine).
func (c *Core) Init(opts Options) error {
	length := opts.PaletteLength
	if length == 0 {
		length = PaletteSize
	}
	if length < 1 || length > PaletteSize {
		return ErrInvalidPaletteLength
	}

	c.opts = opts
	c.state = stateData
	c.color = rgbaToPacked(opts.SixelColor)
	c.cursor = guardWidth
	c.pal.init(length)
	c.params[0] = 0
	c.pLength = 1
	c.truncate = opts.Truncate
	c.level = LevelUndecided
	c.mode = ModeUndecided
	fill := rgbaToPacked(opts.FillColor)
	c.fillColor = fill
	c.rNum, c.rDenom, c.rWidth, c.rHeight = 0, 0, 0, 0
	c.width, c.height = 0, 0
	c.realWidth = guardWidth
	c.clearedWidth = guardWidth
	c.abort = false
	return nil
}

// PaletteLength reports the number of addressable palette registers.
func (c *Core) PaletteLength() int { return c.pal.length }

// Palette returns a copy of the current palette contents, up to
// PaletteLength entries.
func (c *Core) Palette() []color.RGBA {
	out := make([]color.RGBA, c.pal.length)
	for i := range out {
		out[i] = packedToRGBA(c.pal.colors[i])
	}
	return out
}

// Row returns a snapshot of row i (0..5, top to bottom) of the band
// currently being accumulated, truncated to width columns. The returned
// slice is a copy; it remains valid across further Decode calls.
func (c *Core) Row(i, width int) []color.RGBA {
	raw := c.bands.exportRows(width)[i]
	out := make([]color.RGBA, len(raw))
	for j, px := range raw {
		out[j] = packedToRGBA(px)
	}
	return out
}

// Mode reports the decode mode committed by the raster-attribute preamble,
// or ModeUndecided if no bytes have been fed yet.
func (c *Core) Mode() Mode { return c.mode }

// Level reports the detected conformance level, or LevelUndecided if no
// bytes have been fed yet.
func (c *Core) Level() Level { return c.level }

// Aborted reports whether a prior BandHandler or ModeParsedHandler call
// aborted the decode. Once true, Decode is a no-op until Init is called
// again.
func (c *Core) Aborted() bool { return c.abort }

// CurrentWidth returns the width (in columns, guard excluded) of the band
// currently being accumulated.
func (c *Core) CurrentWidth() int {
	switch c.mode {
	case ModeGrow:
		if c.cursor > c.realWidth {
			c.realWidth = c.cursor
		}
		if c.realWidth > MaxWidth {
			c.realWidth = MaxWidth
		}
		return c.realWidth - guardWidth
	case ModeTruncate:
		return c.width - guardWidth
	default:
		return 0
	}
}

// Decode processes chunk as the next slice of the SIXEL byte stream. It is
// a no-op if the decode has already aborted.
func (c *Core) Decode(chunk []byte) error {
	if c.abort {
		return nil
	}

	if cap(c.chunk) < len(chunk)+1 {
		c.chunk = make([]byte, len(chunk)+1)
	}
	c.chunk = c.chunk[:len(chunk)+1]
	copy(c.chunk, chunk)
	c.chunk[len(chunk)] = 0xFF

	return c.decodeRange(0, len(chunk))
}

// decodeRange dispatches to the mode-specific decoder (or the raster
// preamble decoder, before a mode has been committed) over c.chunk[start:end].
func (c *Core) decodeRange(start, end int) error {
	switch c.mode {
	case ModeGrow:
		return c.decodeM1(start, end)
	case ModeTruncate:
		return c.decodeM2(start, end)
	default:
		return c.decodeRaster(start, end)
	}
}

func (c *Core) invokeBandHandler(width int) error {
	if c.opts.BandHandler == nil {
		return nil
	}
	raw := c.bands.exportRows(width)
	var rows [6][]color.RGBA
	for i := range raw {
		rgba := make([]color.RGBA, len(raw[i]))
		for j, px := range raw[i] {
			rgba[j] = packedToRGBA(px)
		}
		rows[i] = rgba
	}
	return c.opts.BandHandler(width, rows)
}

func (c *Core) invokeModeParsed(mode Mode) error {
	if c.opts.ModeParsedHandler == nil {
		return nil
	}
	return c.opts.ModeParsedHandler(mode)
}
