package sixelcore

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, opts Options, data []byte) {
	t.Helper()
	c, err := NewCore(opts)
	require.NoError(t, err)
	require.NoError(t, c.Decode(data))
}

func TestDecodeM1SingleSixelNoPreamble(t *testing.T) {
	var gotWidth int
	var gotRows [6][]color.RGBA
	opts := Options{
		SixelColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BandHandler: func(width int, rows [6][]color.RGBA) error {
			gotWidth = width
			gotRows = rows
			return nil
		},
	}
	// One sixel column (code 0x3F + 0b111111 = '~'), then graphics-next-line.
	decodeAll(t, opts, []byte("~-"))

	require.Equal(t, 1, gotWidth)
	for i := 0; i < 6; i++ {
		require.Len(t, gotRows[i], 1)
		assert.NotEqual(t, color.RGBA{}, gotRows[i][0], "row %d should be painted", i)
	}
}

func TestDecodeM1CarriageReturnResetsColumn(t *testing.T) {
	var rows [6][]color.RGBA
	opts := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error { rows = r; return nil },
	}
	// Paint column 0 with all rows, CR, then '?' (no rows) at column 0 and
	// '@' (row 0 only) at column 1: the band is two columns wide, not three.
	decodeAll(t, opts, []byte("~$?"+string(byte('?'+1))+"-"))

	require.Len(t, rows[0], 2)
}

func TestDecodeM1RunLengthCompression(t *testing.T) {
	var gotWidth int
	opts := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error { gotWidth = width; return nil },
	}
	// !5~ paints 5 copies of the full-column sixel, then ends the band.
	decodeAll(t, opts, []byte("!5~-"))

	assert.Equal(t, 5, gotWidth)
}

func TestDecodeM1RunLengthZeroCountMeansOne(t *testing.T) {
	var gotWidth int
	opts := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error { gotWidth = width; return nil },
	}
	decodeAll(t, opts, []byte("!0~-"))

	assert.Equal(t, 1, gotWidth)
}

func TestDecodeM1ColorIntroducerSelectsRegister(t *testing.T) {
	var rows [6][]color.RGBA
	o := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error { rows = r; return nil },
	}
	// #1;2;100;0;0 assigns register 1 to pure red, selects it, paints one column.
	decodeAll(t, o, []byte("#1;2;100;0;0~-"))

	require.Len(t, rows[0], 1)
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, rows[0][0])
}

func TestDecodeM2TruncatesExcessColumns(t *testing.T) {
	var gotWidth int
	opts := Options{
		Truncate: true,
		BandHandler: func(width int, r [6][]color.RGBA) error {
			gotWidth = width
			return nil
		},
	}
	// Raster width 2, but the data paints 4 columns; M2 must drop the excess.
	decodeAll(t, opts, []byte(`"1;1;2;6~~~~-`))

	assert.Equal(t, 2, gotWidth)
}

func TestDecodeMultipleBandsAccumulateHeight(t *testing.T) {
	bandCount := 0
	opts := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error { bandCount++; return nil },
	}
	decodeAll(t, opts, []byte("~-~-~-"))

	assert.Equal(t, 3, bandCount)
}

func TestDecodeAbortStopsFurtherBands(t *testing.T) {
	bandCount := 0
	opts := Options{
		BandHandler: func(width int, r [6][]color.RGBA) error {
			bandCount++
			return ErrAborted
		},
	}
	c, err := NewCore(opts)
	require.NoError(t, err)
	err = c.Decode([]byte("~-~-"))

	require.ErrorIs(t, err, ErrAborted)
	assert.True(t, c.Aborted())
	assert.Equal(t, 1, bandCount)

	// Further Decode calls are no-ops once aborted.
	require.NoError(t, c.Decode([]byte("~-")))
	assert.Equal(t, 1, bandCount)
}

// TestDecodeChunkingIsIndifferent feeds the same stream in one call and
// split across every possible byte boundary, asserting every split produces
// the same sequence of emitted bands.
func TestDecodeChunkingIsIndifferent(t *testing.T) {
	stream := []byte(`"1;1;8;6#1;2;100;0;0~~~~!3?-`)

	var whole [][6][]color.RGBA
	wholeOpts := Options{
		Truncate: true,
		BandHandler: func(width int, r [6][]color.RGBA) error {
			whole = append(whole, r)
			return nil
		},
	}
	decodeAll(t, wholeOpts, stream)

	for split := 1; split < len(stream); split++ {
		var got [][6][]color.RGBA
		splitOpts := Options{
			Truncate: true,
			BandHandler: func(width int, r [6][]color.RGBA) error {
				got = append(got, r)
				return nil
			},
		}
		c, err := NewCore(splitOpts)
		require.NoError(t, err)
		require.NoError(t, c.Decode(stream[:split]))
		require.NoError(t, c.Decode(stream[split:]))

		require.Equal(t, whole, got, "split at byte %d", split)
	}
}
