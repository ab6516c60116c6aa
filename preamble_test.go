package sixelcore

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRasterCommitsLevelTwoTruncate(t *testing.T) {
	var gotMode Mode
	c, err := NewCore(Options{
		Truncate:          true,
		ModeParsedHandler: func(m Mode) error { gotMode = m; return nil },
	})
	require.NoError(t, err)

	require.NoError(t, c.Decode([]byte(`"1;1;10;6-`)))

	assert.Equal(t, LevelTwo, c.Level())
	assert.Equal(t, ModeTruncate, c.Mode())
	assert.Equal(t, ModeTruncate, gotMode)
	assert.Equal(t, 10, c.CurrentWidth())
}

func TestDecodeRasterCommitsLevelTwoGrowWhenNotTruncating(t *testing.T) {
	c, err := NewCore(Options{Truncate: false})
	require.NoError(t, err)
	require.NoError(t, c.Decode([]byte(`"1;1;10;6-`)))

	assert.Equal(t, LevelTwo, c.Level())
	assert.Equal(t, ModeGrow, c.Mode())
}

func TestDecodeRasterNoPreambleCommitsLevelOne(t *testing.T) {
	c, err := NewCore(Options{Truncate: true})
	require.NoError(t, err)
	require.NoError(t, c.Decode([]byte("?")))

	assert.Equal(t, LevelOne, c.Level())
	assert.Equal(t, ModeGrow, c.Mode())
}

func TestDecodeRasterMalformedAttributesRecoverToLevelOne(t *testing.T) {
	c, err := NewCore(Options{Truncate: true})
	require.NoError(t, err)
	require.NoError(t, c.Decode([]byte(`"1;1 ?`)))

	assert.Equal(t, LevelOne, c.Level())
	assert.Equal(t, ModeGrow, c.Mode())
	assert.Equal(t, 1, c.rNum)
	assert.Equal(t, 1, c.rDenom)
}

func TestDecodeRasterDispatchesSameRangeToCommittedMode(t *testing.T) {
	var bands int
	c, err := NewCore(Options{
		Truncate:    true,
		BandHandler: func(width int, rows [6][]color.RGBA) error { bands++; return nil },
	})
	require.NoError(t, err)

	require.NoError(t, c.Decode([]byte(`"1;1;4;6?-`)))

	assert.Equal(t, 1, bands)
}
