package sixelcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteFastmod(t *testing.T) {
	assert.Equal(t, 3, fastmod(3, 16))
	assert.Equal(t, 0, fastmod(16, 16))
	assert.Equal(t, 5, fastmod(21, 16))
}

func TestPaletteInitClampsLength(t *testing.T) {
	var p palette
	p.init(0)
	assert.Equal(t, 1, p.length)

	p.init(-5)
	assert.Equal(t, 1, p.length)

	p.init(PaletteSize + 100)
	assert.Equal(t, PaletteSize, p.length)

	p.init(16)
	assert.Equal(t, 16, p.length)
}

func TestResolveColorIntroducerSelect(t *testing.T) {
	var p palette
	p.init(16)
	p.set(3, 0xFF112233)

	got := p.resolveColorIntroducer([]int{3}, 0xFF000000)
	assert.Equal(t, uint32(0xFF112233), got)
}

func TestResolveColorIntroducerSelectWraps(t *testing.T) {
	var p palette
	p.init(16)
	p.set(3, 0xFF112233)

	got := p.resolveColorIntroducer([]int{19}, 0xFF000000)
	assert.Equal(t, uint32(0xFF112233), got)
}

func TestResolveColorIntroducerAssignRGB(t *testing.T) {
	var p palette
	p.init(16)

	got := p.resolveColorIntroducer([]int{5, 2, 100, 100, 100}, 0xFF000000)
	require.Equal(t, uint32(0xFFFFFFFF), got)
	assert.Equal(t, uint32(0xFFFFFFFF), p.get(5))
}

func TestResolveColorIntroducerAssignHLS(t *testing.T) {
	var p palette
	p.init(16)

	got := p.resolveColorIntroducer([]int{2, 1, 0, 0, 50}, 0xFF112233)
	require.Equal(t, normalizeHLS(0, 0, 50), got)
	assert.Equal(t, normalizeHLS(0, 0, 50), p.get(2))
}

func TestResolveColorIntroducerOutOfRangeIsNoop(t *testing.T) {
	cases := []struct {
		name   string
		params []int
	}{
		{"bad mode", []int{1, 0, 0, 0, 0}},
		{"mode too high", []int{1, 3, 0, 0, 0}},
		{"hue out of range", []int{1, 1, 361, 0, 0}},
		{"rgb red out of range", []int{1, 2, 101, 0, 0}},
		{"wrong param count", []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p palette
			p.init(16)
			p.set(1, 0xDEADBEEF)
			got := p.resolveColorIntroducer(tc.params, 0xAABBCCDD)
			assert.Equal(t, uint32(0xAABBCCDD), got)
			assert.Equal(t, uint32(0xDEADBEEF), p.get(1))
		})
	}
}
