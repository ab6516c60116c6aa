package sixelcore

import "github.com/go-sixel/sixelcore/internal/lanes4"

// putSingle paints one sixel (code, its low six bits selecting rows) at
// column col in color. Columns at or beyond MaxWidth are clamped away.
func (b *bandBuffers) putSingle(code int, color uint32, col int) {
	if col >= MaxWidth {
		return
	}
	for i := 0; i < 6; i++ {
		if code&(1<<i) != 0 {
			b.rows[i][col] = color
		}
	}
}

// putRun paints n consecutive identical sixels starting at column col. A
// zero code is a no-op; n is clamped so the run never crosses MaxWidth.
func (b *bandBuffers) putRun(code int, color uint32, n, col int) {
	if code == 0 || col >= MaxWidth {
		return
	}
	if col+n > MaxWidth {
		n = MaxWidth - col
	}
	for i := 0; i < 6; i++ {
		if code&(1<<i) == 0 {
			continue
		}
		row := b.rows[i][col : col+n]
		for j := range row {
			row[j] = color
		}
	}
}

// putWide paints up to four horizontally adjacent sixels in one pass per
// row, using the portable 4-lane vector kernel. agg packs the four sixel
// codes one per byte (agg_byte[k] holds the code for column col+k). col
// may be any column; no alignment is needed. Callers are responsible for
// flushing any trailing remainder (<4 sixels) through putSingle instead.
// If col+4 overruns MaxWidth, only the in-bounds lanes
// are painted, matching putSingle's per-column clamp rather than dropping
// the whole group.
func (b *bandBuffers) putWide(agg uint32, color uint32, col int) {
	if col >= MaxWidth {
		return
	}
	n := 4
	if col+n > MaxWidth {
		n = MaxWidth - col
	}
	if n < 4 {
		for k := 0; k < n; k++ {
			b.putSingle(int(byte(agg>>(8*k))), color, col+k)
		}
		return
	}

	sixels := lanes4.Vec{
		agg & 0xFF,
		(agg >> 8) & 0xFF,
		(agg >> 16) & 0xFF,
		(agg >> 24) & 0xFF,
	}
	colors := lanes4.Splat(color)

	for i := 0; i < 6; i++ {
		matcher := lanes4.Splat(1 << i)
		mask := lanes4.Eq(matcher, lanes4.And(sixels, matcher))
		updated := lanes4.And(mask, colors)
		prev := lanes4.Load(b.rows[i][col : col+4])
		keep := lanes4.AndNot(prev, mask)
		lanes4.Store(b.rows[i][col:col+4], lanes4.Or(keep, updated))
	}
}
