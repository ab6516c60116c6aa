package sixelcore

// bandBuffers holds the six row buffers of the current band. Each row has
// guardWidth throwaway columns at the front (indices [0, guardWidth)) so
// that column 0 of the image maps to buffer index guardWidth; the guard
// columns are never emitted to a BandHandler.
type bandBuffers struct {
	rows [6][MaxWidth + guardWidth]uint32
}

// clearColumns fills columns [from, from+n) of every row with fillColor.
// Used directly by mode M2 (clears the whole known width once per band)
// and by mode M1's chunked on-demand grower.
func (b *bandBuffers) clearColumns(from, n int, fillColor uint32) {
	if n <= 0 {
		return
	}
	end := from + n
	if end > MaxWidth+guardWidth {
		end = MaxWidth + guardWidth
	}
	for r := range b.rows {
		row := b.rows[r][from:end]
		for i := range row {
			row[i] = fillColor
		}
	}
}

// exportRows returns len-bounded views of the six rows starting at the
// guard offset, for handing to a BandHandler. The returned slices alias
// the buffer's backing storage and are only valid until the next Decode
// call or clearColumns.
func (b *bandBuffers) exportRows(width int) [6][]uint32 {
	var out [6][]uint32
	if width < 0 {
		width = 0
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	for r := range b.rows {
		out[r] = b.rows[r][guardWidth : guardWidth+width]
	}
	return out
}
