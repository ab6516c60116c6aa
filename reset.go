package sixelcore

// resetLineM1 clears band buffers for mode M1's next band. Only the first
// 128-column chunk is cleared eagerly; decodeM1 grows cleared_width by
// further 128-column chunks on demand as the cursor advances.
func (c *Core) resetLineM1() {
	c.realWidth = guardWidth
	c.bands.clearColumns(guardWidth, clearChunk, c.fillColor)
	c.clearedWidth = guardWidth + clearChunk
}

// resetLineM2 clears exactly c.width columns (the known, truncated raster
// width) once per band.
func (c *Core) resetLineM2() {
	n := c.width - guardWidth
	c.bands.clearColumns(guardWidth, n, c.fillColor)
}

// clearNextChunk grows mode M1's cleared region by one 128-column chunk.
func (c *Core) clearNextChunk() {
	c.bands.clearColumns(c.clearedWidth, clearChunk, c.fillColor)
	c.clearedWidth += clearChunk
}
