package sixelcore

// decodeM2 implements the pre-cleared, fixed-width, truncating decode mode:
// level-2 streams with truncation enabled. c.width was fixed by the raster
// attribute preamble and every band is cleared to that width up front, so
// there is no on-demand growth here, only the MaxWidth clamp the paint
// kernels already enforce. Input past the declared raster width is simply
// dropped at export time.
func (c *Core) decodeM2(start, end int) error {
	cur := c.cursor
	state := c.state
	color := c.color

	chunk := c.chunk
	idx := start

	for idx < end {
		code := chunk[idx] & 0x7F
		idx++

		if isDigit(code) {
			p := &c.params[c.pLength-1]
			for isDigit(code) {
				*p = *p*10 + int(code-'0')
				code = chunk[idx] & 0x7F
				idx++
			}
		}

		if isSixelByte(code) {
			if state != stateData {
				if state == stateCompression {
					n := c.params[0]
					if n == 0 {
						n = 1
					}
					c.bands.putRun(int(code-'?'), color, n, cur)
					cur += n
					code = chunk[idx] & 0x7F
					idx++
				} else {
					color = c.pal.resolveColorIntroducer(c.params[:c.pLength], color)
				}
				state = stateData
			}

			var agg uint32
			shift := uint(0)
			for isSixelByte(code) {
				agg |= uint32(code-'?') << shift
				cur++
				shift += 8
				if shift == 32 {
					c.bands.putWide(agg, color, cur-4)
					agg, shift = 0, 0
				}
				code = chunk[idx] & 0x7F
				idx++
			}
			if shift != 0 {
				n := int(shift / 8)
				tail := cur - n
				for i := 0; i < n; i++ {
					sx := int(agg>>(uint(i)*8)) & 0xFF
					c.bands.putSingle(sx, color, tail+i)
				}
			}
		}

		switch {
		case code == '!' || code == '#':
			if state == stateColor {
				color = c.pal.resolveColorIntroducer(c.params[:c.pLength], color)
			}
			c.params[0] = 0
			c.pLength = 1
			if code == '!' {
				state = stateCompression
			} else {
				state = stateColor
			}

		case code == '$':
			cur = guardWidth

		case code == '-':
			width := c.width - guardWidth
			if err := c.invokeBandHandler(width); err != nil {
				c.abort = true
				c.cursor = guardWidth
				return err
			}
			c.resetLineM2()
			cur = guardWidth

		case code == ';':
			if c.pLength < ParamSize {
				c.params[c.pLength] = 0
				c.pLength++
			}
		}
	}

	c.cursor = cur
	c.state = state
	c.color = color
	return nil
}
