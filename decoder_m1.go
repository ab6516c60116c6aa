package sixelcore

// decodeM1 implements the grow-and-clear-on-demand decode mode: level-1
// streams, or level-2 streams with truncation disabled. The band's usable
// width grows with the cursor and newly exposed columns are cleared to
// fill_color in clearChunk-sized chunks just ahead of the paint cursor.
func (c *Core) decodeM1(start, end int) error {
	cur := c.cursor
	state := c.state
	color := c.color

	chunk := c.chunk
	idx := start

	for idx < end {
		code := chunk[idx] & 0x7F
		idx++

		// Numeric parameter: consume all consecutive digits.
		if isDigit(code) {
			p := &c.params[c.pLength-1]
			for isDigit(code) {
				*p = *p*10 + int(code-'0')
				code = chunk[idx] & 0x7F
				idx++
			}
		}

		// Sixel data byte(s).
		if isSixelByte(code) {
			if state != stateData {
				if state == stateCompression {
					n := c.params[0]
					if n == 0 {
						n = 1
					}
					for cur+n >= c.clearedWidth && c.clearedWidth < MaxWidth+guardWidth {
						c.clearNextChunk()
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
				for cur >= c.clearedWidth && c.clearedWidth < MaxWidth+guardWidth {
					c.clearNextChunk()
				}
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
			if cur > c.realWidth {
				c.realWidth = cur
			}
			if c.realWidth > MaxWidth {
				c.realWidth = MaxWidth
			}
			cur = guardWidth

		case code == '-':
			if cur > c.realWidth {
				c.realWidth = cur
			}
			if c.realWidth > MaxWidth {
				c.realWidth = MaxWidth
			}
			c.cursor = c.realWidth
			width := c.realWidth - guardWidth
			if err := c.invokeBandHandler(width); err != nil {
				c.abort = true
				c.cursor, c.realWidth = guardWidth, guardWidth
				return err
			}
			c.resetLineM1()
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
