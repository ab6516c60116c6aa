package sixelcore

// decodeRaster consumes at most one raster-attribute introducer
// (`"n;d;w;h`) at the very start of the stream, then commits a decode
// mode and level. It never interprets any byte's sixel/introducer
// semantics itself: once it has seen enough to classify the stream, it
// hands the same [start, end) range to the chosen mode decoder so that
// decoder can act on every byte from the beginning, including the one
// that triggered the classification. This mirrors the production core's
// decode_raster, which is deliberately safe to re-scan because none of
// the raster preamble's own bytes (digits, ';', '"') ever fall in the
// sixel-byte range (0x3F..0x7E) or the introducer set (!, #, $, -).
func (c *Core) decodeRaster(start, end int) error {
	idx := start
	for idx < end {
		code := c.chunk[idx] & 0x7F
		idx++

		switch c.state {
		case stateData:
			switch {
			case code == '"':
				c.state = stateAttr
			case isSixelByte(code) || code == '!' || code == '#' || code == '$' || code == '-':
				c.level = LevelOne
				c.mode = ModeGrow
				c.rNum, c.rDenom, c.rWidth, c.rHeight = 0, 0, 0, 0
				goto committed
			}

		case stateAttr:
			switch {
			case isDigit(code):
				c.params[c.pLength-1] = c.params[c.pLength-1]*10 + int(code-'0')
			case code == ';':
				if c.pLength < ParamSize {
					c.params[c.pLength] = 0
					c.pLength++
				}
			case c.pLength == 4:
				c.level = LevelTwo
				if c.truncate {
					c.mode = ModeTruncate
				} else {
					c.mode = ModeGrow
				}
				c.rNum, c.rDenom, c.rWidth, c.rHeight = c.params[0], c.params[1], c.params[2], c.params[3]
				c.state = stateData
				if c.truncate {
					w := c.rWidth
					if w > MaxWidth {
						w = MaxWidth
					}
					c.width = w + guardWidth
					c.height = c.rHeight
				} else {
					c.width = 0
					c.height = 0
				}
				goto committed
			case isSixelByte(code) || code == '!' || code == '#' || code == '$' || code == '-':
				// Malformed raster attributes: a param count other than
				// four was seen before a data/introducer byte. Recover to
				// L1/M1, preserving the first three params that were present.
				c.level = LevelOne
				c.mode = ModeGrow
				c.rNum = paramOrZero(c.params[:], c.pLength, 0)
				c.rDenom = paramOrZero(c.params[:], c.pLength, 1)
				c.rWidth = paramOrZero(c.params[:], c.pLength, 2)
				c.rHeight = 0
				c.state = stateData
				goto committed
			}
		}
	}
	return nil

committed:
	if c.mode == ModeTruncate {
		c.resetLineM2()
	} else {
		c.resetLineM1()
	}
	if err := c.invokeModeParsed(c.mode); err != nil {
		c.abort = true
		return err
	}
	return c.decodeRange(start, end)
}

func isDigit(code byte) bool {
	return code >= '0' && code <= '9'
}

func isSixelByte(code byte) bool {
	return code >= '?' && code <= '~'
}

func paramOrZero(params []int, pLength, i int) int {
	if i < pLength {
		return params[i]
	}
	return 0
}
