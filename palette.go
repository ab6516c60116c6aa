package sixelcore

// palette is a fixed-capacity mapping from register index (modulo its
// configured length) to a packed RGBA color.
type palette struct {
	colors [PaletteSize]uint32
	length int
}

// init resets the palette to length registers (clamped to [1, PaletteSize]).
// The register contents are left as-is; SIXEL streams always select or
// assign a register before reading it, and the WASM core likewise never
// clears palette memory on init.
func (p *palette) init(length int) {
	switch {
	case length < 1:
		length = 1
	case length > PaletteSize:
		length = PaletteSize
	}
	p.length = length
}

// fastmod mirrors the WASM core's fastmod: most registers fit without the
// modulo, so the common case skips it.
func fastmod(value, ceil int) int {
	if value < ceil {
		return value
	}
	return value % ceil
}

func (p *palette) get(index int) uint32 {
	return p.colors[fastmod(index, p.length)]
}

func (p *palette) set(index int, color uint32) {
	p.colors[fastmod(index, p.length)] = color
}

// resolveColorIntroducer applies the `#` color-introducer semantics
// (spec.md 4.2 / apply_color in the WASM core) given the accumulated
// params, returning the resulting current color.
//
//   - exactly 1 param: select register params[0].
//   - exactly 5 params with params[1] in {1, 2} (HLS, RGB) and channel
//     values in range: convert, store into the register, then select it.
//   - anything else: no palette mutation, color unchanged.
func (p *palette) resolveColorIntroducer(params []int, current uint32) uint32 {
	switch len(params) {
	case 1:
		return p.get(params[0])
	case 5:
		mode := params[1]
		if mode < 1 || mode > 2 {
			return current
		}
		hueLimit := 100
		if mode == 1 {
			hueLimit = 360
		}
		if params[2] > hueLimit || params[3] > 100 || params[4] > 100 {
			return current
		}
		converted := colorConverters[mode-1](params[2], params[3], params[4])
		p.set(params[0], converted)
		return p.get(params[0])
	default:
		return current
	}
}
