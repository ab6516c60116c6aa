package sixelcore

import (
	"bufio"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("sixel", "\x1bP", decodeImage, decodeConfig)
	image.RegisterFormat("sixel", "\x90", decodeImage, decodeConfig)
}

// Decode drives a Core to completion over r, assembling every band it
// emits into a single *image.RGBA. Band assembly and output allocation are
// explicitly out of Core's scope; Decode is this package's example host,
// kept in its own file so the core parser stays free of image-package
// concerns.
func Decode(r io.Reader, opts Options) (*image.RGBA, error) {
	var img *image.RGBA
	width, height := 0, 0

	userBand := opts.BandHandler
	opts.BandHandler = func(bandWidth int, rows [6][]color.RGBA) error {
		if bandWidth > width {
			width = bandWidth
		}
		img = growRGBA(img, width, height+6)
		for r := 0; r < 6; r++ {
			y := height + r
			for x, px := range rows[r] {
				img.SetRGBA(x, y, px)
			}
		}
		height += 6
		if userBand != nil {
			return userBand(bandWidth, rows)
		}
		return nil
	}

	core, err := NewCore(opts)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, ChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if derr := core.Decode(buf[:n]); derr != nil {
				return img, derr
			}
			if core.Aborted() {
				break
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return img, err
		}
	}

	if img == nil {
		return nil, ErrNotSixel
	}
	return img.SubImage(image.Rect(0, 0, width, height)).(*image.RGBA), nil
}

// growRGBA returns an *image.RGBA at least w by h, reusing img unchanged if
// it is already big enough and allocating a fresh, larger backing image
// with img's contents copied in otherwise. Mode M1's real_width can grow
// between bands, so the assembled image's width is only known in hindsight.
func growRGBA(img *image.RGBA, w, h int) *image.RGBA {
	if img != nil {
		b := img.Bounds()
		if w <= b.Dx() && h <= b.Dy() {
			return img
		}
		if w < b.Dx() {
			w = b.Dx()
		}
		if h < b.Dy() {
			h = b.Dy()
		}
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if img != nil {
		b := img.Bounds()
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				out.SetRGBA(x, y, img.RGBAAt(x, y))
			}
		}
	}
	return out
}

// stripDCSIntroducer skips a leading DCS sequence (ESC P <params> q, or its
// single-byte C1 form 0x90 <params> q) so the body handed to Decode is
// clean sixel data. Parsing the full escape-sequence grammar around a
// SIXEL payload is explicitly host work the core does not do; this is the
// minimal version of that work needed for image.RegisterFormat callers,
// who hand Decode a whole file rather than a pre-stripped body.
func stripDCSIntroducer(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	first, err := br.Peek(1)
	if err != nil || (first[0] != 0x1B && first[0] != 0x90) {
		return br
	}
	for {
		c, err := br.ReadByte()
		if err != nil {
			return br
		}
		if c == 'q' {
			return br
		}
	}
}

func decodeImage(r io.Reader) (image.Image, error) {
	return Decode(stripDCSIntroducer(r), Options{})
}

func decodeConfig(r io.Reader) (image.Config, error) {
	img, err := Decode(stripDCSIntroducer(r), Options{})
	if err != nil {
		return image.Config{}, err
	}
	b := img.Bounds()
	return image.Config{ColorModel: color.RGBAModel, Width: b.Dx(), Height: b.Dy()}, nil
}
