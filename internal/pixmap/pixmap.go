package pixmap

import "image"

// Pixmap holds an owned RGBA8 pixel grid as a flat slice for cache locality.
type Pixmap struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// New allocates a zeroed Pixmap of the given dimensions.
func New(w, h int) *Pixmap {
	return &Pixmap{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// FromNRGBA copies a decoded image into an owned Pixmap, dropping the stride.
func FromNRGBA(img *image.NRGBA) *Pixmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := New(w, h)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(p.Pix[y*w*4:], src)
	}
	return p
}

// ToNRGBA wraps the pixel data in an image.NRGBA for the encoders.
// The returned image shares the underlying buffer.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.Pix,
		Stride: p.Width * 4,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// At returns the packed color at texel (x, y).
func (p *Pixmap) At(x, y int) Color {
	i := (y*p.Width + x) * 4
	return Pack(p.Pix[i], p.Pix[i+1], p.Pix[i+2])
}

// Set writes a packed color at texel (x, y).
func (p *Pixmap) Set(x, y int, c Color) {
	i := (y*p.Width + x) * 4
	r, g, b := c.RGB()
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
	p.Pix[i+3] = 0xFF
}
