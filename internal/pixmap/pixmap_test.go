package pixmap

import (
	"image"
	"testing"
)

func TestPackRGB(t *testing.T) {
	c := Pack(1, 2, 3)
	r, g, b := c.RGB()
	if r != 1 || g != 2 || b != 3 {
		t.Fatalf("RGB() = (%d,%d,%d)", r, g, b)
	}
	if uint32(c)>>24 != 0xFF {
		t.Fatalf("alpha byte = %#x, want 0xFF", uint32(c)>>24)
	}
}

func TestSetAt(t *testing.T) {
	p := New(3, 2)
	if len(p.Pix) != 3*2*4 {
		t.Fatalf("len(Pix) = %d, want %d", len(p.Pix), 3*2*4)
	}
	p.Set(2, 1, Pack(10, 20, 30))
	if got := p.At(2, 1); got != Pack(10, 20, 30) {
		t.Fatalf("At(2,1) = %08x", got)
	}
	// Set forces the alpha byte opaque.
	if p.Pix[(1*3+2)*4+3] != 0xFF {
		t.Fatal("alpha not forced opaque")
	}
}

func TestFromNRGBADropsStride(t *testing.T) {
	// A subimage has a stride wider than its row length; the copy must
	// follow the stride, not assume packed rows.
	base := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := base.PixOffset(x, y)
			base.Pix[i] = uint8(x)
			base.Pix[i+1] = uint8(y)
			base.Pix[i+3] = 255
		}
	}
	sub := base.SubImage(image.Rect(2, 3, 6, 7)).(*image.NRGBA)

	p := FromNRGBA(sub)
	if p.Width != 4 || p.Height != 4 {
		t.Fatalf("pixmap is %dx%d, want 4x4", p.Width, p.Height)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, _ := p.At(x, y).RGB()
			if r != uint8(x+2) || g != uint8(y+3) {
				t.Fatalf("texel (%d,%d) = (%d,%d), want (%d,%d)", x, y, r, g, x+2, y+3)
			}
		}
	}
}

func TestToNRGBASharesBuffer(t *testing.T) {
	p := New(2, 2)
	img := p.ToNRGBA()
	p.Set(1, 0, Pack(9, 8, 7))
	if img.Pix[4] != 9 || img.Pix[5] != 8 || img.Pix[6] != 7 {
		t.Fatal("ToNRGBA does not share the pixel buffer")
	}
}
