package cubemap

import (
	"testing"

	"spheremap-tool/internal/pixmap"
)

// gradientFace builds a w×h face whose texel (x, y) encodes its own
// coordinates in the red and green channels.
func gradientFace(w, h int) *pixmap.Pixmap {
	p := pixmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(x, y, pixmap.Pack(uint8(x), uint8(y), 0))
		}
	}
	return p
}

func uniformFace(w, h int, r, g, b uint8) *pixmap.Pixmap {
	p := pixmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(x, y, pixmap.Pack(r, g, b))
		}
	}
	return p
}

func TestSampleFaceNearestNeighbor(t *testing.T) {
	face := gradientFace(4, 4)
	cm := New(face, face, face, face, face, face)

	tests := []struct {
		name   string
		s, t   float64
		tx, ty uint8
	}{
		{"origin", 0, 0, 0, 0},
		{"first texel interior", 0.2, 0.1, 0, 0},
		{"second texel", 0.25, 0, 1, 0},
		{"center", 0.5, 0.5, 2, 2},
		{"just below one", 0.999, 0.999, 3, 3},
		{"exactly one clamps", 1.0, 1.0, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, _ := cm.SampleFace(FacePosX, tt.s, tt.t).RGB()
			if r != tt.tx || g != tt.ty {
				t.Fatalf("texel = (%d, %d), want (%d, %d)", r, g, tt.tx, tt.ty)
			}
		})
	}
}

func TestSampleFaceHeterogeneousDims(t *testing.T) {
	// Faces with independent dimensions resolve texels against their own
	// width and height.
	cm := New(
		gradientFace(8, 2),
		gradientFace(2, 8),
		uniformFace(1, 1, 9, 9, 9),
		uniformFace(1, 1, 9, 9, 9),
		uniformFace(1, 1, 9, 9, 9),
		uniformFace(1, 1, 9, 9, 9),
	)

	r, g, _ := cm.SampleFace(FacePosX, 0.5, 0.5).RGB()
	if r != 4 || g != 1 {
		t.Fatalf("8x2 face center = (%d, %d), want (4, 1)", r, g)
	}
	r, g, _ = cm.SampleFace(FaceNegX, 0.5, 0.5).RGB()
	if r != 1 || g != 4 {
		t.Fatalf("2x8 face center = (%d, %d), want (1, 4)", r, g)
	}
}

func TestFaceString(t *testing.T) {
	if got := FacePosX.String(); got != "right (+X)" {
		t.Fatalf("FacePosX = %q", got)
	}
	if got := FaceNegZ.String(); got != "back (-Z)" {
		t.Fatalf("FaceNegZ = %q", got)
	}
	if got := Face(99).String(); got != "invalid face" {
		t.Fatalf("Face(99) = %q", got)
	}
}
