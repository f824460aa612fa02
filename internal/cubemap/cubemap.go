package cubemap

import (
	"spheremap-tool/internal/pixmap"
)

// Cubemap holds the six face images. It is fully populated by LoadCubemap
// before any sampling occurs and read-only afterwards, so concurrent
// sampling needs no locking. Faces may have differing dimensions.
type Cubemap struct {
	faces [NumFaces]*pixmap.Pixmap
}

// New assembles a cubemap from six face images.
func New(posX, negX, posY, negY, posZ, negZ *pixmap.Pixmap) *Cubemap {
	return &Cubemap{faces: [NumFaces]*pixmap.Pixmap{
		FacePosX: posX,
		FaceNegX: negX,
		FacePosY: posY,
		FaceNegY: negY,
		FacePosZ: posZ,
		FaceNegZ: negZ,
	}}
}

// FaceImage returns the pixmap backing a face.
func (c *Cubemap) FaceImage(f Face) *pixmap.Pixmap {
	return c.faces[f]
}

// SampleFace performs a nearest-neighbor lookup on one face.
// s and t are expected in [0, 1); the texel index is clamped so that a
// coordinate landing exactly on 1.0 reads the last texel instead of
// running off the buffer.
func (c *Cubemap) SampleFace(f Face, s, t float64) pixmap.Color {
	img := c.faces[f]

	x := clampTexel(int(s*float64(img.Width)), img.Width)
	y := clampTexel(int(t*float64(img.Height)), img.Height)

	return img.At(x, y)
}

func clampTexel(i, dim int) int {
	if i < 0 {
		return 0
	}
	if i > dim-1 {
		return dim - 1
	}
	return i
}
