package projection

import (
	"spheremap-tool/internal/cubemap"
	"spheremap-tool/internal/pixmap"
)

// Sampler evaluates output pixels against an immutable cubemap using a
// fixed jitter pattern. It holds no mutable state, so one Sampler may be
// shared across goroutines.
type Sampler struct {
	cm      *cubemap.Cubemap
	pattern Pattern
}

// NewSampler builds a Sampler over the given cubemap and jitter pattern.
func NewSampler(cm *cubemap.Cubemap, pattern Pattern) *Sampler {
	return &Sampler{cm: cm, pattern: pattern}
}

// SamplePixel computes the color of output pixel (x, y) in a size×size
// image. Each jitter offset is projected to a view direction, resolved to a
// cube face and sampled nearest-neighbor; the channel sums are averaged
// with truncating integer division, as many samples as the pattern holds.
func (sp *Sampler) SamplePixel(x, y, size int) pixmap.Color {
	centerS := (float64(x) + 0.5) / float64(size)
	centerT := (float64(y) + 0.5) / float64(size)
	pixelSize := 1 / float64(size)

	var sumR, sumG, sumB uint32
	for _, off := range sp.pattern {
		s := centerS + off[0]*pixelSize
		t := centerT + off[1]*pixelSize

		dir := Project(s, t)
		face, texS, texT := cubemap.ResolveFace(dir)
		r, g, b := sp.cm.SampleFace(face, texS, texT).RGB()

		sumR += uint32(r)
		sumG += uint32(g)
		sumB += uint32(b)
	}

	n := uint32(len(sp.pattern))
	return pixmap.Pack(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n))
}
