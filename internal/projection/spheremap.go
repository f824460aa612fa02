package projection

import (
	"math"

	"spheremap-tool/internal/mathutil"
)

// Project maps a normalized output coordinate (s, t) in [0,1)² to the view
// direction that the forward paraboloid environment-map projection would
// send to that coordinate.
//
// With q = s - s² + t - t² (peaking at 0.5 in the image center), the
// discriminant p = 16q - 4 is negative outside the mapped disc; those
// points are pinned to the -Z pole rather than treated as errors, matching
// the forward map's convention for unmapped directions.
func Project(s, t float64) mathutil.Vec3 {
	q := s - s*s + t - t*t
	p := 16*q - 4
	if p < 0 {
		return mathutil.Vec3{0, 0, -1}
	}
	r := math.Sqrt(p)
	return mathutil.Vec3{
		r * (2*s - 1),
		r * -(2*t - 1),
		8*q - 3,
	}
}
