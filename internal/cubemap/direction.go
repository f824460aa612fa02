package cubemap

import (
	"math"

	"spheremap-tool/internal/mathutil"
)

// ResolveFace maps a view direction to the cube face it hits and the
// normalized (s, t) coordinate on that face, both in [0, 1].
//
// The dominant axis is chosen with fixed precedence x, y, z: on a tie the
// earlier axis wins. The direction need not be unit length; only component
// signs and relative magnitudes matter. A NaN component or a zero vector is
// a caller precondition violation — NaN falls through every comparison, so
// the selection defaults to the x axis to stay deterministic.
func ResolveFace(v mathutil.Vec3) (Face, float64, float64) {
	x, y, z := v[0], v[1], v[2]
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)

	axis := 0
	switch {
	case ax >= ay && ax >= az:
		axis = 0
	case ay >= ax && ay >= az:
		axis = 1
	case az >= ax && az >= ay:
		axis = 2
	}

	face := Face(axis * 2)
	if v[axis] < 0 {
		face++
	}

	var s, t, m float64
	switch face {
	case FacePosX:
		s, t, m = -z, -y, ax
	case FaceNegX:
		s, t, m = z, -y, ax
	case FacePosY:
		s, t, m = x, z, ay
	case FaceNegY:
		s, t, m = x, -z, ay
	case FacePosZ:
		s, t, m = x, -y, az
	case FaceNegZ:
		s, t, m = -x, -y, az
	}

	return face, 0.5 * (s/m + 1), 0.5 * (t/m + 1)
}
