package cubemap

// Face identifies one of the six cube faces. The ordinal values are the
// storage order inside Cubemap and must stay stable.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	NumFaces
)

// fileSuffix is the input filename suffix convention, indexed by Face.
var fileSuffix = [NumFaces]string{
	FacePosX: "_right",
	FaceNegX: "_left",
	FacePosY: "_top",
	FaceNegY: "_bottom",
	FacePosZ: "_front",
	FaceNegZ: "_back",
}

var faceName = [NumFaces]string{
	FacePosX: "right (+X)",
	FaceNegX: "left (-X)",
	FacePosY: "top (+Y)",
	FaceNegY: "bottom (-Y)",
	FacePosZ: "front (+Z)",
	FaceNegZ: "back (-Z)",
}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return "invalid face"
	}
	return faceName[f]
}
