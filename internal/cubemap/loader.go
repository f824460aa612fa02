package cubemap

import (
	"fmt"

	"spheremap-tool/internal/imgio"
)

// LoadCubemap reads the six face files <prefix><suffix>.<ext> where the
// suffixes are _right, _left, _top, _bottom, _front, _back. A missing or
// undecodable face fails immediately, naming the face, before any sampling
// can start.
func LoadCubemap(prefix, ext string) (*Cubemap, error) {
	var cm Cubemap
	for f := FacePosX; f < NumFaces; f++ {
		path := prefix + fileSuffix[f] + "." + ext
		img, err := imgio.Load(path)
		if err != nil {
			return nil, fmt.Errorf("cubemap: load %s face: %w", f, err)
		}
		if img.Width <= 0 || img.Height <= 0 {
			return nil, fmt.Errorf("cubemap: load %s face: %s: empty image", f, path)
		}
		cm.faces[f] = img
	}
	return &cm, nil
}

// FacePath returns the input filename for a face given prefix and extension.
func FacePath(f Face, prefix, ext string) string {
	return prefix + fileSuffix[f] + "." + ext
}
