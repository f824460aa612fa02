package imgio

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"

	"spheremap-tool/internal/pixmap"
)

// SupportedOutput reports whether Save can encode to the given path.
func SupportedOutput(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp", ".png", ".bmp", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Save encodes a pixmap to the given path; the encoder is chosen by the
// file extension (.webp, .png, .bmp, .jpg/.jpeg).
func Save(path string, p *pixmap.Pixmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	img := p.ToNRGBA()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	default:
		err = fmt.Errorf("unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}
	return nil
}
