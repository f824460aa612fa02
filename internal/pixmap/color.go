package pixmap

// Color is a packed RGBA8 value, R in the low byte, alpha always opaque.
type Color uint32

// Pack combines three channels into a Color with full alpha.
func Pack(r, g, b uint8) Color {
	return Color(r) | Color(g)<<8 | Color(b)<<16 | 0xFF<<24
}

// RGB splits a packed color back into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}
