package bmp

import "fmt"

const (
	// BitsPerPixel is the only supported pixel depth.
	BitsPerPixel = 24
	// bytesPerPixel is the storage size of one B,G,R triplet.
	bytesPerPixel = BitsPerPixel / 8
	// MaxImageSize caps the raster storage a Config may request.
	MaxImageSize = 1 << 30
)

// Config describes the shape of an image.
type Config struct {
	Width        uint32
	Height       uint32
	BitsPerPixel uint32
}

// String implements the Stringer interface.
func (c Config) String() string {
	return fmt.Sprintf("width = %d, height = %d, bit_count = %d", c.Width, c.Height, c.BitsPerPixel)
}

// RowStride returns the number of bytes one stored row occupies, including
// the padding up to the next 4-byte boundary.
func RowStride(width uint32) int {
	return int(rowStride(width))
}

func rowStride(width uint32) uint64 {
	return (uint64(width)*bytesPerPixel + 3) &^ 3
}

// ImageSize returns the raster size in bytes for c.
func (c Config) ImageSize() int {
	return int(c.imageSize())
}

func (c Config) imageSize() uint64 {
	return rowStride(c.Width) * uint64(c.Height)
}

// offset returns the position of the B byte of pixel (x, y). Row 0 is the
// last stored row.
func (c Config) offset(x, y int) int {
	return RowStride(c.Width)*(int(c.Height)-1-y) + bytesPerPixel*x
}

// RGB packs the three color levels into a 0xRRGGBB value.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Red returns the red level of a packed color.
func Red(rgb uint32) uint8 { return uint8(rgb >> 16) }

// Green returns the green level of a packed color.
func Green(rgb uint32) uint8 { return uint8(rgb >> 8) }

// Blue returns the blue level of a packed color.
func Blue(rgb uint32) uint8 { return uint8(rgb) }
