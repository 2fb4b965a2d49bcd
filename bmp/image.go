package bmp

import (
	"fmt"

	"github.com/cwbudde/rawmedia"
)

// White is the color every pixel holds after Configure.
const White = 0xFFFFFF

// Image owns a bottom-up 24 bits/pixel raster whose rows are padded to a
// 4-byte boundary.
//
// An Image is not safe for concurrent use.
type Image struct {
	pix    []byte
	config Config
}

// New returns an empty image. Configure or Load it before accessing pixels.
func New() *Image {
	return &Image{}
}

// Configure releases the current raster and allocates a white one sized for
// cfg. If the storage can't be obtained the image is left empty with a zero
// config.
func (img *Image) Configure(cfg Config) error {
	if img == nil {
		return rawmedia.ErrInvalidHandle
	}

	if cfg.BitsPerPixel != BitsPerPixel {
		return fmt.Errorf("%w: only %d bits/pixel is supported, got %d", rawmedia.ErrUnsupportedFormat, BitsPerPixel, cfg.BitsPerPixel)
	}

	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", rawmedia.ErrInvalidArgument, cfg.Width, cfg.Height)
	}

	img.release()

	stride := rowStride(cfg.Width)
	if stride > MaxImageSize || stride*uint64(cfg.Height) > MaxImageSize {
		return fmt.Errorf("%w: %s exceeds %d bytes", rawmedia.ErrAllocationFailure, cfg, MaxImageSize)
	}

	size := cfg.imageSize()

	pix := make([]byte, size)
	for i := range pix {
		pix[i] = 0xFF
	}

	img.pix = pix
	img.config = cfg

	return nil
}

// Config returns a copy of the current config.
func (img *Image) Config() Config {
	if img == nil {
		return Config{}
	}

	return img.config
}

// Configured reports whether the image holds a raster.
func (img *Image) Configured() bool {
	return img != nil && img.pix != nil
}

// Color returns the pixel at (x, y) packed as 0xRRGGBB. y=0 is the top row.
func (img *Image) Color(x, y int) (uint32, error) {
	offset, err := img.pixelOffset(x, y)
	if err != nil {
		return 0, err
	}

	return RGB(img.pix[offset+2], img.pix[offset+1], img.pix[offset]), nil
}

// SetColor stores a 0xRRGGBB value at (x, y). Bits above 23 are ignored.
func (img *Image) SetColor(x, y int, rgb uint32) error {
	offset, err := img.pixelOffset(x, y)
	if err != nil {
		return err
	}

	img.pix[offset] = Blue(rgb)
	img.pix[offset+1] = Green(rgb)
	img.pix[offset+2] = Red(rgb)

	return nil
}

// CopyFrom reconfigures img to src's config and copies src's raster. The two
// images never share storage.
func (img *Image) CopyFrom(src *Image) error {
	if img == nil {
		return rawmedia.ErrInvalidHandle
	}

	if !src.Configured() {
		return fmt.Errorf("%w: copy source is not configured", rawmedia.ErrInvalidHandle)
	}

	if img == src {
		return nil
	}

	err := img.Configure(src.config)
	if err != nil {
		return fmt.Errorf("failed to configure copy destination: %w", err)
	}

	copy(img.pix, src.pix)

	return nil
}

// Bytes returns a copy of the stored raster, bottom row first.
func (img *Image) Bytes() []byte {
	if !img.Configured() {
		return nil
	}

	return append([]byte(nil), img.pix...)
}

// Close releases the raster. Accessors fail with rawmedia.ErrInvalidHandle
// until the image is configured again.
func (img *Image) Close() error {
	if img == nil {
		return rawmedia.ErrInvalidHandle
	}

	img.release()

	return nil
}

func (img *Image) release() {
	img.pix = nil
	img.config = Config{}
}

func (img *Image) pixelOffset(x, y int) (int, error) {
	if !img.Configured() {
		return 0, rawmedia.ErrInvalidHandle
	}

	if err := rawmedia.CheckIndex("x", x, img.config.Width); err != nil {
		return 0, err
	}

	if err := rawmedia.CheckIndex("y", y, img.config.Height); err != nil {
		return 0, err
	}

	return img.config.offset(x, y), nil
}
