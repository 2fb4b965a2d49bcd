package bmp

import (
	"fmt"
	"io"

	"github.com/cwbudde/rawmedia"
)

// Encode writes img to w as an uncompressed bitmap: file header, 40-byte
// info header, then the raster verbatim.
func Encode(w io.Writer, img *Image) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", rawmedia.ErrInvalidArgument)
	}

	if !img.Configured() {
		return rawmedia.ErrInvalidHandle
	}

	imageSize := uint32(len(img.pix))

	fileHdr := FileHeader{
		Type:    Signature,
		Size:    HeaderSize + imageSize,
		OffBits: HeaderSize,
	}
	info := InfoHeader{
		Size:        InfoHeaderSize,
		Width:       img.config.Width,
		Height:      img.config.Height,
		Planes:      1,
		BitCount:    uint16(img.config.BitsPerPixel),
		Compression: CompressionRGB,
		SizeImage:   imageSize,
	}

	hw := &headerWriter{w: w}
	fileHdr.writeTo(hw)
	info.writeTo(hw)

	if hw.err != nil {
		return fmt.Errorf("%w: bitmap headers: %w", rawmedia.ErrIO, hw.err)
	}

	n, err := w.Write(img.pix)
	if err != nil {
		return fmt.Errorf("%w: wrote %d of %d pixel bytes: %w", rawmedia.ErrIO, n, len(img.pix), err)
	}

	return nil
}
