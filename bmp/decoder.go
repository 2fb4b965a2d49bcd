package bmp

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/rawmedia"
)

// Decode reads a 24 bits/pixel uncompressed bitmap from r. The info header
// is followed by a seek to the stored pixel data offset, so palettes and
// larger info header versions are skipped.
func Decode(r io.ReadSeeker) (*Image, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", rawmedia.ErrInvalidArgument)
	}

	var hdr [HeaderSize]byte

	_, err := io.ReadFull(r, hdr[:2])
	if err != nil {
		return nil, readError("signature", err)
	}

	var fileHdr FileHeader
	if sig := uint16(hdr[0]) | uint16(hdr[1])<<8; sig != Signature {
		return nil, fmt.Errorf("%w: can't find \"BM\", got %#04x", rawmedia.ErrUnsupportedFormat, sig)
	}

	_, err = io.ReadFull(r, hdr[2:])
	if err != nil {
		return nil, readError("bitmap headers", err)
	}

	fileHdr.unmarshal(hdr[:FileHeaderSize])

	var info InfoHeader
	info.unmarshal(hdr[FileHeaderSize:])

	if info.BitCount != BitsPerPixel {
		return nil, fmt.Errorf("%w: only %d bits/pixel is supported, got %d", rawmedia.ErrUnsupportedFormat, BitsPerPixel, info.BitCount)
	}

	if info.Compression != CompressionRGB {
		return nil, fmt.Errorf("%w: compression %d, want uncompressed RGB", rawmedia.ErrUnsupportedFormat, info.Compression)
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to seek to end of input: %w", rawmedia.ErrIO, err)
	}

	if int64(fileHdr.Size) > end {
		return nil, fmt.Errorf("%w: header declares %d bytes, input holds %d", rawmedia.ErrTruncatedInput, fileHdr.Size, end)
	}

	img := New()

	err = img.Configure(Config{
		Width:        info.Width,
		Height:       info.Height,
		BitsPerPixel: uint32(info.BitCount),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure image: %w", err)
	}

	_, err = r.Seek(int64(fileHdr.OffBits), io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to seek to pixel data at %d: %w", rawmedia.ErrIO, fileHdr.OffBits, err)
	}

	n, err := io.ReadFull(r, img.pix)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d pixel bytes: %w", rawmedia.ErrIO, n, len(img.pix), err)
	}

	return img, nil
}

func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", rawmedia.ErrTruncatedInput, what, err)
	}

	return fmt.Errorf("%w: failed to read %s: %w", rawmedia.ErrIO, what, err)
}
