package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Signature is "BM" read as a little endian uint16.
	Signature = 0x4D42
	// FileHeaderSize is the encoded size of FileHeader.
	FileHeaderSize = 14
	// InfoHeaderSize is the encoded size of InfoHeader.
	InfoHeaderSize = 40
	// HeaderSize is the pixel data offset of encoded files.
	HeaderSize = FileHeaderSize + InfoHeaderSize

	// CompressionRGB marks an uncompressed raster.
	CompressionRGB = 0
)

// FileHeader is the BITMAPFILEHEADER that starts every bitmap file.
type FileHeader struct {
	// Type must be Signature.
	Type uint16
	// Size is the size, in bytes, of the whole file.
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	// OffBits is the offset from the start of the file to the pixel array.
	OffBits uint32
}

// InfoHeader is the BITMAPINFOHEADER following the file header.
type InfoHeader struct {
	Size            uint32
	Width           uint32
	Height          uint32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPelsPerMeter   uint32
	YPelsPerMeter   uint32
	ColorsUsed      uint32
	ColorsImportant uint32
}

func (h *FileHeader) unmarshal(b []byte) {
	h.Type = binary.LittleEndian.Uint16(b[0:2])
	h.Size = binary.LittleEndian.Uint32(b[2:6])
	h.Reserved1 = binary.LittleEndian.Uint16(b[6:8])
	h.Reserved2 = binary.LittleEndian.Uint16(b[8:10])
	h.OffBits = binary.LittleEndian.Uint32(b[10:14])
}

func (h *InfoHeader) unmarshal(b []byte) {
	h.Size = binary.LittleEndian.Uint32(b[0:4])
	h.Width = binary.LittleEndian.Uint32(b[4:8])
	h.Height = binary.LittleEndian.Uint32(b[8:12])
	h.Planes = binary.LittleEndian.Uint16(b[12:14])
	h.BitCount = binary.LittleEndian.Uint16(b[14:16])
	h.Compression = binary.LittleEndian.Uint32(b[16:20])
	h.SizeImage = binary.LittleEndian.Uint32(b[20:24])
	h.XPelsPerMeter = binary.LittleEndian.Uint32(b[24:28])
	h.YPelsPerMeter = binary.LittleEndian.Uint32(b[28:32])
	h.ColorsUsed = binary.LittleEndian.Uint32(b[32:36])
	h.ColorsImportant = binary.LittleEndian.Uint32(b[36:40])
}

// headerWriter serializes little endian fields and keeps the first error.
type headerWriter struct {
	w   io.Writer
	err error
}

func (hw *headerWriter) addLE(src any) {
	if hw.err != nil {
		return
	}

	err := binary.Write(hw.w, binary.LittleEndian, src)
	if err != nil {
		hw.err = fmt.Errorf("failed to write little endian: %w", err)
	}
}

func (h *FileHeader) writeTo(hw *headerWriter) {
	hw.addLE(h.Type)
	hw.addLE(h.Size)
	hw.addLE(h.Reserved1)
	hw.addLE(h.Reserved2)
	hw.addLE(h.OffBits)
}

func (h *InfoHeader) writeTo(hw *headerWriter) {
	hw.addLE(h.Size)
	hw.addLE(h.Width)
	hw.addLE(h.Height)
	hw.addLE(h.Planes)
	hw.addLE(h.BitCount)
	hw.addLE(h.Compression)
	hw.addLE(h.SizeImage)
	hw.addLE(h.XPelsPerMeter)
	hw.addLE(h.YPelsPerMeter)
	hw.addLE(h.ColorsUsed)
	hw.addLE(h.ColorsImportant)
}
