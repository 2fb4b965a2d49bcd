package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cwbudde/rawmedia"
	"github.com/go-audio/riff"
)

// Encoder writes a Buffer as a PCM wav container.
type Encoder struct {
	w io.Writer

	// WrittenBytes counts the bytes written so far.
	WrittenBytes int
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes buf to w: RIFF header, an 18-byte fmt chunk, then the data
// chunk holding the raw samples.
func Encode(w io.Writer, buf *Buffer) error {
	return NewEncoder(w).Encode(buf)
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("%w: failed to write little endian: %w", rawmedia.ErrIO, err)
	}

	e.WrittenBytes += binary.Size(src)

	return nil
}

// Encode writes the whole container for buf.
func (e *Encoder) Encode(buf *Buffer) error {
	if e == nil || e.w == nil {
		return fmt.Errorf("%w: nil writer", rawmedia.ErrInvalidArgument)
	}

	if !buf.Configured() {
		return rawmedia.ErrInvalidHandle
	}

	dataSize := uint32(len(buf.data))

	err := e.AddLE(riff.RiffID)
	if err != nil {
		return err
	}

	err = e.AddLE(dataSize + headerSize - 8)
	if err != nil {
		return fmt.Errorf("error encoding the file size - %w", err)
	}

	err = e.AddLE(riff.WavFormatID)
	if err != nil {
		return err
	}

	err = e.writeFmtChunk(newFmtChunk(buf.config))
	if err != nil {
		return err
	}

	err = e.AddLE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	err = e.AddLE(dataSize)
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	n, err := e.w.Write(buf.data)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("%w: wrote %d of %d PCM bytes: %w", rawmedia.ErrIO, n, dataSize, err)
	}

	return nil
}

func (e *Encoder) writeFmtChunk(chunk *FmtChunk) error {
	err := e.AddLE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(uint32(fmtChunkSize))
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.FormatTag)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(chunk.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(chunk.AvgBytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = e.AddLE(chunk.BlockAlign)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	// zero extension size
	err = e.AddLE(uint16(0))
	if err != nil {
		return fmt.Errorf("error encoding fmt extension length - %w", err)
	}

	return nil
}
