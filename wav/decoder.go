package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/rawmedia"
	"github.com/go-audio/riff"
)

// Decoder reads a PCM wav container laid out as RIFF header, fmt chunk, then
// data chunk, with no other chunks in between.
type Decoder struct {
	r io.Reader

	// Strict makes a data chunk size that disagrees with the size computed
	// from the fmt chunk a fatal error.
	Strict bool

	// FmtChunk is the parsed fmt chunk, set once Decode got past it.
	FmtChunk *FmtChunk
	// DataSize is the size declared by the data chunk header.
	DataSize uint32
}

// NewDecoder creates a decoder for the passed wav reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads a whole wav container into a new buffer. It fails with
// rawmedia.ErrInvalidArgument if r is nil.
//
// When the data chunk declares a size other than the one computed from the
// fmt chunk, the computed size governs. Decode then returns the populated
// buffer together with a *rawmedia.SizeMismatchError.
func Decode(r io.Reader) (*Buffer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", rawmedia.ErrInvalidArgument)
	}

	return NewDecoder(r).Decode()
}

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (d *Decoder) FormatChunk() *FmtChunk {
	if d == nil || d.FmtChunk == nil {
		return nil
	}

	return d.FmtChunk.Clone()
}

// Decode walks the container and returns the decoded buffer. Unless Strict
// is set, a data size mismatch is reported alongside a valid buffer; check
// it with rawmedia.IsWarning.
func (d *Decoder) Decode() (*Buffer, error) {
	if d == nil || d.r == nil {
		return nil, fmt.Errorf("%w: nil reader", rawmedia.ErrInvalidArgument)
	}

	err := d.readRIFFHeader()
	if err != nil {
		return nil, err
	}

	err = d.readFmtChunk()
	if err != nil {
		return nil, err
	}

	id, size, err := readChunkHeader(d.r)
	if err != nil {
		return nil, headerError("data chunk header", err)
	}

	if id != riff.DataFormatID {
		return nil, fmt.Errorf("%w: can't find \"data\", got %q", rawmedia.ErrUnsupportedFormat, id[:])
	}

	d.DataSize = size

	cfg := d.FmtChunk.Config()

	err = cfg.validateFormat()
	if err != nil {
		return nil, err
	}

	cfg.FrameCount = size / uint32(cfg.BlockAlign())

	var warning error
	if computed := cfg.dataSize(); uint64(size) != computed {
		mismatch := &rawmedia.SizeMismatchError{Declared: size, Computed: uint32(computed), Fatal: d.Strict}
		if d.Strict {
			return nil, fmt.Errorf("data chunk: %w", mismatch)
		}

		warning = mismatch
	}

	buf := New()

	err = buf.Configure(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure buffer: %w", err)
	}

	n, err := io.ReadFull(d.r, buf.data)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d PCM bytes: %w", rawmedia.ErrIO, n, len(buf.data), err)
	}

	if warning != nil {
		return buf, fmt.Errorf("data chunk: %w", warning)
	}

	return buf, nil
}

func (d *Decoder) readRIFFHeader() error {
	// the overall size isn't checked against the input length
	id, _, err := readChunkHeader(d.r)
	if err != nil {
		return headerError("RIFF header", err)
	}

	if id != riff.RiffID {
		return fmt.Errorf("%w: can't find \"RIFF\", got %q", rawmedia.ErrUnsupportedFormat, id[:])
	}

	var format [4]byte

	err = binary.Read(d.r, binary.BigEndian, &format)
	if err != nil {
		return headerError("RIFF format", err)
	}

	if format != riff.WavFormatID {
		return fmt.Errorf("%w: can't find \"WAVE\", got %q", rawmedia.ErrUnsupportedFormat, format[:])
	}

	return nil
}

func (d *Decoder) readFmtChunk() error {
	id, size, err := readChunkHeader(d.r)
	if err != nil {
		return headerError("fmt chunk header", err)
	}

	if id != riff.FmtID {
		return fmt.Errorf("%w: can't find \"fmt \", got %q", rawmedia.ErrUnsupportedFormat, id[:])
	}

	if size < pcmFormatSize {
		return fmt.Errorf("%w: fmt chunk holds %d bytes, want at least %d", rawmedia.ErrTruncatedInput, size, pcmFormatSize)
	}

	chunk := &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(d.r, int64(size)),
	}

	fmtChunk, err := decodeFmtChunk(chunk)
	if err != nil {
		return headerError("fmt chunk", err)
	}

	if fmtChunk.FormatTag != FormatPCM {
		return fmt.Errorf("%w: format tag %d, want %d (PCM)", rawmedia.ErrUnsupportedFormat, fmtChunk.FormatTag, FormatPCM)
	}

	d.FmtChunk = fmtChunk

	// skip the extension bytes
	chunk.Drain()

	return nil
}

// readChunkHeader reads a chunk id followed by its little endian size.
func readChunkHeader(r io.Reader) (id [4]byte, size uint32, err error) {
	err = binary.Read(r, binary.BigEndian, &id)
	if err != nil {
		return id, 0, err
	}

	err = binary.Read(r, binary.LittleEndian, &size)
	if err != nil {
		return id, 0, err
	}

	return id, size, nil
}

func headerError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: %w", rawmedia.ErrTruncatedInput, what, err)
	}

	return fmt.Errorf("%w: failed to read %s: %w", rawmedia.ErrIO, what, err)
}
