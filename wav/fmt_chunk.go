package wav

import (
	"fmt"

	"github.com/go-audio/riff"
)

const (
	// FormatPCM is the fmt chunk format tag of linear PCM.
	FormatPCM = 1

	// pcmFormatSize is the encoded size of the PCM format record.
	pcmFormatSize = 16
	// fmtChunkSize is the fmt chunk size written by the encoder: the PCM
	// record plus a zero extension size.
	fmtChunkSize = pcmFormatSize + 2
	// headerSize is the number of bytes the encoder writes before samples.
	headerSize = 12 + 8 + fmtChunkSize + 8
)

// FmtChunk stores the PCM format record of a fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// Clone returns a copy of f.
func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// Config returns the buffer shape described by f with no frames.
func (f *FmtChunk) Config() Config {
	return Config{
		Channels:      uint32(f.NumChannels),
		SampleHz:      f.SampleRate,
		BitsPerSample: uint32(f.BitsPerSample),
	}
}

func newFmtChunk(cfg Config) *FmtChunk {
	blockAlign := cfg.BlockAlign()

	return &FmtChunk{
		FormatTag:      FormatPCM,
		NumChannels:    uint16(cfg.Channels),
		SampleRate:     cfg.SampleHz,
		AvgBytesPerSec: cfg.SampleHz * uint32(blockAlign),
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(cfg.BitsPerSample),
	}
}

// decodeFmtChunk reads the PCM record field by field. Bytes past the record
// are left in the chunk.
func decodeFmtChunk(chunk *riff.Chunk) (*FmtChunk, error) {
	fmtChunk := &FmtChunk{}

	err := chunk.ReadLE(&fmtChunk.FormatTag)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav format: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample rate: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.AvgBytesPerSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BlockAlign)
	if err != nil {
		return nil, fmt.Errorf("failed to read block align: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("failed to read bit depth: %w", err)
	}

	return fmtChunk, nil
}
