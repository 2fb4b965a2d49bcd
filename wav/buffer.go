package wav

import (
	"encoding/binary"
	"fmt"

	"github.com/cwbudde/rawmedia"
)

// Buffer owns interleaved little endian PCM samples.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data   []byte
	config Config
}

// New returns an empty buffer. Configure or Load it before accessing samples.
func New() *Buffer {
	return &Buffer{}
}

// Configure releases the current samples and allocates silent storage sized
// for cfg. If the storage can't be obtained the buffer is left empty with a
// zero config.
func (b *Buffer) Configure(cfg Config) error {
	if b == nil {
		return rawmedia.ErrInvalidHandle
	}

	err := cfg.validateFormat()
	if err != nil {
		return err
	}

	b.release()

	blockAlign := uint64(cfg.Channels) * uint64(cfg.BitsPerSample/8)
	if blockAlign > MaxDataSize || uint64(cfg.FrameCount) > MaxDataSize/blockAlign {
		return fmt.Errorf("%w: %s exceeds %d bytes", rawmedia.ErrAllocationFailure, cfg, MaxDataSize)
	}

	b.data = make([]byte, cfg.dataSize())
	b.config = cfg

	return nil
}

// Config returns a copy of the current config.
func (b *Buffer) Config() Config {
	if b == nil {
		return Config{}
	}

	return b.config
}

// Configured reports whether the buffer holds sample storage.
func (b *Buffer) Configured() bool {
	return b != nil && b.data != nil
}

// Sample returns the raw sample for channel at frame. 8-bit samples are
// zero-extended.
func (b *Buffer) Sample(channel, frame int) (uint16, error) {
	offset, err := b.sampleOffset(channel, frame)
	if err != nil {
		return 0, err
	}

	if b.config.BitsPerSample == 8 {
		return uint16(b.data[offset]), nil
	}

	return binary.LittleEndian.Uint16(b.data[offset:]), nil
}

// SetSample stores the raw sample for channel at frame. With 8 bits/sample
// only the low byte of value is kept.
func (b *Buffer) SetSample(channel, frame int, value uint16) error {
	offset, err := b.sampleOffset(channel, frame)
	if err != nil {
		return err
	}

	if b.config.BitsPerSample == 8 {
		b.data[offset] = byte(value)
		return nil
	}

	binary.LittleEndian.PutUint16(b.data[offset:], value)

	return nil
}

// CopyFrom reconfigures b to src's config and copies src's samples. The two
// buffers never share storage.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if b == nil {
		return rawmedia.ErrInvalidHandle
	}

	if !src.Configured() {
		return fmt.Errorf("%w: copy source is not configured", rawmedia.ErrInvalidHandle)
	}

	if b == src {
		return nil
	}

	err := b.Configure(src.config)
	if err != nil {
		return fmt.Errorf("failed to configure copy destination: %w", err)
	}

	copy(b.data, src.data)

	return nil
}

// Bytes returns a copy of the raw interleaved samples.
func (b *Buffer) Bytes() []byte {
	if !b.Configured() {
		return nil
	}

	return append([]byte(nil), b.data...)
}

// Close releases the samples. Accessors fail with rawmedia.ErrInvalidHandle
// until the buffer is configured again.
func (b *Buffer) Close() error {
	if b == nil {
		return rawmedia.ErrInvalidHandle
	}

	b.release()

	return nil
}

func (b *Buffer) release() {
	b.data = nil
	b.config = Config{}
}

func (b *Buffer) sampleOffset(channel, frame int) (int, error) {
	if !b.Configured() {
		return 0, rawmedia.ErrInvalidHandle
	}

	if err := rawmedia.CheckIndex("frame", frame, b.config.FrameCount); err != nil {
		return 0, err
	}

	if err := rawmedia.CheckIndex("channel", channel, b.config.Channels); err != nil {
		return 0, err
	}

	return b.config.offset(channel, frame), nil
}
