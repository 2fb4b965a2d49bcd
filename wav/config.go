package wav

import (
	"fmt"
	"time"

	"github.com/cwbudde/rawmedia"
)

// MaxDataSize caps the sample storage a Config may request.
const MaxDataSize = 1 << 30

// Config describes the shape of a PCM buffer.
type Config struct {
	Channels      uint32
	SampleHz      uint32
	BitsPerSample uint32
	// FrameCount is the number of frames, each holding one sample per
	// channel.
	FrameCount uint32
}

// String implements the Stringer interface.
func (c Config) String() string {
	return fmt.Sprintf("%d ch, %d Hz, %d bits/sample, %d frames", c.Channels, c.SampleHz, c.BitsPerSample, c.FrameCount)
}

// BytesPerSample returns the storage size of a single sample.
func (c Config) BytesPerSample() int {
	return int(c.BitsPerSample / 8)
}

// BlockAlign returns the storage size of one frame.
func (c Config) BlockAlign() int {
	return int(c.Channels) * c.BytesPerSample()
}

// DataSize returns the sample storage size in bytes.
func (c Config) DataSize() int {
	return int(c.dataSize())
}

func (c Config) dataSize() uint64 {
	return uint64(c.Channels) * uint64(c.BitsPerSample/8) * uint64(c.FrameCount)
}

// Duration returns the playing time of the configured frames.
func (c Config) Duration() time.Duration {
	if c.SampleHz == 0 {
		return 0
	}

	return time.Duration(c.FrameCount) * time.Second / time.Duration(c.SampleHz)
}

// validateFormat checks everything but the frame count.
func (c Config) validateFormat() error {
	if c.BitsPerSample != 8 && c.BitsPerSample != 16 {
		return fmt.Errorf("%w: only 8 or 16 bits/sample is supported, got %d", rawmedia.ErrUnsupportedFormat, c.BitsPerSample)
	}

	if c.Channels == 0 {
		return fmt.Errorf("%w: channel count must be positive", rawmedia.ErrInvalidArgument)
	}

	return nil
}

// offset returns the position of the first byte of a sample. Frames are
// stored one after another, each holding every channel in order.
func (c Config) offset(channel, frame int) int {
	return (int(c.Channels)*frame + channel) * c.BytesPerSample()
}
