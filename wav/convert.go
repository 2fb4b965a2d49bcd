package wav

import (
	"fmt"

	"github.com/cwbudde/rawmedia"
	"github.com/go-audio/audio"
)

const (
	pcm8Center  = 128
	maxPCMInt16 = 32767
	minPCMInt16 = -32768
)

// IntBuffer converts the samples to signed values: 8-bit samples are
// shifted from the unsigned 0..255 range to -128..127, 16-bit samples are
// read as int16. The raw Sample/SetSample values are not affected.
func (b *Buffer) IntBuffer() *audio.IntBuffer {
	if !b.Configured() {
		return nil
	}

	cfg := b.config
	out := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(cfg.Channels),
			SampleRate:  int(cfg.SampleHz),
		},
		Data:           make([]int, int(cfg.Channels)*int(cfg.FrameCount)),
		SourceBitDepth: int(cfg.BitsPerSample),
	}

	bps := cfg.BytesPerSample()
	for i := range out.Data {
		if bps == 1 {
			out.Data[i] = int(b.data[i]) - pcm8Center
			continue
		}

		out.Data[i] = int(int16(uint16(b.data[2*i]) | uint16(b.data[2*i+1])<<8))
	}

	return out
}

// FromIntBuffer creates a buffer of the given bit depth holding the signed
// samples of in. Values outside the target range are clamped.
func FromIntBuffer(in *audio.IntBuffer, bitDepth int) (*Buffer, error) {
	if in == nil || in.Format == nil {
		return nil, fmt.Errorf("%w: nil buffer or format", rawmedia.ErrInvalidArgument)
	}

	channels := in.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be positive", rawmedia.ErrInvalidArgument)
	}

	if in.Format.SampleRate < 0 {
		return nil, fmt.Errorf("%w: negative sample rate %d", rawmedia.ErrInvalidArgument, in.Format.SampleRate)
	}

	buf := New()

	err := buf.Configure(Config{
		Channels:      uint32(channels),
		SampleHz:      uint32(in.Format.SampleRate),
		BitsPerSample: uint32(bitDepth),
		FrameCount:    uint32(len(in.Data) / channels),
	})
	if err != nil {
		return nil, err
	}

	n := int(buf.config.Channels) * int(buf.config.FrameCount)
	for i, v := range in.Data[:n] {
		if bitDepth == 8 {
			buf.data[i] = uint8(clampInt(v+pcm8Center, 0, 255))
			continue
		}

		s := uint16(int16(clampInt(v, minPCMInt16, maxPCMInt16)))
		buf.data[2*i] = byte(s)
		buf.data[2*i+1] = byte(s >> 8)
	}

	return buf, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
