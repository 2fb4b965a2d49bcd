package wav

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cwbudde/rawmedia"
	"github.com/go-audio/audio"
)

func TestIntBuffer(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		raw  []uint16
		want []int
	}{
		{"8bit", 8, []uint16{0, 128, 255, 127}, []int{-128, 0, 127, -1}},
		{"16bit", 16, []uint16{0, 1000, 0xFFFF, 0x8000}, []int{0, 1000, -1, -32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := mustConfigure(t, Config{Channels: 2, SampleHz: 22050, BitsPerSample: tt.bits, FrameCount: 2})

			for i, v := range tt.raw {
				if err := buf.SetSample(i%2, i/2, v); err != nil {
					t.Fatal(err)
				}
			}

			got := buf.IntBuffer()
			if !reflect.DeepEqual(got.Data, tt.want) {
				t.Fatalf("Data=%v, want %v", got.Data, tt.want)
			}

			if got.Format.NumChannels != 2 || got.Format.SampleRate != 22050 {
				t.Fatalf("format=%+v", got.Format)
			}

			if got.SourceBitDepth != int(tt.bits) || got.NumFrames() != 2 {
				t.Fatalf("bit depth=%d frames=%d", got.SourceBitDepth, got.NumFrames())
			}

			back, err := FromIntBuffer(got, int(tt.bits))
			if err != nil {
				t.Fatal(err)
			}

			if back.Config() != buf.Config() || !reflect.DeepEqual(back.Bytes(), buf.Bytes()) {
				t.Fatal("FromIntBuffer(IntBuffer()) should restore the raw samples")
			}
		})
	}

	if New().IntBuffer() != nil {
		t.Fatal("empty buffer should convert to nil")
	}
}

func TestFromIntBufferClamps(t *testing.T) {
	in := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{-40000, 40000, 12},
	}

	buf, err := FromIntBuffer(in, 16)
	if err != nil {
		t.Fatal(err)
	}

	for frame, want := range []uint16{0x8000, 0x7FFF, 12} {
		v, _ := buf.Sample(0, frame)
		if v != want {
			t.Fatalf("16bit Sample(0,%d)=%#x, want %#x", frame, v, want)
		}
	}

	buf, err = FromIntBuffer(in, 8)
	if err != nil {
		t.Fatal(err)
	}

	for frame, want := range []uint16{0, 255, 140} {
		v, _ := buf.Sample(0, frame)
		if v != want {
			t.Fatalf("8bit Sample(0,%d)=%d, want %d", frame, v, want)
		}
	}
}

func TestFromIntBufferDropsPartialFrame(t *testing.T) {
	in := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:   []int{1, 2, 3},
	}

	buf, err := FromIntBuffer(in, 16)
	if err != nil {
		t.Fatal(err)
	}

	if buf.Config().FrameCount != 1 {
		t.Fatalf("FrameCount=%d, want 1", buf.Config().FrameCount)
	}
}

func TestFromIntBufferErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       *audio.IntBuffer
		bitDepth int
		want     error
	}{
		{"nil", nil, 16, rawmedia.ErrInvalidArgument},
		{"nil format", &audio.IntBuffer{}, 16, rawmedia.ErrInvalidArgument},
		{"no channels", &audio.IntBuffer{Format: &audio.Format{SampleRate: 8000}}, 16, rawmedia.ErrInvalidArgument},
		{"negative rate", &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: -1}}, 16, rawmedia.ErrInvalidArgument},
		{"24 bits", &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}}, 24, rawmedia.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromIntBuffer(tt.in, tt.bitDepth)
			if !errors.Is(err, tt.want) {
				t.Fatalf("FromIntBuffer=%v, want %v", err, tt.want)
			}
		})
	}
}
