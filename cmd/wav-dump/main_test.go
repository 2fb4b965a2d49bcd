package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbudde/rawmedia"
	"github.com/cwbudde/rawmedia/wav"
)

func TestRunDumpsSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.wav")

	buf := wav.New()
	if err := buf.Configure(wav.Config{Channels: 2, SampleHz: 8000, BitsPerSample: 16, FrameCount: 2}); err != nil {
		t.Fatal(err)
	}

	for i, v := range []uint16{1, 2, 3, 65535} {
		if err := buf.SetSample(i%2, i/2, v); err != nil {
			t.Fatal(err)
		}
	}

	if err := buf.Save(path); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{path}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "channels        = 2\n" +
		"samplehz        = 8000\n" +
		"bits_per_sample = 16\n" +
		"size            = 2\n" +
		"1  2  \n" +
		"3  65535  \n"
	if out.String() != want {
		t.Fatalf("output=%q, want %q", out.String(), want)
	}
}

func TestRunMissingPath(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("run()=%v, want errMissingPath", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "none.wav")}, &bytes.Buffer{})
	if !errors.Is(err, rawmedia.ErrIO) {
		t.Fatalf("run()=%v, want ErrIO", err)
	}
}
