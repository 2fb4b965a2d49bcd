package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbudde/rawmedia/bmp"
)

func TestRunDumpsPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bmp")

	img := bmp.New()
	if err := img.Configure(bmp.Config{Width: 2, Height: 1, BitsPerPixel: bmp.BitsPerPixel}); err != nil {
		t.Fatal(err)
	}

	if err := img.SetColor(1, 0, bmp.RGB(0, 0, 255)); err != nil {
		t.Fatal(err)
	}

	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{path}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "width = 2, height = 1, bit_count = 24\n" +
		"(0, 0) = 16777215\n" +
		"(1, 0) = 255\n"
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
