package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cwbudde/rawmedia/bmp"
)

func TestRunDrawsFramedCross(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "draw.bmp")

	var out bytes.Buffer
	if err := run([]string{"-output", outPath, "-size", "9"}, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if out.String() != "width = 9, height = 9, bit_count = 24\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	img, err := bmp.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}

	red := bmp.RGB(255, 0, 0)

	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, red},
		{8, 4, red},
		{4, 8, red},
		{4, 4, red},
		{2, 6, red},
		{1, 2, bmp.White},
		{5, 2, bmp.White},
	}

	for _, tt := range tests {
		got, err := img.Color(tt.x, tt.y)
		if err != nil {
			t.Fatal(err)
		}

		if got != tt.want {
			t.Fatalf("Color(%d,%d)=%#06x, want %#06x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-size", "big"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected failure for invalid flag value")
	}
}

func TestRunZeroSize(t *testing.T) {
	err := run([]string{"-output", filepath.Join(t.TempDir(), "x.bmp"), "-size", "0"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.bmp", "-size", "2"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}
