package bmp

import (
	"fmt"
	"os"

	"github.com/cwbudde/rawmedia"
)

// Open creates an image and loads the bitmap stored at path.
func Open(path string) (*Image, error) {
	img := New()

	err := img.Load(path)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// Load replaces the image with the bitmap stored at path. On failure the
// image keeps its previous raster and config.
func (img *Image) Load(path string) error {
	if img == nil {
		return rawmedia.ErrInvalidHandle
	}

	if path == "" {
		return fmt.Errorf("%w: empty path", rawmedia.ErrInvalidArgument)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", rawmedia.ErrIO, err)
	}
	defer file.Close()

	decoded, err := Decode(file)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	*img = *decoded

	return nil
}

// Save writes the image to path as a bitmap file, truncating any existing
// file.
func (img *Image) Save(path string) (err error) {
	if !img.Configured() {
		return rawmedia.ErrInvalidHandle
	}

	if path == "" {
		return fmt.Errorf("%w: empty path", rawmedia.ErrInvalidArgument)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", rawmedia.ErrIO, err)
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %s: %w", rawmedia.ErrIO, path, closeErr)
		}
	}()

	err = Encode(file, img)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
