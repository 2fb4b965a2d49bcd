package wav

import (
	"fmt"
	"os"

	"github.com/cwbudde/rawmedia"
)

// Open creates a buffer and loads the wav file stored at path. Like Load,
// it may return a usable buffer together with a warning.
func Open(path string) (*Buffer, error) {
	buf := New()

	err := buf.Load(path)
	if err != nil && !rawmedia.IsWarning(err) {
		return nil, err
	}

	return buf, err
}

// Load replaces the buffer with the wav file stored at path.
//
// On a fatal error the buffer keeps its previous samples and config. A data
// size mismatch is not fatal: the buffer is replaced and the mismatch is
// returned, see rawmedia.IsWarning.
func (b *Buffer) Load(path string) error {
	return b.load(path, false)
}

// LoadStrict is like Load but treats a data size mismatch as fatal.
func (b *Buffer) LoadStrict(path string) error {
	return b.load(path, true)
}

func (b *Buffer) load(path string, strict bool) error {
	if b == nil {
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

	dec := NewDecoder(file)
	dec.Strict = strict

	decoded, err := dec.Decode()
	if decoded == nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	*b = *decoded

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Save writes the buffer to path as a wav file, truncating any existing
// file.
func (b *Buffer) Save(path string) (err error) {
	if !b.Configured() {
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

	err = Encode(file, b)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
