package rawmedia

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned by operations on an unconfigured or
	// closed buffer.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrInvalidArgument is returned when a required parameter is nil,
	// empty, or zero.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedFormat is returned for wrong bit depths, wrong
	// compression or format tags, and missing chunk signatures.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrOutOfRange is returned when an element index falls outside the
	// current config bounds.
	ErrOutOfRange = errors.New("index out of range")
	// ErrAllocationFailure is returned when buffer storage can't be
	// obtained for the requested config.
	ErrAllocationFailure = errors.New("can't allocate buffer")
	// ErrIO wraps file open/seek/read/write failures.
	ErrIO = errors.New("i/o error")
	// ErrTruncatedInput is returned when fewer bytes are available than
	// the format declares.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrSizeMismatch reports a declared data size that disagrees with the
	// size computed from the config.
	ErrSizeMismatch = errors.New("size mismatch")
)

// RangeError describes an element access outside the buffer bounds.
type RangeError struct {
	Axis  string
	Index int
	Limit uint32
}

func (e *RangeError) Error() string {
	if e.Limit == 0 {
		return fmt.Sprintf("%s=%d is out of range: buffer has no %s", e.Axis, e.Index, e.Axis)
	}

	return fmt.Sprintf("%s=%d is out of range: must be within [0, %d]", e.Axis, e.Index, e.Limit-1)
}

// Is reports ErrOutOfRange as the matching sentinel.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex returns a *RangeError unless 0 <= index < limit.
func CheckIndex(axis string, index int, limit uint32) error {
	if index < 0 || uint64(index) >= uint64(limit) {
		return &RangeError{Axis: axis, Index: index, Limit: limit}
	}

	return nil
}

// SizeMismatchError reports a declared payload size that differs from the
// size the decoded config computes.
type SizeMismatchError struct {
	Declared uint32
	Computed uint32
	// Fatal is set when the mismatch aborted the decode.
	Fatal bool
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("declared size (%d) != computed size (%d)", e.Declared, e.Computed)
}

// Is reports ErrSizeMismatch as the matching sentinel.
func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// IsWarning reports whether err only carries non-fatal conditions. A decode
// that returns a warning also returns a fully populated result.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}

	var mismatch *SizeMismatchError

	return errors.As(err, &mismatch) && !mismatch.Fatal
}
