// Package bmpio reads a whole bitmap file into memory and writes it back.
package bmpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"syscall"
)

// MaxBufferSize is the largest input ReadAll will hold: the largest file
// size a bitmap file header can declare.
const MaxBufferSize = math.MaxUint32

var (
	ErrSeek  = errors.New("cannot determine input size")
	ErrRead  = errors.New("cannot read input")
	ErrAlloc = errors.New("cannot allocate input buffer")
	ErrWrite = errors.New("cannot write output")
)

// ReadAll reads all of r into a buffer of exactly the input's size.
//
// When r can seek, the size is taken from the end offset before reading.
// A reader that reports an illegal seek (a pipe) is read until EOF instead.
// Inputs larger than limit fail with ErrAlloc; a limit that is not positive
// or above MaxBufferSize means MaxBufferSize.
func ReadAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 || limit > MaxBufferSize {
		limit = MaxBufferSize
	}

	if s, ok := r.(io.Seeker); ok {
		size, err := Size(s)
		if err == nil {
			return readSized(r, size, limit)
		}
		if !errors.Is(err, syscall.ESPIPE) {
			return nil, err
		}
	}

	return readStream(r, limit)
}

// Size returns the number of bytes in s and leaves it positioned at the start.
func Size(s io.Seeker) (int64, error) {
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	size, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeek, err)
	}

	return size, nil
}

func readSized(r io.Reader, size, limit int64) ([]byte, error) {
	if size < 0 || size > limit {
		return nil, fmt.Errorf("%w: %d bytes requested, limit is %d", ErrAlloc, size, limit)
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrRead)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return buf, nil
}

func readStream(r io.Reader, limit int64) ([]byte, error) {
	// One byte over the limit tells a too-large input from one that fits.
	buf, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if int64(len(buf)) > limit {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrAlloc, limit)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrRead)
	}

	return buf, nil
}

// WriteAll writes buf to w. A failed or short write is reported as ErrWrite.
func WriteAll(w io.Writer, buf []byte) error {
	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
