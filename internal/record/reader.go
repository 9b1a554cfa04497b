package record

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Size is the width of one record in bytes.
const Size = 4

// Reader yields records from a byte source, in order, exactly once.
type Reader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	off   int64
	err   error // sticky terminal state: io.EOF or a failure
	buf   [Size]byte
}

// NewReader returns a Reader decoding records from r with the given byte
// order. A nil order means Native.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	if order == nil {
		order = Native()
	}
	return &Reader{
		r:     bufio.NewReader(r),
		order: order,
	}
}

// Next returns the bit pattern of the next record.
//
// At a clean end of input it returns io.EOF. When 1 to 3 bytes remain it
// returns a *PartialRecordError matching ErrPartialRecord. Once Next has
// returned an error, every later call returns the same error.
func (r *Reader) Next() (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}

	start := r.off
	n, err := io.ReadFull(r.r, r.buf[:])
	r.off += int64(n)
	switch {
	case err == nil:
		return r.order.Uint32(r.buf[:]), nil
	case errors.Is(err, io.EOF):
		r.err = io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.err = &PartialRecordError{Offset: start, Got: n}
	default:
		r.err = fmt.Errorf("failed to read record at offset %d: %w", start, err)
	}
	return 0, r.err
}

// NextFloat32 is Next reinterpreted as a float32.
func (r *Reader) NextFloat32() (float32, error) {
	bits, err := r.Next()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// ByteOrder returns the order used to decode records.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// File is a Reader over an opened file. Close releases the file.
type File struct {
	*Reader
	file   *os.File
	closed bool
}

// Open opens the file at path for reading records. Failures wrap ErrOpen.
func Open(path string, order binary.ByteOrder) (*File, error) {
	//nolint:gosec // G304: the input path is user supplied.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close() // Best effort close on error
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrOpen, path)
	}

	return &File{
		Reader: NewReader(file, order),
		file:   file,
	}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.file.Name()
}

// Close closes the underlying file. It is safe to call more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}
