package record

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"io"
	"math"
)

// Writer encodes records to a byte sink. Call Flush when done.
type Writer struct {
	w     *bufio.Writer
	sum   hash.Hash
	order binary.ByteOrder
	n     int64
	buf   [Size]byte
}

// NewWriter returns a Writer encoding records with the given byte order.
// A nil order means Native.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	if order == nil {
		order = Native()
	}
	sum := sha256.New()
	return &Writer{
		w:     bufio.NewWriter(io.MultiWriter(w, sum)),
		sum:   sum,
		order: order,
	}
}

// WriteBits writes one record holding the given bit pattern.
func (w *Writer) WriteBits(bits uint32) error {
	w.order.PutUint32(w.buf[:], bits)
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return err
	}
	w.n++
	return nil
}

// WriteFloat32 writes one record holding f.
func (w *Writer) WriteFloat32(f float32) error {
	return w.WriteBits(math.Float32bits(f))
}

// WriteRaw writes p as-is. It is used to produce malformed streams whose
// length is not a multiple of Size.
func (w *Writer) WriteRaw(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

// Count returns the number of whole records written.
func (w *Writer) Count() int64 {
	return w.n
}

// Flush writes buffered data to the underlying sink.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Checksum returns the SHA-256 of every byte flushed so far.
func (w *Writer) Checksum() [sha256.Size]byte {
	var out [sha256.Size]byte
	copy(out[:], w.sum.Sum(nil))
	return out
}
