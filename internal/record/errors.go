package record

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrPartialRecord    = errors.New("partial record at end of input")
	ErrOpen             = errors.New("cannot open input")
	ErrUnknownByteOrder = errors.New("unknown byte order")
)

// PartialRecordError reports a trailing record shorter than Size bytes.
type PartialRecordError struct {
	Offset int64 // Offset of the first byte of the partial record
	Got    int   // Bytes available, between 1 and Size-1
}

// Error implements the error interface.
func (e *PartialRecordError) Error() string {
	return fmt.Sprintf("%s: %d of %d bytes at offset %d", ErrPartialRecord, e.Got, Size, e.Offset)
}

// Is reports whether target is ErrPartialRecord.
func (e *PartialRecordError) Is(target error) bool {
	return target == ErrPartialRecord
}
