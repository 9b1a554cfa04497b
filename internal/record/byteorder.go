package record

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// Native returns the byte order of the host.
func Native() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseByteOrder resolves "native", "little" or "big" (case-insensitive,
// empty means native).
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native", "host":
		return Native(), nil
	case "little", "le", "littleendian":
		return binary.LittleEndian, nil
	case "big", "be", "bigendian":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownByteOrder, s)
	}
}
