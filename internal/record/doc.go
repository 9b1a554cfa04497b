// Package record reads and writes raw binary32 record streams.
//
// A record stream is a concatenation of 4-byte IEEE-754 single-precision
// values with no header, framing or padding:
//
//	[4 bytes: value 0][4 bytes: value 1] ... [4 bytes: value n-1]
//
// The byte order is not stored in the stream. Producers usually dump memory
// as-is (numpy's tofile, C fwrite), so Native is the default everywhere;
// LittleEndian or BigEndian can be chosen explicitly for foreign files.
//
// A Reader distinguishes a clean end of input (io.EOF at a record boundary)
// from a truncated final record (ErrPartialRecord). It never pads a short
// tail and never reads past the end of the source.
package record
