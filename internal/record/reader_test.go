package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(order binary.ByteOrder, values ...float32) []byte {
	buf := make([]byte, len(values)*Size)
	for i, v := range values {
		order.PutUint32(buf[i*Size:], math.Float32bits(v))
	}
	return buf
}

func readAll(t *testing.T, r *Reader) ([]float32, error) {
	t.Helper()
	var out []float32
	for {
		f, err := r.NextFloat32()
		if err != nil {
			return out, err
		}
		out = append(out, f)
	}
}

func TestReader_CleanEOF(t *testing.T) {
	data := encode(binary.LittleEndian, 1, 0.1, -2.5)
	r := NewReader(bytes.NewReader(data), binary.LittleEndian)

	got, err := readAll(t, r)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []float32{1, 0.1, -2.5}, got)
	assert.Equal(t, int64(12), r.Offset())
}

func TestReader_Empty(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), nil)
	_, err := r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(0), r.Offset())
}

func TestReader_PartialRecord(t *testing.T) {
	for got := 1; got < Size; got++ {
		data := append(encode(binary.LittleEndian, 7), make([]byte, got)...)
		r := NewReader(bytes.NewReader(data), binary.LittleEndian)

		values, err := readAll(t, r)
		assert.Equal(t, []float32{7}, values)
		require.ErrorIs(t, err, ErrPartialRecord)

		var pre *PartialRecordError
		require.True(t, errors.As(err, &pre))
		assert.Equal(t, int64(Size), pre.Offset)
		assert.Equal(t, got, pre.Got)
		assert.Equal(t, int64(Size+got), r.Offset(), "the short tail is consumed, never padded")
		assert.Contains(t, err.Error(), "offset 4")
	}
}

func TestReader_NotRestartable(t *testing.T) {
	r := NewReader(bytes.NewReader(encode(binary.BigEndian, 1)), binary.BigEndian)
	_, err := r.Next()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = r.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestReader_ByteOrder(t *testing.T) {
	data := []byte{0x3f, 0x80, 0x00, 0x00}

	big := NewReader(bytes.NewReader(data), binary.BigEndian)
	f, err := big.NextFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1), f)

	little := NewReader(bytes.NewReader(data), binary.LittleEndian)
	bits, err := little.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0000803f), bits)
	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), little.ByteOrder())
}

func TestReader_OneByteAtATime(t *testing.T) {
	data := encode(binary.LittleEndian, 1, 2, 3)
	r := NewReader(iotest.OneByteReader(bytes.NewReader(data)), binary.LittleEndian)

	got, err := readAll(t, r)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []float32{1, 2, 3}, got)
}

func TestReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	src := io.MultiReader(bytes.NewReader(encode(binary.LittleEndian, 1)), iotest.ErrReader(boom))
	r := NewReader(src, binary.LittleEndian)

	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrPartialRecord)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.bin")
	require.NoError(t, os.WriteFile(path, encode(Native(), 1, 2), 0o600))

	f, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name())

	got, err := readAll(t, f.Reader)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []float32{1, 2}, got)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "second close is a no-op")
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.bin"), nil)
	require.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(dir, nil)
	require.ErrorIs(t, err, ErrOpen)
	assert.Contains(t, err.Error(), "is a directory")
}
