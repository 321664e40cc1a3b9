package breader

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Writer accumulates big-endian typed values into a byte buffer, the
// counterpart of Reader used by section re-emitters.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize returns an empty Writer with capacity hint size.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// U8 appends one byte.
func (w *Writer) U8(v byte) {
	w.buf = append(w.buf, v)
}

// I16 appends a big-endian signed 16-bit value.
func (w *Writer) I16(v int16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	w.buf = append(w.buf, b[:]...)
}

// U32 appends a big-endian unsigned 32-bit value.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// I32 appends a big-endian signed 32-bit value.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// F32 appends a big-endian IEEE-754 32-bit float.
func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

// I32Slice appends a sequence of signed 32-bit values.
func (w *Writer) I32Slice(vs []int32) {
	for _, v := range vs {
		w.I32(v)
	}
}

// RawBytes appends raw bytes verbatim.
func (w *Writer) RawBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// FixedString appends s, re-encoded as Windows-1252, truncated/zero-padded
// to exactly n bytes. Strings that can't round-trip through Windows-1252
// (editor input outside that codec's repertoire) are written as their raw
// UTF-8 bytes instead.
func (w *Writer) FixedString(s string, n int) {
	b := make([]byte, n)
	copy(b, encodeWindows1252(s))
	w.buf = append(w.buf, b...)
}

func encodeWindows1252(s string) []byte {
	encoded, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(s))
	if err != nil {
		return []byte(s)
	}
	return encoded
}

// Zero appends n zero bytes.
func (w *Writer) Zero(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}
