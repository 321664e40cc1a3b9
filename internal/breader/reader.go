/*

Package breader implements a big-endian, error-returning byte reader over an
in-memory buffer.

Information sources:

icza/screp's repparser.sliceReader (little-endian, panics on short reads;
the position-tracking-struct-over-a-byte-slice shape is kept, byte order and
failure mode are not: save files are big-endian and must fail with a
recoverable error instead of panicking on truncation).

ali-raheem/fallout-se's src/reader.rs (BigEndianReader): the exact set of
typed reads, their names, and their semantics (fixed-width zero-padded
strings decode to the first NUL and skip the remainder; NUL-terminated
strings stop at NUL but do not skip padding) are grounded on that reader.

*/
package breader

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrShortRead indicates the reader ran out of bytes before satisfying a
// read request.
var ErrShortRead = errors.New("breader: short read")

// ErrBadSeek indicates a seek or skip would move the position outside
// [0, len(buf)].
var ErrBadSeek = errors.New("breader: seek out of range")

// Reader reads typed, big-endian values from a fixed in-memory buffer,
// tracking a current byte position.
type Reader struct {
	b   []byte
	pos int
}

// New returns a Reader positioned at the start of b.
func New(b []byte) *Reader {
	return &Reader{b: b}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.b)
}

// Tell returns the current byte position.
func (r *Reader) Tell() int {
	return r.pos
}

// Seek moves the current position to pos, which must be within
// [0, len(buf)].
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.b) {
		return errors.Wrapf(ErrBadSeek, "pos=%d len=%d", pos, len(r.b))
	}
	r.pos = pos
	return nil
}

// SkipN advances the position by n bytes (n may be negative).
func (r *Reader) SkipN(n int) error {
	return r.Seek(r.pos + n)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.b) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.b) {
		return nil, errors.Wrapf(ErrShortRead, "want=%d remaining=%d", n, r.Remaining())
	}
	buf := r.b[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (byte, error) {
	buf, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// I16 reads a big-endian signed 16-bit value.
func (r *Reader) I16() (int16, error) {
	buf, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf)), nil
}

// U32 reads a big-endian unsigned 32-bit value.
func (r *Reader) U32() (uint32, error) {
	buf, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// I32 reads a big-endian signed 32-bit value.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads a big-endian IEEE-754 32-bit float.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// I32Slice reads n consecutive signed 32-bit values.
func (r *Reader) I32Slice(n int) ([]int32, error) {
	if n < 0 {
		return nil, errors.Errorf("breader: negative I32Slice length %d", n)
	}
	out := make([]int32, n)
	for i := range out {
		v, err := r.I32()
		if err != nil {
			return nil, errors.Wrapf(err, "I32Slice[%d]", i)
		}
		out[i] = v
	}
	return out, nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	buf, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, buf)
	return out, nil
}

// FixedString reads an n-byte zero-padded field and decodes it to the first
// NUL byte, discarding the rest of the field (including any bytes after the
// terminator).
func (r *Reader) FixedString(n int) (string, error) {
	buf, err := r.take(n)
	if err != nil {
		return "", err
	}
	return cString(buf), nil
}

// NullTerminatedString reads up to maxLen bytes stopping at the first NUL
// (if any); unlike FixedString it does not consume the remainder of
// maxLen — it only advances past the bytes actually read, including the
// terminator if one was found within maxLen.
func (r *Reader) NullTerminatedString(maxLen int) (string, error) {
	buf, err := r.take(maxLen)
	if err != nil {
		return "", err
	}
	for i, ch := range buf {
		if ch == 0 {
			r.pos -= maxLen - (i + 1)
			return string(buf[:i]), nil
		}
	}
	return string(buf), nil
}

// cString decodes a zero-padded buffer to the text preceding the first NUL
// byte, or the whole buffer if no NUL is present. Fallout's fixed-width name
// and description fields were written by a Windows-1252 build of the game,
// so a buffer that isn't valid UTF-8 is re-decoded as Windows-1252 rather
// than taken as mojibake.
func cString(buf []byte) string {
	raw := buf
	for i, ch := range buf {
		if ch == 0 {
			raw = buf[:i]
			break
		}
	}
	if !utf8.Valid(raw) {
		return windows1252String(raw)
	}
	return string(raw)
}

// windows1252String decodes raw as Windows-1252, falling back to the raw
// bytes verbatim if the transform fails.
func windows1252String(raw []byte) string {
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
