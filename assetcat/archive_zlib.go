/*

This file implements the second archive container format: a little-endian
trailer listing every member's data span and name, followed by each
member's bytes independently zlib-compressed.

Grounded directly on icza/screp's repparser/repdecoder/modern.go: that
file reads a replay section as a count of zlib-compressed chunks and
io.Copy's each one into a result buffer. Here there is no chunk count per
member (one archive member is one zlib stream), so Open reads the
member's compressed span and runs it through a single zlib.Reader, the
same "NewReader, io.Copy, Close" shape.

The trailer is read back to front (the entry count is the file's last 4
bytes), so each record is laid out fixed-width-first: the record's name
follows its fixed-width fields and the name's length is the record's last
field, so the previous record's end can be found without first decoding
the whole trailer forward.

*/
package assetcat

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

type zlibArchiveEntry struct {
	name             string
	offset           int64
	compressedSize   int64
	uncompressedSize int64
}

// ZlibArchive reads container 2: a trailer-indexed table of zlib-compressed
// members.
type ZlibArchive struct {
	data    []byte
	entries []zlibArchiveEntry
}

// OpenZlibArchive parses data's trailer: a 4-byte little-endian entry
// count at the very end of the file, preceded by one record per entry of
// the form offset(8) + compressedSize(8) + uncompressedSize(8) + name +
// nameLen(4), all little endian, read back to front.
func OpenZlibArchive(data []byte) (*ZlibArchive, error) {
	if len(data) < 4 {
		return nil, ErrShortArchive
	}
	count := binary.LittleEndian.Uint32(data[len(data)-4:])
	pos := len(data) - 4

	entries := make([]zlibArchiveEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos < 4 {
			return nil, ErrShortArchive
		}
		pos -= 4
		nameLen := int(binary.LittleEndian.Uint32(data[pos : pos+4]))
		if pos < nameLen {
			return nil, ErrShortArchive
		}
		pos -= nameLen
		name := string(data[pos : pos+nameLen])

		if pos < 24 {
			return nil, ErrShortArchive
		}
		pos -= 8
		uncompressedSize := int64(binary.LittleEndian.Uint64(data[pos : pos+8]))
		pos -= 8
		compressedSize := int64(binary.LittleEndian.Uint64(data[pos : pos+8]))
		pos -= 8
		offset := int64(binary.LittleEndian.Uint64(data[pos : pos+8]))

		entries = append(entries, zlibArchiveEntry{
			name:             name,
			offset:           offset,
			compressedSize:   compressedSize,
			uncompressedSize: uncompressedSize,
		})
	}

	return &ZlibArchive{data: data, entries: entries}, nil
}

func (a *ZlibArchive) Entries() []EntryMeta {
	out := make([]EntryMeta, len(a.entries))
	for i, e := range a.entries {
		out[i] = EntryMeta{Name: e.name, UncompressedSize: int(e.uncompressedSize)}
	}
	return out
}

func (a *ZlibArchive) Open(name string) ([]byte, error) {
	for _, e := range a.entries {
		if e.name != name {
			continue
		}
		if e.offset < 0 || e.offset+e.compressedSize > int64(len(a.data)) {
			return nil, ErrShortArchive
		}
		compressed := a.data[e.offset : e.offset+e.compressedSize]

		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, err
		}
		defer zr.Close()

		out := bytes.NewBuffer(make([]byte, 0, e.uncompressedSize))
		if _, err := io.Copy(out, zr); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	}
	return nil, ErrArchiveMemberNotFound
}
