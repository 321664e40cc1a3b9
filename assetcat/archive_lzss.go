/*

This file implements the first archive container format: a big-endian
header listing every member's name and LZSS-compressed span, decoded by
a byte-oriented LZSS routine.

Grounded on icza/screp's repparser/repdecoder/legacy.go, which decodes
each replay section as a sequence of length-prefixed PKWARE-compressed
chunks read straight off the wire. That file's actual algorithm is a
decompiled Brood War state machine tied to StarCraft's specific chunk
framing; it has no equivalent here, since this archive format belongs to
this domain, not replays. What is kept is the shape: a small header
naming each compressed span, and a single self-contained decode routine
run once per member. The decode routine itself is a classic LZSS byte
stream (an 8-bit flag byte selects, for each of its 8 bits, either one
literal byte or a 2-byte back-reference), which plays the same role here
that legacy.go's PKWARE explode plays for replay sections.

*/
package assetcat

import (
	"encoding/binary"
)

type lzssArchiveEntry struct {
	name             string
	offset           int32
	compressedSize   int32
	uncompressedSize int32
}

// LZSSArchive reads container 1: a big-endian header followed by each
// member's LZSS-compressed bytes.
type LZSSArchive struct {
	data    []byte
	entries []lzssArchiveEntry
}

// OpenLZSSArchive parses data's header: a 4-byte entry count, followed by
// one record per entry (a 2-byte name length, the name, then offset/
// compressed-size/uncompressed-size as 4-byte big-endian fields), all
// preceding the concatenated compressed member bytes.
func OpenLZSSArchive(data []byte) (*LZSSArchive, error) {
	if len(data) < 4 {
		return nil, ErrShortArchive
	}
	count := binary.BigEndian.Uint32(data[:4])
	pos := 4

	entries := make([]lzssArchiveEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+2 > len(data) {
			return nil, ErrShortArchive
		}
		nameLen := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if pos+nameLen+12 > len(data) {
			return nil, ErrShortArchive
		}
		name := string(data[pos : pos+nameLen])
		pos += nameLen
		offset := int32(binary.BigEndian.Uint32(data[pos : pos+4]))
		compressedSize := int32(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		uncompressedSize := int32(binary.BigEndian.Uint32(data[pos+8 : pos+12]))
		pos += 12

		entries = append(entries, lzssArchiveEntry{
			name:             name,
			offset:           offset,
			compressedSize:   compressedSize,
			uncompressedSize: uncompressedSize,
		})
	}

	return &LZSSArchive{data: data, entries: entries}, nil
}

func (a *LZSSArchive) Entries() []EntryMeta {
	out := make([]EntryMeta, len(a.entries))
	for i, e := range a.entries {
		out[i] = EntryMeta{Name: e.name, UncompressedSize: int(e.uncompressedSize)}
	}
	return out
}

func (a *LZSSArchive) Open(name string) ([]byte, error) {
	for _, e := range a.entries {
		if e.name != name {
			continue
		}
		if e.offset < 0 || int64(e.offset)+int64(e.compressedSize) > int64(len(a.data)) {
			return nil, ErrShortArchive
		}
		compressed := a.data[e.offset : e.offset+e.compressedSize]
		return decompressLZSS(compressed, int(e.uncompressedSize))
	}
	return nil, ErrArchiveMemberNotFound
}

const lzssWindowSize = 0x1000

// decompressLZSS decodes a classic LZSS stream: each flag byte's 8 bits,
// LSB first, select one literal byte (bit set) or a 2-byte back-reference
// (bit clear) made of a 12-bit distance into a sliding window and a 4-bit
// length (offset by 3, the minimum length worth encoding as a reference).
func decompressLZSS(src []byte, sizeHint int) ([]byte, error) {
	out := make([]byte, 0, sizeHint)
	window := make([]byte, lzssWindowSize)
	windowPos := 0

	pos := 0
	for pos < len(src) {
		flags := src[pos]
		pos++
		for bit := 0; bit < 8 && pos < len(src); bit++ {
			if flags&(1<<uint(bit)) != 0 {
				b := src[pos]
				pos++
				out = append(out, b)
				window[windowPos] = b
				windowPos = (windowPos + 1) % lzssWindowSize
				continue
			}

			if pos+2 > len(src) {
				return nil, ErrShortArchive
			}
			token := uint16(src[pos])<<8 | uint16(src[pos+1])
			pos += 2
			distance := int(token >> 4)
			length := int(token&0x0F) + 3

			for i := 0; i < length; i++ {
				srcPos := (windowPos - distance - 1 + lzssWindowSize) % lzssWindowSize
				b := window[srcPos]
				out = append(out, b)
				window[windowPos] = b
				windowPos = (windowPos + 1) % lzssWindowSize
			}
		}
	}
	return out, nil
}
