// This file implements the fixed-layout save header shared by both games:
// a validated signature, a version triple, name/description strings, two
// date-and-time stamps, and a map reference, followed by a skipped
// thumbnail.
//
// Grounded verbatim on ali-raheem/fallout-se's src/fallout1/header.rs,
// including the field read order — minor word before major word, and the
// file date read as day/month/year (noted there as matching loadsave.cc's
// SaveHeader() write order) while the game date reads as month/day/year.

package fosave

import "github.com/fosave/fosave/internal/breader"

// Header is the save file's fixed-layout preamble, identical in both
// games.
type Header struct {
	CharacterName string
	Description   string

	VersionMajor   int16
	VersionMinor   int16
	VersionRelease byte

	// FileDay, FileMonth, FileYear, FileTime record when the save was
	// written, in that field order (not calendar order) on disk.
	FileDay   int16
	FileMonth int16
	FileYear  int16
	FileTime  int32

	// GameMonth, GameDay, GameYear, GameTime record the in-game clock at
	// save time, in that field order on disk.
	GameMonth int16
	GameDay   int16
	GameYear  int16
	GameTime  uint32

	Elevation int16
	Map       int16
	MapFile   string
}

const (
	headerSignatureFieldLen = 24
	headerNameLen           = 32
	headerDescriptionLen    = 30
	headerMapFileLen        = 16

	versionMinorWant   = 1
	versionMajorWant   = 1
	versionReleaseWant = 'R'
)

// parseHeader reads and validates the header, then skips the thumbnail and
// its trailing padding.
func parseHeader(r *breader.Reader) (*Header, error) {
	sig, err := r.Bytes(headerSignatureFieldLen)
	if err != nil {
		return nil, parseErrorf(err, "header signature")
	}
	if string(sig[:len(SignatureText)]) != SignatureText {
		return nil, parseErrorf(nil, "invalid save file signature")
	}

	// Minor is read before major; this is the on-disk field order, not a
	// display order.
	versionMinor, err := r.I16()
	if err != nil {
		return nil, parseErrorf(err, "version minor")
	}
	versionMajor, err := r.I16()
	if err != nil {
		return nil, parseErrorf(err, "version major")
	}
	versionRelease, err := r.U8()
	if err != nil {
		return nil, parseErrorf(err, "version release")
	}
	if versionMinor != versionMinorWant || versionMajor != versionMajorWant || versionRelease != versionReleaseWant {
		return nil, parseErrorf(nil, "unsupported save format version")
	}

	h := &Header{
		VersionMajor:   versionMajor,
		VersionMinor:   versionMinor,
		VersionRelease: versionRelease,
	}

	if h.CharacterName, err = r.FixedString(headerNameLen); err != nil {
		return nil, parseErrorf(err, "character name")
	}
	if h.Description, err = r.FixedString(headerDescriptionLen); err != nil {
		return nil, parseErrorf(err, "description")
	}

	if h.FileDay, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "file day")
	}
	if h.FileMonth, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "file month")
	}
	if h.FileYear, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "file year")
	}
	if h.FileTime, err = r.I32(); err != nil {
		return nil, parseErrorf(err, "file time")
	}

	if h.GameMonth, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "game month")
	}
	if h.GameDay, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "game day")
	}
	if h.GameYear, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "game year")
	}
	if h.GameTime, err = r.U32(); err != nil {
		return nil, parseErrorf(err, "game time")
	}

	if h.Elevation, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "elevation")
	}
	if h.Map, err = r.I16(); err != nil {
		return nil, parseErrorf(err, "map")
	}
	if h.MapFile, err = r.FixedString(headerMapFileLen); err != nil {
		return nil, parseErrorf(err, "map filename")
	}

	if err := r.SkipN(PreviewSize + HeaderPadding); err != nil {
		return nil, parseErrorf(err, "thumbnail skip")
	}

	return h, nil
}

// emit writes h back in the exact field order parseHeader reads it in,
// followed by a zeroed thumbnail region.
func (h *Header) emit(w *breader.Writer) {
	w.RawBytes([]byte(SignatureText))
	w.Zero(headerSignatureFieldLen - len(SignatureText))

	w.I16(h.VersionMinor)
	w.I16(h.VersionMajor)
	w.U8(h.VersionRelease)

	w.FixedString(h.CharacterName, headerNameLen)
	w.FixedString(h.Description, headerDescriptionLen)

	w.I16(h.FileDay)
	w.I16(h.FileMonth)
	w.I16(h.FileYear)
	w.I32(h.FileTime)

	w.I16(h.GameMonth)
	w.I16(h.GameDay)
	w.I16(h.GameYear)
	w.U32(h.GameTime)

	w.I16(h.Elevation)
	w.I16(h.Map)
	w.FixedString(h.MapFile, headerMapFileLen)

	w.Zero(PreviewSize + HeaderPadding)
}
