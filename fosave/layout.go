// This file implements the file layout registry: an ordered list of
// (SectionID, ByteRange) pairs covering [0, file_len), kept index-aligned
// with the section blob list.
//
// Grounded on ali-raheem/fallout-se's crates/fallout_core/src/layout.rs
// (ByteRange, SectionId, SectionLayout, FileLayout::validate) for the
// invariants, and on repparser/slicereader.go's "small struct wrapping a
// byte slice and a position" shape for the bookkeeping style.

package fosave

import "github.com/pkg/errors"

// ByteRange is a closed-open [Start, End) byte range.
type ByteRange struct {
	Start, End int
}

// Len returns End - Start.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// SectionLayout associates a SectionID with its current ByteRange.
type SectionLayout struct {
	ID    SectionID
	Range ByteRange
}

// Layout is the ordered list of sections covering a save file.
type Layout struct {
	FileLen  int
	Sections []SectionLayout
}

// Validate asserts the three layout invariants from the data model: the
// first section starts at 0, adjacent sections touch with no gap or
// overlap, and the final section ends at FileLen. Ids must also be unique
// (Tail at most once).
func (l *Layout) Validate() error {
	if len(l.Sections) == 0 {
		return parseErrorf(nil, "layout: empty section list")
	}
	if l.Sections[0].Range.Start != 0 {
		return parseErrorf(nil, "layout: first section does not start at 0")
	}
	seen := map[SectionID]bool{}
	for i, s := range l.Sections {
		if s.Range.End < s.Range.Start {
			return parseErrorf(nil, "layout: section has negative length")
		}
		if i > 0 {
			prev := l.Sections[i-1]
			if prev.Range.End != s.Range.Start {
				return parseErrorf(nil, "layout: gap or overlap between sections")
			}
		}
		if seen[s.ID] {
			return parseErrorf(nil, "layout: duplicate section id "+s.ID.String())
		}
		seen[s.ID] = true
	}
	last := l.Sections[len(l.Sections)-1]
	if last.Range.End != l.FileLen {
		return parseErrorf(nil, "layout: final section does not end at file_len")
	}
	return nil
}

// IndexOf returns the index of the section with the given id, or -1.
func (l *Layout) IndexOf(id SectionID) int {
	for i, s := range l.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Shift propagates a length delta at section idx (whose own Range.End the
// caller has already set to its new value) to every following section's
// start/end and to FileLen. Arithmetic is overflow-checked; overflow is a
// fatal parse error mirroring the mandatory overflow-checked arithmetic
// called out in the data model.
func (l *Layout) Shift(idx int, delta int) error {
	if idx < 0 || idx >= len(l.Sections) {
		return parseErrorf(nil, "layout: shift index out of range")
	}
	const maxInt = int(^uint(0) >> 1)
	for i := idx + 1; i < len(l.Sections); i++ {
		if delta > 0 && l.Sections[i].Range.Start > maxInt-delta {
			return parseErrorf(nil, "layout: overflow shifting section start")
		}
		l.Sections[i].Range.Start += delta
		l.Sections[i].Range.End += delta
	}
	if delta > 0 && l.FileLen > maxInt-delta {
		return parseErrorf(nil, "layout: overflow shifting file length")
	}
	l.FileLen += delta
	return nil
}

// capture is the layout-building observer used by the parse orchestrator:
// it records each section's [start, end) range as it is produced, mirroring
// the Capture helper in ali-raheem/fallout-se's fallout1/fallout2 mod.rs.
type capture struct {
	sections []SectionLayout
	blobs    [][]byte
}

func newCapture() *capture {
	return &capture{}
}

// record appends a section spanning [start, end) of the source buffer.
func (c *capture) record(id SectionID, src []byte, start, end int) error {
	if end < start || end > len(src) {
		return errors.Errorf("capture: invalid range [%d,%d) for %s", start, end, id)
	}
	blob := make([]byte, end-start)
	copy(blob, src[start:end])
	c.sections = append(c.sections, SectionLayout{ID: id, Range: ByteRange{Start: start, End: end}})
	c.blobs = append(c.blobs, blob)
	return nil
}

// truncateTo drops every recorded section/blob past n entries, used by the
// Game-A trait-parse guard to roll back a partially captured heuristic
// attempt.
func (c *capture) truncateTo(n int) {
	c.sections = c.sections[:n]
	c.blobs = c.blobs[:n]
}

func (c *capture) layout(fileLen int) Layout {
	return Layout{FileLen: fileLen, Sections: append([]SectionLayout(nil), c.sections...)}
}
