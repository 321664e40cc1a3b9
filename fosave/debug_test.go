package fosave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsAndSectionBytesRoundTrip(t *testing.T) {
	d := minimalDocument()
	d.layout = Layout{FileLen: 6, Sections: []SectionLayout{
		{ID: HeaderSectionID, Range: ByteRange{0, 3}},
		{ID: TailSectionID, Range: ByteRange{3, 6}},
	}}
	d.sectionBlobs = [][]byte{{1, 2, 3}, {4, 5, 6}}

	assert.Len(t, d.Sections(), 2)

	b, err := d.SectionBytes(TailSectionID)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5, 6}, b)

	// mutating the returned slice must not affect the stored blob
	b[0] = 99
	b2, err := d.SectionBytes(TailSectionID)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5, 6}, b2)
}

func TestSectionBytesRejectsUnknownID(t *testing.T) {
	d := minimalDocument()
	d.layout = Layout{FileLen: 0}
	_, err := d.SectionBytes(HandlerSectionID(99))
	assert.Error(t, err)
}

func TestDiffFieldsReportsOnlyDifferingFields(t *testing.T) {
	a := minimalDocument()
	b := minimalDocument()
	b.Save.Header.CharacterName = "Someone Else"
	b.Save.PCStats.Level = 7

	diffs := DiffFields(a, b)

	names := map[string]bool{}
	for _, d := range diffs {
		names[d.Field] = true
	}
	assert.True(t, names["CharacterName"])
	assert.True(t, names["Level"])
	assert.False(t, names["MapFilename"])
}

func TestDiffFieldsEmptyWhenIdentical(t *testing.T) {
	a := minimalDocument()
	b := minimalDocument()
	assert.Empty(t, DiffFields(a, b))
}
