package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/fosave"
)

func TestParseHint(t *testing.T) {
	h, err := parseHint("")
	require.NoError(t, err)
	assert.Equal(t, fosave.HintAuto, h)

	h, err = parseHint("a")
	require.NoError(t, err)
	assert.Equal(t, fosave.HintGameA, h)

	h, err = parseHint("B")
	require.NoError(t, err)
	assert.Equal(t, fosave.HintGameB, h)

	_, err = parseHint("nonsense")
	assert.Error(t, err)
}

func TestParseSectionID(t *testing.T) {
	id, err := parseSectionID("header")
	require.NoError(t, err)
	assert.Equal(t, fosave.HeaderSectionID, id)

	id, err = parseSectionID("TAIL")
	require.NoError(t, err)
	assert.Equal(t, fosave.TailSectionID, id)

	id, err = parseSectionID("6")
	require.NoError(t, err)
	assert.Equal(t, fosave.HandlerSectionID(6), id)

	id, err = parseSectionID("handler(6)")
	require.NoError(t, err)
	assert.Equal(t, fosave.HandlerSectionID(6), id)

	_, err = parseSectionID("nonsense")
	assert.Error(t, err)
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, fosave.GenderMale, parseGender("male"))
	assert.Equal(t, fosave.GenderFemale, parseGender("Female"))
	assert.Equal(t, fosave.GenderFromRaw(5), parseGender("5"))
}
