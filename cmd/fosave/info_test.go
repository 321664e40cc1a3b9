package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/render"
)

func TestParseFieldSelection(t *testing.T) {
	f, err := parseFieldSelection("name,level, hp")
	require.NoError(t, err)
	assert.Equal(t, render.FieldSelection{Name: true, Level: true, HP: true}, f)
}

func TestParseFieldSelectionEmpty(t *testing.T) {
	f, err := parseFieldSelection("")
	require.NoError(t, err)
	assert.Equal(t, render.FieldSelection{}, f)
}

func TestParseFieldSelectionRejectsUnknown(t *testing.T) {
	_, err := parseFieldSelection("notafield")
	assert.Error(t, err)
}
