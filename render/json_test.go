package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFullRenderIncludesCoreFields(t *testing.T) {
	d := minimalSheetDocument()

	out, err := JSON(d, CanonicalV1)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "Game A", m["game"])
	assert.Equal(t, "Chosen One", m["name"])
	assert.Equal(t, "Vault 13", m["description"])
	assert.EqualValues(t, 3, m["level"])
	assert.EqualValues(t, 25, m["hp"])
}

func TestJSONFullRenderHPNullWithoutCritterPayload(t *testing.T) {
	d := minimalSheetDocument()
	d.Save.PlayerObject.Data = nil

	out, err := JSON(d, CanonicalV1)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Nil(t, m["hp"])
}

func TestJSONSelectedOnlyIncludesChosenFields(t *testing.T) {
	d := minimalSheetDocument()

	out, err := JSONSelected(d, FieldSelection{Name: true, Level: true}, CanonicalV1)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "Chosen One", m["name"])
	assert.EqualValues(t, 3, m["level"])
	_, hasDescription := m["description"]
	assert.False(t, hasDescription)
	_, hasHP := m["hp"]
	assert.False(t, hasHP)
}

func TestFieldSelectionIsAnySelected(t *testing.T) {
	assert.False(t, FieldSelection{}.IsAnySelected())
	assert.True(t, FieldSelection{Name: true}.IsAnySelected())
}

func TestTraitsToJSONUsesNamesOnly(t *testing.T) {
	d := minimalSheetDocument()
	d.Save.SelectedTraits = [2]int32{0, 1}

	out := traitsToJSON(d.SelectedTraitEntries())
	assert.Len(t, out, 2)
}
