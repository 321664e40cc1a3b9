package assetcat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fosave/fosave/fosave"
)

func TestCatalogLookupPrefersLoadedEntry(t *testing.T) {
	c := NewCatalog()
	c.Put(Entry{PID: 40, DisplayName: "Custom Stimpak", BaseWeight: 2, Type: 1})

	e, ok := c.Lookup(fosave.GameA, 40)
	assert.True(t, ok)
	assert.Equal(t, "Custom Stimpak", e.DisplayName)
	assert.Equal(t, int32(2), e.BaseWeight)
}

func TestCatalogLookupFallsBackToWellKnown(t *testing.T) {
	c := NewCatalog()

	e, ok := c.Lookup(fosave.GameA, 40)
	assert.True(t, ok)
	assert.Equal(t, "Stimpak", e.DisplayName)
}

func TestCatalogLookupGameBOnlyItem(t *testing.T) {
	c := NewCatalog()

	_, ok := c.Lookup(fosave.GameA, 259)
	assert.False(t, ok)

	e, ok := c.Lookup(fosave.GameB, 259)
	assert.True(t, ok)
	assert.Equal(t, "Jet", e.DisplayName)
}

func TestCatalogLookupUnknownPID(t *testing.T) {
	c := NewCatalog()
	_, ok := c.Lookup(fosave.GameA, 999999)
	assert.False(t, ok)
}

func TestCatalogNilReceiverFallsBackToWellKnown(t *testing.T) {
	var c *Catalog
	e, ok := c.Lookup(fosave.GameA, 41)
	assert.True(t, ok)
	assert.Equal(t, "Bottle Caps", e.DisplayName)
}
