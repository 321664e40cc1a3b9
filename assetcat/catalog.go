/*

Package assetcat enriches a raw inventory proto ID with a display name,
base weight and item type, read from either a loose directory tree or one
of two compressed archive container formats. Both sources are optional:
when neither is configured, Lookup falls back to a small built-in table of
well-known proto IDs referenced directly by the original engine source.

Information sources:

ali-raheem/fallout-se's crates/fallout_core/src/core_api/item_catalog.rs
and well_known_items.rs (the BTreeMap<i32, ItemCatalogEntry> shape and the
built-in fallback table, ported from Rust to Go).

*/
package assetcat

import "github.com/fosave/fosave/fosave"

// Entry describes one proto ID's catalog data.
type Entry struct {
	PID         int32
	DisplayName string
	BaseWeight  int32
	Type        int32
}

// Catalog holds proto entries loaded from a directory tree or archive, plus
// the always-available built-in fallback table.
type Catalog struct {
	Language string
	entries  map[int32]Entry
}

// NewCatalog returns an empty catalog that resolves only well-known proto
// IDs via the built-in fallback table.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[int32]Entry)}
}

// Put inserts or overwrites an entry, used by the directory and archive
// loaders as they parse proto records.
func (c *Catalog) Put(e Entry) {
	c.entries[e.PID] = e
}

// Len reports how many loaded (non-fallback) entries the catalog holds.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup resolves pid against the loaded entries first, falling back to
// the built-in well-known table, then reports false if pid is unknown to
// both.
func (c *Catalog) Lookup(game fosave.Game, pid int32) (Entry, bool) {
	if c != nil {
		if e, ok := c.entries[pid]; ok {
			return e, true
		}
	}
	return lookupWellKnown(game, pid)
}
