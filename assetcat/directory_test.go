package assetcat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosave/fosave/internal/breader"
)

func TestParseItemsLst(t *testing.T) {
	contents := "weapons/pistol.pro ; the 10mm pistol\n# a comment\n\nweapons/rifle.pro\n"
	got := parseItemsLst(contents)
	assert.Equal(t, []string{"weapons/pistol.pro", "weapons/rifle.pro"}, got)
}

func TestParseMsgEntriesExtractsTriplets(t *testing.T) {
	raw := []byte("\n# comment\n{100}{snd_100}{Stimpak}\n{101}{snd_101}{RadAway}\n")
	got := parseMsgEntries(raw)
	assert.Equal(t, "Stimpak", got[100])
	assert.Equal(t, "RadAway", got[101])
}

func TestParseMsgEntriesSkipsMalformedKey(t *testing.T) {
	raw := []byte("{notanumber}{acm}{Ignored}\n{5}{acm}{Kept}\n")
	got := parseMsgEntries(raw)
	assert.Len(t, got, 1)
	assert.Equal(t, "Kept", got[5])
}

func buildProtoItemRecord(pid, itemType, weight int32) []byte {
	w := breader.NewWriter()
	w.Zero(protoItemRecordLen)
	b := w.Bytes()

	patch := func(offset int, v int32) {
		pw := breader.NewWriter()
		pw.I32(v)
		copy(b[offset:], pw.Bytes())
	}
	patch(protoItemPIDOffset, pid)
	patch(protoItemTypeOffset, itemType)
	patch(protoItemWeightOffset, weight)
	return b
}

func TestParseProtoItemRecord(t *testing.T) {
	data := buildProtoItemRecord(5, 3, 2)
	e, err := parseProtoItemRecord(data)
	require.NoError(t, err)
	assert.Equal(t, int32(5), e.PID)
	assert.Equal(t, int32(3), e.Type)
	assert.Equal(t, int32(2), e.BaseWeight)
}

func TestParseProtoItemRecordRejectsShortData(t *testing.T) {
	_, err := parseProtoItemRecord(make([]byte, protoItemRecordLen-1))
	assert.Error(t, err)
}

func TestLoadFromDirectory(t *testing.T) {
	root := t.TempDir()
	itemsDir := filepath.Join(root, "proto", "items")
	require.NoError(t, os.MkdirAll(itemsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(itemsDir, "items.lst"), []byte("stim.pro\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(itemsDir, "stim.pro"), buildProtoItemRecord(40, 1, 1), 0o644))

	textDir := filepath.Join(root, "text", "english")
	require.NoError(t, os.MkdirAll(textDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(textDir, "pro_item.msg"), []byte("{40}{snd_040}{Stimpak}\n"), 0o644))

	c, err := LoadFromDirectory(root, "english")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	e, ok := c.entries[40]
	require.True(t, ok)
	assert.Equal(t, "Stimpak", e.DisplayName)
	assert.Equal(t, int32(1), e.Type)
}
