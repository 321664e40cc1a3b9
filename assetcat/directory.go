/*

This file loads a catalog from a loose Fallout installation directory
tree: proto/items/*.pro binary proto records joined with a
text/<lang>/pro_item.msg message table.

Grounded on ali-raheem/fallout-se's item_catalog.rs: the proto record's
fixed offsets (pid, message id, type, weight), the items.lst line format
(";"-comment stripped, blank/`#` lines skipped), and the pro_item.msg
`{key}{acm}{text}` triplet format are all ported from there. The line
scanning itself follows icza/screp's cString "scan for a terminator, else
fall back" shape: read to the next delimiter, trim, move on.

*/
package assetcat

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fosave/fosave/internal/breader"
	"github.com/fosave/fosave/internal/logx"
)

const (
	protoItemPIDOffset       = 0x00
	protoItemMessageIDOffset = 0x04
	protoItemTypeOffset      = 0x20
	protoItemWeightOffset    = 0x2C
	protoItemRecordLen       = 0x30
)

// LoadFromDirectory builds a Catalog from installDir/proto/items/items.lst
// (one relative .pro path per line) and installDir/text/<language>/
// pro_item.msg (falling back to installDir/text/pro_item.msg if the
// language subdirectory doesn't exist).
func LoadFromDirectory(installDir, language string) (*Catalog, error) {
	lstPath := filepath.Join(installDir, "proto", "items", "items.lst")
	lstBytes, err := os.ReadFile(lstPath)
	if err != nil {
		return nil, err
	}
	relPaths := parseItemsLst(string(lstBytes))

	messages, err := loadProItemMessages(installDir, language)
	if err != nil {
		return nil, err
	}

	c := NewCatalog()
	c.Language = language
	for _, rel := range relPaths {
		recordPath := filepath.Join(installDir, "proto", "items", filepath.FromSlash(rel))
		data, err := os.ReadFile(recordPath)
		if err != nil {
			logx.L.Warn().Str("path", recordPath).Err(err).Msg("skipping unreadable proto item record")
			continue
		}
		entry, err := parseProtoItemRecord(data)
		if err != nil {
			logx.L.Warn().Str("path", recordPath).Err(err).Msg("skipping malformed proto item record")
			continue
		}
		if name, ok := messages[entry.PID]; ok {
			entry.DisplayName = name
		}
		c.Put(entry)
	}
	return c, nil
}

func loadProItemMessages(installDir, language string) (map[int32]string, error) {
	candidates := []string{
		filepath.Join(installDir, "text", language, "pro_item.msg"),
		filepath.Join(installDir, "text", "pro_item.msg"),
	}
	var lastErr error
	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return parseMsgEntries(raw), nil
	}
	return nil, lastErr
}

// parseItemsLst keeps one relative path per non-empty, non-comment line,
// with a trailing ";..." comment stripped first.
func parseItemsLst(contents string) []string {
	var out []string
	for _, line := range strings.Split(contents, "\n") {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// parseMsgEntries scans {key}{acm}{text} triplets out of a pro_item.msg
// file, skipping "#"-to-end-of-line comments outside of braces. Malformed
// keys are skipped rather than aborting the whole file.
func parseMsgEntries(raw []byte) map[int32]string {
	out := make(map[int32]string)
	pos := 0
	for {
		keyTok, ok := nextBracedToken(raw, &pos)
		if !ok {
			break
		}
		if _, ok := nextBracedToken(raw, &pos); !ok {
			break
		}
		textTok, ok := nextBracedToken(raw, &pos)
		if !ok {
			break
		}
		key, err := strconv.Atoi(strings.TrimSpace(keyTok))
		if err != nil {
			continue
		}
		if _, exists := out[int32(key)]; !exists {
			out[int32(key)] = textTok
		}
	}
	return out
}

func nextBracedToken(raw []byte, pos *int) (string, bool) {
	for *pos < len(raw) {
		switch raw[*pos] {
		case '#':
			for *pos < len(raw) && raw[*pos] != '\n' {
				*pos++
			}
		case '{':
			goto found
		default:
			*pos++
		}
	}
	return "", false

found:
	*pos++
	start := *pos
	for *pos < len(raw) && raw[*pos] != '}' {
		*pos++
	}
	if *pos >= len(raw) {
		return "", false
	}
	tok := string(raw[start:*pos])
	*pos++
	return tok, true
}

func parseProtoItemRecord(data []byte) (Entry, error) {
	if len(data) < protoItemRecordLen {
		return Entry{}, os.ErrInvalid
	}
	r := breader.New(data)

	if err := r.Seek(protoItemPIDOffset); err != nil {
		return Entry{}, err
	}
	pid, err := r.I32()
	if err != nil {
		return Entry{}, err
	}

	if err := r.Seek(protoItemTypeOffset); err != nil {
		return Entry{}, err
	}
	itemType, err := r.I32()
	if err != nil {
		return Entry{}, err
	}

	if err := r.Seek(protoItemWeightOffset); err != nil {
		return Entry{}, err
	}
	weight, err := r.I32()
	if err != nil {
		return Entry{}, err
	}

	return Entry{PID: pid, Type: itemType, BaseWeight: weight}, nil
}
