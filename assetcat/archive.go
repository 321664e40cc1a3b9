/*

This file declares the small interface both archive container readers
implement, mirroring icza/screp's repparser/repdecoder.Decoder interface
swapping legacy/modern implementations behind one Section(size) method:
here, archiveReader swaps the two archive container formats behind one
Entries/Open pair, so the directory loader and both archive loaders are
interchangeable catalog sources.

*/
package assetcat

import "os"

// EntryMeta names one archive member and its uncompressed size.
type EntryMeta struct {
	Name             string
	UncompressedSize int
}

// archiveReader lists and opens (decompressing) the members of an asset
// archive, independent of its on-disk container format.
type archiveReader interface {
	Entries() []EntryMeta
	Open(name string) ([]byte, error)
}

// LoadFromArchive builds a Catalog from an already-opened archive reader's
// proto/items/items.lst, proto/items/*.pro and text/<language>/
// pro_item.msg members, falling back to text/pro_item.msg.
func LoadFromArchive(ar archiveReader, language string) (*Catalog, error) {
	lstBytes, err := ar.Open("proto/items/items.lst")
	if err != nil {
		return nil, err
	}
	relPaths := parseItemsLst(string(lstBytes))

	messages, err := loadProItemMessagesFromArchive(ar, language)
	if err != nil {
		return nil, err
	}

	c := NewCatalog()
	c.Language = language
	for _, rel := range relPaths {
		name := "proto/items/" + rel
		data, err := ar.Open(name)
		if err != nil {
			continue
		}
		entry, err := parseProtoItemRecord(data)
		if err != nil {
			continue
		}
		if msg, ok := messages[entry.PID]; ok {
			entry.DisplayName = msg
		}
		c.Put(entry)
	}
	return c, nil
}

func loadProItemMessagesFromArchive(ar archiveReader, language string) (map[int32]string, error) {
	for _, name := range []string{"text/" + language + "/pro_item.msg", "text/pro_item.msg"} {
		if raw, err := ar.Open(name); err == nil {
			return parseMsgEntries(raw), nil
		}
	}
	return nil, os.ErrNotExist
}
