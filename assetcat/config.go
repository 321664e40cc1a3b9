/*

Package-level config for the catalog loader: which directory roots and/or
archive files to read proto data from, and which message-table language
to prefer.

Information source: ernie-trinity-tools and neper-stars-houston's go.mod,
both of which carry gopkg.in/yaml.v3 for small tool-configuration files;
adopted here for the same purpose.

*/
package assetcat

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config names the catalog sources to load, in priority order: directory
// roots are loaded before archive files, and within each list entries are
// loaded in order. Every source that loads is merged into one catalog;
// where several sources hold the same pid, the first one loaded wins.
type Config struct {
	Language      string   `yaml:"language"`
	DirectoryRoots []string `yaml:"directory_roots"`
	LZSSArchives  []string `yaml:"lzss_archives"`
	ZlibArchives  []string `yaml:"zlib_archives"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	if cfg.Language == "" {
		cfg.Language = "english"
	}
	return &cfg, nil
}

// BuildCatalog loads and merges every configured source into one Catalog.
// A source that fails to load is skipped, not fatal, since the catalog is
// an optional enrichment layer (spec.md §6: missing entries are
// tolerated).
func BuildCatalog(cfg *Config) (*Catalog, error) {
	merged := NewCatalog()
	merged.Language = cfg.Language

	for _, root := range cfg.DirectoryRoots {
		c, err := LoadFromDirectory(root, cfg.Language)
		if err != nil {
			continue
		}
		mergeInto(merged, c)
	}
	for _, path := range cfg.LZSSArchives {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ar, err := OpenLZSSArchive(data)
		if err != nil {
			continue
		}
		c, err := LoadFromArchive(ar, cfg.Language)
		if err != nil {
			continue
		}
		mergeInto(merged, c)
	}
	for _, path := range cfg.ZlibArchives {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ar, err := OpenZlibArchive(data)
		if err != nil {
			continue
		}
		c, err := LoadFromArchive(ar, cfg.Language)
		if err != nil {
			continue
		}
		mergeInto(merged, c)
	}

	return merged, nil
}

func mergeInto(dst, src *Catalog) {
	for pid, e := range src.entries {
		if _, exists := dst.entries[pid]; !exists {
			dst.entries[pid] = e
		}
	}
}
