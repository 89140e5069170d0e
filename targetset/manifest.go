// Package targetset resolves a (vendor, architecture, keyval-width) triple
// to a compiled target-archive path, via a TOML manifest, and can watch
// that manifest's directory for newly dropped or updated archives.
package targetset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Key identifies one compiled target within a manifest.
type Key struct {
	Vendor       string
	Architecture string
	KeyvalDwords uint32
}

// manifestFile is the on-disk TOML shape: a flat list of target records,
// one per (vendor, architecture, keyval width) triple.
type manifestFile struct {
	Targets []targetRecord `toml:"target"`
}

type targetRecord struct {
	Vendor       string `toml:"vendor"`
	Architecture string `toml:"architecture"`
	KeyvalDwords uint32 `toml:"keyval_dwords"`
	Path         string `toml:"path"`
}

// Manifest maps target keys to archive file paths.
type Manifest struct {
	paths map[Key]string
}

// LoadManifest parses a TOML manifest file at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("targetset: reading manifest: %w", err)
	}

	var raw manifestFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("targetset: parsing manifest: %w", err)
	}

	m := &Manifest{paths: make(map[Key]string, len(raw.Targets))}
	for _, r := range raw.Targets {
		m.paths[Key{Vendor: r.Vendor, Architecture: r.Architecture, KeyvalDwords: r.KeyvalDwords}] = r.Path
	}
	return m, nil
}

// Lookup returns the archive path registered for key.
func (m *Manifest) Lookup(key Key) (string, bool) {
	p, ok := m.paths[key]
	return p, ok
}

// Keys returns every key the manifest declares.
func (m *Manifest) Keys() []Key {
	keys := make([]Key, 0, len(m.paths))
	for k := range m.paths {
		keys = append(keys, k)
	}
	return keys
}
