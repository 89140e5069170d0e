package targetset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "targets.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadManifestLookup(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[[target]]
vendor = "nvidia"
architecture = "ampere"
keyval_dwords = 1
path = "nvidia_ampere_u32.rdxt"

[[target]]
vendor = "amd"
architecture = "rdna2"
keyval_dwords = 2
path = "amd_rdna2_u64.rdxt"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	p, ok := m.Lookup(Key{Vendor: "nvidia", Architecture: "ampere", KeyvalDwords: 1})
	if !ok || p != "nvidia_ampere_u32.rdxt" {
		t.Fatalf("Lookup nvidia = (%q, %v)", p, ok)
	}

	if _, ok := m.Lookup(Key{Vendor: "intel", Architecture: "xe", KeyvalDwords: 1}); ok {
		t.Fatalf("Lookup found unregistered key")
	}

	if len(m.Keys()) != 2 {
		t.Fatalf("Keys() len = %d, want 2", len(m.Keys()))
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestLoadManifestInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "not [ valid toml")
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected parse error")
	}
}
