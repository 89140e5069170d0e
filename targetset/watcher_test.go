package targetset

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// buildMinimalArchive assembles a single-entry container, just enough to
// round-trip through archive.Open without a real target header.
func buildMinimalArchive(entry []byte) []byte {
	const magic uint32 = 0x54475254

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], magic)
	binary.LittleEndian.PutUint32(header[4:8], 1)

	rec := make([]byte, 16)
	binary.LittleEndian.PutUint64(rec[0:8], 0)
	binary.LittleEndian.PutUint64(rec[8:16], uint64(len(entry)))

	out := append(header, rec...)
	out = append(out, entry...)
	return out
}

func TestOpenAndGet(t *testing.T) {
	dir := t.TempDir()
	archivePath := "sample.rdxt"
	if err := os.WriteFile(filepath.Join(dir, archivePath), buildMinimalArchive([]byte{1, 2, 3, 4}), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}

	manifestPath := writeManifest(t, dir, `
[[target]]
vendor = "nvidia"
architecture = "ampere"
keyval_dwords = 1
path = "sample.rdxt"
`)

	set, err := Open(manifestPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer set.Close()

	key := Key{Vendor: "nvidia", Architecture: "ampere", KeyvalDwords: 1}
	a, ok := set.Get(key)
	if !ok {
		t.Fatal("Get: key not found")
	}
	if a.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", a.Count())
	}
}

func TestOpenReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "sample.rdxt")
	if err := os.WriteFile(archivePath, buildMinimalArchive([]byte{1}), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}

	manifestPath := writeManifest(t, dir, `
[[target]]
vendor = "nvidia"
architecture = "ampere"
keyval_dwords = 1
path = "sample.rdxt"
`)

	set, err := Open(manifestPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer set.Close()

	key := Key{Vendor: "nvidia", Architecture: "ampere", KeyvalDwords: 1}

	if err := os.WriteFile(archivePath, buildMinimalArchive([]byte{1, 2, 3, 4, 5, 6}), 0o644); err != nil {
		t.Fatalf("rewriting archive: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		a, ok := set.Get(key)
		if ok && len(mustEntry(t, a)) == 6 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("archive was not reloaded after write")
}

func mustEntry(t *testing.T, a interface {
	Entry(int) ([]byte, error)
}) []byte {
	t.Helper()
	e, err := a.Entry(0)
	if err != nil {
		t.Fatalf("Entry(0): %v", err)
	}
	return e
}
