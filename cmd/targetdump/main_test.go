package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func buildTestArchive(t *testing.T) string {
	t.Helper()

	stage := make([]byte, 12)
	binary.LittleEndian.PutUint32(stage[0:4], 6)
	binary.LittleEndian.PutUint32(stage[4:8], 0)
	binary.LittleEndian.PutUint32(stage[8:12], 1)

	header := make([]byte, 0, 128)
	header = binary.LittleEndian.AppendUint32(header, 0x52445854) // target magic
	header = binary.LittleEndian.AppendUint32(header, 0)          // extensions word
	header = binary.LittleEndian.AppendUint32(header, 0)          // features word
	header = binary.LittleEndian.AppendUint32(header, 1)          // keyval_dwords
	header = binary.LittleEndian.AppendUint32(header, 0)          // flags: no indirect
	header = append(header, stage...)                             // histogram
	header = append(header, stage...)                             // prefix
	header = append(header, stage...)                             // scatter

	magic := make([]byte, 8)
	binary.LittleEndian.PutUint32(magic[0:4], 0x54475254)
	binary.LittleEndian.PutUint32(magic[4:8], 1)

	rec := make([]byte, 16)
	binary.LittleEndian.PutUint64(rec[0:8], 0)
	binary.LittleEndian.PutUint64(rec[8:16], uint64(len(header)))

	raw := append(magic, rec...)
	raw = append(raw, header...)

	path := filepath.Join(t.TempDir(), "target.rdxt")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
	return path
}

func TestRunTextAndJSON(t *testing.T) {
	path := buildTestArchive(t)

	if err := run(path, 1024, false, false); err != nil {
		t.Fatalf("run (text): %v", err)
	}
	if err := run(path, 1024, true, false); err != nil {
		t.Fatalf("run (json): %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "nope.rdxt"), 0, false, false); err == nil {
		t.Fatal("expected error for missing file")
	}
}
