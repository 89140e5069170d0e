package archive

import (
	"encoding/binary"
	"testing"
)

// buildArchive assembles a minimal container with the given entry payloads.
func buildArchive(entries [][]byte) []byte {
	var table []byte
	var payload []byte
	offset := uint64(0)
	for _, e := range entries {
		rec := make([]byte, 16)
		binary.LittleEndian.PutUint64(rec[0:8], offset)
		binary.LittleEndian.PutUint64(rec[8:16], uint64(len(e)))
		table = append(table, rec...)
		payload = append(payload, e...)
		offset += uint64(len(e))
	}

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(entries)))

	out := append(header, table...)
	out = append(out, payload...)
	return out
}

func TestOpenRoundTrip(t *testing.T) {
	raw := buildArchive([][]byte{
		{0xAA, 0xBB, 0xCC},
		{0x01, 0x02, 0x03, 0x04, 0x05},
	})

	a, err := Open(raw)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}

	e0, err := a.Entry(0)
	if err != nil {
		t.Fatalf("Entry(0): %v", err)
	}
	if len(e0) != 3 || e0[0] != 0xAA {
		t.Fatalf("Entry(0) = %v, want [0xAA 0xBB 0xCC]", e0)
	}

	e1, err := a.Entry(1)
	if err != nil {
		t.Fatalf("Entry(1): %v", err)
	}
	if len(e1) != 5 || e1[4] != 0x05 {
		t.Fatalf("Entry(1) = %v", e1)
	}
}

func TestOpenInvalidMagic(t *testing.T) {
	raw := buildArchive([][]byte{{0x00}})
	raw[0] = 0xFF // corrupt the magic
	if _, err := Open(raw); err != ErrInvalidMagic {
		t.Fatalf("Open() error = %v, want ErrInvalidMagic", err)
	}
}

func TestOpenTruncated(t *testing.T) {
	raw := buildArchive([][]byte{{0x01, 0x02}})
	for _, n := range []int{0, 4, 8, 16, 20} {
		if n > len(raw) {
			continue
		}
		if _, err := Open(raw[:n]); err == nil {
			t.Fatalf("Open(%d bytes) succeeded, want error", n)
		}
	}
}

func TestEntryOutOfRange(t *testing.T) {
	raw := buildArchive([][]byte{{0x01}})
	a, err := Open(raw)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := a.Entry(5); err != ErrEntryOutOfRange {
		t.Fatalf("Entry(5) error = %v, want ErrEntryOutOfRange", err)
	}
}
