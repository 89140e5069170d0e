// Package archive decodes the target-archive container format: a small,
// self-contained binary blob holding a target header and its compiled
// SPIR-V modules, in the order the dispatch sequencer issues them.
package archive

import "encoding/binary"

// Magic is the container format's magic number, the first four bytes of
// every archive.
const Magic uint32 = 0x54475254

// entryRecordSize is the byte size of one {offset:u64, size:u64} entry.
const entryRecordSize = 16

// Archive is a decoded target archive: a magic-tagged header followed by
// an entry table and a payload region. Entry 0 holds the target header
// (see DecodeHeader); entries 1..Count()-1 hold SPIR-V modules in pipeline
// order.
type Archive struct {
	data    []byte
	offsets []uint64
	sizes   []uint64
	payload []byte
}

// Open parses the container format out of data. It validates the magic
// number and the entry table but does not inspect entry payloads.
func Open(data []byte) (*Archive, error) {
	if len(data) < 8 {
		return nil, ErrTruncated
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != Magic {
		return nil, ErrInvalidMagic
	}
	count := binary.LittleEndian.Uint32(data[4:8])

	tableStart := 8
	tableEnd := tableStart + int(count)*entryRecordSize
	if tableEnd < tableStart || len(data) < tableEnd {
		return nil, ErrTruncated
	}

	offsets := make([]uint64, count)
	sizes := make([]uint64, count)
	for i := uint32(0); i < count; i++ {
		rec := data[tableStart+int(i)*entryRecordSize:]
		offsets[i] = binary.LittleEndian.Uint64(rec[0:8])
		sizes[i] = binary.LittleEndian.Uint64(rec[8:16])
	}

	payload := data[tableEnd:]
	for i := uint32(0); i < count; i++ {
		end := offsets[i] + sizes[i]
		if end < offsets[i] || end > uint64(len(payload)) {
			return nil, ErrTruncated
		}
	}

	return &Archive{
		data:    data,
		offsets: offsets,
		sizes:   sizes,
		payload: payload,
	}, nil
}

// Count returns the number of entries in the archive.
func (a *Archive) Count() int {
	return len(a.offsets)
}

// Entry returns the raw bytes of entry i. Entry 0 is the target header;
// entries 1..Count()-1 are SPIR-V modules in pipeline order.
func (a *Archive) Entry(i int) ([]byte, error) {
	if i < 0 || i >= len(a.offsets) {
		return nil, ErrEntryOutOfRange
	}
	return a.payload[a.offsets[i] : a.offsets[i]+a.sizes[i]], nil
}
