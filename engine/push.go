package engine

import "encoding/binary"

// Push-constant byte layouts, matching the fixed field order each stage's
// shader contract declares. Encoded explicitly with encoding/binary rather
// than cast from a Go struct so the wire layout never depends on compiler
// padding.

const (
	histogramPushSize = 8 + 8 + 4 // devaddr_histograms, devaddr_keyvals, passes
	prefixPushSize    = 8         // devaddr_histograms
	scatterPushSize   = 8 + 8 + 8 + 8 + 4
	initPushSize      = 8 + 8 + 4
	fillPushSize      = 8 + 8 + 4
)

func encodeHistogramPush(devaddrHistograms, devaddrKeyvals uint64, passes uint32) []byte {
	b := make([]byte, histogramPushSize)
	binary.LittleEndian.PutUint64(b[0:8], devaddrHistograms)
	binary.LittleEndian.PutUint64(b[8:16], devaddrKeyvals)
	binary.LittleEndian.PutUint32(b[16:20], passes)
	return b
}

func encodePrefixPush(devaddrHistograms uint64) []byte {
	b := make([]byte, prefixPushSize)
	binary.LittleEndian.PutUint64(b[0:8], devaddrHistograms)
	return b
}

// scatterPush mirrors the full scatter push-constant struct. The dispatch
// sequencer only re-pushes the devaddr_histograms..pass_offset tail on
// subsequent passes (a partial push); encodeScatterPush always produces
// the whole struct and encodeScatterPushTail encodes just that trailing part
// on its own.
type scatterPush struct {
	DevaddrKeyvalsEven uint64
	DevaddrKeyvalsOdd  uint64
	DevaddrPartitions  uint64
	DevaddrHistograms  uint64
	PassOffset         uint32
}

const scatterTailOffset = 8 + 8 + 8 // after the two keyval addrs and partitions addr
const scatterTailSize = scatterPushSize - scatterTailOffset

func encodeScatterPush(p scatterPush) []byte {
	b := make([]byte, scatterPushSize)
	binary.LittleEndian.PutUint64(b[0:8], p.DevaddrKeyvalsEven)
	binary.LittleEndian.PutUint64(b[8:16], p.DevaddrKeyvalsOdd)
	binary.LittleEndian.PutUint64(b[16:24], p.DevaddrPartitions)
	binary.LittleEndian.PutUint64(b[24:32], p.DevaddrHistograms)
	binary.LittleEndian.PutUint32(b[32:36], p.PassOffset)
	return b
}

// encodeScatterPushTail encodes only devaddr_histograms and pass_offset, the
// two fields that change between scatter dispatches within one sort.
func encodeScatterPushTail(devaddrHistograms uint64, passOffset uint32) []byte {
	b := make([]byte, scatterTailSize)
	binary.LittleEndian.PutUint64(b[0:8], devaddrHistograms)
	binary.LittleEndian.PutUint32(b[8:12], passOffset)
	return b
}

func encodeInitPush(devaddrInfo, devaddrCount uint64, passes uint32) []byte {
	b := make([]byte, initPushSize)
	binary.LittleEndian.PutUint64(b[0:8], devaddrInfo)
	binary.LittleEndian.PutUint64(b[8:16], devaddrCount)
	binary.LittleEndian.PutUint32(b[16:20], passes)
	return b
}

func encodeFillPush(devaddrInfo, devaddrDwords uint64, dword uint32) []byte {
	b := make([]byte, fillPushSize)
	binary.LittleEndian.PutUint64(b[0:8], devaddrInfo)
	binary.LittleEndian.PutUint64(b[8:16], devaddrDwords)
	binary.LittleEndian.PutUint32(b[16:20], dword)
	return b
}
