package archive

import "encoding/binary"

// TargetMagic is the sentinel value at the start of a target header
// (the payload of archive entry 0), distinct from the container Magic.
const TargetMagic uint32 = 0x52445854 // "RDXT"

// StageConfig carries the per-stage tuning values a target header declares.
// A zero WorkgroupSizeLog2 with fields otherwise populated is never valid;
// a zero SubgroupSizeLog2 means the stage has no required-subgroup-size
// constraint, and a zero BlockRows means the stage does not process
// multiple rows per invocation.
type StageConfig struct {
	WorkgroupSizeLog2 uint32
	SubgroupSizeLog2  uint32
	BlockRows         uint32
}

const stageConfigSize = 12 // three little-endian uint32 fields

func decodeStageConfig(b []byte) StageConfig {
	return StageConfig{
		WorkgroupSizeLog2: binary.LittleEndian.Uint32(b[0:4]),
		SubgroupSizeLog2:  binary.LittleEndian.Uint32(b[4:8]),
		BlockRows:         binary.LittleEndian.Uint32(b[8:12]),
	}
}

// flagIndirect marks that a target header carries init/fill stage records
// and therefore supports indirect dispatch.
const flagIndirect uint32 = 1 << 0

// Config is the target header's configuration record: the keyval width and
// one StageConfig per pipeline stage the target declares.
type Config struct {
	KeyvalDwords uint32 // 1 (32-bit keyvals) or 2 (64-bit keyvals)
	HasIndirect  bool

	Histogram StageConfig
	Prefix    StageConfig
	Scatter   StageConfig
	Init      StageConfig // zero value unless HasIndirect
	Fill      StageConfig // zero value unless HasIndirect
}

// KeyvalBytes returns the byte width of one keyval: 4 or 8.
func (c Config) KeyvalBytes() uint32 {
	return c.KeyvalDwords * 4
}

// Header is a decoded target header: the fixed-order record carried in
// archive entry 0, describing the device capabilities and per-stage tuning
// a compiled target requires.
type Header struct {
	Magic      uint32
	Extensions Bitmap
	Features   Bitmap
	Config     Config
}

// DecodeHeader decodes a target header from the raw bytes of archive
// entry 0.
func DecodeHeader(payload []byte) (*Header, error) {
	if len(payload) < 4 {
		return nil, ErrTruncated
	}
	magic := binary.LittleEndian.Uint32(payload[0:4])
	if magic != TargetMagic {
		return nil, ErrInvalidMagic
	}
	off := 4

	extWords := (len(ExtensionIdentifiers) + 31) / 32
	extBytes := extWords * 4
	if len(payload) < off+extBytes {
		return nil, ErrTruncated
	}
	extensions := make(Bitmap, extWords)
	for i := 0; i < extWords; i++ {
		extensions[i] = binary.LittleEndian.Uint32(payload[off+i*4:])
	}
	off += extBytes

	featureCount := len(Features10Names) + len(Features11Names) + len(Features12Names)
	featWords := (featureCount + 31) / 32
	featBytes := featWords * 4
	if len(payload) < off+featBytes {
		return nil, ErrTruncated
	}
	features := make(Bitmap, featWords)
	for i := 0; i < featWords; i++ {
		features[i] = binary.LittleEndian.Uint32(payload[off+i*4:])
	}
	off += featBytes

	if len(payload) < off+8 {
		return nil, ErrTruncated
	}
	keyvalDwords := binary.LittleEndian.Uint32(payload[off:])
	flags := binary.LittleEndian.Uint32(payload[off+4:])
	off += 8

	cfg := Config{
		KeyvalDwords: keyvalDwords,
		HasIndirect:  flags&flagIndirect != 0,
	}

	need := 3 * stageConfigSize
	if cfg.HasIndirect {
		need += 2 * stageConfigSize
	}
	if len(payload) < off+need {
		return nil, ErrTruncated
	}

	cfg.Histogram = decodeStageConfig(payload[off:])
	off += stageConfigSize
	cfg.Prefix = decodeStageConfig(payload[off:])
	off += stageConfigSize
	cfg.Scatter = decodeStageConfig(payload[off:])
	off += stageConfigSize
	if cfg.HasIndirect {
		cfg.Init = decodeStageConfig(payload[off:])
		off += stageConfigSize
		cfg.Fill = decodeStageConfig(payload[off:])
		off += stageConfigSize
	}

	return &Header{
		Magic:      magic,
		Extensions: extensions,
		Features:   features,
		Config:     cfg,
	}, nil
}
