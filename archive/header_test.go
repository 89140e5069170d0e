package archive

import (
	"encoding/binary"
	"testing"
)

func putU32(b []byte, v uint32) []byte {
	word := make([]byte, 4)
	binary.LittleEndian.PutUint32(word, v)
	return append(b, word...)
}

func putStage(b []byte, s StageConfig) []byte {
	b = putU32(b, s.WorkgroupSizeLog2)
	b = putU32(b, s.SubgroupSizeLog2)
	b = putU32(b, s.BlockRows)
	return b
}

func buildHeaderPayload(extBits, featBits []int, cfg Config) []byte {
	var b []byte
	b = putU32(b, TargetMagic)

	extWords := (len(ExtensionIdentifiers) + 31) / 32
	ext := make(Bitmap, extWords)
	for _, bit := range extBits {
		ext.Set(bit)
	}
	for _, w := range ext {
		b = putU32(b, w)
	}

	featCount := len(Features10Names) + len(Features11Names) + len(Features12Names)
	featWords := (featCount + 31) / 32
	feat := make(Bitmap, featWords)
	for _, bit := range featBits {
		feat.Set(bit)
	}
	for _, w := range feat {
		b = putU32(b, w)
	}

	flags := uint32(0)
	if cfg.HasIndirect {
		flags = flagIndirect
	}
	b = putU32(b, cfg.KeyvalDwords)
	b = putU32(b, flags)
	b = putStage(b, cfg.Histogram)
	b = putStage(b, cfg.Prefix)
	b = putStage(b, cfg.Scatter)
	if cfg.HasIndirect {
		b = putStage(b, cfg.Init)
		b = putStage(b, cfg.Fill)
	}
	return b
}

func TestDecodeHeaderDirect(t *testing.T) {
	cfg := Config{
		KeyvalDwords: 1,
		Histogram:    StageConfig{WorkgroupSizeLog2: 8, SubgroupSizeLog2: 5, BlockRows: 4},
		Prefix:       StageConfig{WorkgroupSizeLog2: 8, SubgroupSizeLog2: 5},
		Scatter:      StageConfig{WorkgroupSizeLog2: 8, SubgroupSizeLog2: 5, BlockRows: 4},
	}
	payload := buildHeaderPayload([]int{0, 1}, []int{2}, cfg)

	h, err := DecodeHeader(payload)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if h.Magic != TargetMagic {
		t.Fatalf("Magic = %#x", h.Magic)
	}
	if h.Config.HasIndirect {
		t.Fatalf("HasIndirect = true, want false")
	}
	if h.Config.KeyvalDwords != 1 {
		t.Fatalf("KeyvalDwords = %d, want 1", h.Config.KeyvalDwords)
	}
	if h.Config.Histogram != cfg.Histogram {
		t.Fatalf("Histogram = %+v, want %+v", h.Config.Histogram, cfg.Histogram)
	}
	if h.Extensions.PopCount() != 2 {
		t.Fatalf("Extensions.PopCount() = %d, want 2", h.Extensions.PopCount())
	}
	names := h.Extensions.Names(ExtensionIdentifiers)
	if len(names) != 2 || names[0] != "KHR_buffer_device_address" {
		t.Fatalf("Extensions.Names() = %v", names)
	}
}

func TestDecodeHeaderIndirect(t *testing.T) {
	cfg := Config{
		KeyvalDwords: 2,
		HasIndirect:  true,
		Histogram:    StageConfig{WorkgroupSizeLog2: 8, SubgroupSizeLog2: 5, BlockRows: 4},
		Prefix:       StageConfig{WorkgroupSizeLog2: 8},
		Scatter:      StageConfig{WorkgroupSizeLog2: 8, SubgroupSizeLog2: 5, BlockRows: 4},
		Init:         StageConfig{WorkgroupSizeLog2: 6},
		Fill:         StageConfig{WorkgroupSizeLog2: 6},
	}
	payload := buildHeaderPayload(nil, nil, cfg)

	h, err := DecodeHeader(payload)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if !h.Config.HasIndirect {
		t.Fatalf("HasIndirect = false, want true")
	}
	if h.Config.KeyvalBytes() != 8 {
		t.Fatalf("KeyvalBytes() = %d, want 8", h.Config.KeyvalBytes())
	}
	if h.Config.Init.WorkgroupSizeLog2 != 6 || h.Config.Fill.WorkgroupSizeLog2 != 6 {
		t.Fatalf("Init/Fill = %+v / %+v", h.Config.Init, h.Config.Fill)
	}
}

func TestDecodeHeaderInvalidMagic(t *testing.T) {
	payload := buildHeaderPayload(nil, nil, Config{KeyvalDwords: 1})
	payload[0] ^= 0xFF
	if _, err := DecodeHeader(payload); err != ErrInvalidMagic {
		t.Fatalf("DecodeHeader() error = %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeHeaderTruncated(t *testing.T) {
	payload := buildHeaderPayload(nil, nil, Config{KeyvalDwords: 1, HasIndirect: true})
	if _, err := DecodeHeader(payload[:len(payload)-1]); err != ErrTruncated {
		t.Fatalf("DecodeHeader() error = %v, want ErrTruncated", err)
	}
}
