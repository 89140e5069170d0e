package capability

import (
	"testing"

	"github.com/darkace1998/vkradixsort/archive"
)

func headerWith(extBits []int, featBits []int) *archive.Header {
	extWords := (len(archive.ExtensionIdentifiers) + 31) / 32
	ext := make(archive.Bitmap, extWords)
	for _, b := range extBits {
		ext.Set(b)
	}

	featCount := len(archive.Features10Names) + len(archive.Features11Names) + len(archive.Features12Names)
	featWords := (featCount + 31) / 32
	feat := make(archive.Bitmap, featWords)
	for _, b := range featBits {
		feat.Set(b)
	}

	return &archive.Header{
		Extensions: ext,
		Features:   feat,
		Config:     archive.Config{KeyvalDwords: 1},
	}
}

func TestGetRequirementsSizeThenFill(t *testing.T) {
	h := headerWith([]int{0, 1}, []int{0, len(archive.Features10Names) + len(archive.Features11Names)})

	req := &Requirements{}
	ok, err := GetRequirements(h, req)
	if err != nil {
		t.Fatalf("size call: %v", err)
	}
	if ok {
		t.Fatalf("size call ok = true, want false (nonzero count)")
	}
	if req.ExtNameCount != 2 {
		t.Fatalf("ExtNameCount = %d, want 2", req.ExtNameCount)
	}

	req.ExtNames = make([]string, req.ExtNameCount)
	req.PDF = &PDF10{}
	req.PDF11 = &PDF11{}
	req.PDF12 = &PDF12{}

	ok, err = GetRequirements(h, req)
	if err != nil {
		t.Fatalf("fill call: %v", err)
	}
	if !ok {
		t.Fatalf("fill call ok = false, want true")
	}
	if len(req.ExtNames) != 2 || req.ExtNames[0] != "VK_KHR_buffer_device_address" {
		t.Fatalf("ExtNames = %v", req.ExtNames)
	}
	if !req.PDF.ShaderInt64 {
		t.Fatalf("PDF.ShaderInt64 = false, want true")
	}
	if !req.PDF12.BufferDeviceAddress {
		t.Fatalf("PDF12.BufferDeviceAddress = false, want true")
	}
}

func TestGetRequirementsEmptyTargetSizesTrue(t *testing.T) {
	h := headerWith(nil, nil)
	req := &Requirements{}
	ok, err := GetRequirements(h, req)
	if err != nil {
		t.Fatalf("size call: %v", err)
	}
	if !ok {
		t.Fatalf("ok = false, want true for zero-extension target")
	}
}

func TestGetRequirementsInsufficientBuffer(t *testing.T) {
	h := headerWith([]int{0, 1}, nil)
	req := &Requirements{ExtNames: make([]string, 1)}
	ok, err := GetRequirements(h, req)
	if err != ErrInsufficientBuffer {
		t.Fatalf("err = %v, want ErrInsufficientBuffer", err)
	}
	if ok {
		t.Fatalf("ok = true, want false")
	}
}

func TestGetRequirementsNilArguments(t *testing.T) {
	if _, err := GetRequirements(nil, &Requirements{}); err != ErrInvalidArgument {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if _, err := GetRequirements(headerWith(nil, nil), nil); err != ErrInvalidArgument {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestGetRequirementsMissingFeatureStructs(t *testing.T) {
	h := headerWith([]int{0}, nil)
	req := &Requirements{ExtNames: make([]string, 1)}
	ok, err := GetRequirements(h, req)
	if err != ErrInvalidArgument {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if ok {
		t.Fatalf("ok = true, want false")
	}
}

func TestGetRequirementsIdempotent(t *testing.T) {
	h := headerWith([]int{2}, nil)
	req := &Requirements{}
	GetRequirements(h, req)
	req.ExtNames = make([]string, req.ExtNameCount)
	req.PDF, req.PDF11, req.PDF12 = &PDF10{}, &PDF11{}, &PDF12{}

	first, err := GetRequirements(h, req)
	if err != nil {
		t.Fatalf("first fill: %v", err)
	}
	second, err := GetRequirements(h, req)
	if err != nil {
		t.Fatalf("second fill: %v", err)
	}
	if first != second || len(req.ExtNames) != 1 {
		t.Fatalf("not idempotent: first=%v second=%v names=%v", first, second, req.ExtNames)
	}
}
