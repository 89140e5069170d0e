package engine

import (
	"testing"
	"unsafe"

	"github.com/darkace1998/vkradixsort/archive"
	"github.com/darkace1998/vkradixsort/vulkan"
)

// fakeRecorder captures the command shape the sequencer produces without
// touching a real device.
type fakeRecorder struct {
	binds             []vulkan.Pipeline
	pushes            []pushCall
	fills             []fillCall
	barrierCount      int
	dispatches        []dispatchCall
	dispatchIndirects []dispatchIndirectCall
	timestamps        int
}

type pushCall struct {
	layout vulkan.PipelineLayout
	offset uint32
	data   []byte
}

type fillCall struct {
	buf    vulkan.Buffer
	offset vulkan.DeviceSize
	size   vulkan.DeviceSize
	value  uint32
}

type dispatchCall struct{ x, y, z uint32 }

type dispatchIndirectCall struct {
	buf    vulkan.Buffer
	offset vulkan.DeviceSize
}

func (f *fakeRecorder) bindPipeline(_ vulkan.CommandBuffer, p vulkan.Pipeline) {
	f.binds = append(f.binds, p)
}
func (f *fakeRecorder) pushConstants(_ vulkan.CommandBuffer, l vulkan.PipelineLayout, offset uint32, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	f.pushes = append(f.pushes, pushCall{layout: l, offset: offset, data: cp})
}
func (f *fakeRecorder) fillBuffer(_ vulkan.CommandBuffer, buf vulkan.Buffer, offset, size vulkan.DeviceSize, value uint32) {
	f.fills = append(f.fills, fillCall{buf, offset, size, value})
}
func (f *fakeRecorder) barrier(_ vulkan.CommandBuffer, _, _ vulkan.PipelineStageFlags, _, _ vulkan.AccessFlags) {
	f.barrierCount++
}
func (f *fakeRecorder) dispatch(_ vulkan.CommandBuffer, x, y, z uint32) {
	f.dispatches = append(f.dispatches, dispatchCall{x, y, z})
}
func (f *fakeRecorder) dispatchIndirect(_ vulkan.CommandBuffer, buf vulkan.Buffer, offset vulkan.DeviceSize) {
	f.dispatchIndirects = append(f.dispatchIndirects, dispatchIndirectCall{buf, offset})
}
func (f *fakeRecorder) writeTimestamp(_ vulkan.CommandBuffer, _ vulkan.PipelineStageFlags, _ vulkan.QueryPool, _ uint32) {
	f.timestamps++
}

// testEngine builds an *Engine directly, bypassing Create, with enough
// distinct fake pipeline/layout handles to exercise bind/push bookkeeping.
func testEngine(keyvalDwords uint32, hasIndirect bool) *Engine {
	stage := archive.StageConfig{WorkgroupSizeLog2: 6, SubgroupSizeLog2: 0, BlockRows: 1}
	cfg := archive.Config{
		KeyvalDwords: keyvalDwords,
		HasIndirect:  hasIndirect,
		Histogram:    stage,
		Prefix:       stage,
		Scatter:      stage,
	}
	if hasIndirect {
		cfg.Init = stage
		cfg.Fill = stage
	}

	layout := pipelineLayout{hasIndirect: hasIndirect, keyvalDwords: keyvalDwords}
	n := layout.count()

	pool := make([]int, n*2)
	pipelines := make([]vulkan.Pipeline, n)
	layouts := make([]vulkan.PipelineLayout, n)
	for i := 0; i < n; i++ {
		pipelines[i] = vulkan.Pipeline(unsafe.Pointer(&pool[i*2]))
		layouts[i] = vulkan.PipelineLayout(unsafe.Pointer(&pool[i*2+1]))
	}

	keyvalBytes := vulkan.DeviceSize(layout.keyvalBytes())
	return &Engine{
		config:          cfg,
		layout:          layout,
		pipelines:       pipelines,
		pipelineLayouts: layouts,
		internal: internalLayout{
			histogramsOffset: 0,
			histogramsRange:  keyvalBytes * RadixSize * 4,
			partitionsOffset: keyvalBytes * RadixSize * 4,
		},
	}
}

// bufViewCapacity is large enough that no scenario in this file ever trips
// the sequencer's buffer-size precondition check.
const bufViewCapacity = vulkan.DeviceSize(1) << 40

func bufView(n int) BufferView {
	pool := make([]int, 1)
	return BufferView{
		Buffer:     vulkan.Buffer(unsafe.Pointer(&pool[0])),
		Size:       bufViewCapacity,
		DeviceAddr: vulkan.DeviceAddress(n * 0x1000),
	}
}

func TestSortEarlyExitCountLE1(t *testing.T) {
	e := testEngine(1, false)
	rec := &fakeRecorder{}
	info := &SortInfo{KeyBits: 32, Count: 1, KeyvalsEven: bufView(1), KeyvalsOdd: bufView(2), Internal: bufView(3)}

	out, err := e.sort(rec, nil, info)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if out.Sorted != info.KeyvalsEven {
		t.Fatalf("Sorted = %+v, want KeyvalsEven", out.Sorted)
	}
	if len(rec.dispatches) != 0 || len(rec.fills) != 0 || rec.barrierCount != 0 {
		t.Fatalf("early exit recorded commands: %+v", rec)
	}
}

func TestSortEarlyExitKeyBitsZero(t *testing.T) {
	e := testEngine(1, false)
	rec := &fakeRecorder{}
	info := &SortInfo{KeyBits: 0, Count: 1024, KeyvalsEven: bufView(1), KeyvalsOdd: bufView(2), Internal: bufView(3)}

	out, err := e.sort(rec, nil, info)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if out.Sorted != info.KeyvalsEven {
		t.Fatalf("Sorted = %+v, want KeyvalsEven", out.Sorted)
	}
	if len(rec.dispatches) != 0 {
		t.Fatalf("key_bits=0 recorded dispatches: %+v", rec.dispatches)
	}
}

// S1: 32-bit, count=2, key_bits=32 -> passes=4 (even) -> sorted extent even.
func TestSortScenarioS1Shape(t *testing.T) {
	e := testEngine(1, false)
	rec := &fakeRecorder{}
	info := &SortInfo{KeyBits: 32, Count: 2, KeyvalsEven: bufView(1), KeyvalsOdd: bufView(2), Internal: bufView(3)}

	out, err := e.sort(rec, nil, info)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if out.Sorted != info.KeyvalsEven {
		t.Fatalf("Sorted = %+v, want KeyvalsEven (passes=4 is even)", out.Sorted)
	}

	const passes = 4
	if len(rec.dispatches) != passes+2 { // histogram + prefix + one per pass
		t.Fatalf("dispatch count = %d, want %d", len(rec.dispatches), passes+2)
	}
	if rec.barrierCount != 3+(passes-1) {
		t.Fatalf("barrier count = %d, want %d", rec.barrierCount, 3+(passes-1))
	}
}

// S3: 32-bit, count=1024, key_bits=8 -> passes=1 (odd) -> sorted extent odd.
func TestSortScenarioS3Shape(t *testing.T) {
	e := testEngine(1, false)
	rec := &fakeRecorder{}
	info := &SortInfo{KeyBits: 8, Count: 1024, KeyvalsEven: bufView(1), KeyvalsOdd: bufView(2), Internal: bufView(3)}

	out, err := e.sort(rec, nil, info)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if out.Sorted != info.KeyvalsOdd {
		t.Fatalf("Sorted = %+v, want KeyvalsOdd (passes=1 is odd)", out.Sorted)
	}
	// One histogram + one prefix + one scatter dispatch; no barriers inside
	// the scatter loop since passes-1 == 0, but the three pre-scatter
	// barriers still fire.
	if len(rec.dispatches) != 3 {
		t.Fatalf("dispatch count = %d, want 3", len(rec.dispatches))
	}
	if rec.barrierCount != 3 {
		t.Fatalf("barrier count = %d, want 3", rec.barrierCount)
	}
}

// S4: 64-bit, count=3, key_bits=64 -> passes=8 (even) -> sorted extent even.
func TestSortScenarioS4Shape(t *testing.T) {
	e := testEngine(2, false)
	rec := &fakeRecorder{}
	info := &SortInfo{KeyBits: 64, Count: 3, KeyvalsEven: bufView(1), KeyvalsOdd: bufView(2), Internal: bufView(3)}

	out, err := e.sort(rec, nil, info)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if out.Sorted != info.KeyvalsEven {
		t.Fatalf("Sorted = %+v, want KeyvalsEven (passes=8 is even)", out.Sorted)
	}
	const passes = 8
	if len(rec.dispatches) != passes+2 {
		t.Fatalf("dispatch count = %d, want %d", len(rec.dispatches), passes+2)
	}
}

func TestSortIndirectRequiresIndirectTarget(t *testing.T) {
	e := testEngine(1, false)
	rec := &fakeRecorder{}
	_, err := e.sortIndirect(rec, nil, &SortIndirectInfo{KeyBits: 32})
	if err != ErrIndirectUnsupported {
		t.Fatalf("err = %v, want ErrIndirectUnsupported", err)
	}
}

func TestSortIndirectShape(t *testing.T) {
	e := testEngine(1, true)
	rec := &fakeRecorder{}
	info := &SortIndirectInfo{
		KeyBits:     32,
		CountBuffer: bufView(1),
		KeyvalsEven: bufView(2),
		KeyvalsOdd:  bufView(3),
		Internal:    bufView(4),
		Indirect:    bufView(5),
	}

	out, err := e.sortIndirect(rec, nil, info)
	if err != nil {
		t.Fatalf("sortIndirect: %v", err)
	}
	if out.Sorted != info.KeyvalsEven {
		t.Fatalf("Sorted = %+v, want KeyvalsEven", out.Sorted)
	}
	// init (direct) + pad + zero indirect + histogram indirect + scatter*passes indirect
	const passes = 4
	if len(rec.dispatchIndirects) != 2+1+passes { // pad, zero, histogram, scatter*passes
		t.Fatalf("indirect dispatch count = %d, want %d", len(rec.dispatchIndirects), 2+1+passes)
	}
	if len(rec.dispatches) != 2 { // init dispatch(1,1,1) + prefix dispatch(passes,1,1)
		t.Fatalf("direct dispatch count = %d, want 2", len(rec.dispatches))
	}
}

func TestMemoryRequirementsZeroCount(t *testing.T) {
	e := testEngine(1, false)
	req := e.MemoryRequirements(0)
	if req.KeyvalsSize != 0 || req.InternalSize != 0 {
		t.Fatalf("sizes not zero: %+v", req)
	}
	if req.KeyvalsAlignment == 0 || req.InternalAlignment == 0 {
		t.Fatalf("alignments zero: %+v", req)
	}
}

func TestMemoryRequirementsNonzeroCount(t *testing.T) {
	e := testEngine(1, false)
	req := e.MemoryRequirements(1024)
	keyvalBytes := vulkan.DeviceSize(e.layout.keyvalBytes())
	if req.KeyvalsSize%req.KeyvalsAlignment != 0 {
		t.Fatalf("KeyvalsSize %d not a multiple of alignment %d", req.KeyvalsSize, req.KeyvalsAlignment)
	}
	if req.InternalSize < keyvalBytes*RadixSize*4 {
		t.Fatalf("InternalSize %d below minimum %d", req.InternalSize, keyvalBytes*RadixSize*4)
	}
	if !isPowerOfTwo(uint64(req.KeyvalsAlignment)) || !isPowerOfTwo(uint64(req.InternalAlignment)) {
		t.Fatalf("alignments not powers of two: %+v", req)
	}
}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}
