package engine

import "github.com/darkace1998/vkradixsort/vulkan"

// BufferView is a caller-owned buffer region: the Vulkan buffer handle and
// byte offset used for buffer commands (fill, copy), plus the device
// address snapshot used for push constants. The engine never allocates,
// binds, or frees these; it only reads the fields during recording.
type BufferView struct {
	Buffer     vulkan.Buffer
	Offset     vulkan.DeviceSize
	Size       vulkan.DeviceSize
	DeviceAddr vulkan.DeviceAddress
}

// Extension is one link of the optional extension chain threaded through a
// sort. The only recognized concrete type today is *TimestampExtension;
// unrecognized types are simply types this package does not switch on, and
// are ignored rather than rejected. Modeled as a Go sum type — an
// unexported marker method plus a type switch at the call site — in place
// of the self-referential {next, type} record a C binding would use.
type Extension interface {
	isExtension()
}

// TimestampExtension asks the sequencer to write a GPU timestamp into
// QueryPool before each logical stage boundary, as long as NextIndex is
// below Capacity. NextIndex is mutated by the sequencer as it consumes
// slots; it is not safe to reuse a TimestampExtension across concurrent
// recordings.
type TimestampExtension struct {
	QueryPool vulkan.QueryPool
	Capacity  uint32
	NextIndex uint32
}

func (*TimestampExtension) isExtension() {}

// SortInfo describes one direct-form sort.
type SortInfo struct {
	Ext         []Extension
	KeyBits     uint32
	Count       uint32
	KeyvalsEven BufferView
	KeyvalsOdd  BufferView
	Internal    BufferView
}

// SortIndirectInfo describes one indirect-form sort: Count is unknown
// host-side and is read from CountBuffer at execution time.
type SortIndirectInfo struct {
	Ext         []Extension
	KeyBits     uint32
	CountBuffer BufferView
	KeyvalsEven BufferView
	KeyvalsOdd  BufferView
	Internal    BufferView
	Indirect    BufferView
}

// SortedDescriptor names which buffer view the sort left its output in.
type SortedDescriptor struct {
	Sorted BufferView
}

func timestampStage(ext []Extension, cmd vulkan.CommandBuffer, rec recorder, stage vulkan.PipelineStageFlags) {
	for _, e := range ext {
		ts, ok := e.(*TimestampExtension)
		if !ok {
			continue
		}
		if ts.NextIndex >= ts.Capacity {
			continue
		}
		rec.writeTimestamp(cmd, stage, ts.QueryPool, ts.NextIndex)
		ts.NextIndex++
	}
}
