package engine

import "github.com/darkace1998/vkradixsort/vulkan"

// recorder is the seam between the dispatch sequencer and the Vulkan
// command-buffer API. vulkanRecorder is the real implementation; tests use
// a fake that records calls instead of touching a GPU, so the sequencer's
// command shape (barrier/dispatch/push counts) can be asserted without a
// device.
type recorder interface {
	bindPipeline(cmd vulkan.CommandBuffer, pipeline vulkan.Pipeline)
	pushConstants(cmd vulkan.CommandBuffer, layout vulkan.PipelineLayout, offset uint32, data []byte)
	fillBuffer(cmd vulkan.CommandBuffer, buf vulkan.Buffer, offset, size vulkan.DeviceSize, value uint32)
	barrier(cmd vulkan.CommandBuffer, src, dst vulkan.PipelineStageFlags, srcAccess, dstAccess vulkan.AccessFlags)
	dispatch(cmd vulkan.CommandBuffer, x, y, z uint32)
	dispatchIndirect(cmd vulkan.CommandBuffer, buf vulkan.Buffer, offset vulkan.DeviceSize)
	writeTimestamp(cmd vulkan.CommandBuffer, stage vulkan.PipelineStageFlags, pool vulkan.QueryPool, query uint32)
}

// vulkanRecorder issues real Vulkan commands via the vulkan package.
type vulkanRecorder struct{}

func (vulkanRecorder) bindPipeline(cmd vulkan.CommandBuffer, pipeline vulkan.Pipeline) {
	vulkan.CmdBindPipeline(cmd, vulkan.PipelineBindPointCompute, pipeline)
}

func (vulkanRecorder) pushConstants(cmd vulkan.CommandBuffer, layout vulkan.PipelineLayout, offset uint32, data []byte) {
	vulkan.CmdPushConstants(cmd, layout, vulkan.ShaderStageComputeBit, offset, data)
}

func (vulkanRecorder) fillBuffer(cmd vulkan.CommandBuffer, buf vulkan.Buffer, offset, size vulkan.DeviceSize, value uint32) {
	vulkan.CmdFillBuffer(cmd, buf, offset, size, value)
}

func (vulkanRecorder) barrier(cmd vulkan.CommandBuffer, src, dst vulkan.PipelineStageFlags, srcAccess, dstAccess vulkan.AccessFlags) {
	vulkan.CmdPipelineBarrier(cmd, src, dst, []vulkan.MemoryBarrier{{SrcAccessMask: srcAccess, DstAccessMask: dstAccess}})
}

func (vulkanRecorder) dispatch(cmd vulkan.CommandBuffer, x, y, z uint32) {
	vulkan.CmdDispatch(cmd, x, y, z)
}

func (vulkanRecorder) dispatchIndirect(cmd vulkan.CommandBuffer, buf vulkan.Buffer, offset vulkan.DeviceSize) {
	vulkan.CmdDispatchIndirect(cmd, buf, offset)
}

func (vulkanRecorder) writeTimestamp(cmd vulkan.CommandBuffer, stage vulkan.PipelineStageFlags, pool vulkan.QueryPool, query uint32) {
	vulkan.CmdWriteTimestamp(cmd, stage, pool, query)
}
