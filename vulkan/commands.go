package vulkan

/*
#cgo pkg-config: vulkan
#include <vulkan/vulkan.h>
*/
import "C"

import "unsafe"

// CmdBindPipeline binds a pipeline
func CmdBindPipeline(commandBuffer CommandBuffer, pipelineBindPoint PipelineBindPoint, pipeline Pipeline) {
	C.vkCmdBindPipeline(C.VkCommandBuffer(commandBuffer), C.VkPipelineBindPoint(pipelineBindPoint), C.VkPipeline(pipeline))
}

// BufferCopy describes a buffer copy region
type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

// CmdCopyBuffer copies data between buffers
func CmdCopyBuffer(commandBuffer CommandBuffer, srcBuffer, dstBuffer Buffer, regions []BufferCopy) {
	if len(regions) == 0 {
		return
	}

	cRegions := make([]C.VkBufferCopy, len(regions))
	for i, region := range regions {
		cRegions[i].srcOffset = C.VkDeviceSize(region.SrcOffset)
		cRegions[i].dstOffset = C.VkDeviceSize(region.DstOffset)
		cRegions[i].size = C.VkDeviceSize(region.Size)
	}

	C.vkCmdCopyBuffer(C.VkCommandBuffer(commandBuffer), C.VkBuffer(srcBuffer), C.VkBuffer(dstBuffer), C.uint32_t(len(cRegions)), &cRegions[0])
}

// CmdFillBuffer fills a buffer range with a repeated 32-bit pattern. The
// direct-form sort uses it to pad the tail of a keyval extent and to zero
// the histogram region before the histogram pass.
func CmdFillBuffer(commandBuffer CommandBuffer, dstBuffer Buffer, dstOffset, size DeviceSize, data uint32) {
	C.vkCmdFillBuffer(C.VkCommandBuffer(commandBuffer), C.VkBuffer(dstBuffer), C.VkDeviceSize(dstOffset), C.VkDeviceSize(size), C.uint32_t(data))
}

// MemoryBarrier describes a global memory dependency: memory written via
// SrcAccessMask in the src stages must be visible to DstAccessMask in the
// dst stages before any subsequent command proceeds.
type MemoryBarrier struct {
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

// CmdPipelineBarrier inserts a pipeline barrier. When barriers is non-empty,
// each entry becomes a VkMemoryBarrier; this is the classic (Vulkan 1.0)
// synchronization form used throughout the dispatch sequencer, not
// Synchronization2.
func CmdPipelineBarrier(commandBuffer CommandBuffer, srcStageMask, dstStageMask PipelineStageFlags, barriers []MemoryBarrier) {
	var cBarriers []C.VkMemoryBarrier
	if len(barriers) > 0 {
		cBarriers = make([]C.VkMemoryBarrier, len(barriers))
		for i, b := range barriers {
			cBarriers[i].sType = C.VK_STRUCTURE_TYPE_MEMORY_BARRIER
			cBarriers[i].pNext = nil
			cBarriers[i].srcAccessMask = C.VkAccessFlags(b.SrcAccessMask)
			cBarriers[i].dstAccessMask = C.VkAccessFlags(b.DstAccessMask)
		}
	}

	var pBarriers *C.VkMemoryBarrier
	if len(cBarriers) > 0 {
		pBarriers = &cBarriers[0]
	}

	C.vkCmdPipelineBarrier(
		C.VkCommandBuffer(commandBuffer),
		C.VkPipelineStageFlags(srcStageMask),
		C.VkPipelineStageFlags(dstStageMask),
		0,
		C.uint32_t(len(cBarriers)), pBarriers,
		0, nil,
		0, nil,
	)
}

// CmdPushConstants updates a range of the currently bound pipeline layout's
// push constant storage. data is copied by the driver before this call
// returns, so the caller's slice need not outlive it.
func CmdPushConstants(commandBuffer CommandBuffer, layout PipelineLayout, stageFlags ShaderStageFlags, offset uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	C.vkCmdPushConstants(
		C.VkCommandBuffer(commandBuffer),
		C.VkPipelineLayout(layout),
		C.VkShaderStageFlags(stageFlags),
		C.uint32_t(offset),
		C.uint32_t(len(data)),
		unsafe.Pointer(&data[0]),
	)
}

// CmdDispatch dispatches compute work
func CmdDispatch(commandBuffer CommandBuffer, groupCountX, groupCountY, groupCountZ uint32) {
	C.vkCmdDispatch(C.VkCommandBuffer(commandBuffer), C.uint32_t(groupCountX), C.uint32_t(groupCountY), C.uint32_t(groupCountZ))
}

// CmdDispatchIndirect dispatches compute work with parameters from a buffer
func CmdDispatchIndirect(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize) {
	C.vkCmdDispatchIndirect(C.VkCommandBuffer(commandBuffer), C.VkBuffer(buffer), C.VkDeviceSize(offset))
}

// CmdWriteTimestamp writes a device timestamp into queryPool at query once
// the commands up to pipelineStage have completed. The caller owns the
// query pool's lifetime and is responsible for resetting it between uses.
func CmdWriteTimestamp(commandBuffer CommandBuffer, pipelineStage PipelineStageFlags, queryPool QueryPool, query uint32) {
	C.vkCmdWriteTimestamp(C.VkCommandBuffer(commandBuffer), C.VkPipelineStageFlagBits(pipelineStage), C.VkQueryPool(queryPool), C.uint32_t(query))
}
