package engine

import (
	"errors"

	"github.com/darkace1998/vkradixsort/vulkan"
)

// ErrIndirectUnsupported is returned by SortIndirect when the engine's
// target never declared init/fill pipeline stages.
var ErrIndirectUnsupported = errors.New("engine: target does not support indirect dispatch")

// SortIndirect records an indirect-form sort into cmd: the keyval count
// lives in info.CountBuffer and is read by the init shader at execution
// time, so every dispatch size downstream of it is computed on-device via
// vkCmdDispatchIndirect.
//
// Unlike Sort, SortIndirect cannot early-exit on count <= 1 because count
// is unknown host-side; it only early-exits when key_bits == 0.
func (e *Engine) SortIndirect(cmd vulkan.CommandBuffer, info *SortIndirectInfo) (SortedDescriptor, error) {
	return e.sortIndirect(vulkanRecorder{}, cmd, info)
}

func (e *Engine) sortIndirect(rec recorder, cmd vulkan.CommandBuffer, info *SortIndirectInfo) (SortedDescriptor, error) {
	if info == nil {
		return SortedDescriptor{}, ErrInvalidArgument
	}
	if !e.layout.hasIndirect {
		return SortedDescriptor{}, ErrIndirectUnsupported
	}
	if info.CountBuffer.Buffer == nil || info.KeyvalsEven.Buffer == nil || info.KeyvalsOdd.Buffer == nil ||
		info.Internal.Buffer == nil || info.Indirect.Buffer == nil {
		return SortedDescriptor{}, ErrCountExceedsCapacity
	}

	keyvalBytes := e.layout.keyvalBytes()
	keyvalBits := keyvalBytes * 8

	if info.KeyBits == 0 {
		timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageTopOfPipeBit)
		return SortedDescriptor{Sorted: info.KeyvalsEven}, nil
	}

	keyBits := info.KeyBits
	if keyBits > keyvalBits {
		keyBits = keyvalBits
	}
	passes := ceilDiv(keyBits, RadixLog2)
	passIdx := keyvalBytes - passes

	sorted := info.KeyvalsEven
	if passes%2 != 0 {
		sorted = info.KeyvalsOdd
	}

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageTopOfPipeBit)

	devaddrInfo := info.Indirect.DeviceAddr
	devaddrHistograms := info.Internal.DeviceAddr + vulkan.DeviceAddress(e.internal.histogramsOffset)

	initIdx := e.layout.indexInit()
	rec.bindPipeline(cmd, e.pipelines[initIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[initIdx], 0,
		encodeInitPush(uint64(devaddrInfo), uint64(info.CountBuffer.DeviceAddr), passes))
	rec.dispatch(cmd, 1, 1, 1)

	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageDrawIndirectBit|vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessIndirectCommandReadBit|vulkan.AccessShaderReadBit)

	fillIdx := e.layout.indexFill()
	rec.bindPipeline(cmd, e.pipelines[fillIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[fillIdx], 0,
		encodeFillPush(uint64(devaddrInfo+indirectInfoPadOffset), uint64(info.KeyvalsEven.DeviceAddr), 0xFFFFFFFF))
	rec.dispatchIndirect(cmd, info.Indirect.Buffer, info.Indirect.Offset+indirectInfoDispatchPadOffset)

	devaddrZeroDwords := devaddrHistograms + vulkan.DeviceAddress(passIdx*RadixSize*4)
	rec.pushConstants(cmd, e.pipelineLayouts[fillIdx], 0,
		encodeFillPush(uint64(devaddrInfo+indirectInfoZeroOffset), uint64(devaddrZeroDwords), 0))
	rec.dispatchIndirect(cmd, info.Indirect.Buffer, info.Indirect.Offset+indirectInfoDispatchZeroOffset)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	histogramIdx := e.layout.indexHistogram()
	rec.bindPipeline(cmd, e.pipelines[histogramIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[histogramIdx], 0,
		encodeHistogramPush(uint64(devaddrHistograms), uint64(info.KeyvalsEven.DeviceAddr), passes))
	rec.dispatchIndirect(cmd, info.Indirect.Buffer, info.Indirect.Offset+indirectInfoDispatchHistogramOffset)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	prefixIdx := e.layout.indexPrefix()
	rec.bindPipeline(cmd, e.pipelines[prefixIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[prefixIdx], 0, encodePrefixPush(uint64(devaddrHistograms)))
	rec.dispatch(cmd, passes, 1, 1)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	devaddrScatterHistograms := devaddrHistograms + vulkan.DeviceAddress(passIdx*RadixSize*4)
	devaddrPartitions := info.Internal.DeviceAddr + vulkan.DeviceAddress(e.internal.partitionsOffset)
	passOffset := (passIdx % 4) * RadixLog2
	isEven := true
	scatterIdx := e.layout.indexScatter(int(passIdx/4), !isEven)

	rec.bindPipeline(cmd, e.pipelines[scatterIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[scatterIdx], 0, encodeScatterPush(scatterPush{
		DevaddrKeyvalsEven: uint64(info.KeyvalsEven.DeviceAddr),
		DevaddrKeyvalsOdd:  uint64(info.KeyvalsOdd.DeviceAddr),
		DevaddrPartitions:  uint64(devaddrPartitions),
		DevaddrHistograms:  uint64(devaddrScatterHistograms),
		PassOffset:         passOffset,
	}))

	for {
		rec.dispatchIndirect(cmd, info.Indirect.Buffer, info.Indirect.Offset+indirectInfoDispatchScatterOffset)
		passIdx++
		if passIdx == keyvalBytes {
			break
		}

		timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
		rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
			vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

		isEven = !isEven
		devaddrScatterHistograms += vulkan.DeviceAddress(RadixSize * 4)
		passOffset = (passIdx % 4) * RadixLog2

		scatterIdx = e.layout.indexScatter(int(passIdx/4), !isEven)
		rec.pushConstants(cmd, e.pipelineLayouts[scatterIdx], scatterTailOffset,
			encodeScatterPushTail(uint64(devaddrScatterHistograms), passOffset))
		rec.bindPipeline(cmd, e.pipelines[scatterIdx])
	}

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)

	return SortedDescriptor{Sorted: sorted}, nil
}
