package engine

import "github.com/darkace1998/vkradixsort/vulkan"

// Sort records a direct-form sort into cmd: count is known host-side at
// record time. It returns which buffer view — KeyvalsEven or KeyvalsOdd —
// holds the sorted result.
//
// If count <= 1 or key_bits == 0, Sort records nothing and reports
// KeyvalsEven as sorted, matching the early-exit rule: a 0- or 1-element
// sequence is trivially sorted, and a zero-bit sort key leaves every
// element equal.
func (e *Engine) Sort(cmd vulkan.CommandBuffer, info *SortInfo) (SortedDescriptor, error) {
	return e.sort(vulkanRecorder{}, cmd, info)
}

func (e *Engine) sort(rec recorder, cmd vulkan.CommandBuffer, info *SortInfo) (SortedDescriptor, error) {
	if info == nil {
		return SortedDescriptor{}, ErrInvalidArgument
	}
	if info.Count > MaxKeyvals {
		return SortedDescriptor{}, ErrCountExceedsCapacity
	}

	keyvalBytes := e.layout.keyvalBytes()
	keyvalBits := keyvalBytes * 8

	if info.Count <= 1 || info.KeyBits == 0 {
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

	plan := computePlan(keyvalBytes, e.stageConfig(), info.Count)

	requiredKeyvals := vulkan.DeviceSize(keyvalBytes) * vulkan.DeviceSize(plan.countRuHisto)
	requiredInternal := vulkan.DeviceSize((keyvalBytes+plan.partitions)*RadixSize*4)
	if info.KeyvalsEven.Buffer == nil || info.KeyvalsOdd.Buffer == nil || info.Internal.Buffer == nil ||
		info.KeyvalsEven.Size < requiredKeyvals || info.KeyvalsOdd.Size < requiredKeyvals ||
		info.Internal.Size < requiredInternal {
		return SortedDescriptor{}, ErrCountExceedsCapacity
	}

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageTopOfPipeBit)

	if plan.countRuHisto > info.Count {
		padBytes := vulkan.DeviceSize((plan.countRuHisto - info.Count) * keyvalBytes)
		tailOffset := info.KeyvalsEven.Offset + vulkan.DeviceSize(info.Count*keyvalBytes)
		rec.fillBuffer(cmd, info.KeyvalsEven.Buffer, tailOffset, padBytes, 0xFFFFFFFF)
	}

	zeroBytes := vulkan.DeviceSize((passes + plan.scatterBlocks - 1) * RadixSize * 4)
	zeroOffset := info.Internal.Offset + e.internal.histogramsOffset + vulkan.DeviceSize(passIdx*RadixSize*4)
	rec.fillBuffer(cmd, info.Internal.Buffer, zeroOffset, zeroBytes, 0)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageTransferBit)
	rec.barrier(cmd, vulkan.PipelineStageTransferBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessTransferWriteBit, vulkan.AccessShaderReadBit|vulkan.AccessShaderWriteBit)

	devaddrHistograms := info.Internal.DeviceAddr + vulkan.DeviceAddress(e.internal.histogramsOffset)
	histogramLayout := e.pipelineLayouts[e.layout.indexHistogram()]
	rec.bindPipeline(cmd, e.pipelines[e.layout.indexHistogram()])
	rec.pushConstants(cmd, histogramLayout, 0, encodeHistogramPush(uint64(devaddrHistograms), uint64(info.KeyvalsEven.DeviceAddr), passes))
	rec.dispatch(cmd, plan.histoBlocks, 1, 1)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	prefixLayout := e.pipelineLayouts[e.layout.indexPrefix()]
	rec.bindPipeline(cmd, e.pipelines[e.layout.indexPrefix()])
	rec.pushConstants(cmd, prefixLayout, 0, encodePrefixPush(uint64(devaddrHistograms)))
	rec.dispatch(cmd, passes, 1, 1)

	timestampStage(info.Ext, cmd, rec, vulkan.PipelineStageComputeShaderBit)
	rec.barrier(cmd, vulkan.PipelineStageComputeShaderBit, vulkan.PipelineStageComputeShaderBit,
		vulkan.AccessShaderWriteBit, vulkan.AccessShaderReadBit)

	devaddrScatterHistograms := devaddrHistograms + vulkan.DeviceAddress(passIdx*RadixSize*4)
	devaddrPartitions := info.Internal.DeviceAddr + vulkan.DeviceAddress(e.internal.partitionsOffset)
	passOffset := (passIdx % 4) * RadixLog2
	isEven := true
	dword := int(passIdx / 4)

	scatterIdx := e.layout.indexScatter(dword, !isEven)
	rec.bindPipeline(cmd, e.pipelines[scatterIdx])
	rec.pushConstants(cmd, e.pipelineLayouts[scatterIdx], 0, encodeScatterPush(scatterPush{
		DevaddrKeyvalsEven: uint64(info.KeyvalsEven.DeviceAddr),
		DevaddrKeyvalsOdd:  uint64(info.KeyvalsOdd.DeviceAddr),
		DevaddrPartitions:  uint64(devaddrPartitions),
		DevaddrHistograms:  uint64(devaddrScatterHistograms),
		PassOffset:         passOffset,
	}))

	for {
		rec.dispatch(cmd, plan.scatterBlocks, 1, 1)
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
