package engine

import (
	"fmt"

	"github.com/darkace1998/vkradixsort/archive"
	"github.com/darkace1998/vkradixsort/vulkan"
)

// internalLayout holds the fixed byte offsets of the histograms and
// partitions regions inside a caller's internal buffer. histograms.range is
// fixed by keyval width; partitions.range depends on the runtime scatter
// block count and is computed per-sort by MemoryRequirements.
type internalLayout struct {
	histogramsOffset vulkan.DeviceSize
	histogramsRange  vulkan.DeviceSize
	partitionsOffset vulkan.DeviceSize
}

// pipelineStage names one entry in the pipeline/pipeline-layout arrays, for
// construction bookkeeping only; the engine indexes by position afterward.
type pipelineStage struct {
	index        int
	pushSize     uint32
	subgroupLog2 uint32
}

// Engine is a constructed radix-sort instance for one target: its pipeline
// layouts, compute pipelines, and derived internal-buffer layout. It is
// immutable after Create and is safe to share read-only across threads
// that each record into their own command buffer.
type Engine struct {
	device    vulkan.Device
	allocator *vulkan.AllocationCallbacks

	config archive.Config
	layout pipelineLayout

	pipelineLayouts []vulkan.PipelineLayout
	pipelines       []vulkan.Pipeline

	internal internalLayout
}

// Create builds an engine from a target archive. It decodes the target
// header, derives the pipeline count from the keyval width and
// indirect-dispatch capability, creates one pipeline layout and one shader
// module per pipeline stage, chains required-subgroup-size info when the
// target declares the subgroup_size_control extension, and creates every
// compute pipeline in a single batched call. Shader modules are destroyed
// immediately afterward; only pipelines and pipeline layouts survive. On
// any failure, everything already created is released and Create returns a
// nil *Engine together with a non-nil error.
//
// allocator is recorded on the returned Engine and reused for every
// Vulkan object the engine destroys later, matching whatever allocator the
// caller used to create device. A nil allocator selects Vulkan's default
// host allocator.
func Create(device vulkan.Device, allocator *vulkan.AllocationCallbacks, cache vulkan.PipelineCache, target *archive.Archive) (*Engine, error) {
	if target == nil {
		return nil, ErrInvalidArgument
	}

	headerPayload, err := target.Entry(0)
	if err != nil {
		return nil, fmt.Errorf("engine: reading target header: %w", err)
	}
	header, err := archive.DecodeHeader(headerPayload)
	if err != nil {
		return nil, fmt.Errorf("engine: decoding target header: %w", err)
	}

	if err := checkSubgroupSizes(header.Config); err != nil {
		return nil, err
	}

	layout := pipelineLayout{
		hasIndirect:  header.Config.HasIndirect,
		keyvalDwords: header.Config.KeyvalDwords,
	}
	p := layout.count()
	if target.Count() < p+1 {
		return nil, fmt.Errorf("%w: target declares %d pipelines but only %d entries", archive.ErrTruncated, p, target.Count()-1)
	}

	stages := buildStages(layout, header.Config)
	hasSubgroupControl := header.Extensions.Test(indexOf(archive.ExtensionIdentifiers, "EXT_subgroup_size_control"))

	createdLayouts := make([]vulkan.PipelineLayout, 0, p)
	createdModules := make([]vulkan.ShaderModule, 0, p)
	cleanup := func() {
		for _, m := range createdModules {
			vulkan.DestroyShaderModule(device, m, allocator)
		}
		for _, l := range createdLayouts {
			vulkan.DestroyPipelineLayout(device, l, allocator)
		}
	}

	createInfos := make([]vulkan.ComputePipelineCreateInfo, p)
	for _, st := range stages {
		pl, err := vulkan.CreatePipelineLayout(device, &vulkan.PipelineLayoutCreateInfo{
			PushConstants: []vulkan.PushConstantRange{{
				StageFlags: vulkan.ShaderStageComputeBit,
				Offset:     0,
				Size:       st.pushSize,
			}},
		}, allocator)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("engine: creating pipeline layout %d: %w", st.index, err)
		}
		createdLayouts = append(createdLayouts, pl)

		entry, err := target.Entry(st.index + 1)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("engine: reading shader entry %d: %w", st.index+1, err)
		}
		module, err := vulkan.CreateShaderModule(device, &vulkan.ShaderModuleCreateInfo{
			CodeSize: uint32(len(entry)),
			Code:     bytesToWords(entry),
		}, allocator)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("engine: creating shader module %d: %w", st.index, err)
		}
		createdModules = append(createdModules, module)

		stageInfo := vulkan.PipelineShaderStageCreateInfo{
			Stage:  vulkan.ShaderStageComputeBit,
			Module: module,
			Name:   "main",
		}
		if hasSubgroupControl && st.subgroupLog2 != 0 {
			stageInfo.RequiredSubgroupSize = 1 << st.subgroupLog2
		}

		createInfos[st.index] = vulkan.ComputePipelineCreateInfo{
			Stage:  stageInfo,
			Layout: pl,
		}
	}

	pipelines, err := vulkan.CreateComputePipelines(device, cache, createInfos, allocator)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("engine: creating compute pipelines: %w", err)
	}

	for _, m := range createdModules {
		vulkan.DestroyShaderModule(device, m, allocator)
	}

	keyvalBytes := vulkan.DeviceSize(layout.keyvalBytes())
	histogramsRange := keyvalBytes * RadixSize * 4

	return &Engine{
		device:          device,
		allocator:       allocator,
		config:          header.Config,
		layout:          layout,
		pipelineLayouts: createdLayouts,
		pipelines:       pipelines,
		internal: internalLayout{
			histogramsOffset: 0,
			histogramsRange:  histogramsRange,
			partitionsOffset: histogramsRange,
		},
	}, nil
}

// Destroy releases every pipeline and pipeline layout the engine owns,
// using the allocator passed to Create. It never frees the caller's
// device, allocator, or pipeline cache themselves.
func (e *Engine) Destroy() {
	for _, p := range e.pipelines {
		vulkan.DestroyPipeline(e.device, p, e.allocator)
	}
	for _, l := range e.pipelineLayouts {
		vulkan.DestroyPipelineLayout(e.device, l, e.allocator)
	}
	e.pipelines = nil
	e.pipelineLayouts = nil
}

func checkSubgroupSizes(cfg archive.Config) error {
	max := cfg.Histogram.SubgroupSizeLog2
	for _, v := range []uint32{cfg.Prefix.SubgroupSizeLog2, cfg.Scatter.SubgroupSizeLog2, cfg.Init.SubgroupSizeLog2, cfg.Fill.SubgroupSizeLog2} {
		if v > max {
			max = v
		}
	}
	if max > RadixLog2 {
		return ErrSubgroupSizeTooLarge
	}
	return nil
}

func buildStages(l pipelineLayout, cfg archive.Config) []pipelineStage {
	stages := make([]pipelineStage, 0, l.count())
	if l.hasIndirect {
		stages = append(stages,
			pipelineStage{index: l.indexInit(), pushSize: initPushSize, subgroupLog2: cfg.Init.SubgroupSizeLog2},
			pipelineStage{index: l.indexFill(), pushSize: fillPushSize, subgroupLog2: cfg.Fill.SubgroupSizeLog2},
		)
	}
	stages = append(stages,
		pipelineStage{index: l.indexHistogram(), pushSize: histogramPushSize, subgroupLog2: cfg.Histogram.SubgroupSizeLog2},
		pipelineStage{index: l.indexPrefix(), pushSize: prefixPushSize, subgroupLog2: cfg.Prefix.SubgroupSizeLog2},
	)
	for dword := 0; dword < int(l.keyvalDwords); dword++ {
		stages = append(stages,
			pipelineStage{index: l.indexScatter(dword, false), pushSize: scatterPushSize, subgroupLog2: cfg.Scatter.SubgroupSizeLog2},
			pipelineStage{index: l.indexScatter(dword, true), pushSize: scatterPushSize, subgroupLog2: cfg.Scatter.SubgroupSizeLog2},
		)
	}
	return stages
}

func indexOf(table []string, name string) int {
	for i, n := range table {
		if n == name {
			return i
		}
	}
	return -1
}

// bytesToWords reinterprets a SPIR-V module's raw bytes as little-endian
// 32-bit words, the form vkCreateShaderModule requires.
func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}
