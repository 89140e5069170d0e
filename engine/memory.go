package engine

import (
	"github.com/darkace1998/vkradixsort/archive"
	"github.com/darkace1998/vkradixsort/vulkan"
)

// indirectInfoSize is sizeof(indirect_info): two u32 fill-count fields (pad,
// zero) followed by four VkDispatchIndirectCommand-shaped {x,y,z:u32}
// records (dispatch.pad, dispatch.zero, dispatch.histogram,
// dispatch.scatter), padded up to a multiple of sizeof(u32vec4).
const (
	indirectInfoPadOffset               = 0
	indirectInfoZeroOffset              = 4
	indirectInfoDispatchPadOffset        = 16
	indirectInfoDispatchZeroOffset       = 28
	indirectInfoDispatchHistogramOffset  = 40
	indirectInfoDispatchScatterOffset    = 52
	indirectInfoSize                    = 64
	indirectInfoAlignment                = 16 // sizeof(u32vec4)
)

// MemoryRequirements is the output of the memory planner: sizes and
// power-of-two alignments for the buffers a caller must allocate before
// sorting count keyvals with this engine. IndirectSize/IndirectAlignment
// are zero unless the engine's target supports indirect dispatch.
type MemoryRequirements struct {
	KeyvalsSize      vulkan.DeviceSize
	KeyvalsAlignment vulkan.DeviceSize
	InternalSize     vulkan.DeviceSize
	InternalAlignment vulkan.DeviceSize
	IndirectSize      vulkan.DeviceSize
	IndirectAlignment vulkan.DeviceSize
}

// sortPlan is the full set of derived values the dispatch sequencer and the
// memory planner share: both are views over the same formulas applied to
// (config, count).
type sortPlan struct {
	keyvalBytes   uint32
	histoSg       uint32
	prefixSg      uint32
	internalSg    uint32
	scatterBlocks uint32
	histoBlocks   uint32
	countRuScatter uint32
	countRuHisto   uint32
	partitions     uint32
}

func computePlan(keyvalBytes uint32, cfg sortStageConfig, count uint32) sortPlan {
	histoSg := uint32(1) << cfg.histogram.SubgroupSizeLog2
	histoWg := uint32(1) << cfg.histogram.WorkgroupSizeLog2
	prefixSg := uint32(1) << cfg.prefix.SubgroupSizeLog2
	scatterWg := uint32(1) << cfg.scatter.WorkgroupSizeLog2
	internalSg := histoSg
	if prefixSg > internalSg {
		internalSg = prefixSg
	}

	p := sortPlan{
		keyvalBytes: keyvalBytes,
		histoSg:     histoSg,
		prefixSg:    prefixSg,
		internalSg:  internalSg,
	}
	if count == 0 {
		return p
	}

	scatterBlock := scatterWg * cfg.scatter.BlockRows
	scatterBlocks := ceilDiv(count, scatterBlock)
	countRuScatter := scatterBlocks * scatterBlock

	histoBlock := histoWg * cfg.histogram.BlockRows
	histoBlocks := ceilDiv(countRuScatter, histoBlock)
	countRuHisto := histoBlocks * histoBlock

	p.scatterBlocks = scatterBlocks
	p.histoBlocks = histoBlocks
	p.countRuScatter = countRuScatter
	p.countRuHisto = countRuHisto
	p.partitions = scatterBlocks - 1
	return p
}

func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// sortStageConfig is the subset of archive.Config the planner and
// sequencer consume, named by role instead of by archive field order.
type sortStageConfig struct {
	histogram archiveStage
	prefix    archiveStage
	scatter   archiveStage
}

// archiveStage mirrors archive.StageConfig; kept as a separate type so this
// package's internals do not depend on archive's field layout beyond
// construction.
type archiveStage struct {
	WorkgroupSizeLog2 uint32
	SubgroupSizeLog2  uint32
	BlockRows         uint32
}

func (e *Engine) stageConfig() sortStageConfig {
	return sortStageConfig{
		histogram: archiveStage(e.config.Histogram),
		prefix:    archiveStage(e.config.Prefix),
		scatter:   archiveStage(e.config.Scatter),
	}
}

// MemoryRequirements computes the buffer sizes and alignments needed to
// sort up to count keyvals. It is a pure function of the engine's target
// configuration and count; it performs no Vulkan calls.
//
// keyvals_size is rounded to the histogram block boundary rather than the
// scatter block boundary, resolving the two sizing rules the source
// carried for direct-only versus direct+indirect planners in favor of a
// single rule shared by both dispatch modes.
func (e *Engine) MemoryRequirements(count uint32) MemoryRequirements {
	return PlanMemory(e.config, count)
}

// PlanMemory runs the memory planner directly off a decoded target config,
// without requiring a live Engine (and so without a Vulkan device). This is
// what a host-side inspector tool uses to report buffer sizes for a target
// archive before any pipeline has been created.
func PlanMemory(cfg archive.Config, count uint32) MemoryRequirements {
	keyvalBytes := cfg.KeyvalBytes()
	stages := sortStageConfig{
		histogram: archiveStage(cfg.Histogram),
		prefix:    archiveStage(cfg.Prefix),
		scatter:   archiveStage(cfg.Scatter),
	}
	plan := computePlan(keyvalBytes, stages, count)

	if count == 0 {
		out := MemoryRequirements{
			KeyvalsSize:       0,
			KeyvalsAlignment:  vulkan.DeviceSize(keyvalBytes * plan.histoSg),
			InternalSize:      0,
			InternalAlignment: vulkan.DeviceSize(4 * plan.internalSg),
		}
		if cfg.HasIndirect {
			out.IndirectSize = 0
			out.IndirectAlignment = indirectInfoAlignment
		}
		return out
	}

	out := MemoryRequirements{
		KeyvalsSize:       vulkan.DeviceSize(keyvalBytes * plan.countRuHisto),
		KeyvalsAlignment:  vulkan.DeviceSize(keyvalBytes * plan.histoSg),
		InternalSize:      vulkan.DeviceSize((keyvalBytes + plan.partitions) * RadixSize * 4),
		InternalAlignment: vulkan.DeviceSize(4 * plan.internalSg),
	}
	if cfg.HasIndirect {
		out.IndirectSize = indirectInfoSize
		out.IndirectAlignment = indirectInfoAlignment
	}
	return out
}
