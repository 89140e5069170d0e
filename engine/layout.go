package engine

// pipelineLayout is the compile-time-shaped offset table mapping named
// pipeline roles to slots in a single contiguous pipeline array. It
// replaces what a C binding would express as a tagged union: one flat
// array, named accessors, computed once from the target's keyval width and
// indirect-dispatch capability.
type pipelineLayout struct {
	hasIndirect  bool
	keyvalDwords uint32
}

// count returns P, the number of pipelines (and pipeline layouts) a target
// requires: 2+2*keyvalDwords direct, 4+2*keyvalDwords indirect.
func (l pipelineLayout) count() int {
	if l.hasIndirect {
		return int(4 + 2*l.keyvalDwords)
	}
	return int(2 + 2*l.keyvalDwords)
}

func (l pipelineLayout) indexInit() int { return 0 }
func (l pipelineLayout) indexFill() int { return 1 }

func (l pipelineLayout) indexHistogram() int {
	if l.hasIndirect {
		return 2
	}
	return 0
}

func (l pipelineLayout) indexPrefix() int {
	return l.indexHistogram() + 1
}

// indexScatter returns the slot for the scatter pipeline that handles keyval
// dword dword (0 for the low dword, 1 for the high dword of a 64-bit
// keyval), in its even or odd parity variant.
func (l pipelineLayout) indexScatter(dword int, odd bool) int {
	idx := l.indexPrefix() + 1 + dword*2
	if odd {
		idx++
	}
	return idx
}

// keyvalBytes returns the byte width of one keyval: 4 or 8.
func (l pipelineLayout) keyvalBytes() uint32 {
	return l.keyvalDwords * 4
}
