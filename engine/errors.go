package engine

import "errors"

// ErrInvalidArgument is returned when a required argument is nil or a
// decoded target fails a basic sanity check.
var ErrInvalidArgument = errors.New("engine: invalid argument")

// ErrSubgroupSizeTooLarge is returned at Create time when a target declares
// a required subgroup size whose log2 exceeds RadixLog2. A pass consumes
// RadixLog2 key bits per invocation; a subgroup wider than that cannot be
// kept fully utilized by the scatter/histogram shaders, so this is rejected
// up front instead of producing a silently under-occupied dispatch.
var ErrSubgroupSizeTooLarge = errors.New("engine: target requires a subgroup size larger than the radix width supports")

// ErrCountExceedsCapacity is a precondition violation: the caller recorded
// a sort for more keyvals than the memory requirements it queried covers, or
// for more than MaxKeyvals. Detecting this is not promised beyond what is
// cheap to observe host-side — Count against MaxKeyvals, and each BufferView
// against the sizes computePlan derives for Count — and Sort/SortIndirect
// never perform a Vulkan round trip to confirm it.
var ErrCountExceedsCapacity = errors.New("engine: count exceeds sized capacity")
