package vulkan

/*
#cgo pkg-config: vulkan
#include <vulkan/vulkan.h>
*/
import "C"

// AllocationCallbacks wraps a VkAllocationCallbacks pointer threaded
// through every Create/Destroy call in this package, so a caller that
// wants host allocations for one engine tracked or pooled separately from
// the rest of the process can supply one instead of letting the driver
// fall back to its own allocator.
//
// This package does not itself build the pfnAllocation/pfnReallocation/
// pfnFree host callback trio — wiring Go functions into those C function
// pointer slots needs a cgo-exported trampoline per AllocationCallbacks
// instance, and nothing in this codebase needs custom host tracking today.
// A caller who does supply a VkAllocationCallbacks (built through their own
// cgo package) passes it in via NewAllocationCallbacks; a nil
// *AllocationCallbacks, the common case, passes a nil pAllocator to the
// driver exactly as every call in this package did before allocator
// ownership was threaded through explicitly.
type AllocationCallbacks struct {
	raw *C.VkAllocationCallbacks
}

// NewAllocationCallbacks wraps a pointer to a VkAllocationCallbacks struct
// obtained from another cgo package. Passing nil returns nil, which every
// Create/Destroy call in this package treats the same as never supplying
// allocation callbacks at all.
func NewAllocationCallbacks(raw *C.VkAllocationCallbacks) *AllocationCallbacks {
	if raw == nil {
		return nil
	}
	return &AllocationCallbacks{raw: raw}
}

// ptr returns the C pointer this allocator wraps, or nil for a nil
// receiver — so every call site can write allocator.ptr() unconditionally
// instead of a nil-receiver check.
func (a *AllocationCallbacks) ptr() *C.VkAllocationCallbacks {
	if a == nil {
		return nil
	}
	return a.raw
}
