// Package capability implements the two-phase device-capability negotiation
// protocol: given a decoded target header, tell the caller which extensions
// and features a device must support before an engine can be created from
// it.
package capability

import (
	"errors"

	"github.com/darkace1998/vkradixsort/archive"
)

// ErrInvalidArgument is returned when a required pointer-like argument is
// nil.
var ErrInvalidArgument = errors.New("capability: invalid argument")

// ErrInsufficientBuffer is returned by GetRequirements when req.ExtNames is
// non-nil but shorter than the number of extensions the target declares.
var ErrInsufficientBuffer = errors.New("capability: extension name buffer too small")

// PDF10 mirrors the VkPhysicalDeviceFeatures booleans this system cares
// about. Field names match archive.Features10Names.
type PDF10 struct {
	ShaderInt64 bool
	ShaderInt16 bool
}

// PDF11 mirrors the VkPhysicalDeviceVulkan11Features booleans this system
// cares about. Field names match archive.Features11Names.
type PDF11 struct {
	StorageBuffer16BitAccess bool
	ShaderDrawParameters     bool
}

// PDF12 mirrors the VkPhysicalDeviceVulkan12Features booleans this system
// cares about. Field names match archive.Features12Names.
type PDF12 struct {
	BufferDeviceAddress     bool
	HostQueryReset          bool
	TimelineSemaphore       bool
	ShaderInt8              bool
	StorageBuffer8BitAccess bool
}

// Requirements is both the input and the output of GetRequirements. Calling
// it twice — once to size, once to fill — is the whole protocol:
//
//	req := &Requirements{}
//	capability.GetRequirements(header, req) // sizes req.ExtNameCount
//	req.ExtNames = make([]string, req.ExtNameCount)
//	req.PDF, req.PDF11, req.PDF12 = &PDF10{}, &PDF11{}, &PDF12{}
//	capability.GetRequirements(header, req) // fills names and feature bits
type Requirements struct {
	// ExtNames is nil on a sizing call. On a fill call its length must be at
	// least ExtNameCount; GetRequirements truncates it to the
	// exact count and fills it with canonical "VK_..." names.
	ExtNames []string

	// ExtNameCount is always written: the number of extensions the
	// target declares.
	ExtNameCount int

	// PDF, PDF11, and PDF12 must be non-nil on a fill call; each bool
	// field is set true if the target requires that feature.
	PDF   *PDF10
	PDF11 *PDF11
	PDF12 *PDF12
}

// GetRequirements negotiates device capability requirements for target.
//
// On a sizing call (req.ExtNames == nil), it writes the extension count
// into req.ExtNameCount and returns true only if that count is zero —
// mirroring the two-phase query idiom where a zero-length size call already
// satisfies the caller. On a fill call (req.ExtNames != nil), it requires
// len(req.ExtNames) to be at least the extension count, fills it with
// canonical extension names, and fills the three feature-bitmap booleans
// into req.PDF/PDF11/PDF12. The function is idempotent: it keeps no state
// between calls.
func GetRequirements(target *archive.Header, req *Requirements) (bool, error) {
	if target == nil || req == nil {
		return false, ErrInvalidArgument
	}

	count := target.Extensions.PopCount()
	req.ExtNameCount = count

	if req.ExtNames == nil {
		return count == 0, nil
	}

	if len(req.ExtNames) < count {
		return false, ErrInsufficientBuffer
	}

	names := target.Extensions.Names(archive.ExtensionIdentifiers)
	for i, name := range names {
		req.ExtNames[i] = archive.CanonicalExtensionName(name)
	}
	req.ExtNames = req.ExtNames[:count]

	if req.PDF == nil || req.PDF11 == nil || req.PDF12 == nil {
		return false, ErrInvalidArgument
	}

	n10 := len(archive.Features10Names)
	n11 := len(archive.Features11Names)

	*req.PDF = PDF10{
		ShaderInt64: target.Features.Test(0),
		ShaderInt16: target.Features.Test(1),
	}
	*req.PDF11 = PDF11{
		StorageBuffer16BitAccess: target.Features.Test(n10 + 0),
		ShaderDrawParameters:     target.Features.Test(n10 + 1),
	}
	*req.PDF12 = PDF12{
		BufferDeviceAddress:     target.Features.Test(n10 + n11 + 0),
		HostQueryReset:          target.Features.Test(n10 + n11 + 1),
		TimelineSemaphore:       target.Features.Test(n10 + n11 + 2),
		ShaderInt8:              target.Features.Test(n10 + n11 + 3),
		StorageBuffer8BitAccess: target.Features.Test(n10 + n11 + 4),
	}

	return true, nil
}
