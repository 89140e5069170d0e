package vulkan

import "errors"

// ErrNoComputeQueueFamily is returned by OpenComputeDevice when no physical
// device exposes a queue family supporting compute.
var ErrNoComputeQueueFamily = errors.New("vulkan: no physical device exposes a compute queue family")

// ErrExtendedFeaturesUnsupported is returned by OpenComputeDevice when the
// caller requested a Vulkan 1.1/1.2/subgroup_size_control feature that no
// candidate physical device actually advertises. Enabling an unsupported
// feature at vkCreateDevice time is undefined behavior, so this is checked
// up front against GetPhysicalDeviceExtendedFeatures instead.
var ErrExtendedFeaturesUnsupported = errors.New("vulkan: no physical device advertises the requested extended features")

// ErrNoSuitableMemoryType is returned by AllocateBuffer when the device's
// memory heaps have nothing matching the requested property flags.
var ErrNoSuitableMemoryType = errors.New("vulkan: no memory type satisfies the requested properties")

// ComputeContext is a minimal device bring-up: one physical device, one
// logical device, and one queue from a compute-capable queue family. It is
// the smallest handle set an engine.Create caller needs before it can
// allocate buffers and record a sort.
type ComputeContext struct {
	Instance         Instance
	PhysicalDevice   PhysicalDevice
	Device           Device
	Queue            Queue
	QueueFamilyIndex uint32
	Allocator        *AllocationCallbacks
}

// extendedFeaturesSatisfied reports whether have offers at least every
// feature that want sets to true; a nil want is treated as asking for nothing.
func extendedFeaturesSatisfied(have ExtendedFeatures, want *ExtendedFeatures) bool {
	if want == nil {
		return true
	}
	return (!want.StorageBuffer16BitAccess || have.StorageBuffer16BitAccess) &&
		(!want.ShaderDrawParameters || have.ShaderDrawParameters) &&
		(!want.BufferDeviceAddress || have.BufferDeviceAddress) &&
		(!want.HostQueryReset || have.HostQueryReset) &&
		(!want.TimelineSemaphore || have.TimelineSemaphore) &&
		(!want.ShaderInt8 || have.ShaderInt8) &&
		(!want.StorageBuffer8BitAccess || have.StorageBuffer8BitAccess) &&
		(!want.SubgroupSizeControl || have.SubgroupSizeControl) &&
		(!want.ComputeFullSubgroups || have.ComputeFullSubgroups)
}

// OpenComputeDevice creates an instance, picks the first physical device
// with a compute-capable queue family AND that satisfies the requested
// extended features, and creates a logical device with one queue from that
// family and the given extensions/features/extendedFeatures enabled.
//
// This is bring-up plumbing for tools that need a real device (e.g. a
// capability probe) — it is not part of the sort engine itself, which only
// ever consumes an already-created Device.
func OpenComputeDevice(appName string, extensionNames []string, features *PhysicalDeviceFeatures, extendedFeatures *ExtendedFeatures, allocator *AllocationCallbacks) (*ComputeContext, error) {
	instance, err := CreateInstance(&InstanceCreateInfo{
		ApplicationInfo: &ApplicationInfo{
			ApplicationName: appName,
			APIVersion:      Version12,
		},
		Allocator: allocator,
	})
	if err != nil {
		return nil, err
	}

	physicalDevices, err := EnumeratePhysicalDevices(instance)
	if err != nil {
		DestroyInstance(instance, allocator)
		return nil, err
	}

	sawCandidateQueue := false
	for _, pd := range physicalDevices {
		queueFamilies := GetPhysicalDeviceQueueFamilyProperties(pd)
		for i, qf := range queueFamilies {
			if qf.QueueFlags&QueueComputeBit == 0 {
				continue
			}
			sawCandidateQueue = true

			have := GetPhysicalDeviceExtendedFeatures(pd)
			if !extendedFeaturesSatisfied(have, extendedFeatures) {
				continue
			}

			device, err := CreateDevice(pd, &DeviceCreateInfo{
				QueueCreateInfos: []DeviceQueueCreateInfo{
					{QueueFamilyIndex: uint32(i), QueuePriorities: []float32{1.0}},
				},
				EnabledExtensionNames:   extensionNames,
				EnabledFeatures:         features,
				EnabledExtendedFeatures: extendedFeatures,
				Allocator:               allocator,
			})
			if err != nil {
				DestroyInstance(instance, allocator)
				return nil, err
			}

			return &ComputeContext{
				Instance:         instance,
				PhysicalDevice:   pd,
				Device:           device,
				Queue:            GetDeviceQueue(device, uint32(i), 0),
				QueueFamilyIndex: uint32(i),
				Allocator:        allocator,
			}, nil
		}
	}

	DestroyInstance(instance, allocator)
	if sawCandidateQueue {
		return nil, ErrExtendedFeaturesUnsupported
	}
	return nil, ErrNoComputeQueueFamily
}

// Close tears down the device and instance, in that order.
func (c *ComputeContext) Close() {
	DestroyDevice(c.Device, c.Allocator)
	DestroyInstance(c.Instance, c.Allocator)
}

// AllocatedBuffer bundles a buffer with the device memory bound to it and
// the GPU-visible address the sort engine's dispatch sequencer addresses it
// by, so a caller doesn't have to repeat the create/requirements/allocate/
// bind/address sequence by hand for every BufferView it builds.
type AllocatedBuffer struct {
	Buffer     Buffer
	Memory     DeviceMemory
	DeviceAddr DeviceAddress
	Size       DeviceSize
}

// AllocateBuffer creates a buffer of size bytes with usage, backs it with
// device memory satisfying properties, binds the two, and resolves the
// buffer's device address. usage must include BufferUsageShaderDeviceAddressBit
// for the address to be meaningful; callers that only need a host-visible
// staging buffer can pass properties without a device-address usage and
// ignore AllocatedBuffer.DeviceAddr.
func (c *ComputeContext) AllocateBuffer(size DeviceSize, usage BufferUsageFlags, properties MemoryPropertyFlags) (AllocatedBuffer, error) {
	buffer, err := CreateBuffer(c.Device, &BufferCreateInfo{
		Size:        size,
		Usage:       usage,
		SharingMode: SharingModeExclusive,
	}, c.Allocator)
	if err != nil {
		return AllocatedBuffer{}, err
	}

	reqs := GetBufferMemoryRequirements(c.Device, buffer)
	memProps := GetPhysicalDeviceMemoryProperties(c.PhysicalDevice)
	typeIndex, ok := FindMemoryType(memProps, reqs.MemoryTypeBits, properties)
	if !ok {
		DestroyBuffer(c.Device, buffer, c.Allocator)
		return AllocatedBuffer{}, ErrNoSuitableMemoryType
	}

	memory, err := AllocateMemory(c.Device, &MemoryAllocateInfo{
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: typeIndex,
	}, c.Allocator)
	if err != nil {
		DestroyBuffer(c.Device, buffer, c.Allocator)
		return AllocatedBuffer{}, err
	}

	if err := BindBufferMemory(c.Device, buffer, memory, 0); err != nil {
		FreeMemory(c.Device, memory, c.Allocator)
		DestroyBuffer(c.Device, buffer, c.Allocator)
		return AllocatedBuffer{}, err
	}

	var addr DeviceAddress
	if usage&BufferUsageShaderDeviceAddressBit != 0 {
		addr = GetBufferDeviceAddress(c.Device, buffer)
	}

	return AllocatedBuffer{Buffer: buffer, Memory: memory, DeviceAddr: addr, Size: size}, nil
}

// FreeBuffer destroys an AllocatedBuffer's buffer and frees its backing memory.
func (c *ComputeContext) FreeBuffer(b AllocatedBuffer) {
	DestroyBuffer(c.Device, b.Buffer, c.Allocator)
	FreeMemory(c.Device, b.Memory, c.Allocator)
}
