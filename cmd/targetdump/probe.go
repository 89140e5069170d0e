package main

import (
	"fmt"

	"github.com/darkace1998/vkradixsort/capability"
	"github.com/darkace1998/vkradixsort/vulkan"
)

// requirementsToDeviceFeatures translates a negotiated capability.Requirements
// into the vulkan-native feature structs CreateDevice actually enables. This
// conversion, not just a report of what the driver happens to advertise,
// is what makes the two capability.GetRequirements passes in main.go load-bearing.
func requirementsToDeviceFeatures(req *capability.Requirements) (*vulkan.PhysicalDeviceFeatures, *vulkan.ExtendedFeatures) {
	features := &vulkan.PhysicalDeviceFeatures{}
	if req.PDF != nil {
		features.ShaderInt64 = req.PDF.ShaderInt64
		features.ShaderInt16 = req.PDF.ShaderInt16
	}

	extended := &vulkan.ExtendedFeatures{}
	if req.PDF11 != nil {
		extended.StorageBuffer16BitAccess = req.PDF11.StorageBuffer16BitAccess
		extended.ShaderDrawParameters = req.PDF11.ShaderDrawParameters
	}
	if req.PDF12 != nil {
		extended.BufferDeviceAddress = req.PDF12.BufferDeviceAddress
		extended.HostQueryReset = req.PDF12.HostQueryReset
		extended.TimelineSemaphore = req.PDF12.TimelineSemaphore
		extended.ShaderInt8 = req.PDF12.ShaderInt8
		extended.StorageBuffer8BitAccess = req.PDF12.StorageBuffer8BitAccess
	}
	return features, extended
}

// probeDevice opens a real compute-capable Vulkan device and reports
// whether it advertises the extensions a target's capability requirements
// ask for. It requires a physical GPU and the Vulkan loader to be present,
// so it is only exercised when -probe-device is passed; the rest of
// targetdump works purely off the archive bytes on disk.
func probeDevice(req *capability.Requirements) error {
	features, extended := requirementsToDeviceFeatures(req)

	ctx, err := vulkan.OpenComputeDevice("targetdump", req.ExtNames, features, extended, nil)
	if err != nil {
		return fmt.Errorf("opening compute device: %w", err)
	}
	defer ctx.Close()

	props := vulkan.GetPhysicalDeviceProperties(ctx.PhysicalDevice)
	fmt.Printf("device:        %s (queue family %d)\n", props.DeviceName, ctx.QueueFamilyIndex)

	available, err := vulkan.EnumerateDeviceExtensionProperties(ctx.PhysicalDevice, "")
	if err != nil {
		return fmt.Errorf("enumerating device extensions: %w", err)
	}
	have := make(map[string]bool, len(available))
	for _, e := range available {
		have[e.ExtensionName] = true
	}

	for _, name := range req.ExtNames {
		status := "missing"
		if have[name] {
			status = "present (enabled at device creation)"
		}
		fmt.Printf("  %-40s %s\n", name, status)
	}
	return nil
}
