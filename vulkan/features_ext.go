package vulkan

/*
#cgo pkg-config: vulkan
#include <vulkan/vulkan.h>
*/
import "C"
import "unsafe"

// ExtendedFeatures carries the Vulkan 1.1/1.2-era per-feature booleans the
// capability negotiator cares about. Queried in one vkGetPhysicalDeviceFeatures2
// call via a pNext chain of VkPhysicalDeviceVulkan11Features,
// VkPhysicalDeviceVulkan12Features, and VkPhysicalDeviceSubgroupSizeControlFeaturesEXT.
type ExtendedFeatures struct {
	// Vulkan 1.1
	StorageBuffer16BitAccess bool
	ShaderDrawParameters     bool

	// Vulkan 1.2
	BufferDeviceAddress bool
	HostQueryReset      bool
	TimelineSemaphore   bool
	ShaderInt8          bool
	StorageBuffer8BitAccess bool

	// VK_EXT_subgroup_size_control
	SubgroupSizeControl bool
	ComputeFullSubgroups bool
}

// GetPhysicalDeviceExtendedFeatures queries the Vulkan 1.1/1.2 and
// subgroup_size_control feature structs for a physical device via
// vkGetPhysicalDeviceFeatures2, the counterpart to GetPhysicalDeviceFeatures
// for features that did not exist in the original VkPhysicalDeviceFeatures.
func GetPhysicalDeviceExtendedFeatures(physicalDevice PhysicalDevice) ExtendedFeatures {
	var subgroupFeatures C.VkPhysicalDeviceSubgroupSizeControlFeaturesEXT
	subgroupFeatures.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_SUBGROUP_SIZE_CONTROL_FEATURES_EXT
	subgroupFeatures.pNext = nil

	var vk12 C.VkPhysicalDeviceVulkan12Features
	vk12.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES
	vk12.pNext = unsafe.Pointer(&subgroupFeatures)

	var vk11 C.VkPhysicalDeviceVulkan11Features
	vk11.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_FEATURES
	vk11.pNext = unsafe.Pointer(&vk12)

	var features2 C.VkPhysicalDeviceFeatures2
	features2.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2
	features2.pNext = unsafe.Pointer(&vk11)

	C.vkGetPhysicalDeviceFeatures2(C.VkPhysicalDevice(physicalDevice), &features2)

	return ExtendedFeatures{
		StorageBuffer16BitAccess: vkBool32ToBool(vk11.storageBuffer16BitAccess),
		ShaderDrawParameters:     vkBool32ToBool(vk11.shaderDrawParameters),
		BufferDeviceAddress:      vkBool32ToBool(vk12.bufferDeviceAddress),
		HostQueryReset:           vkBool32ToBool(vk12.hostQueryReset),
		TimelineSemaphore:        vkBool32ToBool(vk12.timelineSemaphore),
		ShaderInt8:               vkBool32ToBool(vk12.shaderInt8),
		StorageBuffer8BitAccess:  vkBool32ToBool(vk12.storageBuffer8BitAccess),
		SubgroupSizeControl:      vkBool32ToBool(subgroupFeatures.subgroupSizeControl),
		ComputeFullSubgroups:     vkBool32ToBool(subgroupFeatures.computeFullSubgroups),
	}
}
