package archive

// ExtensionIdentifiers lists, in declaration order, the device extensions a
// target archive may require. The order determines both the extension
// bitmap's bit positions and the position-to-name mapping used when a
// capability negotiator fills a caller's name buffer.
var ExtensionIdentifiers = []string{
	"KHR_buffer_device_address",
	"EXT_subgroup_size_control",
	"KHR_shader_float_controls2",
}

// Features10Names, Features11Names, and Features12Names list, in
// declaration order, the VkPhysicalDeviceFeatures / ...Vulkan11Features /
// ...Vulkan12Features booleans a target archive may require. Concatenated in
// this order they give the bit positions of the header's features bitmap.
var (
	Features10Names = []string{
		"ShaderInt64",
		"ShaderInt16",
	}
	Features11Names = []string{
		"StorageBuffer16BitAccess",
		"ShaderDrawParameters",
	}
	Features12Names = []string{
		"BufferDeviceAddress",
		"HostQueryReset",
		"TimelineSemaphore",
		"ShaderInt8",
		"StorageBuffer8BitAccess",
	}
)

// CanonicalExtensionName returns the "VK_"-prefixed form of a declared
// extension identifier, e.g. "KHR_buffer_device_address" becomes
// "VK_KHR_buffer_device_address".
func CanonicalExtensionName(identifier string) string {
	return "VK_" + identifier
}
