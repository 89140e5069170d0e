package vulkan

/*
#cgo pkg-config: vulkan
#include <vulkan/vulkan.h>
#include <stdlib.h>

static VkPipelineShaderStageRequiredSubgroupSizeCreateInfoEXT
makeRequiredSubgroupSizeInfo(uint32_t size) {
	VkPipelineShaderStageRequiredSubgroupSizeCreateInfoEXT info;
	info.sType = VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO_EXT;
	info.pNext = 0;
	info.requiredSubgroupSize = size;
	return info;
}
*/
import "C"

import "unsafe"

// ShaderModuleCreateInfo contains shader module creation information
type ShaderModuleCreateInfo struct {
	CodeSize uint32
	Code     []uint32
}

// PipelineShaderStageCreateInfo contains pipeline shader stage creation information
type PipelineShaderStageCreateInfo struct {
	Stage  ShaderStageFlags
	Module ShaderModule
	Name   string

	// RequiredSubgroupSize, when nonzero, chains a
	// VkPipelineShaderStageRequiredSubgroupSizeCreateInfoEXT onto this
	// stage and sets VK_PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT_EXT.
	RequiredSubgroupSize uint32
}

// ShaderStageFlags represents shader stage flags
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit                 ShaderStageFlags = C.VK_SHADER_STAGE_VERTEX_BIT
	ShaderStageTessellationControlBit    ShaderStageFlags = C.VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT
	ShaderStageTessellationEvaluationBit ShaderStageFlags = C.VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT
	ShaderStageGeometryBit               ShaderStageFlags = C.VK_SHADER_STAGE_GEOMETRY_BIT
	ShaderStageFragmentBit               ShaderStageFlags = C.VK_SHADER_STAGE_FRAGMENT_BIT
	ShaderStageComputeBit                ShaderStageFlags = C.VK_SHADER_STAGE_COMPUTE_BIT
	ShaderStageAllGraphics               ShaderStageFlags = C.VK_SHADER_STAGE_ALL_GRAPHICS
	ShaderStageAll                       ShaderStageFlags = C.VK_SHADER_STAGE_ALL
)

// PipelineLayoutCreateInfo contains pipeline layout creation information.
// This engine never binds descriptor sets, so SetLayouts is normally empty;
// it is kept so the binding stays a faithful wrapper of VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SetLayouts    []DescriptorSetLayout
	PushConstants []PushConstantRange
}

// PushConstantRange represents a push constant range
type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

// PipelineBindPoint represents pipeline bind points
type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = C.VK_PIPELINE_BIND_POINT_GRAPHICS
	PipelineBindPointCompute  PipelineBindPoint = C.VK_PIPELINE_BIND_POINT_COMPUTE
)

// AccessFlags represents memory access flags, used by CmdPipelineBarrier's
// VkMemoryBarrier entries.
type AccessFlags uint32

const (
	AccessIndirectCommandReadBit AccessFlags = C.VK_ACCESS_INDIRECT_COMMAND_READ_BIT
	AccessShaderReadBit          AccessFlags = C.VK_ACCESS_SHADER_READ_BIT
	AccessShaderWriteBit         AccessFlags = C.VK_ACCESS_SHADER_WRITE_BIT
	AccessTransferReadBit        AccessFlags = C.VK_ACCESS_TRANSFER_READ_BIT
	AccessTransferWriteBit       AccessFlags = C.VK_ACCESS_TRANSFER_WRITE_BIT
	AccessHostReadBit            AccessFlags = C.VK_ACCESS_HOST_READ_BIT
	AccessHostWriteBit           AccessFlags = C.VK_ACCESS_HOST_WRITE_BIT
	AccessMemoryReadBit          AccessFlags = C.VK_ACCESS_MEMORY_READ_BIT
	AccessMemoryWriteBit         AccessFlags = C.VK_ACCESS_MEMORY_WRITE_BIT
)

// CreateShaderModule creates a shader module
func CreateShaderModule(device Device, createInfo *ShaderModuleCreateInfo, allocator *AllocationCallbacks) (ShaderModule, error) {
	var cCreateInfo C.VkShaderModuleCreateInfo
	cCreateInfo.sType = C.VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO
	cCreateInfo.pNext = nil
	cCreateInfo.flags = 0
	cCreateInfo.codeSize = C.size_t(createInfo.CodeSize)
	if len(createInfo.Code) > 0 {
		cCreateInfo.pCode = (*C.uint32_t)(&createInfo.Code[0])
	}

	var shaderModule C.VkShaderModule
	result := Result(C.vkCreateShaderModule(C.VkDevice(device), &cCreateInfo, allocator.ptr(), &shaderModule))
	if result != Success {
		return nil, result
	}

	return ShaderModule(shaderModule), nil
}

// DestroyShaderModule destroys a shader module
func DestroyShaderModule(device Device, shaderModule ShaderModule, allocator *AllocationCallbacks) {
	C.vkDestroyShaderModule(C.VkDevice(device), C.VkShaderModule(shaderModule), allocator.ptr())
}

// CreatePipelineLayout creates a pipeline layout
func CreatePipelineLayout(device Device, createInfo *PipelineLayoutCreateInfo, allocator *AllocationCallbacks) (PipelineLayout, error) {
	var cCreateInfo C.VkPipelineLayoutCreateInfo
	cCreateInfo.sType = C.VK_STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO
	cCreateInfo.pNext = nil
	cCreateInfo.flags = 0

	var cSetLayouts []C.VkDescriptorSetLayout
	if len(createInfo.SetLayouts) > 0 {
		cSetLayouts = make([]C.VkDescriptorSetLayout, len(createInfo.SetLayouts))
		for i, layout := range createInfo.SetLayouts {
			cSetLayouts[i] = C.VkDescriptorSetLayout(layout)
		}
		cCreateInfo.setLayoutCount = C.uint32_t(len(cSetLayouts))
		cCreateInfo.pSetLayouts = &cSetLayouts[0]
	}

	var cPushConstants []C.VkPushConstantRange
	if len(createInfo.PushConstants) > 0 {
		cPushConstants = make([]C.VkPushConstantRange, len(createInfo.PushConstants))
		for i, pc := range createInfo.PushConstants {
			cPushConstants[i].stageFlags = C.VkShaderStageFlags(pc.StageFlags)
			cPushConstants[i].offset = C.uint32_t(pc.Offset)
			cPushConstants[i].size = C.uint32_t(pc.Size)
		}
		cCreateInfo.pushConstantRangeCount = C.uint32_t(len(cPushConstants))
		cCreateInfo.pPushConstantRanges = &cPushConstants[0]
	}

	var pipelineLayout C.VkPipelineLayout
	result := Result(C.vkCreatePipelineLayout(C.VkDevice(device), &cCreateInfo, allocator.ptr(), &pipelineLayout))
	if result != Success {
		return nil, result
	}

	return PipelineLayout(pipelineLayout), nil
}

// DestroyPipelineLayout destroys a pipeline layout
func DestroyPipelineLayout(device Device, pipelineLayout PipelineLayout, allocator *AllocationCallbacks) {
	C.vkDestroyPipelineLayout(C.VkDevice(device), C.VkPipelineLayout(pipelineLayout), allocator.ptr())
}

// ComputePipelineCreateInfo contains compute pipeline creation information
type ComputePipelineCreateInfo struct {
	Stage  PipelineShaderStageCreateInfo
	Layout PipelineLayout
}

// CreateComputePipelines creates one compute pipeline per entry in createInfos,
// in a single batched vkCreateComputePipelines call. When an entry's Stage
// carries a nonzero RequiredSubgroupSize, a
// VkPipelineShaderStageRequiredSubgroupSizeCreateInfoEXT is chained onto that
// stage and VK_PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT_EXT is
// set, matching the subgroup_size_control extension contract.
func CreateComputePipelines(device Device, cache PipelineCache, createInfos []ComputePipelineCreateInfo, allocator *AllocationCallbacks) ([]Pipeline, error) {
	if len(createInfos) == 0 {
		return nil, nil
	}

	cStages := make([]C.VkPipelineShaderStageCreateInfo, len(createInfos))
	cNames := make([]*C.char, len(createInfos))
	subgroupInfos := make([]C.VkPipelineShaderStageRequiredSubgroupSizeCreateInfoEXT, len(createInfos))
	cInfos := make([]C.VkComputePipelineCreateInfo, len(createInfos))

	for i, ci := range createInfos {
		name := ci.Stage.Name
		if name == "" {
			name = "main"
		}
		cNames[i] = C.CString(name)

		cStages[i].sType = C.VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO
		cStages[i].pNext = nil
		cStages[i].flags = 0
		cStages[i].stage = C.VkShaderStageFlagBits(ci.Stage.Stage)
		cStages[i].module = C.VkShaderModule(ci.Stage.Module)
		cStages[i].pName = cNames[i]

		if ci.Stage.RequiredSubgroupSize != 0 {
			cStages[i].flags = C.VkPipelineShaderStageCreateFlags(
				C.VK_PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT_EXT)
			subgroupInfos[i] = C.makeRequiredSubgroupSizeInfo(C.uint32_t(ci.Stage.RequiredSubgroupSize))
			cStages[i].pNext = unsafe.Pointer(&subgroupInfos[i])
		}

		cInfos[i].sType = C.VK_STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO
		cInfos[i].pNext = nil
		cInfos[i].flags = 0
		cInfos[i].stage = cStages[i]
		cInfos[i].layout = C.VkPipelineLayout(ci.Layout)
		cInfos[i].basePipelineHandle = nil
		cInfos[i].basePipelineIndex = -1
	}

	defer func() {
		for _, n := range cNames {
			C.free(unsafe.Pointer(n))
		}
	}()

	cPipelines := make([]C.VkPipeline, len(createInfos))
	result := Result(C.vkCreateComputePipelines(
		C.VkDevice(device),
		C.VkPipelineCache(cache),
		C.uint32_t(len(cInfos)),
		&cInfos[0],
		allocator.ptr(),
		&cPipelines[0],
	))
	if result != Success {
		return nil, result
	}

	pipelines := make([]Pipeline, len(cPipelines))
	for i, p := range cPipelines {
		pipelines[i] = Pipeline(p)
	}
	return pipelines, nil
}

// DestroyPipeline destroys a single pipeline.
func DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	C.vkDestroyPipeline(C.VkDevice(device), C.VkPipeline(pipeline), allocator.ptr())
}

// PipelineCacheCreateInfo contains pipeline cache creation information.
type PipelineCacheCreateInfo struct {
	InitialData []byte
}

// CreatePipelineCache creates a pipeline cache. Callers own the cache's
// lifetime; the engine only ever reads it during pipeline creation.
func CreatePipelineCache(device Device, createInfo *PipelineCacheCreateInfo, allocator *AllocationCallbacks) (PipelineCache, error) {
	var cCreateInfo C.VkPipelineCacheCreateInfo
	cCreateInfo.sType = C.VK_STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO
	cCreateInfo.pNext = nil
	cCreateInfo.flags = 0
	if createInfo != nil && len(createInfo.InitialData) > 0 {
		cCreateInfo.initialDataSize = C.size_t(len(createInfo.InitialData))
		cCreateInfo.pInitialData = unsafe.Pointer(&createInfo.InitialData[0])
	}

	var cache C.VkPipelineCache
	result := Result(C.vkCreatePipelineCache(C.VkDevice(device), &cCreateInfo, allocator.ptr(), &cache))
	if result != Success {
		return nil, result
	}
	return PipelineCache(cache), nil
}

// DestroyPipelineCache destroys a pipeline cache.
func DestroyPipelineCache(device Device, cache PipelineCache, allocator *AllocationCallbacks) {
	C.vkDestroyPipelineCache(C.VkDevice(device), C.VkPipelineCache(cache), allocator.ptr())
}

// GetAPIVersion returns the Vulkan API version this binding targets.
func GetAPIVersion() Version {
	return Version12
}

// IsExtensionSupported checks if an extension is supported
func IsExtensionSupported(extensionName string, availableExtensions []ExtensionProperties) bool {
	for _, ext := range availableExtensions {
		if ext.ExtensionName == extensionName {
			return true
		}
	}
	return false
}

// IsLayerSupported checks if a layer is supported
func IsLayerSupported(layerName string, availableLayers []LayerProperties) bool {
	for _, layer := range availableLayers {
		if layer.LayerName == layerName {
			return true
		}
	}
	return false
}
