package vulkan

import "testing"

// TestOpenComputeDeviceDoesNotPanic exercises the full bring-up path
// against whatever loader is installed in the test environment. Without a
// physical GPU this is expected to fail with ErrNoComputeQueueFamily (zero
// devices enumerate) or a VulkanError from vkCreateInstance; either is a
// valid, handled outcome.
func TestOpenComputeDeviceDoesNotPanic(t *testing.T) {
	ctx, err := OpenComputeDevice("vkradixsort-test", nil, nil, nil, nil)
	if err != nil {
		t.Logf("OpenComputeDevice: %v (expected without a physical GPU)", err)
		return
	}
	defer ctx.Close()

	if ctx.Device == nil {
		t.Fatal("ComputeContext.Device is nil despite nil error")
	}
}
