package diagnostics

import "testing"

// TestMonitorRequiresHardware documents that OpenMonitor needs a real NVML
// shared library and an NVIDIA device; it cannot be exercised by a hosted
// unit test and is skipped unconditionally.
func TestMonitorRequiresHardware(t *testing.T) {
	t.Skip("requires NVML and a physical NVIDIA GPU")
}
