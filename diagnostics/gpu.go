package diagnostics

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/google/uuid"
)

// Sample is a point-in-time GPU telemetry reading, tagged with a random ID
// so a caller can correlate a sample with the sort submission it was taken
// around (e.g. log it alongside a command-buffer's timeline semaphore
// value) without threading that context through the engine package.
type Sample struct {
	ID                 uuid.UUID
	TemperatureC       uint32
	MemoryClockMHz     uint32
	GraphicsClockMHz   uint32
	UsedMemoryBytes    uint64
	TotalMemoryBytes   uint64
	UtilizationPercent uint32
	PowerDrawMilliwatt uint32
	FanSpeedPercent    uint32
}

// Monitor samples NVML device state for a single GPU. It must be closed
// after use to release the NVML library handle.
type Monitor struct {
	device nvml.Device
}

// OpenMonitor initializes NVML and binds a Monitor to the device at index.
// Callers that don't need telemetry (or run on non-NVIDIA hardware) should
// simply never construct a Monitor; nothing else in this module depends on
// NVML being present.
func OpenMonitor(deviceIndex int) (*Monitor, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, fmt.Errorf("diagnostics: nvml.Init: %v", nvml.ErrorString(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(deviceIndex)
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, fmt.Errorf("diagnostics: nvml.DeviceGetHandleByIndex(%d): %v", deviceIndex, nvml.ErrorString(ret))
	}

	return &Monitor{device: device}, nil
}

// Close shuts down the NVML library. Safe to call once per OpenMonitor.
func (m *Monitor) Close() error {
	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return fmt.Errorf("diagnostics: nvml.Shutdown: %v", nvml.ErrorString(ret))
	}
	return nil
}

// Sample reads the current state of the bound device. Fields whose NVML
// query fails are left zero rather than aborting the whole sample, since
// not every field is supported on every device/driver combination.
func (m *Monitor) Sample() Sample {
	s := Sample{ID: uuid.New()}

	if temp, ret := m.device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		s.TemperatureC = temp
	}
	if clock, ret := m.device.GetClockInfo(nvml.CLOCK_MEM); ret == nvml.SUCCESS {
		s.MemoryClockMHz = clock
	}
	if clock, ret := m.device.GetClockInfo(nvml.CLOCK_GRAPHICS); ret == nvml.SUCCESS {
		s.GraphicsClockMHz = clock
	}
	if mem, ret := m.device.GetMemoryInfo(); ret == nvml.SUCCESS {
		s.UsedMemoryBytes = mem.Used
		s.TotalMemoryBytes = mem.Total
	}
	if util, ret := m.device.GetUtilizationRates(); ret == nvml.SUCCESS {
		s.UtilizationPercent = util.Gpu
	}
	if power, ret := m.device.GetPowerUsage(); ret == nvml.SUCCESS {
		s.PowerDrawMilliwatt = power
	}
	if fan, ret := m.device.GetFanSpeed(); ret == nvml.SUCCESS {
		s.FanSpeedPercent = fan
	}

	return s
}

// LogSample writes a sample to the package logger at debug level, tagged
// with its correlation ID.
func LogSample(s Sample) {
	Debug("gpu sample",
		"id", s.ID,
		"temp_c", s.TemperatureC,
		"util_pct", s.UtilizationPercent,
		"mem_used", s.UsedMemoryBytes,
		"mem_total", s.TotalMemoryBytes,
		"power_mw", s.PowerDrawMilliwatt,
	)
}
