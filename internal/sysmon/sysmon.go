// Package sysmon provides system-wide CPU and memory usage sampling for the
// benchmark harness.
package sysmon

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultInterval is the sampling period used by callers without a specific
// cadence requirement.
const DefaultInterval = time.Second

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Watch samples at the given interval until the context is done and returns
// the peak usage observed. Interval values below 100ms are raised to 100ms
// to keep the sampling overhead negligible.
func Watch(ctx context.Context, interval time.Duration) Stats {
	const minInterval = 100 * time.Millisecond
	if interval < minInterval {
		interval = minInterval
	}

	// Prime the CPU delta so the first real sample is meaningful.
	_ = Sample()

	var peak Stats
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return peak
		case <-ticker.C:
			s := Sample()
			if s.CPUPercent > peak.CPUPercent {
				peak.CPUPercent = s.CPUPercent
			}
			if s.MemPercent > peak.MemPercent {
				peak.MemPercent = s.MemPercent
			}
		}
	}
}
