package hardware

import (
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/shirou/gopsutil/v4/mem"
)

// Per-thread stack reservations by system, in bytes. These follow the
// default native stack sizes, since heavy scrape fan-out can exhaust
// address space on 32-bit devices long before CPU does.
var threadStacks = map[string]uint64{
	platform.SystemWindows: 1 << 20,
	platform.SystemLinux:   8 << 20,
	platform.SystemMac:     512 << 10,
	platform.SystemAndroid: 1 << 20,
}

// ThreadLimit computes a safe upper bound on concurrent worker threads as
// (free memory × adjust) / per-thread stack. A zero memory argument probes
// the current free memory. The result is at least 1.
func ThreadLimit(memory uint64, adjust float64) int {
	if memory == 0 {
		if probed, err := mem.VirtualMemory(); err == nil {
			memory = probed.Available
		}
	}
	if adjust <= 0 || adjust > 1 {
		adjust = 1
	}

	stack, ok := threadStacks[platform.Detect().System]
	if !ok {
		stack = 8 << 20
	}

	limit := int(float64(memory) * adjust / float64(stack))
	if limit < 1 {
		limit = 1
	}
	return limit
}
