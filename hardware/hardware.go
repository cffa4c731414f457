// Package hardware probes the device's processor, memory, storage and
// network, and condenses the measurements into a unit-interval performance
// rating used to size thread pools and tune scrape concurrency.
//
// Every metric is nullable: probes that fail or time out leave an absent
// Option instead of erroring, and the rating substitutes per-architecture
// fallbacks so missing measurements do not bias the score.
package hardware

import (
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/samber/mo"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Processor vendor types.
const (
	ProcessorIntel = "intel"
	ProcessorAmd   = "amd"
	ProcessorArm   = "arm"
	ProcessorArc   = "arc"
)

// Processor describes the CPU. Clocks are in MHz.
type Processor struct {
	Type    string
	Model   string
	Cores   int
	Threads int

	Clocks      []float64
	TotalClock  float64
	HighClock   float64
	LowClock    float64
	CommonClock float64

	Usage mo.Option[float64] // percent

	Label string
}

// Memory describes RAM in bytes.
type Memory struct {
	Total uint64
	Free  uint64
	Used  uint64

	Label string
}

// Storage describes the profile volume in bytes, with optional measured
// throughput in bytes per second.
type Storage struct {
	Total uint64
	Free  uint64
	Used  uint64

	ReadSpeed  mo.Option[uint64]
	WriteSpeed mo.Option[uint64]

	Label string
}

// Network describes measured throughput in bytes per second.
type Network struct {
	Download mo.Option[uint64]
	Upload   mo.Option[uint64]

	Label string
}

// Report is the nested hardware record.
type Report struct {
	Processor Processor
	Memory    Memory
	Storage   Storage
	Network   Network
}

// Options selects which expensive probes Probe runs.
type Options struct {
	// BenchmarkStorage runs the read/write throughput benchmark.
	BenchmarkStorage bool
	// BenchmarkNetwork samples interface byte deltas over a 3 s window.
	BenchmarkNetwork bool
	// Path overrides the volume probed for storage, defaulting to the
	// profile directory.
	Path string
}

// Probe assembles a hardware report. Failed metrics stay zero or absent.
func Probe(options Options) Report {
	var report Report
	report.Processor = probeProcessor()
	report.Memory = probeMemory()
	report.Storage = probeStorage(options)
	if options.BenchmarkNetwork {
		report.Network = probeNetwork()
	}

	log.Details("hardware probed", map[string]string{
		"processor": report.Processor.Label,
		"memory":    report.Memory.Label,
		"storage":   report.Storage.Label,
		"network":   report.Network.Label,
	})
	return report
}

func probeProcessor() Processor {
	p := Processor{
		Threads: runtime.NumCPU(),
		Type:    processorType(""),
	}

	if cores, err := cpu.Counts(false); err == nil {
		p.Cores = cores
	}
	if p.Cores == 0 {
		p.Cores = p.Threads
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		p.Model = strings.TrimSpace(infos[0].ModelName)
		p.Type = processorType(p.Model + " " + infos[0].VendorID)
		for _, info := range infos {
			if info.Mhz > 0 {
				p.Clocks = append(p.Clocks, info.Mhz)
			}
		}
	}

	if len(p.Clocks) > 0 {
		p.LowClock = p.Clocks[0]
		p.HighClock = p.Clocks[0]
		counts := map[float64]int{}
		for _, clock := range p.Clocks {
			p.TotalClock += clock
			if clock > p.HighClock {
				p.HighClock = clock
			}
			if clock < p.LowClock {
				p.LowClock = clock
			}
			counts[clock]++
		}
		best := 0
		for clock, count := range counts {
			if count > best || (count == best && clock > p.CommonClock) {
				best = count
				p.CommonClock = clock
			}
		}
		// A single reported clock speaks for every core.
		if len(p.Clocks) == 1 && p.Threads > 1 {
			p.TotalClock = p.Clocks[0] * float64(p.Threads)
		}
	}

	if usages, err := cpu.Percent(0, false); err == nil && len(usages) > 0 {
		p.Usage = mo.Some(usages[0])
	}

	p.Label = processorLabel(p)
	return p
}

func processorType(description string) string {
	description = strings.ToLower(description)
	switch {
	case strings.Contains(description, "intel"):
		return ProcessorIntel
	case strings.Contains(description, "amd"):
		return ProcessorAmd
	case strings.Contains(description, "arm") || strings.Contains(description, "aarch"):
		return ProcessorArm
	case platform.Detect().Architecture == platform.ArchitectureArm:
		return ProcessorArm
	case platform.Detect().Architecture == platform.ArchitectureArc:
		return ProcessorArc
	default:
		return ProcessorIntel
	}
}

func processorLabel(p Processor) string {
	var b strings.Builder
	if p.Model != "" {
		b.WriteString(p.Model)
	} else {
		b.WriteString(strings.ToUpper(p.Type))
	}
	if p.Threads > 0 {
		b.WriteString(" (")
		b.WriteString(humanize.Comma(int64(p.Threads)))
		b.WriteString(" threads")
		if p.CommonClock > 0 {
			b.WriteString(" @ ")
			b.WriteString(humanize.CommafWithDigits(p.CommonClock/1000, 2))
			b.WriteString(" GHz")
		}
		b.WriteString(")")
	}
	return b.String()
}

func probeMemory() Memory {
	m := Memory{}
	if memory, err := mem.VirtualMemory(); err == nil {
		m.Total = memory.Total
		m.Free = memory.Available
		m.Used = memory.Used
		m.Label = humanize.IBytes(m.Used) + " of " + humanize.IBytes(m.Total)
	}
	return m
}

func probeStorage(options Options) Storage {
	s := Storage{}

	path := options.Path
	if path == "" {
		path = "/"
		if runtime.GOOS == "windows" {
			path = "C:"
		}
	}

	if usage, err := disk.Usage(path); err == nil {
		s.Total = usage.Total
		s.Free = usage.Free
		s.Used = usage.Used
		s.Label = humanize.IBytes(s.Free) + " free of " + humanize.IBytes(s.Total)
	}

	if options.BenchmarkStorage {
		read, write := benchmarkStorage(path)
		s.ReadSpeed = read
		s.WriteSpeed = write
		if speed, ok := write.Get(); ok {
			s.Label += " (" + humanize.IBytes(speed) + "/s write)"
		}
	}
	return s
}
