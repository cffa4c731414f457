package hardware

import (
	"github.com/gaiakodi/gaiacore/platform"
)

// Rating bands.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandMedium    = "medium"
	BandPoor      = "poor"
	BandBad       = "bad"
)

// Scaled metrics clamp into this interval so no single measurement can
// zero out or saturate the weighted sum.
const (
	scaleFloor   = 0.01
	scaleCeiling = 0.9949
)

// Component weights. CPU dominates because scraping is parse-bound.
const (
	weightProcessor = 0.75
	weightMemory    = 0.05
	weightStorage   = 0.10
	weightNetwork   = 0.10
)

// Piecewise-linear floors and ceilings per metric.
const (
	clockSingleFloor   = 1600.0 // MHz
	clockSingleCeiling = 3000.0
	clockTotalFloor    = 3200.0 // MHz across all threads
	clockTotalCeiling  = 32000.0
	memoryFloor        = 1 << 30  // 1 GiB
	memoryCeiling      = 16 << 30 // 16 GiB
	storageFloor       = 30 << 20 // 30 MiB/s
	storageCeiling     = 400 << 20
	networkFloor       = 125 << 10 // ~1 Mbit/s
	networkCeiling     = 12500 << 10
)

// Architecture fallbacks substituted for missing measurements so devices
// that cannot report a metric are not punished for it.
const (
	fallbackArm      = 0.2
	fallbackX86Many  = 0.6
	fallbackX86Few   = 0.4
	fallbackArc      = 0.3
	manyCoreBoundary = 4
)

// Rating is the condensed performance verdict.
type Rating struct {
	Value     float64
	Band      string
	Processor float64
	Memory    float64
	Storage   float64
	Network   float64
}

// scale maps a measurement linearly into [scaleFloor, scaleCeiling]
// against its floor and ceiling.
func scale(value, floor, ceiling float64) float64 {
	if ceiling <= floor {
		return scaleFloor
	}
	scaled := (value - floor) / (ceiling - floor)
	if scaled < scaleFloor {
		return scaleFloor
	}
	if scaled > scaleCeiling {
		return scaleCeiling
	}
	return scaled
}

// fallback returns the architecture-specific substitute for an unmeasured
// metric.
func fallback(report Report) float64 {
	switch report.Processor.Type {
	case ProcessorArm:
		return fallbackArm
	case ProcessorArc:
		return fallbackArc
	default:
		if report.Processor.Threads >= manyCoreBoundary {
			return fallbackX86Many
		}
		return fallbackX86Few
	}
}

// Rate condenses a hardware report into the weighted performance rating.
// The result is always within [0, 1].
func Rate(report Report) Rating {
	substitute := fallback(report)

	processor := substitute
	if report.Processor.CommonClock > 0 && report.Processor.TotalClock > 0 {
		single := scale(report.Processor.CommonClock, clockSingleFloor, clockSingleCeiling)
		total := scale(report.Processor.TotalClock, clockTotalFloor, clockTotalCeiling)
		processor = (single + total) / 2
	} else if platform.Detect().Architecture == platform.ArchitectureArm {
		processor = fallbackArm
	}

	memory := substitute
	if report.Memory.Total > 0 {
		memory = scale(float64(report.Memory.Total), memoryFloor, memoryCeiling)
	}

	storage := substitute
	read, readOk := report.Storage.ReadSpeed.Get()
	write, writeOk := report.Storage.WriteSpeed.Get()
	switch {
	case readOk && writeOk:
		storage = (scale(float64(read), storageFloor, storageCeiling) +
			scale(float64(write), storageFloor, storageCeiling)) / 2
	case readOk:
		storage = scale(float64(read), storageFloor, storageCeiling)
	case writeOk:
		storage = scale(float64(write), storageFloor, storageCeiling)
	}

	network := substitute
	if download, ok := report.Network.Download.Get(); ok {
		network = scale(float64(download), networkFloor, networkCeiling)
	}

	value := weightProcessor*processor + weightMemory*memory +
		weightStorage*storage + weightNetwork*network
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	return Rating{
		Value:     value,
		Band:      band(value),
		Processor: processor,
		Memory:    memory,
		Storage:   storage,
		Network:   network,
	}
}

// band buckets a rating value into its named band.
func band(value float64) string {
	switch {
	case value >= 0.8:
		return BandExcellent
	case value >= 0.6:
		return BandGood
	case value >= 0.4:
		return BandMedium
	case value >= 0.2:
		return BandPoor
	default:
		return BandBad
	}
}
