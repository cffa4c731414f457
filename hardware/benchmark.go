package hardware

import (
	"crypto/rand"
	mathrand "math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/samber/mo"
	gopsnet "github.com/shirou/gopsutil/v4/net"
)

// Storage benchmark geometry: write 64 MB of random bytes in 128 KB chunks,
// read back in 1 KB chunks with random seeks, each direction capped at 10 s.
const (
	benchmarkSize       = 64 << 20
	benchmarkWriteChunk = 128 << 10
	benchmarkReadChunk  = 1 << 10
	benchmarkCap        = 10 * time.Second
	benchmarkReads      = 4096
)

// networkWindow is the sampling window for the interface byte delta.
const networkWindow = 3 * time.Second

// benchmarkStorage measures sequential write and random read throughput on
// the volume holding path. A direction that exceeds its cap yields an
// absent Option: slow media report sizes without speeds rather than block.
func benchmarkStorage(path string) (read, write mo.Option[uint64]) {
	file := filepath.Join(where.Temp(), "benchmark.bin")
	defer os.Remove(file)

	chunk := make([]byte, benchmarkWriteChunk)
	if _, err := rand.Read(chunk); err != nil {
		return read, write
	}

	out, err := os.Create(file)
	if err != nil {
		return read, write
	}

	written := 0
	start := time.Now()
	for written < benchmarkSize {
		if time.Since(start) > benchmarkCap {
			break
		}
		n, err := out.Write(chunk)
		if err != nil {
			break
		}
		written += n
	}
	_ = out.Sync()
	_ = out.Close()
	writeElapsed := time.Since(start)

	if written >= benchmarkSize && writeElapsed > 0 {
		write = mo.Some(uint64(float64(written) / writeElapsed.Seconds()))
	}
	if written < benchmarkReadChunk {
		return read, write
	}

	in, err := os.Open(file)
	if err != nil {
		return read, write
	}
	defer in.Close()

	buffer := make([]byte, benchmarkReadChunk)
	total := 0
	start = time.Now()
	timedOut := false
	for i := 0; i < benchmarkReads; i++ {
		if time.Since(start) > benchmarkCap {
			timedOut = true
			break
		}
		offset := mathrand.Int63n(int64(written) - benchmarkReadChunk + 1)
		n, err := in.ReadAt(buffer, offset)
		if err != nil {
			break
		}
		total += n
	}
	readElapsed := time.Since(start)

	if !timedOut && total > 0 && readElapsed > 0 {
		read = mo.Some(uint64(float64(total) / readElapsed.Seconds()))
	}
	return read, write
}

// probeNetwork samples total interface byte counters across the sampling
// window and reports the observed throughput. Idle links legitimately
// measure near zero; callers treat the values as a lower bound.
func probeNetwork() Network {
	n := Network{}

	before, err := gopsnet.IOCounters(false)
	if err != nil || len(before) == 0 {
		return n
	}
	time.Sleep(networkWindow)
	after, err := gopsnet.IOCounters(false)
	if err != nil || len(after) == 0 {
		return n
	}

	seconds := networkWindow.Seconds()
	download := uint64(float64(after[0].BytesRecv-before[0].BytesRecv) / seconds)
	upload := uint64(float64(after[0].BytesSent-before[0].BytesSent) / seconds)
	n.Download = mo.Some(download)
	n.Upload = mo.Some(upload)
	n.Label = humanize.IBytes(download) + "/s down, " + humanize.IBytes(upload) + "/s up"
	return n
}
