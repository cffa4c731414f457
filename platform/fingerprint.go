package platform

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/cpu"
	gopshost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/spf13/cast"
)

var (
	fingerprintOnce sync.Once
	fingerprint     string
)

// Fingerprint returns the stable machine identifier: 64 lowercase hex
// characters, identical across runs on the same device and distinct across
// devices.
//
// The seed is the first available of the OS machine UUID, a non-loopback
// MAC address or a random UUID persisted to settings, mixed with the OS
// name, CPU model and RAM size before hashing.
func Fingerprint() string {
	fingerprintOnce.Do(func() {
		seed := machineSeed()

		parts := []string{seed, Detect().System}
		if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
			parts = append(parts, infos[0].ModelName)
		}
		if memory, err := mem.VirtualMemory(); err == nil {
			parts = append(parts, cast.ToString(memory.Total))
		}

		sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
		fingerprint = hex.EncodeToString(sum[:])
	})
	return fingerprint
}

// machineSeed picks the most stable device identity available.
func machineSeed() string {
	if id, err := gopshost.HostID(); err == nil && id != "" {
		return id
	}

	if interfaces, err := gopsnet.Interfaces(); err == nil {
		for _, iface := range interfaces {
			if iface.HardwareAddr == "" {
				continue
			}
			if hasFlag(iface.Flags, "loopback") {
				continue
			}
			return iface.HardwareAddr
		}
	}

	return persistedSeed()
}

// persistedSeed generates a random identity once and stores it through the
// settings tiers, so devices exposing neither a host UUID nor a usable MAC
// still fingerprint identically across restarts.
func persistedSeed() string {
	if persisted := settings.GetString(key.InternalIdentifier); persisted != "" {
		return persisted
	}
	generated := uuid.NewString()
	if err := settings.SetString(key.InternalIdentifier, generated); err != nil {
		log.Errorf("platform: persist machine identity: %v", err)
	}
	return generated
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}
