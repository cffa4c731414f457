// Package platform detects the operating system, architecture and host
// runtime the addon executes under, and derives a stable machine
// fingerprint used to key device-bound state.
//
// Detection is expensive, so the assembled profile is cached in a window
// property keyed by the addon version: a rebuild invalidates the cache, a
// plain invoker restart reuses it.
package platform

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/expression"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/log"
	gopshost "github.com/shirou/gopsutil/v4/host"
)

// Families.
const (
	FamilyWindows = "windows"
	FamilyUnix    = "unix"
)

// Systems.
const (
	SystemWindows = "windows"
	SystemMac     = "mac"
	SystemLinux   = "linux"
	SystemAndroid = "android"
)

// Architectures.
const (
	ArchitectureX86 = "x86"
	ArchitectureArm = "arm"
	ArchitectureArc = "arc"
)

// propertyProfile keys the cached profile in the window-property store.
const propertyProfile = "gaia.platform.profile." + constant.Version

// Environment variables consulted during Android detection. Read only.
var androidEnvironment = []string{"ANDROID_ARGUMENT", "ANDROID_BOOTLOGO", "ANDROID_STORAGE"}

// Filesystem hints consulted when environment detection is inconclusive.
var androidPaths = []string{"/system/build.prop", "/system/bin/getprop"}

// Profile is the assembled platform detection result. Fields are nullable
// by being empty; callers must tolerate missing values.
type Profile struct {
	Family       string `json:"family"`
	System       string `json:"system"`
	Distribution string `json:"distribution,omitempty"`
	Architecture string `json:"architecture"`
	Bits         int    `json:"bits"`
	Version      string `json:"version,omitempty"`

	RuntimeName    string `json:"runtimeName,omitempty"`
	RuntimeVersion string `json:"runtimeVersion,omitempty"`
	Fork           string `json:"fork,omitempty"`
}

var (
	detectOnce sync.Once
	profile    Profile
)

// Detect assembles the platform profile, serving repeats from the process
// cache or the version-keyed window property.
func Detect() Profile {
	detectOnce.Do(func() {
		if cached := host.Property(propertyProfile); cached != "" {
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				return
			}
		}

		profile = detect()

		if encoded := convert.JSONEncode(profile); encoded != "" {
			host.SetProperty(propertyProfile, encoded)
		}
	})
	return profile
}

// Reset drops the cached profile. Used on invoker reuse and version bumps.
func Reset() {
	detectOnce = sync.Once{}
	host.ClearProperty(propertyProfile)
}

func detect() Profile {
	p := Profile{
		System:       detectSystem(),
		Architecture: detectArchitecture(),
		Bits:         detectBits(),
	}

	if p.System == SystemWindows {
		p.Family = FamilyWindows
	} else {
		p.Family = FamilyUnix
	}

	if info, err := gopshost.Info(); err == nil {
		p.Version = info.PlatformVersion
		if p.Version == "" {
			p.Version = info.KernelVersion
		}
		if p.System == SystemLinux {
			p.Distribution = info.Platform
		}
	}

	p.RuntimeName, p.RuntimeVersion = detectRuntime()
	p.Fork = detectFork(p.RuntimeName)

	log.Details("platform detected", map[string]string{
		"family":       p.Family,
		"system":       p.System,
		"architecture": p.Architecture,
		"version":      p.Version,
		"fork":         p.Fork,
	})
	return p
}

// detectSystem classifies the OS, probing for Android in order: explicit
// system string, environment variables, getprop, filesystem hints.
func detectSystem() string {
	switch runtime.GOOS {
	case constant.Windows:
		return SystemWindows
	case constant.Darwin:
		return SystemMac
	case constant.Android:
		return SystemAndroid
	case constant.Linux:
		if detectAndroid() {
			return SystemAndroid
		}
		return SystemLinux
	default:
		return SystemLinux
	}
}

func detectAndroid() bool {
	for _, name := range androidEnvironment {
		if _, ok := os.LookupEnv(name); ok {
			return true
		}
	}
	for _, path := range androidPaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func detectArchitecture() string {
	switch {
	case strings.HasPrefix(runtime.GOARCH, "arm"):
		return ArchitectureArm
	case strings.HasPrefix(runtime.GOARCH, "riscv"):
		return ArchitectureArc
	default:
		return ArchitectureX86
	}
}

func detectBits() int {
	if strings.HasSuffix(runtime.GOARCH, "64") {
		return 64
	}
	return 32
}

// detectRuntime reads the host runtime identity from info labels, tolerating
// a bridge that knows neither.
func detectRuntime() (name, version string) {
	bridge := host.Current()
	name, _ = bridge.InfoLabel("System.FriendlyName")
	version, _ = bridge.InfoLabel("System.BuildVersion")
	if name == host.Busy {
		name = ""
	}
	if version == host.Busy {
		version = ""
	}
	return name, version
}

// forks maps known community forks of the host runtime to detection
// patterns evaluated against the OS version info and install paths.
var forks = []struct {
	name    string
	pattern string
}{
	{"coreelec", `coreelec`},
	{"libreelec", `libreelec`},
	{"openelec", `openelec`},
	{"emuelec", `emuelec`},
	{"alexelec", `alexelec`},
	{"lakka", `\blakka\b`},
	{"batocera", `batocera`},
	{"recalbox", `recalbox`},
	{"osmc", `\bosmc\b`},
	{"raspbmc", `raspbmc`},
	{"xbian", `xbian`},
	{"mygica", `mygica`},
	{"wetek", `wetek`},
	{"minix", `minix`},
	{"vero", `\bvero\b`},
	{"odroid", `odroid`},
	{"khadas", `khadas`},
	{"beelink", `beelink`},
	{"mecool", `mecool`},
	{"tanix", `\btanix\b`},
	{"zidoo", `zidoo`},
	{"himedia", `himedia`},
	{"formuler", `formuler`},
	{"dreambox", `dreambox`},
	{"enigma", `enigma2?`},
	{"spmc", `\bspmc\b`},
	{"mrmc", `\bmrmc\b`},
	{"ftmc", `\bftmc\b`},
	{"cemc", `\bcemc\b`},
	{"crystal", `crystal`},
	{"fusion", `fusion`},
}

func detectFork(runtimeName string) string {
	bridge := host.Current()
	info, _ := bridge.InfoLabel("System.OSVersionInfo")
	haystack := strings.ToLower(info + " " + runtimeName)
	for _, fork := range forks {
		if expression.Match(fork.pattern, haystack) {
			return fork.name
		}
	}
	return ""
}
