// Package launch orchestrates the addon's cold start.
//
// The orchestrator runs once per host session. A window property carries
// its state machine so a widget invocation, the service process and the
// splash dialog all observe the same progress. Foreground starts show a
// splash; hidden starts run the same tasks silently.
package launch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gaiakodi/gaiacore/clock"
	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/expression"
	"github.com/gaiakodi/gaiacore/extension"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/hardware"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/language"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/observer"
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/gaiakodi/gaiacore/system"
	"github.com/gaiakodi/gaiacore/where"
)

// Mode distinguishes how the session began.
type Mode int

const (
	// ModeForeground means the user opened the addon.
	ModeForeground Mode = iota
	// ModeHidden means a widget triggered a call before any UI opened.
	ModeHidden
)

// State machine values stored in the launch property.
type State int

const (
	StateUninitialized State = iota
	StateForegroundStarted
	StateServiceInstalled
	StateHiddenComplete
	StateOpeningForeground
	StateForegroundComplete
)

const (
	propertyState    = "gaia.launch.state"
	propertyProgress = "gaia.launch.progress"
	propertyRating   = "gaia.launch.rating"

	// benchmarkCap bounds the background hardware benchmark so a slow
	// disk cannot stall the rating property forever.
	benchmarkCap = 120 * time.Second
)

// CurrentState reads the session's launch state.
func CurrentState() State {
	return State(convert.Integer(host.Property(propertyState)))
}

func setState(state State) {
	host.SetProperty(propertyState, convert.String(int(state)))
}

// Progress reads the published launch progress percentage.
func Progress() int {
	return convert.Integer(host.Property(propertyProgress))
}

// task is one sequenced launch step contributing a fixed share of the
// progress bar.
type task struct {
	name    string
	percent int
	run     func(c *context) error
}

// context carries state between tasks of one launch.
type context struct {
	mode          Mode
	versionBumped bool
}

var tasks = []task{
	{"service", 2, taskService},
	{"settings", 5, taskSettings},
	{"backup", 5, taskBackup},
	{"warm", 5, taskWarm},
	{"version", 5, taskVersion},
	{"configure", 1, taskConfigure},
	{"benchmark", 2, taskBenchmark},
	{"menu", 3, taskMenu},
	{"properties", 1, taskProperties},
	{"windows", 4, taskWindows},
	{"artwork", 1, taskArtwork},
	{"temp", 1, taskTemp},
	{"expressions", 2, taskExpressions},
	{"probes", 2, taskProbes},
	{"engine", 2, taskEngine},
	{"accounts", 5, taskAccounts},
	{"resolvers", 3, taskResolvers},
	{"catalogs", 22, taskCatalogs},
	{"history", 27, taskHistory},
	{"platform", 2, taskPlatform},
}

// Run executes the launch sequence. Repeated calls within a session return
// immediately once the state machine shows completion for the given mode.
func Run(mode Mode) error {
	state := CurrentState()
	switch {
	case mode == ModeHidden && state >= StateHiddenComplete:
		return nil
	case mode == ModeForeground && state >= StateForegroundComplete:
		return nil
	}

	if mode == ModeForeground {
		if state >= StateHiddenComplete {
			setState(StateOpeningForeground)
		} else {
			setState(StateForegroundStarted)
		}
	}

	c := &context{mode: mode}
	bridge := host.Current()
	timer := clock.StartTimer()
	progress := 0

	for _, t := range tasks {
		if bridge.Aborted() {
			return fmt.Errorf("launch aborted during %s", t.name)
		}
		if err := t.run(c); err != nil {
			log.Warnf("launch: %s: %v", t.name, err)
		}
		progress += t.percent
		host.SetProperty(propertyProgress, convert.String(progress))
	}
	host.SetProperty(propertyProgress, "100")

	finish(c)
	log.Infof("launch: completed in %dms", timer.ElapsedMilli())
	return nil
}

// finish applies the completion effects: version stamp, state advance,
// splash close, the announcement and promotion hooks and the automatic
// backup.
func finish(c *context) {
	if err := settings.SetString(key.InternalVersion, constant.Version); err != nil {
		log.Warnf("launch: version stamp: %v", err)
	}
	if err := settings.Set(key.InternalLaunch, clock.Timestamp()); err != nil {
		log.Warnf("launch: launch stamp: %v", err)
	}

	if c.mode == ModeForeground {
		setState(StateForegroundComplete)
		if err := host.Current().ExecuteBuiltin("Dialog.Close(all,true)"); err != nil {
			log.Debugf("launch: splash close: %v", err)
		}
		if Announcer != nil {
			Announcer()
		} else {
			log.Debug("launch: no announcement sink attached")
		}
		if Promoter != nil && promoteDue() {
			Promoter()
		}
	} else {
		setState(StateHiddenComplete)
	}

	if settings.GetBoolean(key.BackupAutomatic) {
		if err := settings.Export(); err != nil {
			log.Warnf("launch: automatic backup: %v", err)
		}
	}
}

func taskService(c *context) error {
	if CurrentState() < StateServiceInstalled && c.mode == ModeForeground {
		setState(StateServiceInstalled)
	}
	return nil
}

func taskSettings(*context) error {
	return settings.Setup()
}

func taskBackup(*context) error {
	return settings.ImportOnStartup()
}

// taskWarm forces one read so the settings file is parsed and cached
// before any latency-sensitive invocation needs it.
func taskWarm(*context) error {
	settings.Get(key.InternalVersion)
	return nil
}

// taskVersion compares the stored version against the running one. On a
// bump the cross-session properties and every process-level cache are
// dropped so stale detection results cannot survive an upgrade.
func taskVersion(c *context) error {
	stored := settings.GetString(key.InternalVersion)
	if stored == constant.Version {
		return nil
	}
	c.versionBumped = true
	log.Infof("launch: version %s -> %s", stored, constant.Version)
	host.ClearProperties()
	system.ResetAll(false)
	return nil
}

// taskConfigure injects the playlist and buffer tuning into the host's
// advanced settings, sized against total memory.
func taskConfigure(*context) error {
	report := hardware.Probe(hardware.Options{})

	// A fifth of total memory, capped, for the player's read-ahead cache.
	buffer := int64(64 << 20)
	if total := report.Memory.Total; total > 0 {
		buffer = int64(total / 5)
		if limit := int64(512 << 20); buffer > limit {
			buffer = limit
		}
	}

	return patchAdvanced(buffer)
}

// taskBenchmark kicks off the storage and network benchmark in the
// background, publishing the resulting rating as a property.
func taskBenchmark(*context) error {
	go func() {
		done := make(chan hardware.Rating, 1)
		go func() {
			report := hardware.Probe(hardware.Options{
				BenchmarkStorage: true,
				BenchmarkNetwork: true,
				Path:             where.Temp(),
			})
			done <- hardware.Rate(report)
		}()

		select {
		case rating := <-done:
			host.SetProperty(propertyRating, convert.JSONEncode(rating))
		case <-time.After(benchmarkCap):
			log.Debug("launch: benchmark exceeded soft cap")
		}
	}()
	return nil
}

// taskMenu seeds the root menu envelopes so the first directory listing
// does not pay for encoding.
func taskMenu(*context) error {
	seedMenu()
	return nil
}

func taskProperties(*context) error {
	return host.RestoreProperties()
}

// taskWindows clears stale generated skin-window files after an upgrade,
// since their layout may no longer match the running version.
func taskWindows(c *context) error {
	if !c.versionBumped {
		return nil
	}
	files, _, err := filesystem.ListDirectory(where.Temp())
	if err != nil {
		return err
	}
	for _, file := range files {
		if expression.Match(`^window.*\.xml$`, file) {
			_ = filesystem.DeleteFile(filepath.Join(where.Temp(), file))
		}
	}
	return nil
}

// taskArtwork copies the selected theme background over the addon fanart.
func taskArtwork(*context) error {
	source := filepath.Join(where.Profile(), "theme", "background.jpg")
	if filesystem.Exists(source) != filesystem.ExistsFile {
		return nil
	}
	return filesystem.CopyFile(source, filepath.Join(where.Profile(), "fanart.jpg"))
}

func taskTemp(*context) error {
	return filesystem.ClearDirectory(where.Temp())
}

// taskExpressions drops the regex memo and sweeps undeclared settings so
// neither grows without bound across sessions.
func taskExpressions(*context) error {
	expression.Reset()
	_, err := settings.Cleanup()
	return err
}

// taskProbes checks which companion addons are present so later calls can
// skip the ones that are not.
func taskProbes(*context) error {
	for _, e := range extension.All() {
		host.SetProperty("gaia.extension."+e.ID, convert.String(extension.Enabled(e.ID)))
	}
	return nil
}

// taskEngine fires a non-blocking liveness check at the configured torrent
// engine port.
func taskEngine(*context) error {
	port := settings.GetInteger(key.ExtensionEnginePort)
	if port <= 0 {
		return nil
	}
	go probeEngine(port)
	return nil
}

// taskAccounts records which external services hold stored credentials.
func taskAccounts(*context) error {
	services := []string{
		extension.ServiceOrion,
		extension.ServicePremiumize,
		extension.ServiceOffCloud,
		extension.ServiceRealDebrid,
	}
	for _, service := range services {
		host.SetProperty("gaia.account."+service,
			convert.String(extension.Authenticated(service)))
	}
	return nil
}

// taskResolvers verifies the required resolvers, installing missing ones
// on a foreground launch where the install dialogs are acceptable.
func taskResolvers(c *context) error {
	for _, e := range extension.Required() {
		if extension.Enabled(e.ID) {
			continue
		}
		if c.mode != ModeForeground {
			log.Infof("launch: required extension %s missing, deferring install", e.ID)
			continue
		}
		if err := extension.Install(e.ID); err != nil {
			log.Warnf("launch: install %s: %v", e.ID, err)
		}
	}
	return nil
}

// taskCatalogs pulls the locale catalogs into memory, the heaviest share
// of a cold start.
func taskCatalogs(*context) error {
	language.All()
	settings.Get(key.GeneralLanguagePrimary)
	settings.Get(key.GeneralCountry)
	return nil
}

// taskHistory restores the persisted observer log so binge evaluation
// spans host restarts.
func taskHistory(*context) error {
	return observer.Restore()
}

func taskPlatform(*context) error {
	platform.Detect()
	host.SetProperty("gaia.platform.fingerprint", platform.Fingerprint())
	return nil
}
