package system

import (
	"fmt"

	"github.com/gaiakodi/gaiacore/command"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/settings"
)

// PowerAction names a host power or session operation.
type PowerAction string

const (
	PowerPowerdown     PowerAction = "powerdown"
	PowerShutdown      PowerAction = "shutdown"
	PowerReboot        PowerAction = "reboot"
	PowerReset         PowerAction = "reset"
	PowerSuspend       PowerAction = "suspend"
	PowerHibernate     PowerAction = "hibernate"
	PowerStandby       PowerAction = "standby"
	PowerMinimize      PowerAction = "minimize"
	PowerQuit          PowerAction = "quit"
	PowerRestart       PowerAction = "restart"
	PowerScreensaver   PowerAction = "screensaver"
	PowerReloadProfile PowerAction = "reloadprofile"
	PowerRefreshSkin   PowerAction = "refreshskin"
	PowerRelaunch      PowerAction = "relaunch"
)

// powerBuiltins maps actions to host builtin commands. Actions absent here
// are serviced by local procedures instead.
var powerBuiltins = map[PowerAction]string{
	PowerPowerdown:     "Powerdown",
	PowerShutdown:      "ShutDown",
	PowerReboot:        "Reboot",
	PowerReset:         "Reset",
	PowerSuspend:       "Suspend",
	PowerHibernate:     "Hibernate",
	PowerStandby:       "CECStandby",
	PowerMinimize:      "Minimize",
	PowerQuit:          "Quit",
	PowerRestart:       "RestartApp",
	PowerScreensaver:   "ActivateScreensaver",
	PowerReloadProfile: "LoadProfile(Master user)",
	PowerRefreshSkin:   "ReloadSkin()",
}

// Power executes a power action. Playback is stopped first so history
// synchronization completes before the session ends.
func Power(action PowerAction) error {
	if settings.GetBoolean(key.PlaybackHistorySync) {
		stopPlayback()
	}

	if action == PowerRelaunch {
		return Restart()
	}

	builtin, ok := powerBuiltins[action]
	if !ok {
		return fmt.Errorf("unknown power action %q", action)
	}
	log.Infof("system: power action %s", action)
	return host.Current().ExecuteBuiltin(builtin)
}

// stopPlayback halts the player and lets pending history updates flush.
func stopPlayback() {
	if _, err := JSONRPC("Player.Stop", map[string]any{"playerid": 1}); err != nil {
		log.Debugf("system: stop playback: %v", err)
	}
}

// propertyRestart flags a restart in flight so reentrant invocations do
// not stack restarts.
const propertyRestart = "gaia.system.restart"

// Restart performs a soft relaunch: caches are cleared, the current
// directory closes and the addon's root window reopens.
func Restart() error {
	if host.Property(propertyRestart) != "" {
		return nil
	}
	host.SetProperty(propertyRestart, "1")
	defer host.ClearProperty(propertyRestart)

	settings.Reset(true)

	bridge := host.Current()
	if err := bridge.ExecuteBuiltin("Container.Refresh"); err != nil {
		return err
	}
	return PluginCall("home", nil, command.OriginInternal)
}

// Restarting reports whether a soft relaunch is in flight.
func Restarting() bool {
	return host.Property(propertyRestart) != ""
}
