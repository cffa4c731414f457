package extension

import (
	"fmt"
	"time"

	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/log"
)

// Installation drives the host's install UI rather than its JSON-RPC,
// because only the UI path pulls dependencies from repositories. The
// confirmation dialog is auto-accepted and completion is detected by
// polling dialog visibility, both bounded so a wedged host cannot hang
// the caller.
const (
	confirmDelay    = 500 * time.Millisecond
	installInterval = 1 * time.Second
	installAttempts = 120
)

// Install installs an addon through the host UI and verifies it comes up
// enabled. When the first attempt fails and the extension declares a
// repository, the repository is installed and the addon retried once.
func Install(id string) error {
	if Enabled(id) {
		return nil
	}

	err := installOnce(id)
	if err == nil {
		return nil
	}
	log.Infof("extension: install %s failed, trying repository: %v", id, err)

	extension, ok := Lookup(id)
	if !ok || extension.Repository == "" {
		return fmt.Errorf("install %s: no repository fallback", id)
	}
	if err := installOnce(extension.Repository); err != nil {
		return fmt.Errorf("install repository %s: %w", extension.Repository, err)
	}
	if err := installOnce(id); err != nil {
		return fmt.Errorf("install %s after repository: %w", id, err)
	}
	return nil
}

// installOnce performs one full install cycle for a single addon id.
func installOnce(id string) error {
	bridge := host.Current()

	if err := bridge.ExecuteBuiltin(fmt.Sprintf("InstallAddon(%s)", id)); err != nil {
		return fmt.Errorf("install builtin: %w", err)
	}

	// The host raises a yes/no dialog before downloading. Give it time to
	// appear, then press yes.
	bridge.Sleep(confirmDelay)
	if dialogVisible("yesnodialog") {
		if err := bridge.ExecuteBuiltin("SendClick(yesnodialog,11)"); err != nil {
			return fmt.Errorf("confirm dialog: %w", err)
		}
	}

	for attempt := 0; attempt < installAttempts; attempt++ {
		if bridge.Aborted() {
			return fmt.Errorf("aborted during install of %s", id)
		}
		if !dialogVisible("progressdialog") && !dialogVisible("extendedprogressdialog") {
			break
		}
		bridge.Sleep(installInterval)
	}

	if !Enabled(id) {
		if err := Enable(id); err != nil || !Enabled(id) {
			return fmt.Errorf("addon %s did not come up enabled", id)
		}
	}
	return nil
}

// dialogVisible reads a window-active info boolean through the label
// surface, which the host renders as the string "true".
func dialogVisible(window string) bool {
	value, err := host.Current().InfoLabel(fmt.Sprintf("Window.IsActive(%s)", window))
	if err != nil {
		return false
	}
	return value == "true"
}
