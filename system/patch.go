package system

import (
	"fmt"
	"strings"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/filesystem"
)

// The addon patches two host-owned files: the advanced-settings document
// for buffer and timeout tuning, and the master autoexec for boot-time
// invocation. Every injected region carries a marker so removal is exact
// and user-authored content survives untouched.

// marker tags an addon-managed stanza inside advanced settings.
const advancedMarker = "<!-- managed by " + constant.Addon + " -->"

// Autoexec regions are fenced with the addon identifier.
const (
	autoexecOpen  = "#[" + constant.Addon + "]"
	autoexecClose = "#[/" + constant.Addon + "]"
)

// AdvancedStanza is one addon-managed advanced-settings entry.
type AdvancedStanza struct {
	// Path is the slash-joined element path, eg. "network/curlclienttimeout".
	Path  string
	Value string
}

// PatchAdvanced injects or replaces the addon-managed stanzas in the
// host's advanced-settings document, creating the document when absent.
func PatchAdvanced(path string, stanzas []AdvancedStanza) error {
	path = filesystem.Translate(path)

	content := "<advancedsettings/>\n"
	if data, err := filesystem.API().ReadFile(path); err == nil {
		content = string(data)
	}

	content = stripManaged(content)

	var b strings.Builder
	for _, stanza := range stanzas {
		b.WriteString(renderStanza(stanza))
		b.WriteString("\n")
	}

	if strings.Contains(content, "</advancedsettings>") {
		content = strings.Replace(content, "</advancedsettings>",
			b.String()+"</advancedsettings>", 1)
	} else {
		content = "<advancedsettings>\n" + b.String() + "</advancedsettings>\n"
	}

	return filesystem.API().WriteFile(path, []byte(content), 0o644)
}

// UnpatchAdvanced removes every addon-managed stanza.
func UnpatchAdvanced(path string) error {
	path = filesystem.Translate(path)
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil
	}
	return filesystem.API().WriteFile(path, []byte(stripManaged(string(data))), 0o644)
}

// stripManaged removes lines carrying the managed marker.
func stripManaged(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if !strings.Contains(line, advancedMarker) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// renderStanza expands a slash path into nested elements on one line,
// tagged with the managed marker.
func renderStanza(stanza AdvancedStanza) string {
	parts := strings.Split(stanza.Path, "/")
	var b strings.Builder
	for _, part := range parts {
		b.WriteString("<")
		b.WriteString(part)
		b.WriteString(">")
	}
	b.WriteString(stanza.Value)
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(parts[i])
		b.WriteString(">")
	}
	b.WriteString(" ")
	b.WriteString(advancedMarker)
	return b.String()
}

// PatchAutoexec injects a fenced block into the host's master autoexec
// that invokes the given envelope on boot. An existing block is replaced.
func PatchAutoexec(path, envelope string) error {
	path = filesystem.Translate(path)

	content := ""
	if data, err := filesystem.API().ReadFile(path); err == nil {
		content = string(data)
	}
	content = removeFenced(content)

	block := fmt.Sprintf("%s\nimport xbmc\nxbmc.executebuiltin('RunPlugin(%s)')\n%s\n",
		autoexecOpen, envelope, autoexecClose)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return filesystem.API().WriteFile(path, []byte(content+block), 0o644)
}

// UnpatchAutoexec removes the fenced block, deleting the file when the
// addon's block was its only content.
func UnpatchAutoexec(path string) error {
	path = filesystem.Translate(path)
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil
	}

	remaining := strings.TrimSpace(removeFenced(string(data)))
	if remaining == "" {
		return filesystem.DeleteFile(path)
	}
	return filesystem.API().WriteFile(path, []byte(remaining+"\n"), 0o644)
}

// removeFenced strips the addon's fenced region.
func removeFenced(content string) string {
	start := strings.Index(content, autoexecOpen)
	if start < 0 {
		return content
	}
	end := strings.Index(content[start:], autoexecClose)
	if end < 0 {
		return content[:start]
	}
	end += start + len(autoexecClose)
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return content[:start] + content[end:]
}
