package system

import (
	"github.com/gaiakodi/gaiacore/expression"
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/gaiakodi/gaiacore/settings"
)

// ResetAll clears every process-level cache in one sweep: the regex memo,
// the platform profile and the settings tiers. The host reuses invoker
// processes across invocations, so anything cached in process memory can
// outlive the state it was derived from; a reuse boundary or a version bump
// calls this instead of chasing each component. With keepSettings the parsed
// settings map survives, for boundaries where only detection state is stale.
func ResetAll(keepSettings bool) {
	expression.Reset()
	platform.Reset()
	settings.Reset(keepSettings)
}
