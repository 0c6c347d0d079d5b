package component

import (
	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/motion"
)

// Shake holds the one-shot shake for an actor.
type Shake struct {
	Shake   motion.Shake
	Presets map[string]motion.ShakePreset
	// Applied is the rotational jitter currently composed into the
	// transform's rotation. The zero value means none.
	Applied geom.Quat
}

var ShakeComponent = NewComponent[Shake]()

// ShakeRequest asks the shake system to start a shake, using the named
// preset when Preset is set. It is ignored while a shake is already running.
type ShakeRequest struct {
	Preset string
}

var ShakeRequestComponent = NewComponent[ShakeRequest]()
