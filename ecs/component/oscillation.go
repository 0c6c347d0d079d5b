package component

import "github.com/milk9111/pathrig/motion"

// Oscillation bobs the actor vertically around the path-driven height.
// BaseY is refreshed from the path every tick.
type Oscillation struct {
	Oscillator motion.Oscillator
	BaseY      float64
}

var OscillationComponent = NewComponent[Oscillation]()

// OscillationRequest starts or stops a temporary oscillation.
type OscillationRequest struct {
	Start bool
}

var OscillationRequestComponent = NewComponent[OscillationRequest]()
