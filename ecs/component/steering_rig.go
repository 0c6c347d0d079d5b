package component

// SteeringPart is an auxiliary part (a wheel, a linkage) turned about its
// local vertical axis by the steering system.
type SteeringPart struct {
	Name string
	// Scale multiplies the rig angle for this part; rear linkages often use
	// a negative value.
	Scale float64
	Angle float64
}

// SteeringRig converts path curvature into a smoothed steering angle.
type SteeringRig struct {
	// MaxAngle is in degrees at full curvature.
	MaxAngle float64
	Speed    float64

	Rate  float64
	Angle float64
	Parts []SteeringPart
}

var SteeringRigComponent = NewComponent[SteeringRig]()
