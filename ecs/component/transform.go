package component

import "github.com/milk9111/pathrig/geom"

// Transform is the actor pose the host reads back after each tick.
type Transform struct {
	Position geom.Vec
	Rotation geom.Quat
}

var TransformComponent = NewComponent[Transform]()
