package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows a target from a boom offset rotated by the target's
// control rotation. FOV is horizontal, in degrees.
type Camera struct {
	Target     uint64
	BoomOffset mgl64.Vec3
	FOV        float64
	Near       float64
	Far        float64
	Active     bool
}

var CameraComponent = NewComponent[Camera]()
