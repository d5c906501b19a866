package component

import "github.com/go-gl/mathgl/mgl64"

// Movement is the locomotion output the spread model and animation read.
type Movement struct {
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	Airborne     bool

	MoveSpeed  float64
	JumpSpeed  float64
	Gravity    float64
	AirControl float64
	JumpHeld   bool
}

var MovementComponent = NewComponent[Movement]()
