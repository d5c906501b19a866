package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
)

// RigidBody is a simulated body. Only bodies with Simulate set are moved by
// the physics system.
type RigidBody struct {
	Simulate        bool
	Mass            float64
	Velocity        mgl64.Vec3
	AngularVelocity common.Rotator // degrees per second
	GravityScale    float64
	LinearDamping   float64
	AngularDamping  float64
	// Restitution is the fraction of vertical speed kept on ground contact.
	Restitution float64
	Grounded    bool
}

var RigidBodyComponent = NewComponent[RigidBody]()
