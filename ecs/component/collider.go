package component

import "github.com/go-gl/mathgl/mgl64"

type ColliderShape int

const (
	ColliderBox ColliderShape = iota
	ColliderSphere
)

// Collider is the shape line traces test against. Box colliders are axis
// aligned and ignore the owner's rotation.
type Collider struct {
	Shape       ColliderShape
	HalfExtents mgl64.Vec3
	Radius      float64
	Offset      mgl64.Vec3
	// BlockVisibility makes the collider stop visibility traces (crosshair,
	// muzzle and item traces).
	BlockVisibility bool
	// BlockWorld makes the collider solid for falling bodies.
	BlockWorld bool
}

var ColliderComponent = NewComponent[Collider]()
