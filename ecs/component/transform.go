package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
)

// Transform is a world-space placement.
type Transform struct {
	Position mgl64.Vec3
	Rotation common.Rotator
}

var TransformComponent = NewComponent[Transform]()
