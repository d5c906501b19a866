package component

// AnimState is derived every frame for the animation layer.
type AnimState struct {
	Speed                 float64
	InAir                 bool
	Accelerating          bool
	MovementOffsetYaw     float64
	LastMovementOffsetYaw float64
	Aiming                bool
}

var AnimStateComponent = NewComponent[AnimState]()
