package component

import "github.com/milk9111/gunplay/common"

const (
	DefaultBaseTurnRate    = 45.0
	DefaultBaseLookUpRate  = 45.0
	DefaultMouseTurnRate   = 0.4
	DefaultMouseLookUpRate = 0.4
	MaxControlPitch        = 89.0
)

// Controller holds the control rotation the camera and aim follow.
type Controller struct {
	Rotation        common.Rotator
	BaseTurnRate    float64
	BaseLookUpRate  float64
	MouseTurnRate   float64
	MouseLookUpRate float64
}

var ControllerComponent = NewComponent[Controller]()
