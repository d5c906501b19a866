package component

const (
	DefaultThrowWeaponTime = 0.7
	DefaultThrowImpulse    = 10000.0
	DefaultThrowTilt       = -20.0
	DefaultThrowYawJitter  = 30.0
)

// Weapon adds throw and falling behaviour to an Item.
type Weapon struct {
	Falling         bool
	ThrowWeaponTime float64
	ThrowImpulse    float64
	// ThrowTilt rotates the impulse about the weapon's forward axis.
	ThrowTilt float64
	// ThrowYawJitter is the upper bound of the random yaw added to the
	// impulse direction.
	ThrowYawJitter float64
	MuzzleSocket   string
}

func DefaultWeapon() Weapon {
	return Weapon{
		ThrowWeaponTime: DefaultThrowWeaponTime,
		ThrowImpulse:    DefaultThrowImpulse,
		ThrowTilt:       DefaultThrowTilt,
		ThrowYawJitter:  DefaultThrowYawJitter,
	}
}

var WeaponComponent = NewComponent[Weapon]()
