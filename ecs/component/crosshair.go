package component

// CrosshairTuning holds the spread targets and approach speeds.
type CrosshairTuning struct {
	BaseSpread           float64
	MaxWalkSpeed         float64
	AirborneTarget       float64
	AirborneRiseSpeed    float64
	AirborneRecoverSpeed float64
	AimTarget            float64
	AimInSpeed           float64
	AimOutSpeed          float64
	FiringTarget         float64
	FiringSpeed          float64
	ShootTimeDuration    float64
}

func DefaultCrosshairTuning() CrosshairTuning {
	return CrosshairTuning{
		BaseSpread:           0.5,
		MaxWalkSpeed:         600,
		AirborneTarget:       2.25,
		AirborneRiseSpeed:    2.25,
		AirborneRecoverSpeed: 13,
		AimTarget:            -0.3,
		AimInSpeed:           2.25,
		AimOutSpeed:          13,
		FiringTarget:         0.3,
		FiringSpeed:          15,
		ShootTimeDuration:    0.5,
	}
}

// Crosshair holds the smoothed spread factors. Factors are only moved by
// the crosshair system; Firing is held true by the firing pulse timer.
type Crosshair struct {
	VelocityFactor float64
	AirborneFactor float64
	AimFactor      float64
	FiringFactor   float64
	Firing         bool
	Tuning         CrosshairTuning
}

// SpreadMultiplier is the sum of the base spread and every factor.
func (c *Crosshair) SpreadMultiplier() float64 {
	if c == nil {
		return 0
	}
	return c.Tuning.BaseSpread + c.VelocityFactor + c.AirborneFactor + c.AimFactor + c.FiringFactor
}

var CrosshairComponent = NewComponent[Crosshair]()
