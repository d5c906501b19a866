package component

const (
	// MinAutomaticFireInterval is the floor applied to configured intervals.
	MinAutomaticFireInterval     = 0.01
	DefaultAutomaticFireInterval = 0.1
)

// Fire is the weapon holder's trigger state. CanFire is false exactly while
// the cooldown timer is pending.
type Fire struct {
	FireButtonHeld        bool
	CanFire               bool
	AutomaticFireInterval float64
	ShotsFired            int
	LastShotTime          float64
}

// NewFire returns a ready-to-fire state with the interval clamped to a
// positive minimum.
func NewFire(interval float64) Fire {
	return Fire{CanFire: true, AutomaticFireInterval: ClampFireInterval(interval)}
}

func ClampFireInterval(interval float64) float64 {
	if interval < MinAutomaticFireInterval || interval != interval {
		return MinAutomaticFireInterval
	}
	return interval
}

var FireComponent = NewComponent[Fire]()
