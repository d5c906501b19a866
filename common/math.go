package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InterpTo moves current toward target by the fraction speed*dt of the
// remaining distance, clamped so it never overshoots. A non-positive speed
// snaps to target.
func InterpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if dist*dist < 1e-8 {
		return target
	}
	alpha := dt * speed
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return current + dist*alpha
}

// MapRangeClamped maps v from [inMin,inMax] onto [outMin,outMax], clamping
// to the output range.
func MapRangeClamped(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		if v >= inMax {
			return outMax
		}
		return outMin
	}
	t := (v - inMin) / (inMax - inMin)
	t = math.Max(0, math.Min(1, t))
	return Lerp(outMin, outMax, t)
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
