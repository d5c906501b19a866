package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes: X forward, Y left, Z up.
var (
	AxisForward = mgl64.Vec3{1, 0, 0}
	AxisLeft    = mgl64.Vec3{0, 1, 0}
	AxisUp      = mgl64.Vec3{0, 0, 1}
)

// Rotator is an orientation in degrees. Positive pitch raises the nose,
// positive yaw turns left (counter-clockwise seen from above) and positive
// roll dips the right side.
type Rotator struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Quat returns the orientation as yaw * pitch * roll.
func (r Rotator) Quat() mgl64.Quat {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(r.Yaw), AxisUp)
	pitch := mgl64.QuatRotate(mgl64.DegToRad(-r.Pitch), AxisLeft)
	roll := mgl64.QuatRotate(mgl64.DegToRad(r.Roll), AxisForward)
	return yaw.Mul(pitch).Mul(roll)
}

func (r Rotator) Forward() mgl64.Vec3 {
	return r.Quat().Rotate(AxisForward)
}

func (r Rotator) Right() mgl64.Vec3 {
	return r.Quat().Rotate(AxisLeft.Mul(-1))
}

func (r Rotator) Up() mgl64.Vec3 {
	return r.Quat().Rotate(AxisUp)
}

// YawOnly keeps the heading and levels pitch and roll.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{Pitch: r.Pitch + o.Pitch, Yaw: r.Yaw + o.Yaw, Roll: r.Roll + o.Roll}
}

func (r Rotator) Scale(s float64) Rotator {
	return Rotator{Pitch: r.Pitch * s, Yaw: r.Yaw * s, Roll: r.Roll * s}
}

// RotatorFromDirection returns the pitch and yaw that face along dir.
func RotatorFromDirection(dir mgl64.Vec3) Rotator {
	if dir.LenSqr() == 0 {
		return Rotator{}
	}
	yaw := mgl64.RadToDeg(math.Atan2(dir.Y(), dir.X()))
	pitch := mgl64.RadToDeg(math.Atan2(dir.Z(), math.Hypot(dir.X(), dir.Y())))
	return Rotator{Pitch: pitch, Yaw: yaw}
}

// RotateAngleAxis rotates v by deg degrees about axis.
func RotateAngleAxis(v mgl64.Vec3, deg float64, axis mgl64.Vec3) mgl64.Vec3 {
	if axis.LenSqr() == 0 {
		return v
	}
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axis.Normalize()).Rotate(v)
}
