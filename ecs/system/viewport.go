package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

var (
	ErrViewportEmpty  = errors.New("system: viewport has zero size")
	ErrNoActiveCamera = errors.New("system: no active camera")
)

const (
	defaultCameraFOV  = 90.0
	defaultCameraNear = 10.0
	defaultCameraFar  = 100000.0
)

// Viewport answers the screen size and turns screen points into world rays.
type Viewport interface {
	Size() (width, height float64)
	Deproject(w *ecs.World, screen mgl64.Vec2) (origin, direction mgl64.Vec3, err error)
}

// CameraViewport projects through the first active Camera in the world.
// Screen coordinates have their origin at the top-left corner.
type CameraViewport struct {
	width  int
	height int
}

func NewCameraViewport(width, height int) *CameraViewport {
	return &CameraViewport{width: width, height: height}
}

func (v *CameraViewport) SetSize(width, height int) {
	if v == nil {
		return
	}
	v.width = width
	v.height = height
}

func (v *CameraViewport) Size() (float64, float64) {
	if v == nil {
		return 0, 0
	}
	return float64(v.width), float64(v.height)
}

// Deproject returns a ray starting on the near plane under the screen point.
func (v *CameraViewport) Deproject(w *ecs.World, screen mgl64.Vec2) (mgl64.Vec3, mgl64.Vec3, error) {
	if v == nil || v.width <= 0 || v.height <= 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, ErrViewportEmpty
	}
	_, cam, tr, ok := ActiveCamera(w)
	if !ok {
		return mgl64.Vec3{}, mgl64.Vec3{}, ErrNoActiveCamera
	}

	view, proj := cameraMatrices(cam, tr, float64(v.width)/float64(v.height))
	winY := float64(v.height) - screen.Y()

	near, err := mgl64.UnProject(mgl64.Vec3{screen.X(), winY, 0}, view, proj, 0, 0, v.width, v.height)
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("system: deproject near: %w", err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{screen.X(), winY, 1}, view, proj, 0, 0, v.width, v.height)
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("system: deproject far: %w", err)
	}

	dir := far.Sub(near)
	if dir.LenSqr() == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, ErrViewportEmpty
	}
	return near, dir.Normalize(), nil
}

// Project maps a world point to screen coordinates. It reports false for
// points behind the camera.
func (v *CameraViewport) Project(w *ecs.World, point mgl64.Vec3) (mgl64.Vec2, bool) {
	if v == nil || v.width <= 0 || v.height <= 0 {
		return mgl64.Vec2{}, false
	}
	_, cam, tr, ok := ActiveCamera(w)
	if !ok {
		return mgl64.Vec2{}, false
	}

	view, proj := cameraMatrices(cam, tr, float64(v.width)/float64(v.height))
	clip := proj.Mul4(view).Mul4x1(point.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec2{}, false
	}
	win := mgl64.Project(point, view, proj, 0, 0, v.width, v.height)
	return mgl64.Vec2{win.X(), float64(v.height) - win.Y()}, true
}

// ActiveCamera returns the first camera marked active that has a transform.
func ActiveCamera(w *ecs.World) (ecs.Entity, *component.Camera, *component.Transform, bool) {
	var (
		found ecs.Entity
		cam   *component.Camera
		tr    *component.Transform
	)
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Camera, t *component.Transform) {
		if cam != nil || !c.Active {
			return
		}
		found, cam, tr = e, c, t
	})
	return found, cam, tr, cam != nil
}

func cameraMatrices(cam *component.Camera, tr *component.Transform, aspect float64) (mgl64.Mat4, mgl64.Mat4) {
	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = defaultCameraFOV
	}
	near := cam.Near
	if near <= 0 {
		near = defaultCameraNear
	}
	far := cam.Far
	if far <= near {
		far = defaultCameraFar
	}

	// Camera FOV is horizontal; Perspective wants the vertical angle.
	fovY := 2 * math.Atan(math.Tan(mgl64.DegToRad(fov)/2)/aspect)

	eye := tr.Position
	view := mgl64.LookAtV(eye, eye.Add(tr.Rotation.Forward()), tr.Rotation.Up())
	proj := mgl64.Perspective(fovY, aspect, near, far)
	return view, proj
}
