package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/ecs/system"
	"golang.org/x/image/colornames"
)

const (
	gridExtent = 3000.0
	gridStep   = 250.0

	crosshairGap    = 6.0
	crosshairSpread = 14.0
	crosshairLength = 10.0
)

// Renderer draws a wireframe view of the world through the active camera.
type Renderer struct {
	viewport *system.CameraViewport
	resolver *system.HitscanResolver
}

func NewRenderer(vp *system.CameraViewport, resolver *system.HitscanResolver) *Renderer {
	return &Renderer{viewport: vp, resolver: resolver}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, fx *Effects) {
	screen.Fill(colornames.Darkslategray)

	r.drawGrid(screen, w)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, t *component.Transform, c *component.Collider) {
		clr := r.entityColor(w, e)
		center := t.Position.Add(c.Offset)
		switch c.Shape {
		case component.ColliderSphere:
			r.drawSphere(screen, w, center, c.Radius, clr)
		default:
			r.drawBox(screen, w, center, c.HalfExtents, clr)
		}
	})

	if fx != nil {
		for _, b := range fx.beams {
			r.line(screen, w, b.Start, b.End, 2, colornames.Yellow)
		}
		for _, p := range fx.particles {
			if s, ok := r.viewport.Project(w, p.Location); ok {
				vector.StrokeCircle(screen, float32(s.X()), float32(s.Y()), 6, 2, colornames.Orange, true)
			}
		}
	}

	r.drawCrosshair(screen, w)
}

func (r *Renderer) entityColor(w *ecs.World, e ecs.Entity) color.Color {
	if item, ok := ecs.Get(w, e, component.ItemComponent.Kind()); ok {
		if item.PromptVisible {
			return colornames.Lime
		}
		return colornames.Goldenrod
	}
	if ecs.Has(w, e, component.ShooterComponent.Kind()) {
		return colornames.Steelblue
	}
	if dc, ok := ecs.Get(w, e, component.DebugColorComponent.Kind()); ok {
		return dc.Color
	}
	return colornames.Lightgray
}

func (r *Renderer) drawGrid(screen *ebiten.Image, w *ecs.World) {
	for v := -gridExtent; v <= gridExtent; v += gridStep {
		r.line(screen, w, mgl64.Vec3{v, -gridExtent, 0}, mgl64.Vec3{v, gridExtent, 0}, 1, colornames.Dimgray)
		r.line(screen, w, mgl64.Vec3{-gridExtent, v, 0}, mgl64.Vec3{gridExtent, v, 0}, 1, colornames.Dimgray)
	}
}

func (r *Renderer) drawBox(screen *ebiten.Image, w *ecs.World, center, half mgl64.Vec3, clr color.Color) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		sx, sy, sz := -1.0, -1.0, -1.0
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		corners[i] = center.Add(mgl64.Vec3{sx * half.X(), sy * half.Y(), sz * half.Z()})
	}
	// Corners differing in exactly one bit share an edge.
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				r.line(screen, w, corners[i], corners[j], 1, clr)
			}
		}
	}
}

func (r *Renderer) drawSphere(screen *ebiten.Image, w *ecs.World, center mgl64.Vec3, radius float64, clr color.Color) {
	c, ok := r.viewport.Project(w, center)
	if !ok {
		return
	}
	edge, ok := r.viewport.Project(w, center.Add(mgl64.Vec3{0, 0, radius}))
	if !ok {
		return
	}
	px := float32(c.Sub(edge).Len())
	vector.StrokeCircle(screen, float32(c.X()), float32(c.Y()), px, 1, clr, true)
}

func (r *Renderer) line(screen *ebiten.Image, w *ecs.World, a, b mgl64.Vec3, width float32, clr color.Color) {
	sa, ok := r.viewport.Project(w, a)
	if !ok {
		return
	}
	sb, ok := r.viewport.Project(w, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(sa.X()), float32(sa.Y()), float32(sb.X()), float32(sb.Y()), width, clr, true)
}

// drawCrosshair draws four ticks around the biased aim point, pushed apart
// by the shooter's spread multiplier.
func (r *Renderer) drawCrosshair(screen *ebiten.Image, w *ecs.World) {
	spread := 0.0
	if _, c, ok := firstCrosshair(w); ok {
		spread = c.SpreadMultiplier()
	}

	width, height := r.viewport.Size()
	cx := float32(width / 2)
	cy := float32(height/2 - r.resolver.Config().CrosshairBias)
	gap := float32(crosshairGap + crosshairSpread*spread)
	if gap < 0 {
		gap = 0
	}

	vector.StrokeLine(screen, cx-gap-crosshairLength, cy, cx-gap, cy, 2, colornames.White, true)
	vector.StrokeLine(screen, cx+gap, cy, cx+gap+crosshairLength, cy, 2, colornames.White, true)
	vector.StrokeLine(screen, cx, cy-gap-crosshairLength, cx, cy-gap, 2, colornames.White, true)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+gap+crosshairLength, 2, colornames.White, true)
}

func firstCrosshair(w *ecs.World) (ecs.Entity, *component.Crosshair, bool) {
	e, ok := ecs.First(w, component.CrosshairComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	c, ok := ecs.Get(w, e, component.CrosshairComponent.Kind())
	return e, c, ok
}
