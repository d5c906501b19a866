package system

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

func TestResolveCrosshairTarget(t *testing.T) {
	t.Run("biased_screen_point", func(t *testing.T) {
		w := ecs.NewWorld()
		vp := newFixedViewport(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
		r := NewHitscanResolver(vp, DefaultHitscanConfig())
		r.ResolveCrosshairTarget(w, 0, 100)
		if vp.lastScreen != (mgl64.Vec2{640, 310}) {
			t.Fatalf("crosshair deprojected at %v", vp.lastScreen)
		}
	})

	t.Run("hit_and_miss", func(t *testing.T) {
		w := ecs.NewWorld()
		wall := newTestWall(t, w, mgl64.Vec3{500, 0, 0}, mgl64.Vec3{10, 100, 100})
		vp := newFixedViewport(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
		r := NewHitscanResolver(vp, DefaultHitscanConfig())

		res := r.ResolveCrosshairTarget(w, 0, 1000)
		if !res.Resolved || !res.Hit || res.Entity != wall || !approx(res.Point.X(), 490, 1e-9) {
			t.Fatalf("expected wall hit, got %+v", res)
		}

		res = r.ResolveCrosshairTarget(w, 0, 400)
		if !res.Resolved || res.Hit || !vecNear(res.Point, mgl64.Vec3{400, 0, 0}, 1e-9) {
			t.Fatalf("expected far endpoint, got %+v", res)
		}
	})

	t.Run("owner_and_weapon_ignored", func(t *testing.T) {
		w := ecs.NewWorld()
		shooter := newTestShooter(t, w, mgl64.Vec3{0, 0, 0})
		weapon := newTestWeapon(t, w, mgl64.Vec3{100, 0, 0})
		NewItemController(nil).Equip(w, shooter, weapon)
		col, _ := ecs.Get(w, weapon, component.ColliderComponent.Kind())
		col.BlockVisibility = true
		tr, _ := ecs.Get(w, weapon, component.TransformComponent.Kind())
		tr.Position = mgl64.Vec3{100, 0, 0}

		vp := newFixedViewport(mgl64.Vec3{-50, 0, 0}, mgl64.Vec3{1, 0, 0})
		r := NewHitscanResolver(vp, DefaultHitscanConfig())
		if res := r.ResolveCrosshairTarget(w, shooter, 1000); res.Hit {
			t.Fatalf("own body or weapon blocked the trace: %+v", res)
		}
	})

	t.Run("deprojection_failure", func(t *testing.T) {
		w := ecs.NewWorld()
		vp := newFixedViewport(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
		vp.err = errors.New("offscreen")
		r := NewHitscanResolver(vp, DefaultHitscanConfig())
		if res := r.ResolveCrosshairTarget(w, 0, 1000); res.Resolved || res.Hit {
			t.Fatalf("expected unresolved, got %+v", res)
		}
		if res := r.ResolveMuzzleImpact(w, 0, mgl64.Vec3{}); res.Resolved || res.Hit {
			t.Fatalf("expected unresolved muzzle impact, got %+v", res)
		}
	})
}

func TestResolveMuzzleImpact(t *testing.T) {
	cases := []struct {
		name      string
		occluder  bool
		wall      bool
		wantHit   bool
		wantX     float64
		wantBlock string
	}{
		{name: "open_range", wantHit: false, wantX: 50000},
		{name: "wall_only", wall: true, wantHit: true, wantX: 1990, wantBlock: "wall"},
		{name: "occluder_near_muzzle", occluder: true, wantHit: true, wantX: 495, wantBlock: "occluder"},
		{name: "occluder_in_front_of_wall", occluder: true, wall: true, wantHit: true, wantX: 495, wantBlock: "occluder"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			blockers := map[string]ecs.Entity{}
			if tc.wall {
				blockers["wall"] = newTestWall(t, w, mgl64.Vec3{2000, 0, 0}, mgl64.Vec3{10, 1000, 1000})
			}
			if tc.occluder {
				// Above the crosshair ray, across the muzzle ray.
				blockers["occluder"] = newTestWall(t, w, mgl64.Vec3{500, 0, 100}, mgl64.Vec3{5, 5, 30})
			}

			vp := newFixedViewport(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
			r := NewHitscanResolver(vp, DefaultHitscanConfig())
			res := r.ResolveMuzzleImpact(w, 0, mgl64.Vec3{60, 0, 100})

			if !res.Resolved || res.Hit != tc.wantHit {
				t.Fatalf("result %+v", res)
			}
			if !approx(res.Point.X(), tc.wantX, 1e-6) {
				t.Fatalf("impact x = %v, want %v", res.Point.X(), tc.wantX)
			}
			if tc.wantBlock != "" && res.Entity != blockers[tc.wantBlock] {
				t.Fatalf("blocked by %v, want %s", res.Entity, tc.wantBlock)
			}
		})
	}
}

func TestCameraViewport(t *testing.T) {
	newCamera := func(t *testing.T, w *ecs.World, rot common.Rotator) ecs.Entity {
		t.Helper()
		e := ecs.CreateEntity(w)
		mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: mgl64.Vec3{0, 0, 100}, Rotation: rot})
		mustAdd(t, w, e, component.CameraComponent.Kind(), &component.Camera{FOV: 90, Active: true})
		return e
	}

	t.Run("errors", func(t *testing.T) {
		w := ecs.NewWorld()
		if _, _, err := NewCameraViewport(0, 0).Deproject(w, mgl64.Vec2{}); !errors.Is(err, ErrViewportEmpty) {
			t.Fatalf("zero size: %v", err)
		}
		if _, _, err := NewCameraViewport(1280, 720).Deproject(w, mgl64.Vec2{}); !errors.Is(err, ErrNoActiveCamera) {
			t.Fatalf("no camera: %v", err)
		}
	})

	t.Run("directions", func(t *testing.T) {
		w := ecs.NewWorld()
		newCamera(t, w, common.Rotator{})
		vp := NewCameraViewport(1280, 720)

		cases := []struct {
			name   string
			screen mgl64.Vec2
			check  func(dir mgl64.Vec3) bool
		}{
			{"centre", mgl64.Vec2{640, 360}, func(d mgl64.Vec3) bool { return vecNear(d, mgl64.Vec3{1, 0, 0}, 1e-6) }},
			{"above", mgl64.Vec2{640, 310}, func(d mgl64.Vec3) bool { return d.Z() > 0 && approx(d.Y(), 0, 1e-9) }},
			{"left", mgl64.Vec2{100, 360}, func(d mgl64.Vec3) bool { return d.Y() > 0 && approx(d.Z(), 0, 1e-9) }},
			// 90 degree horizontal FOV puts the screen edge at 45 degrees.
			{"right_edge", mgl64.Vec2{1280, 360}, func(d mgl64.Vec3) bool { return approx(d.X(), -d.Y(), 1e-6) }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				origin, dir, err := vp.Deproject(w, tc.screen)
				if err != nil {
					t.Fatalf("deproject: %v", err)
				}
				if !approx(dir.Len(), 1, 1e-9) || !tc.check(dir) {
					t.Fatalf("dir = %v", dir)
				}
				if origin.X() <= 0 {
					t.Fatalf("origin should sit on the near plane, got %v", origin)
				}
			})
		}
	})

	t.Run("yawed_camera_round_trip", func(t *testing.T) {
		w := ecs.NewWorld()
		newCamera(t, w, common.Rotator{Yaw: 90})
		vp := NewCameraViewport(1280, 720)

		_, dir, err := vp.Deproject(w, mgl64.Vec2{640, 360})
		if err != nil || !vecNear(dir, mgl64.Vec3{0, 1, 0}, 1e-6) {
			t.Fatalf("dir = %v err = %v", dir, err)
		}
		screen, ok := vp.Project(w, mgl64.Vec3{0, 1000, 100})
		if !ok || !vec2Near(screen, mgl64.Vec2{640, 360}, 1e-6) {
			t.Fatalf("project = %v ok=%v", screen, ok)
		}
		if _, ok := vp.Project(w, mgl64.Vec3{0, -1000, 100}); ok {
			t.Fatalf("point behind the camera must not project")
		}
	})
}
