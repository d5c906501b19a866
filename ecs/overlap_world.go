package ecs

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// overlapQueryStep is used when Step is called with a zero frame so the
// spatial index still picks up moved volumes.
const overlapQueryStep = 1.0 / 120.0

// OverlapChange is one enter (+1) or leave (-1) between a sensor and a
// volume.
type OverlapChange struct {
	Sensor Entity
	Volume Entity
	Delta  int8
}

type overlapShape struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
}

// OverlapWorld owns a Chipmunk space holding item pickup volumes as
// kinematic sensor circles on the ground plane. Character sensors are
// queried against it each step and the result is diffed against the
// previous step.
type OverlapWorld struct {
	space    *cp.Space
	volumes  map[Entity]*overlapShape
	sensors  map[Entity]*overlapShape
	overlaps map[Entity]map[Entity]struct{}
}

// NewOverlapWorld creates an empty overlap space.
func NewOverlapWorld() *OverlapWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &OverlapWorld{
		space:    space,
		volumes:  make(map[Entity]*overlapShape),
		sensors:  make(map[Entity]*overlapShape),
		overlaps: make(map[Entity]map[Entity]struct{}),
	}
}

// Space returns the underlying Chipmunk space.
func (ow *OverlapWorld) Space() *cp.Space {
	if ow == nil {
		return nil
	}
	return ow.space
}

// SetVolume places or updates an item volume. Disabled volumes are taken
// out of the space so overlapping sensors see them leave.
func (ow *OverlapWorld) SetVolume(e Entity, x, y, radius float64, enabled bool) {
	if ow == nil || !e.Valid() {
		return
	}
	if !enabled || radius <= 0 {
		ow.removeVolume(e)
		return
	}
	v, ok := ow.volumes[e]
	if ok && v.radius != radius {
		ow.removeVolume(e)
		ok = false
	}
	if !ok {
		body := cp.NewKinematicBody()
		ow.space.AddBody(body)
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetSensor(true)
		shape.UserData = e
		ow.space.AddShape(shape)
		v = &overlapShape{body: body, shape: shape, radius: radius}
		ow.volumes[e] = v
	}
	v.body.SetPosition(cp.Vector{X: x, Y: y})
}

// SetSensor places or updates a character sensor.
func (ow *OverlapWorld) SetSensor(e Entity, x, y, radius float64) {
	if ow == nil || !e.Valid() || radius <= 0 {
		return
	}
	s, ok := ow.sensors[e]
	if !ok || s.radius != radius {
		body := cp.NewKinematicBody()
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetSensor(true)
		shape.UserData = e
		s = &overlapShape{body: body, shape: shape, radius: radius}
		ow.sensors[e] = s
	}
	s.body.SetPosition(cp.Vector{X: x, Y: y})
}

// Remove drops e as a volume and as a sensor.
func (ow *OverlapWorld) Remove(e Entity) {
	if ow == nil {
		return
	}
	ow.removeVolume(e)
	delete(ow.sensors, e)
	delete(ow.overlaps, e)
}

func (ow *OverlapWorld) removeVolume(e Entity) {
	v, ok := ow.volumes[e]
	if !ok {
		return
	}
	ow.space.RemoveShape(v.shape)
	ow.space.RemoveBody(v.body)
	delete(ow.volumes, e)
}

// Step reindexes the space and returns every enter/leave since the last
// step, ordered by sensor then volume.
func (ow *OverlapWorld) Step(dt float64) []OverlapChange {
	if ow == nil {
		return nil
	}
	if dt <= 0 {
		dt = overlapQueryStep
	}
	ow.space.Step(dt)

	var changes []OverlapChange
	for sensor, s := range ow.sensors {
		current := make(map[Entity]struct{})
		ow.space.ShapeQuery(s.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
			if volume, ok := shape.UserData.(Entity); ok && volume != sensor {
				current[volume] = struct{}{}
			}
		})

		prev := ow.overlaps[sensor]
		for volume := range current {
			if _, ok := prev[volume]; !ok {
				changes = append(changes, OverlapChange{Sensor: sensor, Volume: volume, Delta: 1})
			}
		}
		for volume := range prev {
			if _, ok := current[volume]; !ok {
				changes = append(changes, OverlapChange{Sensor: sensor, Volume: volume, Delta: -1})
			}
		}
		ow.overlaps[sensor] = current
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Sensor != changes[j].Sensor {
			return changes[i].Sensor < changes[j].Sensor
		}
		if changes[i].Volume != changes[j].Volume {
			return changes[i].Volume < changes[j].Volume
		}
		return changes[i].Delta < changes[j].Delta
	})
	return changes
}

// Overlapping returns the volumes a sensor overlapped at the last step.
func (ow *OverlapWorld) Overlapping(sensor Entity) []Entity {
	if ow == nil {
		return nil
	}
	out := make([]Entity, 0, len(ow.overlaps[sensor]))
	for volume := range ow.overlaps[sensor] {
		out = append(out, volume)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
