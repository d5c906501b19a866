package system

import (
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/rs/zerolog/log"
)

// AttachmentSystem snaps attached entities onto their parent's socket.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var orphans []ecs.Entity
	ecs.ForEach2(w, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, att *component.Attachment, t *component.Transform) {
		parent, ok := ecs.Lookup(w, att.Parent)
		if !ok {
			orphans = append(orphans, e)
			return
		}
		if world, ok := SocketWorldTransform(w, parent, att.Socket); ok {
			*t = world
		}
	})

	// Parent gone: leave the child where it is.
	for _, e := range orphans {
		log.Debug().Stringer("entity", e).Msg("attachment: parent destroyed, detaching")
		ecs.Remove(w, e, component.AttachmentComponent.Kind())
	}
}

// SocketWorldTransform returns the world placement of a named socket on e.
// An empty or unknown socket resolves to e's own transform. Socket rotations
// are added to the owner's rotation.
func SocketWorldTransform(w *ecs.World, e ecs.Entity, socket string) (component.Transform, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}
	sockets, _ := ecs.Get(w, e, component.SocketsComponent.Kind())
	sock, ok := sockets.Lookup(socket)
	if !ok {
		return *t, true
	}
	return component.Transform{
		Position: t.Position.Add(t.Rotation.Quat().Rotate(sock.Offset)),
		Rotation: t.Rotation.Add(sock.Rotation),
	}, true
}

// MuzzleTransform finds the barrel anchor of a shooter: the equipped
// weapon's muzzle socket when it has one, else the shooter's own. Unlike
// SocketWorldTransform, a missing socket is reported as not found.
func MuzzleTransform(w *ecs.World, shooterEntity ecs.Entity) (component.Transform, bool) {
	shooter, ok := ecs.Get(w, shooterEntity, component.ShooterComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}

	if weapon, ok := ecs.Lookup(w, shooter.EquippedWeapon); ok {
		if wc, ok := ecs.Get(w, weapon, component.WeaponComponent.Kind()); ok && hasSocket(w, weapon, wc.MuzzleSocket) {
			return SocketWorldTransform(w, weapon, wc.MuzzleSocket)
		}
	}
	if hasSocket(w, shooterEntity, shooter.MuzzleSocket) {
		return SocketWorldTransform(w, shooterEntity, shooter.MuzzleSocket)
	}
	return component.Transform{}, false
}

func hasSocket(w *ecs.World, e ecs.Entity, name string) bool {
	sockets, ok := ecs.Get(w, e, component.SocketsComponent.Kind())
	if !ok {
		return false
	}
	_, ok = sockets.Lookup(name)
	return ok
}
