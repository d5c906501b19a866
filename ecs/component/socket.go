package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
)

// Socket is a named anchor relative to its owner's transform.
type Socket struct {
	Offset   mgl64.Vec3
	Rotation common.Rotator
}

type Sockets struct {
	ByName map[string]Socket
}

func (s *Sockets) Lookup(name string) (Socket, bool) {
	if s == nil || name == "" {
		return Socket{}, false
	}
	sock, ok := s.ByName[name]
	return sock, ok
}

var SocketsComponent = NewComponent[Sockets]()
