package component

import "image/color"

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Name labels an entity for lookups and logs.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

// PrefabSource records which prefab file built an entity so hot reloads can
// find it again.
type PrefabSource struct {
	File string
}

var PrefabSourceComponent = NewComponent[PrefabSource]()

// DebugColor tints an entity in the wireframe view.
type DebugColor struct {
	Color color.NRGBA
}

var DebugColorComponent = NewComponent[DebugColor]()
