package component

// PickupVolume is the trigger sphere around a pickable item. Only its
// footprint on the ground plane is used for overlap tests.
type PickupVolume struct {
	Radius  float64
	Enabled bool
}

var PickupVolumeComponent = NewComponent[PickupVolume]()

// ProximitySensor is the character side of overlap tests.
type ProximitySensor struct {
	Radius float64
}

var ProximitySensorComponent = NewComponent[ProximitySensor]()
