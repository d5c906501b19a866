package component

const (
	DefaultZoomedFOV       = 60.0
	DefaultZoomInterpSpeed = 20.0
)

// Aim is the character's aim-down-sights state. CurrentFOV only moves by
// interpolation toward ZoomedFOV or DefaultFOV.
type Aim struct {
	Aiming          bool
	CurrentFOV      float64
	DefaultFOV      float64
	ZoomedFOV       float64
	ZoomInterpSpeed float64
}

var AimComponent = NewComponent[Aim]()
