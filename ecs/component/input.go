package component

// Input stores one frame of bound input. Pressed/Released flags are edge
// events for that frame; axes are analog values.
type Input struct {
	FirePressed    bool
	FireReleased   bool
	AimPressed     bool
	AimReleased    bool
	SelectPressed  bool
	SelectReleased bool
	JumpPressed    bool
	JumpReleased   bool

	MoveForward float64
	MoveRight   float64
	// TurnRate and LookUpRate come from sticks and are scaled by delta time.
	TurnRate   float64
	LookUpRate float64
	// MouseTurn and MouseLookUp come from pointers and are not.
	MouseTurn   float64
	MouseLookUp float64
}

var InputComponent = NewComponent[Input]()
