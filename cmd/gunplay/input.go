package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

const stickDeadzone = 0.2

// InputReader samples keyboard, mouse and the first gamepad into Input
// components. Edge flags are OR-ed in so none are lost before the control
// system consumes them.
type InputReader struct {
	lastX, lastY int
	hasCursor    bool
}

func NewInputReader() *InputReader {
	return &InputReader{}
}

// Reset forgets the last cursor position so the next sample has no look delta.
func (r *InputReader) Reset() {
	r.hasCursor = false
}

func (r *InputReader) Apply(w *ecs.World) {
	if w == nil {
		return
	}

	var moveForward, moveRight float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveForward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveForward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveRight += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveRight -= 1
	}

	firePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fireReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	aimPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	aimReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	selectPressed := inpututil.IsKeyJustPressed(ebiten.KeyE)
	selectReleased := inpututil.IsKeyJustReleased(ebiten.KeyE)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)

	// Screen x grows right and y grows down; positive yaw turns left.
	cx, cy := ebiten.CursorPosition()
	var mouseTurn, mouseLookUp float64
	if r.hasCursor {
		mouseTurn = -float64(cx - r.lastX)
		mouseLookUp = float64(cy - r.lastY)
	}
	r.lastX, r.lastY, r.hasCursor = cx, cy, true

	var turnRate, lookUpRate float64
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveRight = lx
			moveForward = -ly
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			turnRate = -rx
			lookUpRate = ry
		}

		firePressed = firePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		fireReleased = fireReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomRight)
		aimPressed = aimPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		aimReleased = aimReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		selectPressed = selectPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		selectReleased = selectReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightLeft)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveForward = moveForward
		in.MoveRight = moveRight
		in.TurnRate = turnRate
		in.LookUpRate = lookUpRate
		in.MouseTurn = mouseTurn
		in.MouseLookUp = mouseLookUp

		in.FirePressed = in.FirePressed || firePressed
		in.FireReleased = in.FireReleased || fireReleased
		in.AimPressed = in.AimPressed || aimPressed
		in.AimReleased = in.AimReleased || aimReleased
		in.SelectPressed = in.SelectPressed || selectPressed
		in.SelectReleased = in.SelectReleased || selectReleased
		in.JumpPressed = in.JumpPressed || jumpPressed
		in.JumpReleased = in.JumpReleased || jumpReleased
	})
}
