package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput reads keyboard, mouse and the first gamepad.
type EbitenInput struct {
	// ScreenToWorld maps cursor pixels into world units. Nil is identity.
	ScreenToWorld func(x, y float64) (float64, float64)
}

const stickDeadzone = 0.2

func (in *EbitenInput) FireHeld() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		return true
	}
	if id, ok := firstGamepad(); ok {
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return false
}

func (in *EbitenInput) CursorWorld() (float64, float64) {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if in != nil && in.ScreenToWorld != nil {
		return in.ScreenToWorld(x, y)
	}
	return x, y
}

func (in *EbitenInput) Steer() float64 {
	steer := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		steer += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		steer -= 1
	}
	if id, ok := firstGamepad(); ok {
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			steer = -x
		}
	}
	return steer
}

func (in *EbitenInput) Throttle() float64 {
	throttle := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		throttle += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		throttle -= 1
	}
	if id, ok := firstGamepad(); ok {
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(y) > stickDeadzone {
			throttle = -y
		}
	}
	return throttle
}

func (in *EbitenInput) ToggleCoast() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		return true
	}
	if id, ok := firstGamepad(); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}
	return false
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
