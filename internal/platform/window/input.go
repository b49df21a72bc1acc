package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// keyState is the device input sampled for one tick.
// Pause, Restart and Quit are edge-triggered; the rest are levels.
type keyState struct {
	Left, Right, Fire    bool
	Pause, Restart, Quit bool
	CursorX              int
	CursorMoved          bool
}

// readKeys samples the keyboard and mouse. last holds the cursor position
// from the previous tick so only real movement steers the paddle.
func readKeys(last *[2]int) keyState {
	var k keyState

	k.Left = anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH)
	k.Right = anyPressed(ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL)
	k.Fire = anyPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyF) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	k.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	k.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	k.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	x, y := ebiten.CursorPosition()
	if x != last[0] || y != last[1] {
		k.CursorMoved = true
		k.CursorX = x
		last[0], last[1] = x, y
	}

	return k
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// frameFromKeys converts sampled input into the frame handed to the game.
// Restart is only honored once the run is over.
func frameFromKeys(k keyState, gameOver bool) core.InputFrame {
	frame := core.NewInputFrame()

	if k.Left && !k.Right {
		frame.Set(core.ActionLeft)
	}
	if k.Right && !k.Left {
		frame.Set(core.ActionRight)
	}
	if k.Fire {
		frame.Set(core.ActionFire)
	}
	if k.Pause && !gameOver {
		frame.Set(core.ActionPause)
	}
	if k.Restart && gameOver {
		frame.Set(core.ActionRestart)
	}
	if k.CursorMoved {
		frame.SetPointer(core.ClampF(float64(k.CursorX), 0, core.PlayfieldW))
	}

	return frame
}
