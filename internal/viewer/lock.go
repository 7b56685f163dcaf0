package viewer

import "github.com/hajimehoshi/ebiten/v2"

// cursorLock is the desktop pointer lock: a captured, hidden cursor.
type cursorLock struct{}

func (cursorLock) RequestPointerLock() error {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	return nil
}

func (cursorLock) ExitPointerLock() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (cursorLock) PointerLocked() bool {
	return ebiten.CursorMode() == ebiten.CursorModeCaptured
}
