package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hallway-gallery/internal/input"
)

// keyMap binds ebiten keys to the gallery's key codes.
var keyMap = []struct {
	key  ebiten.Key
	code input.Key
}{
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyArrowUp, input.ArrowUp},
	{ebiten.KeyArrowDown, input.ArrowDown},
	{ebiten.KeyArrowLeft, input.ArrowLeft},
	{ebiten.KeyArrowRight, input.ArrowRight},
	{ebiten.KeyEscape, input.Escape},
}

// wheelPixels converts one ebiten wheel notch to DOM-style deltaY pixels.
// ebiten reports scrolling up as positive; DOM reports it as negative.
const wheelPixels = 100.0

func wheelDelta(ebitenY float64) float64 {
	return -ebitenY * wheelPixels
}
