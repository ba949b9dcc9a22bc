package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Input samples held arrow keys and the mouse. The cursor position is in
// logical screen coordinates, which equal field pixels.
type Input struct{}

// Sample reads the current key and mouse state.
func (Input) Sample() core.InputSample {
	x, y := ebiten.CursorPosition()
	return core.InputSample{
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		PointerX:    x,
		PointerY:    y,
		PointerDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
