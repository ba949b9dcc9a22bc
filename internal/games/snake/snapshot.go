package snake

import (
	"image/color"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Palette colors shared by every host.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorSnake      = color.RGBA{0, 255, 0, 255}
	ColorApple      = color.RGBA{255, 0, 0, 255}
	ColorTitle      = color.RGBA{0, 0, 200, 255}
	ColorMessage    = color.RGBA{255, 0, 0, 255}
	ColorDark       = color.RGBA{50, 50, 50, 255}
	ColorLight      = color.RGBA{100, 100, 100, 255}
)

// Game-over screen text and its vertical placement in field pixels.
const (
	TitleText  = "Wrap Snake"
	DeathText  = "You have eaten yourself!"
	ResetText  = "Reset"
	TitleY     = 300
	DeathTextY = 550
)

// RenderState is the drawable view of a game, read by hosts between ticks.
type RenderState struct {
	Tick        uint64
	CellSize    int
	FieldW      int
	FieldH      int
	Head        Point
	Body        []Point // Copy; index 0 is nearest the head
	Apple       Point
	Heading     Heading
	GameOver    bool
	ResetButton core.Rect
	// ResetHovered is true when the last sampled pointer was inside the reset button.
	ResetHovered bool
}

// RenderState returns the current drawable state.
func (g *Game) RenderState() RenderState {
	body := make([]Point, len(g.body))
	copy(body, g.body)
	return RenderState{
		Tick:         g.tick,
		CellSize:     g.field.CellSize,
		FieldW:       g.field.Width(),
		FieldH:       g.field.Height(),
		Head:         g.head,
		Body:         body,
		Apple:        g.apple,
		Heading:      g.heading,
		GameOver:     g.gameOver,
		ResetButton:  g.resetButton,
		ResetHovered: g.resetHovered,
	}
}

// ResetColors returns the reset button fill and label colors. Hovering swaps them.
func (s RenderState) ResetColors() (button, label color.RGBA) {
	if s.ResetHovered {
		return ColorDark, ColorLight
	}
	return ColorLight, ColorDark
}
