// Package window runs the snake game in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
)

// Text heights in field pixels for the game-over screen.
const (
	titleHeight = 200
	deathHeight = 50
	resetHeight = 100
)

// Host implements ebiten.Game for one snake game.
type Host struct {
	loop   *snake.Loop
	input  core.InputProvider
	face   *text.GoXFace
	logger *log.Logger
}

// NewHost creates a window host for game sampling input from input.
func NewHost(game *snake.Game, input core.InputProvider, interval time.Duration, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		loop:   snake.NewLoop(game, interval),
		input:  input,
		face:   text.NewGoXFace(basicfont.Face7x13),
		logger: logger,
	}
}

// Update runs the simulation ticks due this frame.
func (h *Host) Update() error {
	res := h.loop.Frame(time.Now(), h.input)
	if res.Died {
		h.logger.Debug("game over", "length", h.loop.Game().Len())
	}
	if res.Reset {
		h.logger.Debug("game reset")
	}
	return nil
}

// Draw renders the field while playing and the game-over screen otherwise.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(snake.ColorBackground)

	s := h.loop.Game().RenderState()
	if s.GameOver {
		h.drawGameOver(screen, s)
		return
	}

	f := h.loop.Game().Field()
	for _, seg := range s.Body {
		fillRect(screen, f.CellRect(seg), snake.ColorSnake)
	}
	fillRect(screen, f.CellRect(s.Head), snake.ColorSnake)
	fillRect(screen, f.CellRect(s.Apple), snake.ColorApple)
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (h *Host) drawGameOver(screen *ebiten.Image, s snake.RenderState) {
	cx := float64(s.FieldW) / 2

	h.drawText(screen, snake.TitleText, cx, snake.TitleY, titleHeight, snake.ColorTitle)
	h.drawText(screen, snake.DeathText, cx, snake.DeathTextY, deathHeight, snake.ColorMessage)

	button, label := s.ResetColors()
	fillRect(screen, s.ResetButton, button)

	bx, by := s.ResetButton.Center()
	h.drawText(screen, snake.ResetText, float64(bx), float64(by)-resetHeight/2, resetHeight, label)
}

// drawText draws str horizontally centred on cx with its top at y, scaled so
// the font's line height equals height.
func (h *Host) drawText(screen *ebiten.Image, str string, cx, y, height float64, c color.Color) {
	lineHeight := h.face.Metrics().HAscent + h.face.Metrics().HDescent
	scale := height / lineHeight
	w, _ := text.Measure(str, h.face, lineHeight)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, str, h.face, op)
}

// Layout fixes the logical screen to the field size so cursor positions are
// field pixels regardless of the window scale.
func (h *Host) Layout(_, _ int) (int, int) {
	f := h.loop.Game().Field()
	return f.Width(), f.Height()
}

// Run opens a fixed-size window and blocks until it is closed.
func Run(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	rng := rand.New(rand.NewSource(rc.SeedOrNow()))
	game := snake.New(snake.OptionsFromConfig(cfg), rng)
	host := NewHost(game, Input{}, rc.TickInterval, logger)

	f := game.Field()
	winW := int(float64(f.Width()) * cfg.Window.Scale)
	winH := int(float64(f.Height()) * cfg.Window.Scale)

	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	host.logger.Info("opening window", "size", fmt.Sprintf("%dx%d", winW, winH), "field", fmt.Sprintf("%dx%d", f.Cols, f.PlayRows()))
	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
