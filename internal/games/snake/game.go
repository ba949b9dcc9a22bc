// Package snake implements the wrap-around snake simulation: grid movement,
// heading arbitration, apple respawn, self-collision and the game-over reset
// button. It has no rendering or platform dependencies.
package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Options fixes the geometry of a game.
type Options struct {
	Field       Field
	Start       Point     // Head position of a new game
	Restart     Point     // Head position after a reset
	ResetButton core.Rect // Reset hit region in field pixels
}

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(cfg config.SnakeConfig) Options {
	f := FieldFromConfig(cfg.Field)
	return Options{
		Field:       f,
		Start:       f.Cell(cfg.Start.Col, cfg.Start.Row),
		Restart:     f.Cell(cfg.Restart.Col, cfg.Restart.Row),
		ResetButton: cfg.ResetButton.Rect(),
	}
}

// Game is one snake simulation. It is not safe for concurrent use; each host
// owns its own Game and reads RenderState only between ticks.
type Game struct {
	field       Field
	restart     Point
	resetButton core.Rect
	rng         RandSource
	tick        uint64

	head    Point
	body    []Point // Index 0 is the segment just behind the head, last is the tail
	apple   Point
	heading Heading

	gameOver     bool
	resetHovered bool
}

// New creates a game in the playing state with the head at opts.Start,
// heading right, an empty body and a randomly placed apple.
func New(opts Options, rng RandSource) *Game {
	g := &Game{
		field:       opts.Field,
		restart:     opts.Restart,
		resetButton: opts.ResetButton,
		rng:         rng,
		head:        opts.Start,
		heading:     HeadingRight,
	}
	g.spawnApple()
	return g
}

// Tick advances the simulation by one fixed step.
//
// While playing: resolve the heading, move with wraparound, eat the apple if
// the head reached it, then check for self-collision. After game over only
// the reset button is processed; it fires on every tick the pointer is held
// down inside it.
func (g *Game) Tick(in core.InputSample) {
	g.tick++
	g.resetHovered = g.resetButton.ContainsOpen(in.PointerX, in.PointerY)

	if g.gameOver {
		if g.resetHovered && in.PointerDown {
			g.reset()
		}
		return
	}

	g.heading = ResolveHeading(in, g.heading)
	tail := g.move()

	if g.head == g.apple {
		g.body = append(g.body, tail)
		g.spawnApple()
	}

	g.checkSelfCollision()
}

// move pushes the old head onto the body, advances and wraps the head, then
// pops the tail. It returns the popped tail so growth can put it back.
func (g *Game) move() Point {
	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = g.head

	dx, dy := g.heading.Vector()
	g.head.X += dx * g.field.CellSize
	g.head.Y += dy * g.field.CellSize
	g.head = g.field.Wrap(g.head)

	tail := g.body[len(g.body)-1]
	g.body = g.body[:len(g.body)-1]
	return tail
}

// checkSelfCollision ends the game if the head sits on a body segment.
func (g *Game) checkSelfCollision() {
	for _, seg := range g.body {
		if seg == g.head {
			g.gameOver = true
			return
		}
	}
}

// reset returns to the playing state from game over.
func (g *Game) reset() {
	g.body = g.body[:0]
	g.head = g.restart
	g.heading = HeadingRight
	g.gameOver = false
	g.spawnApple()
}

// GameOver reports whether the snake has run into itself.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Heading returns the current heading.
func (g *Game) Heading() Heading {
	return g.heading
}

// Field returns the field geometry.
func (g *Game) Field() Field {
	return g.field
}

// Len returns the number of body segments, excluding the head.
func (g *Game) Len() int {
	return len(g.body)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	hc, hr := g.field.CellOf(g.head)
	ac, ar := g.field.CellOf(g.apple)
	fmt.Fprintf(&b, "Tick: %d, Heading: %s, Body: %d\n", g.tick, g.heading, len(g.body))
	fmt.Fprintf(&b, "Head: (%d, %d), Apple: (%d, %d)\n", hc, hr, ac, ar)
	fmt.Fprintf(&b, "GameOver: %v\n", g.gameOver)
	return b.String()
}
