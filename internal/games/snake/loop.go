package snake

import (
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Loop drives a Game at a fixed tick rate from variable host frames.
type Loop struct {
	game     *Game
	clock    *core.FixedStep
	lastTime time.Time
}

// FrameResult reports what happened during one host frame.
type FrameResult struct {
	Ticks int  // Simulation ticks run
	Died  bool // A tick ended the game
	Reset bool // A tick restarted the game from game over
}

// NewLoop creates a loop that ticks game once per interval.
func NewLoop(game *Game, interval time.Duration) *Loop {
	return &Loop{
		game:  game,
		clock: core.NewFixedStep(interval),
	}
}

// Frame runs the ticks due since the previous frame. Input is sampled once,
// and only when at least one tick is due, so latched presses survive frames
// that run no tick. The first frame counts as one interval.
func (l *Loop) Frame(now time.Time, input core.InputProvider) FrameResult {
	elapsed := l.clock.Interval()
	if !l.lastTime.IsZero() {
		elapsed = now.Sub(l.lastTime)
	}
	l.lastTime = now

	var res FrameResult
	res.Ticks = l.clock.Advance(elapsed)
	if res.Ticks == 0 {
		return res
	}

	in := input.Sample()
	for range res.Ticks {
		wasOver := l.game.GameOver()
		l.game.Tick(in)
		switch over := l.game.GameOver(); {
		case over && !wasOver:
			res.Died = true
		case !over && wasOver:
			res.Reset = true
		}
	}
	return res
}

// Skip marks a frame at now without advancing the simulation.
func (l *Loop) Skip(now time.Time) {
	l.lastTime = now
}

// Game returns the driven game.
func (l *Loop) Game() *Game {
	return l.game
}

// Interval returns the fixed tick duration.
func (l *Loop) Interval() time.Duration {
	return l.clock.Interval()
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.clock.Ticks()
}
