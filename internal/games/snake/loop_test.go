package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// countingInput returns a fixed sample and counts calls.
type countingInput struct {
	sample core.InputSample
	calls  int
}

func (c *countingInput) Sample() core.InputSample {
	c.calls++
	return c.sample
}

func TestLoopFirstFrameRunsOneTick(t *testing.T) {
	g := newSeeded(1)
	g.apple = cell(30, 30)
	l := NewLoop(g, 16*time.Millisecond)
	in := &countingInput{}

	res := l.Frame(time.Now(), in)

	if res.Ticks != 1 || in.calls != 1 {
		t.Errorf("ticks=%d samples=%d, expected 1 and 1", res.Ticks, in.calls)
	}
	if g.head != cell(5, 5) {
		t.Errorf("head = %v, expected %v", g.head, cell(5, 5))
	}
}

func TestLoopSamplesOnlyWhenTicking(t *testing.T) {
	g := newSeeded(2)
	g.apple = cell(30, 30)
	l := NewLoop(g, 16*time.Millisecond)
	in := &countingInput{}
	now := time.Now()

	l.Frame(now, in)
	res := l.Frame(now.Add(5*time.Millisecond), in)
	if res.Ticks != 0 || in.calls != 1 {
		t.Errorf("short frame: ticks=%d samples=%d", res.Ticks, in.calls)
	}

	res = l.Frame(now.Add(5*time.Millisecond+3*16*time.Millisecond), in)
	if res.Ticks != 3 || in.calls != 2 {
		t.Errorf("long frame: ticks=%d samples=%d, expected 3 and 2", res.Ticks, in.calls)
	}
	if l.Ticks() != 4 {
		t.Errorf("total ticks = %d, expected 4", l.Ticks())
	}
}

func TestLoopSkipDropsElapsedTime(t *testing.T) {
	g := newSeeded(3)
	g.apple = cell(30, 30)
	l := NewLoop(g, 16*time.Millisecond)
	in := &countingInput{}
	now := time.Now()

	l.Frame(now, in)
	l.Skip(now.Add(time.Second))
	res := l.Frame(now.Add(time.Second+time.Millisecond), in)

	if res.Ticks != 0 {
		t.Errorf("ticks after skip = %d, expected 0", res.Ticks)
	}
}

func TestLoopReportsTransitions(t *testing.T) {
	g := newSeeded(4)
	g.apple = cell(30, 30)
	g.head = cell(6, 7)
	g.body = []Point{cell(6, 8), cell(7, 8), cell(7, 7), cell(7, 6)}
	l := NewLoop(g, 16*time.Millisecond)
	now := time.Now()

	res := l.Frame(now, &countingInput{})
	if !res.Died || res.Reset {
		t.Fatalf("expected death, got %+v", res)
	}

	hold := &countingInput{sample: core.InputSample{PointerX: 1000, PointerY: 1100, PointerDown: true}}
	res = l.Frame(now.Add(16*time.Millisecond), hold)
	if !res.Reset || res.Died {
		t.Errorf("expected reset, got %+v", res)
	}
	if l.Game().GameOver() {
		t.Error("game should be playing after reset")
	}
}
