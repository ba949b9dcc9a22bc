package snake

import (
	"testing"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

func TestResolveHeading(t *testing.T) {
	tests := []struct {
		name    string
		in      core.InputSample
		current Heading
		want    Heading
	}{
		{"no keys keeps heading", core.InputSample{}, HeadingLeft, HeadingLeft},
		{"up from right", core.InputSample{Up: true}, HeadingRight, HeadingUp},
		{"up from down ignored", core.InputSample{Up: true}, HeadingDown, HeadingDown},
		{"down from left", core.InputSample{Down: true}, HeadingLeft, HeadingDown},
		{"down from up ignored", core.InputSample{Down: true}, HeadingUp, HeadingUp},
		{"left from up", core.InputSample{Left: true}, HeadingUp, HeadingLeft},
		{"left from right ignored", core.InputSample{Left: true}, HeadingRight, HeadingRight},
		{"right from down", core.InputSample{Right: true}, HeadingDown, HeadingRight},
		{"right from left ignored", core.InputSample{Right: true}, HeadingLeft, HeadingLeft},
		{"up wins over left", core.InputSample{Up: true, Left: true}, HeadingRight, HeadingUp},
		{"blocked up falls through to left", core.InputSample{Up: true, Left: true}, HeadingDown, HeadingLeft},
		{"left wins over right", core.InputSample{Left: true, Right: true}, HeadingUp, HeadingLeft},
		{"blocked left falls through to right", core.InputSample{Left: true, Right: true}, HeadingRight, HeadingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveHeading(tc.in, tc.current); got != tc.want {
				t.Errorf("ResolveHeading(%+v, %s) = %s, expected %s", tc.in, tc.current, got, tc.want)
			}
		})
	}
}

func TestResolveHeadingDownIgnoredWithHorizontalKey(t *testing.T) {
	for _, current := range []Heading{HeadingRight, HeadingLeft} {
		in := core.InputSample{Down: true, Left: true}
		got := ResolveHeading(in, current)
		if got == HeadingDown {
			t.Errorf("Down+Left from %s turned down", current)
		}
		in = core.InputSample{Down: true, Right: true}
		got = ResolveHeading(in, current)
		if got == HeadingDown {
			t.Errorf("Down+Right from %s turned down", current)
		}
	}

	// From Right, Down+Left resolves to nothing: Down is suppressed and Left reverses.
	if got := ResolveHeading(core.InputSample{Down: true, Left: true}, HeadingRight); got != HeadingRight {
		t.Errorf("Down+Left from right = %s, expected right", got)
	}
}

func TestResolveHeadingNeverReverses(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		in := core.InputSample{
			Up:    mask&1 != 0,
			Down:  mask&2 != 0,
			Left:  mask&4 != 0,
			Right: mask&8 != 0,
		}
		for _, current := range []Heading{HeadingRight, HeadingDown, HeadingLeft, HeadingUp} {
			if got := ResolveHeading(in, current); got == current.Opposite() {
				t.Errorf("ResolveHeading(%+v, %s) reversed to %s", in, current, got)
			}
		}
	}
}

func TestHeadingVectors(t *testing.T) {
	tests := []struct {
		h      Heading
		dx, dy int
	}{
		{HeadingRight, 1, 0},
		{HeadingDown, 0, 1},
		{HeadingLeft, -1, 0},
		{HeadingUp, 0, -1},
	}
	for _, tc := range tests {
		dx, dy := tc.h.Vector()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Vector() = (%d, %d), expected (%d, %d)", tc.h, dx, dy, tc.dx, tc.dy)
		}
		odx, ody := tc.h.Opposite().Vector()
		if odx != -dx || ody != -dy {
			t.Errorf("%s.Opposite() is not the reverse vector", tc.h)
		}
	}
}
