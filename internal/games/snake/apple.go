package snake

// RandSource is the random capability used to place apples.
// *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// spawnApple places the apple on a random cell that the snake does not occupy.
// Columns span the whole grid; rows span only the playable rows.
//
// The loop has no retry cap. It terminates because the playable area always
// exceeds the longest body a game can reach.
func (g *Game) spawnApple() {
	for {
		p := g.field.Cell(g.rng.Intn(g.field.Cols), g.rng.Intn(g.field.PlayRows()))
		if !g.occupied(p) {
			g.apple = p
			return
		}
	}
}

// occupied reports whether the head or any body segment is at p.
func (g *Game) occupied(p Point) bool {
	if g.head == p {
		return true
	}
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}
