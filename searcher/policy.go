package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// DefaultExploration is the UCT constant C; C^2 = 2 is the usual UCB1 tuning
// for rewards in [-1, 1].
const DefaultExploration = math.Sqrt2

type selectionMode int

const (
	selectUCT selectionMode = iota
	selectRoulette
)

// pickUCT returns the index of the child with the maximum UCT score from the
// perspective of the player to move at n. An unvisited child scores +Inf and
// is taken immediately; ties keep the first-encountered child, so selection
// is deterministic in expansion order.
func pickUCT(n *node, c float64) int {
	c2LnN := c * c * math.Log(float64(n.visits))

	best := -1
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.uct(c2LnN)
		if math.IsInf(score, 1) {
			return i
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// pickRoulette draws a child with probability proportional to its visit
// count. Softer than the UCT argmax: a well-visited line is favored but
// never monopolizes the descent. When every child is unvisited the draw
// degenerates to uniform rather than dividing by zero.
func pickRoulette(n *node, rng *rand.Rand) int {
	total := 0
	for _, child := range n.children {
		total += child.visits
	}
	if total == 0 {
		return rng.Intn(len(n.children))
	}

	threshold := rng.Intn(total)
	acc := 0
	for i, child := range n.children {
		acc += child.visits
		if acc > threshold {
			return i
		}
	}
	return len(n.children) - 1
}
