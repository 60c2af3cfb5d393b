package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"mcbot/game"
)

// node is a vertex of the search tree. rewards accumulate from the player
// perspective, the player whose move led into this node, so a parent reads
// its children's means directly during selection and the per-ply sign flip
// happens entirely in backup.
//
// actions and children are parallel slices in expansion order; parent is a
// non-owning back-reference used only by backup.
type node struct {
	parent   *node
	player   game.PlayerID
	actions  []game.Action
	children []*node
	untried  []game.Action
	visits   int
	rewards  float64
}

func newNode(parent *node, player game.PlayerID, state game.State) *node {
	return &node{
		parent:  parent,
		player:  player,
		untried: state.LegalActions(),
	}
}

// terminal nodes have nothing to try and nothing to descend into; they are
// selected but never expanded.
func (n *node) terminal() bool {
	return len(n.untried) == 0 && len(n.children) == 0
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// expand pops a uniformly random untried action, applies it, and appends the
// new child with zero statistics. The caller guarantees untried is non-empty.
func (n *node) expand(state game.State, rng *rand.Rand) (*node, game.State) {
	i := rng.Intn(len(n.untried))
	action := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	childState := state.Apply(action)
	child := newNode(n, state.Player(), childState)
	n.actions = append(n.actions, action)
	n.children = append(n.children, child)
	return child, childState
}

func (n *node) mean() float64 {
	return n.rewards / float64(n.visits)
}

// uct scores the node for its parent: mean reward plus the exploration bonus
// sqrt(c2LnN/visits), where c2LnN is C^2*ln(parent visits). Unvisited nodes
// score +Inf so they are tried before any revisit.
func (n *node) uct(c2LnN float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	return n.mean() + math.Sqrt(c2LnN/float64(n.visits))
}
