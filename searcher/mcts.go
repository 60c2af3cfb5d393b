package searcher

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"mcbot/game"
)

type Option func(m *MCTS)

// MCTS is a single-threaded Monte Carlo tree searcher. One FindBestAction
// call builds one tree from scratch; the tree is never shared or reused
// across decisions.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	selection   selectionMode
	rollout     RolloutPolicy
	rng         *rand.Rand
	metrics     MetricsCollector
	root        *node
	last        SearchMetrics
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration bounds the search by wall clock instead of a fixed iteration
// count. The deadline is checked only between iterations; an in-progress
// rollout is never interrupted, and at least one iteration always runs.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT constant C.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRouletteSelection replaces the UCT argmax with a visit-proportional
// roulette draw during tree descent.
func WithRouletteSelection() Option {
	return func(m *MCTS) {
		m.selection = selectRoulette
	}
}

func WithRollout(policy RolloutPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

// WithSeed fixes the pseudo-random source. Two searches with the same seed,
// budget, configuration and root state build identical trees and return the
// identical action.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		rollout:     RandomRollout(),
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("searcher: must specify search iterations or duration")
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
	}
	return m
}

// FindBestAction runs the configured budget of
// selection-expansion-rollout-backup iterations from state and returns the
// root action with the highest visit count; ties keep the child expanded
// first. Fails with ErrNoLegalActions on a terminal root and with a
// ContractError if the adapter reports a non-terminal dead end.
func (m *MCTS) FindBestAction(state game.State) (game.Action, error) {
	if state.IsTerminal() || len(state.LegalActions()) == 0 {
		return nil, ErrNoLegalActions
	}

	m.metrics.Start()
	m.root = newNode(nil, state.Player(), state)
	m.metrics.AddNode()

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for done := 0; m.budgetLeft(done, deadline); done++ {
		if err := m.simulate(state); err != nil {
			return nil, err
		}
		m.metrics.AddIteration()
	}

	action := m.bestAction()
	m.last = m.metrics.Complete()
	log.Debug().
		Int("iterations", m.last.Iterations).
		Int("nodes", m.last.Nodes).
		Int("maxDepth", m.last.MaxDepth).
		Dur("elapsed", m.last.Duration).
		Msgf("best action %v", action)
	return action, nil
}

// Metrics returns the summary of the most recent FindBestAction call. Zero
// unless the searcher was built WithMetrics.
func (m *MCTS) Metrics() SearchMetrics {
	return m.last
}

func (m *MCTS) budgetLeft(done int, deadline time.Time) bool {
	if m.iterations > 0 {
		return done < m.iterations
	}
	return done == 0 || time.Now().Before(deadline)
}

func (m *MCTS) simulate(state game.State) error {
	leaf, leafState, depth := m.selectThenExpand(state)
	terminal, err := m.playout(leafState)
	if err != nil {
		return err
	}
	backup(leaf, terminal)
	m.metrics.ObserveDepth(depth)
	return nil
}

// selectThenExpand descends from the root through fully expanded nodes,
// then expands one untried action. A terminal leaf is returned as is.
func (m *MCTS) selectThenExpand(state game.State) (*node, game.State, int) {
	n, depth := m.root, 0
	for n.fullyExpanded() && !n.terminal() {
		i := m.pickChild(n)
		state = state.Apply(n.actions[i])
		n = n.children[i]
		depth++
	}
	if n.terminal() {
		return n, state, depth
	}

	child, childState := n.expand(state, m.rng)
	m.metrics.AddNode()
	return child, childState, depth + 1
}

func (m *MCTS) pickChild(n *node) int {
	if m.selection == selectRoulette {
		return pickRoulette(n, m.rng)
	}
	return pickUCT(n, m.exploration)
}

func (m *MCTS) playout(state game.State) (game.State, error) {
	if state.IsTerminal() {
		// Expanding a pre-terminal node lands here: the outcome is already
		// known, nothing to simulate.
		return state, nil
	}
	m.metrics.AddFullPlayout()
	return m.rollout(state, m.rng)
}

// backup walks the path from the playout's start node back to the root
// inclusive, crediting every node with the terminal outcome from its own
// acting player's perspective. With strictly alternating turns the credited
// sign flips at each ply.
func backup(n *node, terminal game.State) {
	for ; n != nil; n = n.parent {
		n.visits++
		n.rewards += terminal.Utility(n.player)
	}
}

func (m *MCTS) bestAction() game.Action {
	children := m.root.children
	best := lo.MaxBy(lo.Range(len(children)), func(a, b int) bool {
		return children[a].visits > children[b].visits
	})
	return m.root.actions[best]
}
