package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"mcbot/game"
)

func TestRandomRollout(t *testing.T) {
	g := forcedWinGame()
	rng := rand.New(rand.NewSource(3))
	rollout := RandomRollout()

	t.Run("plays to a terminal state", func(t *testing.T) {
		terminal, err := rollout(g.state("root"), rng)
		require.NoError(t, err)
		require.True(t, terminal.IsTerminal())
	})

	t.Run("returns a terminal state unchanged", func(t *testing.T) {
		terminal, err := rollout(g.state("p1-wins"), rng)
		require.NoError(t, err)
		require.Equal(t, g.state("p1-wins"), terminal,
			"A terminal state carries its own outcome, nothing to simulate")
	})

	t.Run("fails on an adapter contract violation", func(t *testing.T) {
		broken := brokenAdapterGame()
		_, err := rollout(broken.state("dead-end"), rng)
		var contractErr *ContractError
		require.ErrorAs(t, err, &contractErr,
			"A non-terminal dead end signals a GameState bug")
	})
}

func TestHeuristicRollout(t *testing.T) {
	g := forcedWinGame()
	rng := rand.New(rand.NewSource(5))

	t.Run("follows the scorer's weights", func(t *testing.T) {
		// Only the winning action carries weight, so every rollout must end
		// in p1's win.
		winOnly := func(s game.State, a game.Action) float64 {
			if a == "win" {
				return 1
			}
			return 0
		}
		rollout := HeuristicRollout(winOnly)

		for i := 0; i < 50; i++ {
			terminal, err := rollout(g.state("root"), rng)
			require.NoError(t, err)
			require.Equal(t, 1.0, terminal.Utility("p1"))
		}
	})

	t.Run("falls back to uniform on zero weights", func(t *testing.T) {
		zero := func(game.State, game.Action) float64 { return 0 }
		rollout := HeuristicRollout(zero)

		terminal, err := rollout(g.state("root"), rng)
		require.NoError(t, err)
		require.True(t, terminal.IsTerminal(),
			"Zero weights should not stall or fail the rollout")
	})

	t.Run("clips negative weights", func(t *testing.T) {
		loseAverse := func(s game.State, a game.Action) float64 {
			if a == "lose" {
				return -100
			}
			return 1
		}
		rollout := HeuristicRollout(loseAverse)

		for i := 0; i < 50; i++ {
			terminal, err := rollout(g.state("root"), rng)
			require.NoError(t, err)
			require.Equal(t, 1.0, terminal.Utility("p1"),
				"A negative weight should count as zero, never as a draw chance")
		}
	})

	t.Run("fails on an adapter contract violation", func(t *testing.T) {
		broken := brokenAdapterGame()
		rollout := HeuristicRollout(func(game.State, game.Action) float64 { return 1 })
		_, err := rollout(broken.state("dead-end"), rng)
		var contractErr *ContractError
		require.ErrorAs(t, err, &contractErr)
	})
}
