package searcher

import (
	"golang.org/x/exp/rand"

	"mcbot/game"
)

// RolloutPolicy plays a state out to a terminal state and returns it. A
// policy fails only on an adapter contract violation.
type RolloutPolicy func(state game.State, rng *rand.Rand) (game.State, error)

// RandomRollout picks uniformly among legal actions until the game ends.
// Unbiased but high variance.
func RandomRollout() RolloutPolicy {
	return func(state game.State, rng *rand.Rand) (game.State, error) {
		for !state.IsTerminal() {
			actions := state.LegalActions()
			if len(actions) == 0 {
				return nil, newContractError(state)
			}
			state = state.Apply(actions[rng.Intn(len(actions))])
		}
		return state, nil
	}
}

// HeuristicRollout draws each rollout action with probability proportional
// to score(state, action). Weights at or below zero count as zero; a step
// where every action weighs zero falls back to a uniform draw. Lower
// variance than RandomRollout, biased exactly as much as the scorer is.
func HeuristicRollout(score game.Scorer) RolloutPolicy {
	return func(state game.State, rng *rand.Rand) (game.State, error) {
		weights := make([]float64, 0, 32)
		for !state.IsTerminal() {
			actions := state.LegalActions()
			if len(actions) == 0 {
				return nil, newContractError(state)
			}

			weights = weights[:0]
			total := 0.0
			for _, a := range actions {
				w := score(state, a)
				if w < 0 {
					w = 0
				}
				weights = append(weights, w)
				total += w
			}

			picked := len(actions) - 1
			if total <= 0 {
				picked = rng.Intn(len(actions))
			} else {
				threshold := rng.Float64() * total
				acc := 0.0
				for i, w := range weights {
					acc += w
					if acc > threshold {
						picked = i
						break
					}
				}
			}
			state = state.Apply(actions[picked])
		}
		return state, nil
	}
}
