package tictactoe

import "mcbot/game"

// Rollout weights: finishing a win dominates, blocking the opponent's win
// comes next, then center over corners over edges. One pattern scan per
// action, cheap enough for thousands of rollout steps per decision.
const (
	winWeight    = 64
	blockWeight  = 16
	centerWeight = 4
	cornerWeight = 2
	edgeWeight   = 1
)

// Heuristic is a game.Scorer for Board states.
func Heuristic(s game.State, a game.Action) float64 {
	b := s.(Board)
	c := a.(Cell)

	if wins(b.marks[b.turn] | 1<<c) {
		return winWeight
	}
	if wins(b.marks[1-b.turn] | 1<<c) {
		return blockWeight
	}

	switch c {
	case 4:
		return centerWeight
	case 0, 2, 6, 8:
		return cornerWeight
	default:
		return edgeWeight
	}
}
