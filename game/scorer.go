package game

// Scorer weighs an action at a state for the heuristic rollout policy.
// Higher means better for the player to move; weights at or below zero count
// as zero. Implementations must stay cheap, on the order of one pattern check
// per action, since a Scorer runs once per legal action per rollout step.
type Scorer func(s State, a Action) float64
