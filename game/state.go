package game

// PlayerID identifies one of the two players. The zero value Nobody marks a
// drawn terminal state.
type PlayerID string

const Nobody PlayerID = ""

// Action is an opaque move. The searcher never inspects actions; it only
// hands them back to the State that produced them and uses them as keys for
// its bookkeeping, so concrete actions must be comparable.
type Action any

// State is the capability the search core requires from a game. Concrete
// games implement it; the searcher is generic over it and never downcasts.
type State interface {
	// LegalActions returns every action playable at this state, empty iff
	// the state is terminal. The order must be deterministic so that seeded
	// searches are reproducible.
	LegalActions() []Action

	// Apply returns the successor state after playing a. It must not mutate
	// the receiver; a may only be an action reported by LegalActions.
	Apply(a Action) State

	IsTerminal() bool

	// Utility reports the terminal outcome from perspective's point of view:
	// +1 for a win, -1 for a loss, 0 for a draw. Defined only on terminal
	// states.
	Utility(perspective PlayerID) float64

	// Player returns the player to move at this state.
	Player() PlayerID
}
