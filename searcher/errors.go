package searcher

import (
	"errors"
	"fmt"

	"mcbot/game"
)

// ErrNoLegalActions is returned when the root state is terminal or offers no
// actions. The caller must check terminality before asking for a decision;
// the searcher never fabricates one.
var ErrNoLegalActions = errors.New("searcher: no legal actions at root state")

// ContractError reports a GameState adapter bug: a state claiming to be
// non-terminal while offering no legal actions. No trustworthy decision can
// be made on top of a broken adapter, so the search fails immediately.
type ContractError struct {
	State game.State
}

func newContractError(state game.State) *ContractError {
	return &ContractError{State: state}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("searcher: adapter contract violation: non-terminal state %v reports no legal actions", e.State)
}
