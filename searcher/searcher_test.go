package searcher

import "mcbot/game"

// mockGame is a hand-built game tree keyed by state name. Edge order is
// fixed, so searches over it are reproducible.
type mockGame struct {
	players map[string]game.PlayerID
	edges   map[string][]mockEdge
	winners map[string]game.PlayerID
	broken  map[string]bool // non-terminal states that report no actions
}

type mockEdge struct {
	action string
	to     string
}

func (g *mockGame) state(name string) mockState {
	return mockState{g: g, name: name}
}

type mockState struct {
	g    *mockGame
	name string
}

func (s mockState) LegalActions() []game.Action {
	edges := s.g.edges[s.name]
	actions := make([]game.Action, 0, len(edges))
	for _, e := range edges {
		actions = append(actions, e.action)
	}
	return actions
}

func (s mockState) Apply(a game.Action) game.State {
	for _, e := range s.g.edges[s.name] {
		if e.action == a {
			return mockState{g: s.g, name: e.to}
		}
	}
	panic("mock: action not legal at " + s.name)
}

func (s mockState) IsTerminal() bool {
	return len(s.g.edges[s.name]) == 0 && !s.g.broken[s.name]
}

func (s mockState) Utility(perspective game.PlayerID) float64 {
	winner := s.g.winners[s.name]
	switch winner {
	case game.Nobody:
		return 0
	case perspective:
		return 1
	default:
		return -1
	}
}

func (s mockState) Player() game.PlayerID {
	return s.g.players[s.name]
}

// forcedWinGame has p1 to move at the root with two actions: "win" ends the
// game immediately in p1's favor, "lose" in p2's.
func forcedWinGame() *mockGame {
	return &mockGame{
		players: map[string]game.PlayerID{"root": "p1"},
		edges: map[string][]mockEdge{
			"root": {{action: "win", to: "p1-wins"}, {action: "lose", to: "p2-wins"}},
		},
		winners: map[string]game.PlayerID{"p1-wins": "p1", "p2-wins": "p2"},
	}
}

// brokenAdapterGame leads to a state that claims to be non-terminal while
// reporting no legal actions.
func brokenAdapterGame() *mockGame {
	return &mockGame{
		players: map[string]game.PlayerID{"root": "p1"},
		edges: map[string][]mockEdge{
			"root": {{action: "step", to: "dead-end"}},
		},
		broken: map[string]bool{"dead-end": true},
	}
}
