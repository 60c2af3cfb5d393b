// Package tictactoe implements a 3x3 tic-tac-toe board as a game.State, used
// as the reference collaborator for the searcher.
package tictactoe

import (
	"strings"

	"mcbot/game"
)

const (
	X = game.PlayerID("X")
	O = game.PlayerID("O")
)

// Cell indexes the board row-major, 0 through 8.
type Cell int

const (
	sideX = iota
	sideO
)

// Rows, columns and diagonals as bitboards.
var winPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

const fullBoard = 0b111111111

// Board is an immutable position: one bitboard per player, bit i set when
// cell i is marked. Apply copies the value, so states handed to a searcher
// never alias each other.
type Board struct {
	marks [2]uint16
	turn  int
}

// New returns the empty board with X to move.
func New() Board {
	return Board{}
}

func (b Board) Player() game.PlayerID {
	if b.turn == sideX {
		return X
	}
	return O
}

func (b Board) occupied() uint16 {
	return b.marks[sideX] | b.marks[sideO]
}

func wins(marks uint16) bool {
	for _, p := range winPatterns {
		if marks&p == p {
			return true
		}
	}
	return false
}

func (b Board) LegalActions() []game.Action {
	if wins(b.marks[sideX]) || wins(b.marks[sideO]) {
		return nil
	}
	free := ^b.occupied() & fullBoard
	actions := make([]game.Action, 0, 9)
	for c := Cell(0); c < 9; c++ {
		if free&(1<<c) != 0 {
			actions = append(actions, c)
		}
	}
	return actions
}

func (b Board) Apply(a game.Action) game.State {
	c := a.(Cell)
	b.marks[b.turn] |= 1 << c
	b.turn = 1 - b.turn
	return b
}

func (b Board) IsTerminal() bool {
	return wins(b.marks[sideX]) || wins(b.marks[sideO]) || b.occupied() == fullBoard
}

// Winner returns X or O for a decided position and game.Nobody for a draw or
// an unfinished game.
func (b Board) Winner() game.PlayerID {
	if wins(b.marks[sideX]) {
		return X
	}
	if wins(b.marks[sideO]) {
		return O
	}
	return game.Nobody
}

func (b Board) Utility(perspective game.PlayerID) float64 {
	switch b.Winner() {
	case game.Nobody:
		return 0
	case perspective:
		return 1
	default:
		return -1
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for c := Cell(0); c < 9; c++ {
		switch {
		case b.marks[sideX]&(1<<c) != 0:
			sb.WriteByte('X')
		case b.marks[sideO]&(1<<c) != 0:
			sb.WriteByte('O')
		default:
			sb.WriteByte('.')
		}
		if c%3 == 2 && c != 8 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
