package entity

import "fmt"

// MoveResult is the classification returned by a move attempt.
// UNFINISHED is the zero value and the initial state of every game.
type MoveResult uint8

const (
	Unfinished MoveResult = iota
	XWins
	OWins
	Tie
	InvalidMove
)

var moveResultLabels = map[MoveResult]string{
	XWins:       "X wins",
	OWins:       "O wins",
	Tie:         "Tie",
	Unfinished:  "Continue",
	InvalidMove: "Invalid move!",
}

// String - returns the human-readable label of the result.
func (that MoveResult) String() string {
	if label, ok := moveResultLabels[that]; ok {
		return label
	}

	return fmt.Sprintf("MoveResult(%d)", uint8(that))
}

// IsFinished - reports whether the result ends the game.
func (that MoveResult) IsFinished() bool {
	return IsGameFinished(that)
}

// IsGameFinished - true iff the result is a win or a tie.
func IsGameFinished(result MoveResult) bool {
	return result == XWins || result == OWins || result == Tie
}

// WinnerResult - returns the winning result for the given mark.
func WinnerResult(mark Mark) MoveResult {
	if mark == PlayerX {
		return XWins
	}

	return OWins
}
