package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveResult_String(t *testing.T) {
	t.Run("Every result has a label", func(t *testing.T) {
		// Given: the expected label of every result
		expected := map[MoveResult]string{
			XWins:       "X wins",
			OWins:       "O wins",
			Tie:         "Tie",
			Unfinished:  "Continue",
			InvalidMove: "Invalid move!",
		}

		for result, label := range expected {
			// When: converting the result to string
			actual := result.String()

			// Then: it should match the fixed label
			assert.Equal(t, label, actual)
		}
	})

	t.Run("Unknown result falls back to a numbered label", func(t *testing.T) {
		// Given: a value outside the enumeration
		result := MoveResult(42)

		// When: converting the result to string
		label := result.String()

		// Then: a numbered fallback label is returned
		assert.Equal(t, "MoveResult(42)", label)
	})
}

func TestIsGameFinished(t *testing.T) {
	// Given: every result and whether it ends the game
	cases := map[MoveResult]bool{
		XWins:       true,
		OWins:       true,
		Tie:         true,
		Unfinished:  false,
		InvalidMove: false,
	}

	for result, finished := range cases {
		t.Run(result.String(), func(t *testing.T) {
			// Then: the predicate and the method should agree with the table
			assert.Equal(t, finished, IsGameFinished(result))
			assert.Equal(t, finished, result.IsFinished())
		})
	}
}

func TestMark(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "X", PlayerX.String())
		assert.Equal(t, "O", PlayerO.String())
		assert.Equal(t, "_", EmptyCell.String())
	})

	t.Run("Opponent", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	})

	t.Run("Zero value is an empty cell", func(t *testing.T) {
		var mark Mark

		assert.Equal(t, EmptyCell, mark)
	})
}

func TestWinnerResult(t *testing.T) {
	assert.Equal(t, XWins, WinnerResult(PlayerX))
	assert.Equal(t, OWins, WinnerResult(PlayerO))
}
