// Package tictactoe implements the N×N board engine: it validates and applies moves
// and classifies the game after each of them.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Renderer receives a snapshot of the board and the result after every move attempt.
type Renderer interface {
	Render(cells [][]entity.Mark, result entity.MoveResult)
}

type discardRenderer struct{}

func (discardRenderer) Render([][]entity.Mark, entity.MoveResult) {}

// Board holds the state of a single game.
type Board struct {
	size  int
	cells [][]entity.Mark
	xTurn bool

	// +1 per X mark, -1 per O mark on the line.
	rows, cols     []int
	diag, antiDiag int

	moveCounter int
	state       entity.MoveResult

	renderer Renderer
}

// NewBoard - creates an empty size×size board with X to move.
// A nil renderer discards all output.
func NewBoard(size int, renderer Renderer) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	if renderer == nil {
		renderer = discardRenderer{}
	}

	cells := make([][]entity.Mark, size)
	for i := range cells {
		cells[i] = make([]entity.Mark, size)
	}

	return &Board{
		size:     size,
		cells:    cells,
		xTurn:    true,
		rows:     make([]int, size),
		cols:     make([]int, size),
		state:    entity.Unfinished,
		renderer: renderer,
	}, nil
}

// Move - places the current player's mark at (row, col) and classifies the game.
//
// An invalid move leaves the board untouched and does not consume the turn.
// Once the game is over the terminal result is returned again and nothing changes.
func (that *Board) Move(row, col int) entity.MoveResult {
	result := that.move(row, col)
	that.renderer.Render(that.Cells(), result)

	return result
}

func (that *Board) move(row, col int) entity.MoveResult {
	if that.state.IsFinished() {
		return that.state
	}

	if !that.IsValidMove(row, col) {
		return entity.InvalidMove
	}

	mark := that.Turn()
	that.cells[row][col] = mark
	that.moveCounter++

	count := 1
	if mark == entity.PlayerO {
		count = -1
	}

	that.rows[row] += count
	that.cols[col] += count
	if row == col {
		that.diag += count
	}
	if row == that.size-col-1 {
		that.antiDiag += count
	}

	// only the lines through (row, col) can have changed
	wins := abs(that.rows[row]) == that.size || abs(that.cols[col]) == that.size ||
		abs(that.diag) == that.size || abs(that.antiDiag) == that.size

	switch {
	case wins:
		that.state = entity.WinnerResult(mark)
	case that.moveCounter == that.size*that.size:
		that.state = entity.Tie
	default:
		that.state = entity.Unfinished
	}

	that.xTurn = !that.xTurn

	return that.state
}

// IsValidMove - reports whether (row, col) is on the board and empty.
func (that *Board) IsValidMove(row, col int) bool {
	return that.inBounds(row, col) && that.cells[row][col] == entity.EmptyCell
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Size - returns N.
func (that *Board) Size() int {
	return that.size
}

// Turn - returns the mark of the player to move.
func (that *Board) Turn() entity.Mark {
	if that.xTurn {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// MoveCounter - returns the number of valid moves made so far.
func (that *Board) MoveCounter() int {
	return that.moveCounter
}

// State - returns the classification after the last valid move.
func (that *Board) State() entity.MoveResult {
	return that.state
}

// At - returns the mark at (row, col), EmptyCell when out of bounds.
func (that *Board) At(row, col int) entity.Mark {
	if !that.inBounds(row, col) {
		return entity.EmptyCell
	}

	return that.cells[row][col]
}

// Cells - returns a copy of the grid.
func (that *Board) Cells() [][]entity.Mark {
	cells := make([][]entity.Mark, that.size)
	for i, row := range that.cells {
		cells[i] = append([]entity.Mark(nil), row...)
	}

	return cells
}

// EmptyCells - returns the coordinates of all unplayed cells in row-major order.
func (that *Board) EmptyCells() []entity.Cell {
	empty := make([]entity.Cell, 0, that.size*that.size-that.moveCounter)
	for i, row := range that.cells {
		for j, mark := range row {
			if mark == entity.EmptyCell {
				empty = append(empty, entity.Cell{Row: i, Col: j})
			}
		}
	}

	return empty
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
