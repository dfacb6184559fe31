package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// MoveSource produces the next coordinate to play on a board.
type MoveSource interface {
	NextMove(ctx context.Context, board *tictactoe.Board) (entity.Cell, error)
}

type botService struct {
	rng *rand.Rand
}

// NewBotService - creates a move source that picks uniformly among the empty cells.
// Identical seeds give identical games.
func NewBotService(rng *rand.Rand) MoveSource {
	return &botService{rng: rng}
}

// NewSeededBotService - shorthand for NewBotService with a fresh source for seed.
func NewSeededBotService(seed int64) MoveSource {
	return NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
}

func (that *botService) NextMove(ctx context.Context, board *tictactoe.Board) (entity.Cell, error) {
	if err := ctx.Err(); err != nil {
		return entity.Cell{}, err
	}

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}
