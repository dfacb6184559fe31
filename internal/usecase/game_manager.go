package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type moveSource interface {
	NextMove(ctx context.Context, board *tictactoe.Board) (entity.Cell, error)
}

// GameManager runs games and the scripted self-check, rendering every board it creates.
type GameManager struct {
	logger   *slog.Logger
	renderer tictactoe.Renderer
}

// NewGameManager - creates a manager. A nil renderer discards board output.
func NewGameManager(logger *slog.Logger, renderer tictactoe.Renderer) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game-manager"),
		renderer: renderer,
	}
}

// NewBoard - creates a board that renders through the manager's renderer.
func (that *GameManager) NewBoard(size int) (*tictactoe.Board, error) {
	board, err := tictactoe.NewBoard(size, that.renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// PlayGame - asks source for moves until the game on board is over.
//
// Invalid moves and malformed input are logged and the same player is asked again.
// Any other source error ends the game early and is returned with the current state.
func (that *GameManager) PlayGame(ctx context.Context, board *tictactoe.Board, source moveSource) (entity.MoveResult, error) {
	log := that.logger.With("method", "PlayGame", "size", board.Size())

	for !board.State().IsFinished() {
		if err := ctx.Err(); err != nil {
			return board.State(), fmt.Errorf("game interrupted: %w", err)
		}

		cell, err := source.NextMove(ctx, board)
		if errors.Is(err, apperror.ErrMalformedMove) {
			log.Warn("malformed move", "error", err)
			continue
		}

		if err != nil {
			return board.State(), fmt.Errorf("failed to get next move: %w", err)
		}

		player := board.Turn()
		result := board.Move(cell.Row, cell.Col)
		log.Debug("move played", "player", player.String(), "row", cell.Row, "col", cell.Col, "result", result.String())

		if result == entity.InvalidMove {
			log.Warn("invalid move", "player", player.String(), "row", cell.Row, "col", cell.Col)
		}
	}

	log.Info("game finished", "result", board.State().String(), "moves", board.MoveCounter())

	return board.State(), nil
}
