package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const selfCheckBoardSize = 3

// CheckStep is one scripted move and the result it must produce.
type CheckStep struct {
	Cell     entity.Cell
	Expected entity.MoveResult
}

// CheckOutcome records what a scripted step actually produced.
type CheckOutcome struct {
	CheckStep
	Actual entity.MoveResult
}

func (that CheckOutcome) Passed() bool {
	return that.Actual == that.Expected
}

// RegressionScript is played on a fresh 3×3 board by SelfCheck.
var RegressionScript = []CheckStep{
	{Cell: entity.Cell{Row: 1, Col: 1}, Expected: entity.Unfinished},
	{Cell: entity.Cell{Row: 1, Col: 1}, Expected: entity.InvalidMove},
	{Cell: entity.Cell{Row: 2, Col: 0}, Expected: entity.Unfinished},
	{Cell: entity.Cell{Row: 2, Col: 1}, Expected: entity.Unfinished},
	{Cell: entity.Cell{Row: 1, Col: 0}, Expected: entity.Unfinished},
	{Cell: entity.Cell{Row: 0, Col: 1}, Expected: entity.XWins},
}

// SelfCheck - plays RegressionScript and reports every step.
func (that *GameManager) SelfCheck(ctx context.Context) ([]CheckOutcome, error) {
	return that.RunScript(ctx, selfCheckBoardSize, RegressionScript)
}

// RunScript - plays steps on a fresh size×size board. All steps are played even after
// a mismatch; ErrSelfCheckFailed is returned if any of them failed.
func (that *GameManager) RunScript(ctx context.Context, size int, steps []CheckStep) ([]CheckOutcome, error) {
	log := that.logger.With("method", "RunScript")

	board, err := that.NewBoard(size)
	if err != nil {
		return nil, err
	}

	outcomes := make([]CheckOutcome, 0, len(steps))
	failed := 0

	for i, step := range steps {
		if err = ctx.Err(); err != nil {
			return outcomes, fmt.Errorf("self-check interrupted: %w", err)
		}

		outcome := CheckOutcome{
			CheckStep: step,
			Actual:    board.Move(step.Cell.Row, step.Cell.Col),
		}
		outcomes = append(outcomes, outcome)

		if outcome.Passed() {
			log.Info("step passed", "step", i+1, "row", step.Cell.Row, "col", step.Cell.Col)
			continue
		}

		failed++
		log.Error("step failed",
			"step", i+1,
			"row", step.Cell.Row,
			"col", step.Cell.Col,
			"expected", step.Expected.String(),
			"actual", outcome.Actual.String(),
		)
	}

	if failed > 0 {
		return outcomes, fmt.Errorf("%w: %d of %d steps", apperror.ErrSelfCheckFailed, failed, len(steps))
	}

	return outcomes, nil
}
