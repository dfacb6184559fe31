package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application on the process's standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - runs the self-check, if enabled, then plays one game to completion.
// Board snapshots and prompts go to out; human moves are read from in.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	printer := console.NewPrinter(out, conf.Color)
	manager := usecase.NewGameManager(logger, printer)

	if !conf.SkipSelfCheck {
		if _, err := manager.SelfCheck(ctx); err != nil {
			return fmt.Errorf("failed to run self-check: %w", err)
		}
		log.Info("Self-check passed")
	}

	source, err := newMoveSource(log, conf, in, out)
	if err != nil {
		return err
	}

	board, err := manager.NewBoard(conf.BoardSize)
	if err != nil {
		return err
	}

	log.Info("Starting game", "size", conf.BoardSize, "mode", conf.Mode)

	result, err := manager.PlayGame(ctx, board, source)
	if err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	log.Info("Game over", "result", result.String(), "moves", board.MoveCounter())

	if err = printer.Err(); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

func newMoveSource(log *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (service.MoveSource, error) {
	switch conf.Mode {
	case config.ModeRandom:
		seed := conf.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Info("Using random move source", "seed", seed)

		return service.NewSeededBotService(seed), nil
	case config.ModeHuman:
		return service.NewHumanService(in, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}
}
