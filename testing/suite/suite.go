package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Renderer *Recorder
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Renderer: &Recorder{},
	}
}

// Frame is one snapshot handed to the renderer.
type Frame struct {
	Cells  [][]entity.Mark
	Result entity.MoveResult
}

// Recorder is a renderer that keeps every frame it receives.
type Recorder struct {
	frames []Frame
}

func (that *Recorder) Render(cells [][]entity.Mark, result entity.MoveResult) {
	that.frames = append(that.frames, Frame{Cells: cells, Result: result})
}

func (that *Recorder) Frames() []Frame {
	return append([]Frame(nil), that.frames...)
}

// Last - returns the most recent frame, the zero Frame when nothing was rendered.
func (that *Recorder) Last() Frame {
	if len(that.frames) == 0 {
		return Frame{}
	}

	return that.frames[len(that.frames)-1]
}
