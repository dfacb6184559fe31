package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type scannedLine struct {
	text string
	err  error
}

type humanService struct {
	scanner *bufio.Scanner
	prompt  io.Writer

	startOnce sync.Once
	lines     chan scannedLine
}

// NewHumanService - creates a move source reading one "row col" or "row,col" line per
// move from in. A prompt naming the player to move is written to prompt.
func NewHumanService(in io.Reader, prompt io.Writer) MoveSource {
	return &humanService{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
		lines:   make(chan scannedLine),
	}
}

func (that *humanService) NextMove(ctx context.Context, board *tictactoe.Board) (entity.Cell, error) {
	if err := ctx.Err(); err != nil {
		return entity.Cell{}, err
	}

	if _, err := fmt.Fprintf(that.prompt, "%s to move (row col): ", board.Turn()); err != nil {
		return entity.Cell{}, fmt.Errorf("failed to write prompt: %w", err)
	}

	that.startOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return entity.Cell{}, ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return entity.Cell{}, io.EOF
		}

		if line.err != nil {
			return entity.Cell{}, line.err
		}

		return ParseCell(line.text)
	}
}

// readLines - feeds lines to NextMove so a blocked read never holds up cancellation.
// A reader that never returns keeps this goroutine alive until the process exits.
func (that *humanService) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- scannedLine{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- scannedLine{err: fmt.Errorf("failed to read move: %w", err)}
	}
}

// ParseCell - parses "row col" or "row,col" into a cell. Bounds are not checked.
func ParseCell(line string) (entity.Cell, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Cell{}, fmt.Errorf("%w: expected two coordinates, got %q", apperror.ErrMalformedMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: bad row %q", apperror.ErrMalformedMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Cell{}, fmt.Errorf("%w: bad column %q", apperror.ErrMalformedMove, fields[1])
	}

	return entity.Cell{Row: row, Col: col}, nil
}
