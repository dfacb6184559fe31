// Package console renders board snapshots as text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const Separator = "================"

// Printer writes every snapshot it receives to out:
//
//	================
//	X_O
//	_X_
//	O__
//	Continue
//
// The first write error is kept and reported by Err; later snapshots are dropped.
type Printer struct {
	out     io.Writer
	colored bool

	marks  map[entity.Mark]lipgloss.Style
	result lipgloss.Style

	err error
}

// NewPrinter - creates a printer. When colored is set marks and results are styled for
// the terminal behind out; non-terminal writers still receive plain text.
func NewPrinter(out io.Writer, colored bool) *Printer {
	return newPrinter(out, colored, lipgloss.NewRenderer(out))
}

func newPrinter(out io.Writer, colored bool, renderer *lipgloss.Renderer) *Printer {
	return &Printer{
		out:     out,
		colored: colored,
		marks: map[entity.Mark]lipgloss.Style{
			entity.PlayerX:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
			entity.PlayerO:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			entity.EmptyCell: renderer.NewStyle().Foreground(lipgloss.Color("240")),
		},
		result: renderer.NewStyle().Italic(true),
	}
}

func (that *Printer) Render(cells [][]entity.Mark, result entity.MoveResult) {
	if that.err != nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(Separator)
	sb.WriteByte('\n')

	for _, row := range cells {
		for _, mark := range row {
			sb.WriteString(that.paint(that.marks[mark], mark.String()))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(that.paint(that.result, result.String()))
	sb.WriteByte('\n')

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		that.err = fmt.Errorf("failed to write board: %w", err)
	}
}

func (that *Printer) paint(style lipgloss.Style, text string) string {
	if !that.colored {
		return text
	}

	return style.Render(text)
}

// Err - returns the first write error, if any.
func (that *Printer) Err() error {
	return that.err
}
