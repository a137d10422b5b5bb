package chart

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// TextRenderer writes the chart to a writer and returns immediately.
type TextRenderer struct {
	out  io.Writer
	opts Options
}

// NewTextRenderer builds a non-interactive renderer.
func NewTextRenderer(out io.Writer, opts Options) *TextRenderer {
	return &TextRenderer{out: out, opts: opts}
}

// Render implements ports.ChartRenderer.
func (r *TextRenderer) Render(ctx context.Context, c domain.Chart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.out, "\n%s\n", Draw(c, r.opts))
	return err
}

var _ ports.ChartRenderer = (*TextRenderer)(nil)
