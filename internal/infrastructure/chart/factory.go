package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

// Resolve turns a configured renderer kind into a concrete one. "auto" picks
// the interactive viewer only when both in and out are terminals.
func Resolve(kind string, in io.Reader, out io.Writer) (string, error) {
	switch kind {
	case domain.RendererTUI, domain.RendererText:
		return kind, nil
	case domain.RendererAuto, "":
		if IsTerminal(in) && IsTerminal(out) {
			return domain.RendererTUI, nil
		}
		return domain.RendererText, nil
	default:
		return "", fmt.Errorf("unsupported renderer kind: %s", kind)
	}
}

// New builds the renderer described by settings.
func New(settings domain.RendererSettings, in io.Reader, out io.Writer) (ports.ChartRenderer, error) {
	kind, err := Resolve(settings.Kind, in, out)
	if err != nil {
		return nil, err
	}
	opts := OptionsFrom(settings)
	if kind == domain.RendererTUI {
		return NewTUIRenderer(in, out, opts), nil
	}
	return NewTextRenderer(out, opts), nil
}

// IsTerminal reports whether stream is a file attached to a terminal.
func IsTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
