package chart

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

const closeHint = "press q, esc or enter to close"

// TUIRenderer shows the chart full-screen and blocks until the user closes it.
type TUIRenderer struct {
	in   io.Reader
	out  io.Writer
	opts Options
}

// NewTUIRenderer builds an interactive renderer on the given terminal streams.
func NewTUIRenderer(in io.Reader, out io.Writer, opts Options) *TUIRenderer {
	return &TUIRenderer{in: in, out: out, opts: opts}
}

// Render implements ports.ChartRenderer. Without a terminal to read keys from
// the viewer could never be closed, so the chart is printed as text instead.
func (r *TUIRenderer) Render(ctx context.Context, c domain.Chart) error {
	if !IsTerminal(r.in) {
		return NewTextRenderer(r.out, r.opts).Render(ctx, c)
	}
	p := tea.NewProgram(
		newViewer(c, r.opts),
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chart viewer: %w", err)
	}
	return nil
}

// viewer is the bubbletea model behind TUIRenderer.
type viewer struct {
	chart  string
	width  int
	height int
}

func newViewer(c domain.Chart, opts Options) viewer {
	return viewer{chart: Draw(c, opts)}
}

func (v viewer) Init() tea.Cmd {
	return nil
}

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v viewer) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center, v.chart, "", axisStyle.Render(closeHint))
	if v.width == 0 || v.height == 0 {
		return content
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}

var _ ports.ChartRenderer = (*TUIRenderer)(nil)
