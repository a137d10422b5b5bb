package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

type menuState int

const (
	stateShowMenu menuState = iota
	stateAwaitChoice
	stateDispatch
	stateExit
)

// Menu is the interactive read-eval loop over the tracker.
type Menu struct {
	tracker  *tracker.Service
	renderer ports.ChartRenderer
	logger   ports.Logger
	in       *bufio.Reader
	out      io.Writer
}

// NewMenu wires a menu to the given streams.
func NewMenu(svc *tracker.Service, renderer ports.ChartRenderer, log ports.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		tracker:  svc,
		renderer: renderer,
		logger:   log,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run loops until the user picks exit. User mistakes are reported and the loop
// continues; input or store failures end the loop with an error.
func (m *Menu) Run(ctx context.Context) error {
	state := stateShowMenu
	var choice string

	for {
		switch state {
		case stateShowMenu:
			m.showMenu()
			state = stateAwaitChoice

		case stateAwaitChoice:
			line, err := m.prompt(promptChoice)
			if err != nil {
				return err
			}
			if !isChoice(line) {
				m.logger.Debug("invalid menu choice", map[string]interface{}{"input": line})
				fmt.Fprintln(m.out, userMessage(domain.ErrInvalidChoice, line))
				state = stateShowMenu
				continue
			}
			choice = line
			state = stateDispatch

		case stateDispatch:
			if choice == choiceExit {
				fmt.Fprintln(m.out, msgGoodbye)
				state = stateExit
				continue
			}
			if err := m.dispatch(ctx, choice); err != nil {
				if !domain.IsRecoverable(err) {
					return err
				}
				fmt.Fprintln(m.out, userMessage(err, choice))
			}
			state = stateShowMenu

		case stateExit:
			return nil
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	m.logger.Debug("menu dispatch", map[string]interface{}{"choice": choice})
	switch choice {
	case choiceAdd:
		return m.addHabit(ctx)
	case choiceLog:
		return m.logHabit(ctx)
	case choiceView:
		return m.viewProgress(ctx)
	case choiceVisualize:
		return m.visualize(ctx)
	default:
		return domain.ErrInvalidChoice
	}
}

func (m *Menu) addHabit(ctx context.Context) error {
	name, err := m.prompt(promptNewHabit)
	if err != nil {
		return err
	}
	stored, err := m.tracker.AddHabit(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, msgHabitAdded, stored)
	return nil
}

func (m *Menu) logHabit(ctx context.Context) error {
	name, err := m.prompt(promptLogHabit)
	if err != nil {
		return err
	}
	if _, err := m.tracker.LogCompletion(ctx, name); err != nil {
		return err
	}
	fmt.Fprintln(m.out, msgLogged)
	return nil
}

func (m *Menu) viewProgress(ctx context.Context) error {
	fmt.Fprintf(m.out, "\n%s\n", progressHeader)
	entries, err := m.tracker.ListProgress(ctx)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Fprintf(m.out, progressLine, entry.DisplayName, entry.Count)
	}
	return nil
}

func (m *Menu) visualize(ctx context.Context) error {
	snapshot, err := m.tracker.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := m.renderer.Render(ctx, domain.CompletionChart(snapshot)); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func (m *Menu) showMenu() {
	fmt.Fprintf(m.out, "\n%s\n", menuHeader)
	for _, option := range menuOptions {
		fmt.Fprintln(m.out, option)
	}
}

// prompt writes label and reads one line without its line ending. A final line
// without a newline is returned normally; EOF with nothing read is an error.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}

func isChoice(token string) bool {
	switch token {
	case choiceAdd, choiceLog, choiceView, choiceVisualize, choiceExit:
		return true
	default:
		return false
	}
}
