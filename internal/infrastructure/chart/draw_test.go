package chart

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/habits/internal/domain"
)

func sampleChart() domain.Chart {
	return domain.CompletionChart(domain.Snapshot{
		{Name: "reading", DisplayName: "Reading", Count: 2},
		{Name: "morning run", DisplayName: "Morning Run", Count: 7},
		{Name: "yoga", DisplayName: "Yoga", Count: 0},
	})
}

func TestDrawIncludesLabelsAndCounts(t *testing.T) {
	out := Draw(sampleChart(), Options{})

	for _, want := range []string{"Habit Completion Count", "Days Completed", "Habit", "Reading", "Morning Run", "Yoga", "2", "7", "0"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, barRune); got != (2+7)*domain.DefaultBarWidth {
		t.Errorf("expected %d bar cells, got %d:\n%s", (2+7)*domain.DefaultBarWidth, got, out)
	}
}

func TestDrawPutsLabelsBelowBars(t *testing.T) {
	lines := strings.Split(Draw(sampleChart(), Options{}), "\n")
	labelLine, barLine := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "Morning Run") {
			labelLine = i
		}
		if strings.Contains(line, barRune) {
			barLine = i
		}
	}
	if labelLine == -1 || barLine == -1 || labelLine <= barLine {
		t.Fatalf("labels (line %d) should come after the last bar row (line %d)", labelLine, barLine)
	}
}

func TestScaledHeight(t *testing.T) {
	tests := []struct {
		name                      string
		value, highest, maxHeight int
		want                      int
	}{
		{name: "zero value", value: 0, highest: 5, maxHeight: 10, want: 0},
		{name: "fits unscaled", value: 4, highest: 5, maxHeight: 10, want: 4},
		{name: "tallest fills height", value: 40, highest: 40, maxHeight: 10, want: 10},
		{name: "proportional", value: 20, highest: 40, maxHeight: 10, want: 5},
		{name: "tiny values keep one row", value: 1, highest: 400, maxHeight: 10, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaledHeight(tt.value, tt.highest, tt.maxHeight); got != tt.want {
				t.Errorf("scaledHeight(%d, %d, %d) = %d, want %d", tt.value, tt.highest, tt.maxHeight, got, tt.want)
			}
		})
	}
}

func TestOptionsFromAppliesDefaults(t *testing.T) {
	opts := OptionsFrom(domain.RendererSettings{})
	if opts.BarColor != domain.DefaultBarColor || opts.MaxBarHeight != domain.DefaultMaxBarHeight || opts.BarWidth != domain.DefaultBarWidth {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestTextRendererWritesChart(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, Options{})
	if err := r.Render(context.Background(), sampleChart()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Habit Completion Count") {
		t.Fatalf("expected chart in output, got %q", buf.String())
	}
}

func TestTextRendererHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := NewTextRenderer(&buf, Options{}).Render(ctx, sampleChart()); err == nil {
		t.Fatal("expected context error")
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written after cancellation, got %q", buf.String())
	}
}

func TestViewerQuitsOnCloseKeys(t *testing.T) {
	v := newViewer(sampleChart(), Options{})
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
	} {
		_, cmd := v.Update(key)
		if cmd == nil {
			t.Fatalf("key %q should close the viewer", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q did not produce QuitMsg", key.String())
		}
	}

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Fatal("other keys should keep the viewer open")
	}
}

func TestViewerViewContainsChartAndHint(t *testing.T) {
	model, _ := newViewer(sampleChart(), Options{}).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := model.View()
	if !strings.Contains(view, "Habit Completion Count") || !strings.Contains(view, closeHint) {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	in := strings.NewReader("")
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{kind: domain.RendererAuto, want: domain.RendererText},
		{kind: "", want: domain.RendererText},
		{kind: domain.RendererTUI, want: domain.RendererTUI},
		{kind: domain.RendererText, want: domain.RendererText},
		{kind: "svg", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.kind, in, &buf)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%q) expected error", tt.kind)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.kind, got, err, tt.want)
		}
	}
}

func TestNewBuildsRendererForKind(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(domain.RendererSettings{Kind: domain.RendererTUI}, strings.NewReader(""), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*TUIRenderer); !ok {
		t.Fatalf("expected *TUIRenderer, got %T", r)
	}
	r, err = New(domain.RendererSettings{Kind: domain.RendererAuto}, strings.NewReader(""), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*TextRenderer); !ok {
		t.Fatalf("expected *TextRenderer for non-terminal output, got %T", r)
	}
}

func TestTUIRendererPrintsTextWithoutTerminalInput(t *testing.T) {
	var buf bytes.Buffer
	r := NewTUIRenderer(strings.NewReader(""), &buf, Options{})

	done := make(chan error, 1)
	go func() { done <- r.Render(context.Background(), sampleChart()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Render blocked on input that has already reached EOF")
	}
	if !strings.Contains(buf.String(), "Habit Completion Count") {
		t.Fatalf("expected chart text, got:\n%s", buf.String())
	}
}
