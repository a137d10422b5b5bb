package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/doeshing/habits/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "lowercases", input: "Yoga", want: "yoga"},
		{name: "keeps inner spaces", input: "Morning Run", want: "morning run"},
		{name: "trims surrounding whitespace", input: "  Reading\t", want: "reading"},
		{name: "rejects empty", input: "", wantErr: domain.ErrInvalidName},
		{name: "rejects blank", input: "   ", wantErr: domain.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeName(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NormalizeName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeName(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"running":        "Running",
		"morning run":    "Morning Run",
		"drink water":    "Drink Water",
		"":               "",
	}
	for in, want := range tests {
		if got := domain.DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHabitHasDateAndProgress(t *testing.T) {
	h := domain.Habit{
		Name:  "reading",
		Dates: []domain.Date{domain.MustParseDate("2024-01-01"), domain.MustParseDate("2024-01-02")},
	}

	if !h.HasDate(domain.MustParseDate("2024-01-02")) {
		t.Error("expected 2024-01-02 to be recorded")
	}
	if h.HasDate(domain.MustParseDate("2024-01-03")) {
		t.Error("did not expect 2024-01-03 to be recorded")
	}

	got := h.Progress()
	want := domain.ProgressEntry{Name: "reading", DisplayName: "Reading", Count: 2}
	if got != want {
		t.Errorf("Progress() = %+v, want %+v", got, want)
	}
}

func TestParseDateAndDateOf(t *testing.T) {
	d, err := domain.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("String() = %s", d)
	}
	if _, err := domain.ParseDate("2023-02-29"); err == nil {
		t.Error("expected invalid calendar date to be rejected")
	}

	loc := time.FixedZone("UTC+14", 14*3600)
	instant := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC).In(loc)
	if got := domain.DateOf(instant).String(); got != "2024-01-02" {
		t.Errorf("DateOf uses the instant's location, got %s", got)
	}
}

func TestIsRecoverable(t *testing.T) {
	wrapped := fmt.Errorf("log reading: %w", domain.ErrAlreadyLogged)
	if !domain.IsRecoverable(wrapped) {
		t.Error("wrapped ErrAlreadyLogged should be recoverable")
	}
	if domain.IsRecoverable(errors.New("disk on fire")) {
		t.Error("arbitrary errors are not recoverable")
	}
}

func TestCompletionChart(t *testing.T) {
	snapshot := domain.Snapshot{
		{Name: "reading", DisplayName: "Reading", Count: 2},
		{Name: "yoga", DisplayName: "Yoga", Count: 5},
	}
	chart := domain.CompletionChart(snapshot)

	if chart.Title != "Habit Completion Count" || chart.XLabel != "Habit" || chart.YLabel != "Days Completed" {
		t.Fatalf("unexpected chart labels: %+v", chart)
	}
	if len(chart.Bars) != 2 || chart.Bars[0].Label != "Reading" || chart.Bars[1].Value != 5 {
		t.Fatalf("unexpected bars: %+v", chart.Bars)
	}
	if chart.MaxValue() != 5 {
		t.Errorf("MaxValue() = %d, want 5", chart.MaxValue())
	}
}
