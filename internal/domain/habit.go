package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Habit is a tracked activity and the days it was completed.
// Name is always the normalized (lowercase) key.
type Habit struct {
	Name  string
	Dates []Date
}

// HasDate reports whether the habit was already completed on d.
func (h Habit) HasDate(d Date) bool {
	for _, existing := range h.Dates {
		if existing == d {
			return true
		}
	}
	return false
}

// Count returns the number of days the habit was completed.
func (h Habit) Count() int {
	return len(h.Dates)
}

// Progress converts the habit into its reporting form.
func (h Habit) Progress() ProgressEntry {
	return ProgressEntry{
		Name:        h.Name,
		DisplayName: DisplayName(h.Name),
		Count:       h.Count(),
	}
}

// ProgressEntry is one row of a progress report.
type ProgressEntry struct {
	Name        string
	DisplayName string
	Count       int
}

// Snapshot is the ordered list of progress entries used for text and chart output.
type Snapshot []ProgressEntry

// NormalizeName returns the storage key for a user-supplied habit name.
func NormalizeName(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", ErrInvalidName
	}
	return key, nil
}

// DisplayName title-cases every word of a stored name for presentation.
func DisplayName(name string) string {
	return cases.Title(language.Und).String(name)
}
