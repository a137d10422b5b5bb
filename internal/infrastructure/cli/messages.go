package cli

import (
	"errors"

	"github.com/doeshing/habits/internal/domain"
)

// Menu text and prompts.
const (
	menuHeader = "--- The Habit Tracker ---"

	promptChoice   = "Choose an option (1-5): "
	promptNewHabit = "Enter the name of the new habit: "
	promptLogHabit = "Enter the habit you completed today: "

	progressHeader = "Habit Progress:"
	progressLine   = "%s: %d days\n"

	msgHabitAdded    = "Habit '%s' added.\n"
	msgLogged        = "Logged successfully!"
	msgGoodbye       = "Goodbye!"
	msgNoHabits      = "No habits tracked yet."
	msgNothingToDraw = "No habit data to visualize yet."
)

var menuOptions = []string{
	"1. Add a new habit",
	"2. Log today's habit",
	"3. View progress",
	"4. Visualize progress",
	"5. Exit",
}

// Menu choice tokens, matched literally.
const (
	choiceAdd       = "1"
	choiceLog       = "2"
	choiceView      = "3"
	choiceVisualize = "4"
	choiceExit      = "5"
)

// userMessage maps a recoverable error to the line shown to the user.
// EmptyStore reads differently for the progress view and the chart.
func userMessage(err error, choice string) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return "Habit already exists."
	case errors.Is(err, domain.ErrNotFound):
		return "Habit not found. Add it first on option 1."
	case errors.Is(err, domain.ErrAlreadyLogged):
		return "You've already logged this habit today."
	case errors.Is(err, domain.ErrInvalidChoice):
		return "Invalid choice. Please choose from options 1-5."
	case errors.Is(err, domain.ErrInvalidName):
		return "Habit name cannot be empty."
	case errors.Is(err, domain.ErrEmptyStore):
		if choice == choiceVisualize {
			return msgNothingToDraw
		}
		return msgNoHabits
	default:
		return err.Error()
	}
}
