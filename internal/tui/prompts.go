package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)).WithTheme(currentThemeOrDefault()).Run()
	return confirmed, err
}

// Field is one text input of an Ask form.
type Field struct {
	Title       string
	Description string
	// Value holds the default on entry and the answer on return.
	Value    *string
	Validate func(string) error
}

// Ask shows all fields in a single form.
func Ask(fields ...Field) error {
	inputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		in := huh.NewInput().
			Title(f.Title).
			Description(f.Description).
			Placeholder(*f.Value).
			Value(f.Value)
		if f.Validate != nil {
			in = in.Validate(f.Validate)
		}
		inputs = append(inputs, in)
	}
	return huh.NewForm(huh.NewGroup(inputs...)).WithTheme(currentThemeOrDefault()).Run()
}
