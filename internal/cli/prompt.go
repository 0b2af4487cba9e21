package cli

import (
	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// ResolveConfirmFunc returns AlwaysYes when --yes was given, otherwise the
// interactive confirm.
func ResolveConfirmFunc(yes bool) ConfirmFunc {
	if yes {
		return AlwaysYes()
	}
	return NewConfirmFunc()
}

// PromptFunc asks for free text. initial pre-fills the field.
type PromptFunc func(prompt, initial string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's multi-line text component,
// so notes can span several lines.
func NewPromptFunc() PromptFunc {
	return func(prompt, initial string) (string, error) {
		result := initial
		err := huh.NewText().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}
