package repositories

// PromptRepository asks the user for values during interactive rule authoring.
type PromptRepository interface {
	// Input asks for a non-blank free-text value.
	Input(label string) (string, error)

	// Choice asks the user to pick one of options.
	Choice(label string, options []string) (string, error)
}
