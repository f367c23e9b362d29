package notify

// Scope selects which part of the rendered line carries the color codes.
type Scope string

const (
	ScopeAll        Scope = "all"         // prompt block and message
	ScopePrompt     Scope = "prompt"      // prompt block including delimiters
	ScopePromptText Scope = "prompt_text" // prompt text only, delimiters stay plain
)

// Valid reports whether s is one of the recognized scopes.
func (s Scope) Valid() bool {
	switch s {
	case ScopeAll, ScopePrompt, ScopePromptText:
		return true
	}
	return false
}

// Format renders message behind a delimited prompt, coloring the portion
// selected by scope:
//
//	all:         color + prefix + prompt + suffix + " " + message + reset
//	prompt:      color + prefix + prompt + suffix + reset + " " + message
//	prompt_text: prefix + color + prompt + reset + suffix + " " + message
//
// A bad color is reported before a bad scope.
func Format(message, prompt, color string, scope Scope, prefix, suffix string) (string, error) {
	codes, err := GetColorCodes(color)
	if err != nil {
		return "", &ValueError{
			Reason: ReasonInvalidColor,
			Msg:    "Invalid color: " + err.Error(),
			Err:    err,
		}
	}

	switch scope {
	case ScopeAll:
		return codes.Color + prefix + prompt + suffix + " " + message + codes.Reset, nil
	case ScopePrompt:
		return codes.Color + prefix + prompt + suffix + codes.Reset + " " + message, nil
	case ScopePromptText:
		return prefix + codes.Color + prompt + codes.Reset + suffix + " " + message, nil
	}

	return "", &ValueError{
		Reason: ReasonInvalidScope,
		Msg:    "Invalid scope. Use 'all', 'prompt', or 'prompt_text'.",
	}
}
