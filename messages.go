package notify

import (
	"fmt"
	"strings"
)

// Default delimiters and scope shared by every role.
const (
	DefaultPrefix = "[ "
	DefaultSuffix = " ]"
	DefaultScope  = ScopePromptText
)

// Role names one of the predefined message kinds.
type Role string

const (
	RoleSuccess Role = "success"
	RoleWarning Role = "warning"
	RoleError   Role = "error"
	RoleFailure Role = "failure"
	RoleInfo    Role = "info"
	RoleSystem  Role = "system"
)

var roleOrder = []Role{RoleSuccess, RoleWarning, RoleError, RoleFailure, RoleInfo, RoleSystem}

// Style bundles everything that shapes a line apart from the message.
type Style struct {
	Color  string `json:"color" yaml:"color"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Scope  Scope  `json:"scope" yaml:"scope"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Suffix string `json:"suffix" yaml:"suffix"`
}

// Render formats message with the style.
func (s Style) Render(message string) (string, error) {
	return Format(message, s.Prompt, s.Color, s.Scope, s.Prefix, s.Suffix)
}

func roleStyle(color, prompt string) Style {
	return Style{
		Color:  color,
		Prompt: prompt,
		Scope:  DefaultScope,
		Prefix: DefaultPrefix,
		Suffix: DefaultSuffix,
	}
}

var (
	successStyle = roleStyle("green+bold", "Success")
	warningStyle = roleStyle("yellow+bold", "Warning")
	errorStyle   = roleStyle("red+bold", "Error")
	infoStyle    = roleStyle("cyan+bold", "Info")
	systemStyle  = roleStyle("grey+bold", "System")
)

// Option overrides one field of a role's default style.
type Option func(*Style)

// WithColor sets the color specification, e.g. "blue" or "magenta+bold".
// An empty string disables coloring.
func WithColor(color string) Option {
	return func(s *Style) { s.Color = color }
}

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) Option {
	return func(s *Style) { s.Prompt = prompt }
}

// WithScope sets the color scope.
func WithScope(scope Scope) Option {
	return func(s *Style) { s.Scope = scope }
}

// WithPrefix sets the opening prompt delimiter.
func WithPrefix(prefix string) Option {
	return func(s *Style) { s.Prefix = prefix }
}

// WithSuffix sets the closing prompt delimiter.
func WithSuffix(suffix string) Option {
	return func(s *Style) { s.Suffix = suffix }
}

// WithStyle replaces every field with the non-empty fields of override.
// Empty fields keep the current value, so a partial Style from a config
// file can be layered over role defaults.
func WithStyle(override Style) Option {
	return func(s *Style) {
		if override.Color != "" {
			s.Color = override.Color
		}
		if override.Prompt != "" {
			s.Prompt = override.Prompt
		}
		if override.Scope != "" {
			s.Scope = override.Scope
		}
		if override.Prefix != "" {
			s.Prefix = override.Prefix
		}
		if override.Suffix != "" {
			s.Suffix = override.Suffix
		}
	}
}

func render(base Style, message string, opts []Option) (string, error) {
	for _, opt := range opts {
		opt(&base)
	}
	return base.Render(message)
}

// Success renders a green "Success" line.
func Success(message string, opts ...Option) (string, error) {
	return render(successStyle, message, opts)
}

// Warning renders a yellow "Warning" line.
func Warning(message string, opts ...Option) (string, error) {
	return render(warningStyle, message, opts)
}

// Error renders a red "Error" line.
func Error(message string, opts ...Option) (string, error) {
	return render(errorStyle, message, opts)
}

// Failure is Error with the prompt defaulting to "Failure".
func Failure(message string, opts ...Option) (string, error) {
	return Error(message, append([]Option{WithPrompt("Failure")}, opts...)...)
}

// Info renders a cyan "Info" line.
func Info(message string, opts ...Option) (string, error) {
	return render(infoStyle, message, opts)
}

// System renders a grey "System" line.
func System(message string, opts ...Option) (string, error) {
	return render(systemStyle, message, opts)
}

// Message dispatches to the entry point for role.
func Message(role Role, message string, opts ...Option) (string, error) {
	switch role {
	case RoleSuccess:
		return Success(message, opts...)
	case RoleWarning:
		return Warning(message, opts...)
	case RoleError:
		return Error(message, opts...)
	case RoleFailure:
		return Failure(message, opts...)
	case RoleInfo:
		return Info(message, opts...)
	case RoleSystem:
		return System(message, opts...)
	}
	return "", unknownRole(string(role))
}

// Defaults returns the default style for role.
func Defaults(role Role) (Style, error) {
	switch role {
	case RoleSuccess:
		return successStyle, nil
	case RoleWarning:
		return warningStyle, nil
	case RoleError:
		return errorStyle, nil
	case RoleFailure:
		s := errorStyle
		s.Prompt = "Failure"
		return s, nil
	case RoleInfo:
		return infoStyle, nil
	case RoleSystem:
		return systemStyle, nil
	}
	return Style{}, unknownRole(string(role))
}

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(name string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(name)))
	for _, r := range roleOrder {
		if r == role {
			return r, nil
		}
	}
	return "", unknownRole(name)
}

// Roles lists every role in canonical order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

func unknownRole(name string) error {
	names := make([]string, len(roleOrder))
	for i, r := range roleOrder {
		names[i] = string(r)
	}
	return &ValueError{
		Reason: ReasonInvalidRole,
		Msg:    fmt.Sprintf("Invalid role '%s'. Allowed values are: %s", name, strings.Join(names, ", ")),
	}
}
