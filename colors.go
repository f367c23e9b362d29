// Package notify formats short, color-coded status lines for terminal output.
//
// Every function returns the rendered string and never prints it; callers
// decide where the line goes.
//
//	line, err := notify.Success("deployment finished")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(line)
package notify

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
)

// Codes holds the escape sequences for one color specification.
// Reset is non-empty exactly when Color is non-empty.
type Codes struct {
	Color string `json:"color"`
	Reset string `json:"reset"`
}

// allowedComponents lists the tokens accepted in a color specification,
// in the order they are reported back in error messages.
var allowedComponents = []string{
	"black", "blue", "cyan", "green", "grey", "magenta", "red", "white", "yellow", "bold",
}

// sequences maps every known token to its escape sequence. The "reset"
// entry is internal and not accepted as user input.
var sequences = buildSequences(map[string]color.Attribute{
	"black":   color.FgBlack,
	"blue":    color.FgBlue,
	"cyan":    color.FgCyan,
	"green":   color.FgGreen,
	"grey":    color.FgHiBlack,
	"magenta": color.FgMagenta,
	"red":     color.FgRed,
	"white":   color.FgWhite,
	"yellow":  color.FgYellow,
	"bold":    color.Bold,
	"reset":   color.Reset,
})

func buildSequences(attrs map[string]color.Attribute) map[string]string {
	out := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		out[name] = fmt.Sprintf("\x1b[%dm", attr)
	}
	return out
}

// AllowedComponents returns the color and style tokens GetColorCodes accepts.
func AllowedComponents() []string {
	out := make([]string, len(allowedComponents))
	copy(out, allowedComponents)
	return out
}

// GetColorCodes parses a color specification such as "red", "bold" or
// "green+bold" into escape sequences. An empty specification yields empty
// codes. Parts are concatenated in the order given, so "bold+blue" and
// "blue+bold" produce different (but equivalent on screen) sequences.
func GetColorCodes(spec string) (Codes, error) {
	if spec == "" {
		return Codes{}, nil
	}

	parts := strings.Split(sanitize(spec), "+")
	if len(parts) > 2 || (len(parts) == 2 && parts[0] != "bold" && parts[1] != "bold") {
		return Codes{}, &ValueError{
			Reason: ReasonInvalidFormat,
			Msg:    "Invalid color format. Use 'color', 'color+bold', or 'bold'.",
		}
	}

	var b strings.Builder
	for _, part := range parts {
		if !isAllowed(part) {
			return Codes{}, &ValueError{
				Reason: ReasonInvalidComponent,
				Msg: fmt.Sprintf("Invalid color component '%s'. Allowed values are: %s",
					part, strings.Join(allowedComponents, ", ")),
			}
		}
		b.WriteString(sequences[part])
	}

	return Codes{Color: b.String(), Reset: sequences["reset"]}, nil
}

// sanitize keeps ASCII letters and '+' and lower-cases the result.
func sanitize(spec string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r <= unicode.MaxASCII && unicode.IsLetter(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, spec)
}

func isAllowed(part string) bool {
	for _, name := range allowedComponents {
		if part == name {
			return true
		}
	}
	return false
}
