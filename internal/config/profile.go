// Package config handles profile and batch file parsing and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/symtalha14/notify"
)

// Profile holds per-role style overrides, keyed by role.
// Fields left empty keep the role's built-in default.
//
// Example YAML format:
//
//	success:
//	  color: blue+bold
//	  prompt: OK
//	error:
//	  scope: all
//	  prefix: "<"
//	  suffix: ">"
type Profile map[notify.Role]notify.Style

// LoadProfile reads and parses a YAML profile file.
// An empty file yields an empty profile.
func LoadProfile(filepath string) (Profile, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile file not found: %s", filepath)
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if len(data) == 0 {
		return make(Profile), nil
	}

	var raw map[string]notify.Style
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	profile := make(Profile, len(raw))
	for name, style := range raw {
		role, err := notify.ParseRole(name)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", filepath, err)
		}
		profile[role] = style
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", filepath, err)
	}

	return profile, nil
}

// ParseInlineOverrides converts "role.field=value" strings into a Profile.
// Valid fields are color, prompt, scope, prefix and suffix.
//
// Example:
//
//	profile, err := config.ParseInlineOverrides([]string{
//	    "success.color=blue+bold",
//	    "error.prompt=FAIL",
//	})
func ParseInlineOverrides(overrides []string) (Profile, error) {
	profile := make(Profile)

	for _, override := range overrides {
		kv := strings.SplitN(override, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid override format: '%s' (expected 'role.field=value')", override)
		}

		path := strings.SplitN(strings.TrimSpace(kv[0]), ".", 2)
		if len(path) != 2 {
			return nil, fmt.Errorf("invalid override key: '%s' (expected 'role.field')", kv[0])
		}

		role, err := notify.ParseRole(path[0])
		if err != nil {
			return nil, err
		}

		// Delimiters are commonly padded with spaces, so only the key is trimmed.
		value := kv[1]
		style := profile[role]
		switch strings.ToLower(strings.TrimSpace(path[1])) {
		case "color":
			style.Color = strings.TrimSpace(value)
		case "prompt":
			style.Prompt = value
		case "scope":
			style.Scope = notify.Scope(strings.TrimSpace(value))
		case "prefix":
			style.Prefix = value
		case "suffix":
			style.Suffix = value
		default:
			return nil, fmt.Errorf("unknown style field '%s' in: '%s'", path[1], override)
		}
		profile[role] = style
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// MergeProfiles combines profiles field by field; later non-empty fields win.
func MergeProfiles(profiles ...Profile) Profile {
	result := make(Profile)

	for _, profile := range profiles {
		for role, style := range profile {
			merged := result[role]
			notify.WithStyle(style)(&merged)
			result[role] = merged
		}
	}

	return result
}

// Validate checks every color and scope in the profile.
func (p Profile) Validate() error {
	for role, style := range p {
		if _, err := notify.GetColorCodes(style.Color); err != nil {
			return fmt.Errorf("%s: %w", role, err)
		}
		if style.Scope != "" && !style.Scope.Valid() {
			return fmt.Errorf("%s: invalid scope '%s'", role, style.Scope)
		}
	}
	return nil
}

// Options returns the options that apply the profile's override for role.
func (p Profile) Options(role notify.Role) []notify.Option {
	style, ok := p[role]
	if !ok {
		return nil
	}
	return []notify.Option{notify.WithStyle(style)}
}
