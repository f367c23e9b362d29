package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/symtalha14/notify"
)

var validate = validator.New()

// Line is a single status line to render in batch mode.
// Pointer fields distinguish "not set" from an explicit empty string, so
// `color: ""` turns coloring off for that line.
type Line struct {
	Role    string       `yaml:"role" validate:"required,oneof=success warning error failure info system"`
	Message string       `yaml:"message" validate:"required"`
	Color   *string      `yaml:"color"`
	Prompt  *string      `yaml:"prompt"`
	Scope   notify.Scope `yaml:"scope" validate:"omitempty,oneof=all prompt prompt_text"`
	Prefix  *string      `yaml:"prefix"`
	Suffix  *string      `yaml:"suffix"`
}

// BatchConfig represents the entire batch file.
type BatchConfig struct {
	Lines []Line `yaml:"lines" validate:"required,min=1,dive"`
}

// LoadBatchConfig reads and parses a batch YAML file.
//
// Example YAML format:
//
//	lines:
//	  - role: success
//	    message: build finished
//	  - role: warning
//	    message: 3 tests skipped
//	    scope: all
func LoadBatchConfig(filepath string) (*BatchConfig, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("batch file not found: %s", filepath)
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var config BatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
	}

	if len(config.Lines) == 0 {
		return nil, fmt.Errorf("no lines defined in batch file")
	}

	// Set defaults
	for i := range config.Lines {
		line := &config.Lines[i]

		// Default role to info
		if line.Role == "" {
			line.Role = string(notify.RoleInfo)
		}
		line.Role = strings.ToLower(strings.TrimSpace(line.Role))
	}

	if err := validate.Struct(&config); err != nil {
		return nil, describeValidation(err)
	}

	return &config, nil
}

// Options converts the line's explicit fields into notify options.
func (l Line) Options() []notify.Option {
	var opts []notify.Option
	if l.Color != nil {
		opts = append(opts, notify.WithColor(*l.Color))
	}
	if l.Prompt != nil {
		opts = append(opts, notify.WithPrompt(*l.Prompt))
	}
	if l.Scope != "" {
		opts = append(opts, notify.WithScope(l.Scope))
	}
	if l.Prefix != nil {
		opts = append(opts, notify.WithPrefix(*l.Prefix))
	}
	if l.Suffix != nil {
		opts = append(opts, notify.WithSuffix(*l.Suffix))
	}
	return opts
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid batch file: %w", err)
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Namespace())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s], got '%v'", fe.Namespace(), fe.Param(), fe.Value())
		default:
			fmt.Fprintf(&details, "%s failed '%s'", fe.Namespace(), fe.Tag())
		}
	}

	return fmt.Errorf("invalid batch file: %s", details.String())
}
