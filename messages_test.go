package notify

import (
	"errors"
	"strings"
	"testing"
)

const testMessage = "This is a message"

func TestRoleDefaults(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...Option) (string, error)
		color  string
		prompt string
	}{
		{"success", Success, "\x1b[32m", "Success"},
		{"warning", Warning, "\x1b[33m", "Warning"},
		{"error", Error, "\x1b[31m", "Error"},
		{"failure", Failure, "\x1b[31m", "Failure"},
		{"info", Info, "\x1b[36m", "Info"},
		{"system", System, seqGrey, "System"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(testMessage)
			if err != nil {
				t.Fatalf("error = %v", err)
			}

			wantStart := "[ " + tt.color + seqBold + tt.prompt + seqReset + " ]"
			if !strings.HasPrefix(got, wantStart) {
				t.Errorf("got %q, want prefix %q", got, wantStart)
			}
			if !strings.HasSuffix(got, testMessage) {
				t.Errorf("got %q, want suffix %q", got, testMessage)
			}
		})
	}
}

func TestRoleOverrides(t *testing.T) {
	t.Run("custom color whole message", func(t *testing.T) {
		got, err := Warning(testMessage, WithColor("blue"), WithScope(ScopeAll))
		if err != nil {
			t.Fatal(err)
		}
		want := seqBlue + "[ Warning ] " + testMessage + seqReset
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("custom color whole prompt", func(t *testing.T) {
		got, err := Info(testMessage, WithColor("blue"), WithScope(ScopePrompt))
		if err != nil {
			t.Fatal(err)
		}
		want := seqBlue + "[ Info ]" + seqReset + " " + testMessage
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("custom prompt keeps role color", func(t *testing.T) {
		got, err := Success(testMessage, WithPrompt("Custom"))
		if err != nil {
			t.Fatal(err)
		}
		want := "[ " + seqGreen + seqBold + "Custom" + seqReset + " ] " + testMessage
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("custom delimiters", func(t *testing.T) {
		got, err := System(testMessage, WithPrefix("{ "), WithSuffix(" }"))
		if err != nil {
			t.Fatal(err)
		}
		want := "{ " + seqGrey + seqBold + "System" + seqReset + " } " + testMessage
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("empty color disables styling", func(t *testing.T) {
		got, err := Error(testMessage, WithColor(""))
		if err != nil {
			t.Fatal(err)
		}
		if got != "[ Error ] "+testMessage {
			t.Errorf("got %q", got)
		}
	})

	t.Run("later option wins", func(t *testing.T) {
		got, err := Info(testMessage, WithPrompt("A"), WithPrompt("B"), WithColor(""))
		if err != nil {
			t.Fatal(err)
		}
		if got != "[ B ] "+testMessage {
			t.Errorf("got %q", got)
		}
	})
}

func TestRoleInvalidColor(t *testing.T) {
	for _, fn := range []func(string, ...Option) (string, error){Success, Warning, Error, Failure, Info, System} {
		got, err := fn(testMessage, WithColor("invalid"))
		if err == nil {
			t.Fatalf("got %q, want error", got)
		}
		if !strings.Contains(err.Error(), "Invalid color component 'invalid'") {
			t.Errorf("Error() = %q", err.Error())
		}
		if got != "" {
			t.Errorf("got partial output %q", got)
		}
	}
}

func TestFailureIsErrorWithPrompt(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "defaults"},
		{name: "scope all", opts: []Option{WithScope(ScopeAll)}},
		{name: "custom color", opts: []Option{WithColor("magenta")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Failure("x", tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			want, err := Error("x", append([]Option{WithPrompt("Failure")}, tt.opts...)...)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("Failure() = %q, Error(prompt=Failure) = %q", got, want)
			}
		})
	}

	t.Run("caller prompt overrides failure prompt", func(t *testing.T) {
		got, err := Failure("x", WithPrompt("Oops"), WithColor(""))
		if err != nil {
			t.Fatal(err)
		}
		if got != "[ Oops ] x" {
			t.Errorf("got %q", got)
		}
	})
}

func TestMessage(t *testing.T) {
	for _, role := range Roles() {
		t.Run(string(role), func(t *testing.T) {
			style, err := Defaults(role)
			if err != nil {
				t.Fatal(err)
			}
			want, err := style.Render(testMessage)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Message(role, testMessage)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("Message(%s) = %q, want %q", role, got, want)
			}
		})
	}

	_, err := Message("debug", testMessage)
	var verr *ValueError
	if !errors.As(err, &verr) || verr.Reason != ReasonInvalidRole {
		t.Errorf("Message(debug) error = %v, want invalid role", err)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "success", want: RoleSuccess},
		{input: " Warning ", want: RoleWarning},
		{input: "FAILURE", want: RoleFailure},
		{input: "notice", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithStyle(t *testing.T) {
	got, err := Success(testMessage, WithStyle(Style{Prompt: "OK", Prefix: "<", Suffix: ">"}), WithColor(""))
	if err != nil {
		t.Fatal(err)
	}
	if got != "<OK> "+testMessage {
		t.Errorf("got %q", got)
	}

	// An empty override leaves the defaults alone.
	got, err = Success(testMessage, WithStyle(Style{}))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Success(testMessage)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultsFailure(t *testing.T) {
	style, err := Defaults(RoleFailure)
	if err != nil {
		t.Fatal(err)
	}
	if style.Prompt != "Failure" || style.Color != "red+bold" {
		t.Errorf("Defaults(failure) = %+v", style)
	}

	// The error role keeps its own prompt.
	errStyle, _ := Defaults(RoleError)
	if errStyle.Prompt != "Error" {
		t.Errorf("Defaults(error).Prompt = %q", errStyle.Prompt)
	}
}
