// Notify renders color-coded terminal status lines from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/symtalha14/notify"
	"github.com/symtalha14/notify/internal/config"
	"github.com/symtalha14/notify/internal/logging"
	"github.com/symtalha14/notify/internal/output"
	"github.com/symtalha14/notify/internal/stats"
)

// Version
var Version = "dev"

// Exit codes for scripts and CI
const (
	ExitSuccess = 0 // Everything rendered
	ExitFailure = 1 // Some batch lines failed
	ExitError   = 2 // Invalid arguments, color, scope or config
)

// exitError carries the process exit code alongside the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// cli holds flag values and state shared by every command.
type cli struct {
	// Persistent flags
	profilePath  string
	overrides    []string
	outputFormat string
	verbose      bool
	quiet        bool
	plain        bool

	// Style flags for role commands
	color  string
	prompt string
	scope  string
	prefix string
	suffix string

	profile config.Profile
	logger  logging.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: logging.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:   "notify",
		Short: "Render color-coded status lines",
		Long: `Notify renders short status lines such as

  [ Success ] build finished
  [ Warning ] 3 tests skipped

with configurable colors, prompt text and delimiters. Use it from shell
scripts to keep output consistent.`,
		Example: `  notify success "build finished"
  notify error "deploy failed" --scope all
  notify info "using cache" --color blue --prompt CACHE
  notify batch lines.yml -o json`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	rootCmd.PersistentFlags().StringVar(
		&c.profilePath,
		"profile",
		"",
		"Path to YAML file with per-role style overrides",
	)

	rootCmd.PersistentFlags().StringSliceVar(
		&c.overrides,
		"set",
		[]string{},
		"Override a style field (format: 'role.field=value'), repeatable",
	)

	rootCmd.PersistentFlags().StringVarP(
		&c.outputFormat,
		"output",
		"o",
		"pretty",
		"Output format: pretty, json",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&c.verbose,
		"verbose",
		"v",
		false,
		"Write debug logs to stderr",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&c.quiet,
		"quiet",
		"q",
		false,
		"Only show failed lines in batch mode",
	)

	rootCmd.PersistentFlags().BoolVar(
		&c.plain,
		"plain",
		false,
		"Disable all colors",
	)

	for _, role := range notify.Roles() {
		rootCmd.AddCommand(c.newRoleCmd(role))
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "codes <color>",
		Short: "Print the escape codes for a color specification",
		Example: `  notify codes red+bold
  notify codes "" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: c.runCodes,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "batch <file>",
		Short: "Render every line from a YAML batch file",
		Long: `Batch mode renders a list of lines from a YAML file and prints a
summary. The exit code is 1 when any line fails to render.`,
		Example: `  notify batch lines.yml
  notify batch lines.yml -q
  notify batch lines.yml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: c.runBatch,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of notify",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notify version %s\n", Version)
		},
	})

	return rootCmd
}

func (c *cli) newRoleCmd(role notify.Role) *cobra.Command {
	defaults, _ := notify.Defaults(role)

	cmd := &cobra.Command{
		Use:   string(role) + " <message...>",
		Short: fmt.Sprintf("Render a %q line", defaults.Prompt),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRole(cmd, role, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&c.color, "color", "c", defaults.Color, "Color specification: color, color+bold or bold")
	cmd.Flags().StringVarP(&c.prompt, "prompt", "p", defaults.Prompt, "Prompt text")
	cmd.Flags().StringVarP(&c.scope, "scope", "s", string(defaults.Scope), "Color scope: all, prompt, prompt_text")
	cmd.Flags().StringVar(&c.prefix, "prefix", defaults.Prefix, "Opening prompt delimiter")
	cmd.Flags().StringVar(&c.suffix, "suffix", defaults.Suffix, "Closing prompt delimiter")

	return cmd
}

// main is the entry point of the application.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.Red(fmt.Sprintf("Error: %v", err)))

		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(ExitError)
	}
}

// setup builds the logger and the merged style profile before any command runs.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	c.logger = logging.NewLogger(cmd.ErrOrStderr(), c.verbose)

	if c.plain {
		output.SetEnabled(false)
	}

	switch c.outputFormat {
	case "pretty", "json":
	default:
		return &exitError{ExitError, fmt.Errorf("unknown output format '%s' (expected pretty or json)", c.outputFormat)}
	}

	var fileProfile config.Profile
	if c.profilePath != "" {
		loaded, err := config.LoadProfile(c.profilePath)
		if err != nil {
			return &exitError{ExitError, fmt.Errorf("loading profile: %w", err)}
		}
		fileProfile = loaded
		c.logger.Debug("loaded profile", logging.String("path", c.profilePath), logging.Int("roles", len(loaded)))
	}

	inline, err := config.ParseInlineOverrides(c.overrides)
	if err != nil {
		return &exitError{ExitError, fmt.Errorf("parsing overrides: %w", err)}
	}

	// Inline overrides take precedence over the profile file
	c.profile = config.MergeProfiles(fileProfile, inline)
	return nil
}

// roleOptions layers profile, explicit flags and --plain, in that order.
func (c *cli) roleOptions(cmd *cobra.Command, role notify.Role) []notify.Option {
	opts := c.profile.Options(role)

	flags := cmd.Flags()
	if flags.Changed("color") {
		opts = append(opts, notify.WithColor(c.color))
	}
	if flags.Changed("prompt") {
		opts = append(opts, notify.WithPrompt(c.prompt))
	}
	if flags.Changed("scope") {
		opts = append(opts, notify.WithScope(notify.Scope(c.scope)))
	}
	if flags.Changed("prefix") {
		opts = append(opts, notify.WithPrefix(c.prefix))
	}
	if flags.Changed("suffix") {
		opts = append(opts, notify.WithSuffix(c.suffix))
	}

	return c.withPlain(opts)
}

func (c *cli) withPlain(opts []notify.Option) []notify.Option {
	if c.plain {
		return append(opts, notify.WithColor(""))
	}
	return opts
}

func (c *cli) runRole(cmd *cobra.Command, role notify.Role, message string) error {
	line, err := notify.Message(role, message, c.roleOptions(cmd, role)...)
	if err != nil {
		c.logger.Error("render failed", err, logging.String("role", string(role)))
		return &exitError{ExitError, err}
	}

	if c.outputFormat == "json" {
		jsonStr, err := output.FormatLineJSON(stats.LineResult{Role: role, Message: message, Rendered: line})
		if err != nil {
			return &exitError{ExitError, err}
		}
		fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func (c *cli) runCodes(cmd *cobra.Command, args []string) error {
	spec := args[0]

	codes, err := notify.GetColorCodes(spec)
	if err != nil {
		return &exitError{ExitError, err}
	}

	out := cmd.OutOrStdout()
	if c.outputFormat == "json" {
		jsonStr, err := output.FormatCodesJSON(spec, codes)
		if err != nil {
			return &exitError{ExitError, err}
		}
		fmt.Fprintln(out, jsonStr)
		return nil
	}

	fmt.Fprintf(out, "color: %q\n", codes.Color)
	fmt.Fprintf(out, "reset: %q\n", codes.Reset)
	if codes.Color != "" {
		fmt.Fprintf(out, "sample: %ssample%s\n", codes.Color, codes.Reset)
	}
	return nil
}

func (c *cli) runBatch(cmd *cobra.Command, args []string) error {
	batchConfig, err := config.LoadBatchConfig(args[0])
	if err != nil {
		return &exitError{ExitError, fmt.Errorf("loading batch file: %w", err)}
	}

	c.logger.Debug("loaded batch file", logging.String("path", args[0]), logging.Int("lines", len(batchConfig.Lines)))

	startTime := time.Now()
	summary := c.renderBatch(batchConfig)
	summary.TotalTime = time.Since(startTime)

	if err := c.displayBatchResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), summary); err != nil {
		return &exitError{ExitError, err}
	}

	if summary.Failed > 0 {
		return &exitError{ExitFailure, fmt.Errorf("%d of %d lines failed", summary.Failed, summary.Total)}
	}
	return nil
}

func (c *cli) renderBatch(batchConfig *config.BatchConfig) *stats.BatchSummary {
	summary := stats.NewBatchSummary()

	for i, line := range batchConfig.Lines {
		result := stats.LineResult{Index: i, Message: line.Message}

		role, err := notify.ParseRole(line.Role)
		if err != nil {
			result.Err = err
		} else {
			result.Role = role
			opts := append(c.profile.Options(role), line.Options()...)
			result.Rendered, result.Err = notify.Message(role, line.Message, c.withPlain(opts)...)
		}

		if result.Err != nil {
			c.logger.Warn("line failed",
				logging.Int("line", i+1),
				logging.String("role", line.Role),
				logging.String("error", result.Err.Error()))
		}

		summary.AddResult(result)
	}

	return summary
}

func (c *cli) displayBatchResults(stdout, stderr io.Writer, summary *stats.BatchSummary) error {
	if c.outputFormat == "json" {
		jsonStr, err := output.FormatBatchResultJSON(summary)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, jsonStr)
		return nil
	}

	for _, result := range summary.Results {
		if result.Success() {
			if !c.quiet {
				fmt.Fprintln(stdout, result.Rendered)
			}
			continue
		}

		// Failures are reported with the library's own failure line
		line, err := notify.Failure(fmt.Sprintf("line %d: %v", result.Index+1, result.Err), c.withPlain(nil)...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stderr, line)
	}

	if c.quiet {
		return nil
	}

	fmt.Fprintln(stdout)
	rate := fmt.Sprintf("%d/%d lines rendered (%.1f%%)", summary.Rendered, summary.Total, summary.SuccessRate())
	if summary.Failed > 0 {
		fmt.Fprintln(stdout, output.Red(rate))
	} else {
		fmt.Fprintln(stdout, output.Green(rate))
	}

	var parts []string
	for _, role := range notify.Roles() {
		if n := summary.ByRole[role]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", role, n))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(stdout, "%s %s\n", output.Bold("by role:"), strings.Join(parts, " "))
	}

	return nil
}
