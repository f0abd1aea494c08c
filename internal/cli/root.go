// Package cli implements the msx command line front end.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/msx-go/msx"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color    = colorAuto
	long     bool
	detailed bool
)

var rootCmd = &cobra.Command{
	Use:   "msx <value>...",
	Short: "Convert between duration strings and milliseconds",
	Long: `msx converts human-readable duration strings to milliseconds and back.

A value that looks like a bare number is taken as a millisecond count and
formatted as a duration string. Anything else is parsed as a duration string
and printed as milliseconds.

Durations are a single number followed by a single unit:
  ms, s, m, h, d, w, y    and their word forms (seconds, hours, days, ...)

Examples:
  msx 2h          -> 7200000
  msx "1.5 hours" -> 5400000
  msx -- -30m     -> -1800000
  msx 7200000     -> 2h
  msx --long 7200000 -> 2 hours
  msx -d 1.5h     -> 1.5 h 5400000`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.Flags().BoolVarP(&long, "long", "l", false,
		"format numbers in word form (\"2 hours\" instead of \"2h\")")
	rootCmd.Flags().BoolVarP(&detailed, "detailed", "d", false,
		"print value, unit, and milliseconds for parsed strings")
}

func Execute() error {
	return rootCmd.Execute()
}

// output writes results and warnings with optional color, following the
// result-stdout / diagnostics-stderr split.
type output struct {
	cmd *cobra.Command

	cyan   func(string) string
	green  func(string) string
	yellow func(string) string
}

func newOutput(cmd *cobra.Command, colorize bool) *output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &output{
		cmd:    cmd,
		cyan:   color("cyan"),
		green:  color("green+b"),
		yellow: color("yellow"),
	}
}

func (o *output) result(s string, color func(string) string) {
	fmt.Fprintln(o.cmd.OutOrStdout(), color(s))
}

func (o *output) warningf(format string, args ...any) {
	fmt.Fprintf(o.cmd.ErrOrStderr(), o.yellow("warning: ")+format+"\n", args...)
}

func run(cmd *cobra.Command, args []string) error {
	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	out := newOutput(cmd, colorize)

	failed := 0
	for _, arg := range args {
		if err := convert(out, arg); err != nil {
			out.warningf("%v", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to convert %d of %d values", failed, len(args))
	}
	return nil
}

// convert handles one argument: bare numbers are formatted, everything else
// is parsed.
func convert(out *output, arg string) error {
	if ms, err := strconv.ParseFloat(arg, 64); err == nil {
		var s string
		var ferr error
		if long {
			s, ferr = msx.FormatLong(ms)
		} else {
			s, ferr = msx.FormatShort(ms)
		}
		if ferr != nil {
			return ferr
		}
		out.result(s, out.green)
		return nil
	}

	if detailed {
		r, ok := msx.ParseDetailed(arg)
		if !ok {
			return &msx.InvalidFormatError{Input: arg}
		}
		line := fmt.Sprintf("%s %s %s",
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			out.green(r.Unit.String()),
			out.cyan(strconv.FormatFloat(r.Milliseconds, 'f', -1, 64)))
		fmt.Fprintln(out.cmd.OutOrStdout(), line)
		return nil
	}

	ms, err := msx.Convert(arg)
	if err != nil {
		return err
	}
	out.result(strconv.FormatFloat(ms.(float64), 'f', -1, 64), out.cyan)
	return nil
}
