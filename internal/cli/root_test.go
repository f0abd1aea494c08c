package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:    "auto",
			value:   "auto",
			wantErr: false,
			want:    colorAuto,
		},
		{
			name:    "always",
			value:   "always",
			wantErr: false,
			want:    colorAlways,
		},
		{
			name:    "never",
			value:   "never",
			wantErr: false,
			want:    colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}

			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}

			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}

// testOutput returns an output wired to in-memory buffers with color disabled.
func testOutput() (*output, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return newOutput(cmd, false), &stdout, &stderr
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		long     bool
		detailed bool
		want     string
		wantErr  bool
	}{
		{name: "parse short unit", arg: "2h", want: "7200000"},
		{name: "parse word form", arg: "1.5 hours", want: "5400000"},
		{name: "parse negative", arg: "-30m", want: "-1800000"},
		{name: "format number", arg: "7200000", want: "2h"},
		{name: "format negative number", arg: "-1000", want: "-1s"},
		{name: "format long", arg: "60000", long: true, want: "1 minute"},
		{name: "fractional number", arg: "1500.5", want: "2s"},
		{name: "detailed", arg: "1.5h", detailed: true, want: "1.5 h 5400000"},
		{name: "unknown unit", arg: "5 fortnights", wantErr: true},
		{name: "garbage", arg: "abc", wantErr: true},
		{name: "number with exponent formats", arg: "1e3", want: "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long = tt.long
			detailed = tt.detailed
			defer func() { long, detailed = false, false }()

			out, stdout, _ := testOutput()
			err := convert(out, tt.arg)

			if tt.wantErr {
				if err == nil {
					t.Errorf("convert(%q) expected error, got nil", tt.arg)
				}
				return
			}

			if err != nil {
				t.Errorf("convert(%q) unexpected error: %v", tt.arg, err)
				return
			}

			if got := strings.TrimRight(stdout.String(), "\n"); got != tt.want {
				t.Errorf("convert(%q) wrote %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRunReportsFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	color = colorNever
	defer func() { color = colorAuto }()

	err := run(cmd, []string{"2h", "bogus", "1s"})
	if err == nil {
		t.Fatal("run() expected error, got nil")
	}
	if want := "failed to convert 1 of 3 values"; err.Error() != want {
		t.Errorf("run() error = %q, want %q", err.Error(), want)
	}

	// Good values still convert.
	if got, want := stdout.String(), "7200000\n1000\n"; got != want {
		t.Errorf("run() stdout = %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "warning:") {
		t.Errorf("run() stderr = %q, want a warning", stderr.String())
	}
}
