package ui

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/dragcal/internal/config"
)

func newTestApp(t *testing.T, args ...string) (*App, *bytes.Buffer) {
	t.Helper()
	DisableColor()
	t.Cleanup(EnableColor)

	cfg := config.Default()
	cfg.View.Timezone = "UTC"
	a := NewApp(cfg)
	a.now = func() time.Time { return time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC) }

	var out bytes.Buffer
	a.SetOutput(&out)
	a.SetArgs(args)
	return a, &out
}

func TestVersionCmd(t *testing.T) {
	a, out := newTestApp(t, "version")
	if err := a.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "dragcal dev (commit: none)\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestResolveCmd(t *testing.T) {
	a, out := newTestApp(t, "resolve", "--y", "185", "--date", "2025-01-06")
	if err := a.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Sample at y=185",
		"top=0 height=480 hours=0-24",
		"9.250000",
		"Mon 2025-01-06 09:15",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Creation span") {
		t.Error("span should only be printed with --to")
	}
}

func TestResolveCmd_Span(t *testing.T) {
	a, out := newTestApp(t, "resolve", "--y", "180", "--to", "205", "--date", "2025-01-06")
	if err := a.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Creation span y=180..205", "Mon 2025-01-06 09:00", "Mon 2025-01-06 10:45"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestResolveCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing y", []string{"resolve"}},
		{"height", []string{"resolve", "--y", "1", "--height", "0"}},
		{"hours", []string{"resolve", "--y", "1", "--hour-start", "9", "--hour-end", "9"}},
		{"date", []string{"resolve", "--y", "1", "--date", "someday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t, tt.args...)
			if err := a.Execute(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSimulateCmd(t *testing.T) {
	script := `
[grid]
height = 480
date = "2025-01-06"
timezone = "UTC"

[[step]]
controller = "time"
type = "down"
x = 250
y = 180

[[step]]
controller = "time"
type = "move"
x = 250
y = 205

[[step]]
controller = "time"
type = "up"
x = 250
y = 205
`
	path := filepath.Join(t.TempDir(), "drag.toml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	a, out := newTestApp(t, "simulate", path)
	if err := a.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"#2   time dragstart",
		"#3   time dragend Wed Jan 8 09:00-10:45",
		"#2   time top=180 height=35",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSimulateCmd_MissingFile(t *testing.T) {
	a, _ := newTestApp(t, "simulate", filepath.Join(t.TempDir(), "missing.toml"))
	if err := a.Execute(); err == nil {
		t.Error("expected an error")
	}
}

func TestRunConfigInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// Creates the file and declines editing.
	var out bytes.Buffer
	if err := runConfigInteractive(strings.NewReader("n\n"), &out, path); err != nil {
		t.Fatalf("runConfigInteractive: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "hour_start         = 0") {
		t.Errorf("config not printed:\n%s", out.String())
	}

	// Edits a few values, keeping the rest.
	input := strings.Join([]string{"y", "7", "19", "sunday", "", "3", "", "x", "1.5", "45", "neon", "latte"}, "\n") + "\n"
	out.Reset()
	if err := runConfigInteractive(strings.NewReader(input), &out, path); err != nil {
		t.Fatalf("runConfigInteractive: %v", err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.View.HourStart != 7 || cfg.View.HourEnd != 19 || cfg.View.WeekStart != "sunday" {
		t.Errorf("view = %+v", cfg.View)
	}
	if cfg.View.Days != 7 || cfg.View.EventBlockHeight != 3 {
		t.Errorf("days = %d, block height = %d, want 7 and 3", cfg.View.Days, cfg.View.EventBlockHeight)
	}
	if cfg.Drag.ClickThreshold != 1.5 || cfg.Drag.DefaultDuration != 45 {
		t.Errorf("drag = %+v", cfg.Drag)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
	if !strings.Contains(out.String(), `Invalid number "x"`) || !strings.Contains(out.String(), `Invalid theme "neon"`) {
		t.Errorf("expected validation messages:\n%s", out.String())
	}
}

func TestPromptValue(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n  new value \n"))

	if got := promptValue(r, &out, "Label", "old"); got != "old" {
		t.Errorf("empty input = %q, want old", got)
	}
	if got := promptValue(r, &out, "Label", "old"); got != "new value" {
		t.Errorf("input = %q, want new value", got)
	}
	if !strings.Contains(out.String(), "Label [old]: ") {
		t.Errorf("prompt = %q", out.String())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, []string{""}},
		{"one two three", 20, []string{"one two three"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"overlong word", 4, []string{"overlong", "word"}},
	}
	for _, tt := range tests {
		got := wrap(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
