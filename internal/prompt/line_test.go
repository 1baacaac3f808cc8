package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/impero-dev/impero/internal/generator"
)

func TestLineAskerDefaults(t *testing.T) {
	defaults := generator.DefaultAnswers("/work/demo")
	var out bytes.Buffer

	got, err := NewLineAsker(strings.NewReader("\n\n\n\n\n\n"), &out).Ask(defaults)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != defaults {
		t.Errorf("Ask() = %+v, want defaults %+v", got, defaults)
	}
}

func TestLineAskerEndOfInputUsesDefaults(t *testing.T) {
	defaults := generator.DefaultAnswers("/work/demo")
	got, err := NewLineAsker(strings.NewReader(""), &bytes.Buffer{}).Ask(defaults)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != defaults {
		t.Errorf("Ask() = %+v, want defaults %+v", got, defaults)
	}
}

func TestLineAskerAnswers(t *testing.T) {
	input := strings.Join([]string{
		"shop",
		"An online shop",
		"3",
		"1",
		"n",
		"no",
	}, "\n") + "\n"
	var out bytes.Buffer

	got, err := NewLineAsker(strings.NewReader(input), &out).Ask(generator.DefaultAnswers("/work/demo"))
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}

	want := generator.AnswerSet{
		Name:        "shop",
		Description: "An online shop",
		CSS:         generator.CSSStylus,
		JS:          generator.JSVanilla,
		CopyEnv:     false,
		InstallDeps: false,
	}
	if got != want {
		t.Errorf("Ask() = %+v, want %+v", got, want)
	}

	// Questions are asked in order.
	transcript := out.String()
	last := -1
	for _, msg := range []string{MsgName, MsgDescription, MsgCSS, MsgJS, MsgCopyEnv, MsgInstallDeps} {
		idx := strings.Index(transcript, msg)
		if idx < 0 {
			t.Fatalf("question %q not asked", msg)
		}
		if idx < last {
			t.Errorf("question %q asked out of order", msg)
		}
		last = idx
	}
	if !strings.Contains(transcript, "  2) Sass (SCSS)") {
		t.Errorf("CSS menu missing from transcript:\n%s", transcript)
	}
	if strings.Contains(transcript, "TypeScript") || strings.Contains(transcript, "Sourdough") {
		t.Errorf("disabled choices should not be offered:\n%s", transcript)
	}
}

func TestLineAskerInvalidSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"out of range", "a\nb\n9\n"},
		{"not a number", "a\nb\nstylus\n"},
		{"bad confirm", "a\nb\n1\n1\nmaybe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLineAsker(strings.NewReader(tt.input), &bytes.Buffer{}).Ask(generator.DefaultAnswers("/work/demo"))
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLineAskerKeepsPrefilledChoice(t *testing.T) {
	defaults := generator.DefaultAnswers("/work/demo")
	defaults.CSS = generator.CSSSCSS
	defaults.CopyEnv = false

	var out bytes.Buffer
	got, err := NewLineAsker(strings.NewReader("\n\n\n\n\n\n"), &out).Ask(defaults)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got.CSS != generator.CSSSCSS {
		t.Errorf("CSS = %v, want Sass (SCSS)", got.CSS)
	}
	if got.CopyEnv {
		t.Error("CopyEnv should keep its false default")
	}
	if !strings.Contains(out.String(), "Enter number [1-3] (2): ") {
		t.Errorf("default selection not shown:\n%s", out.String())
	}
	if !strings.Contains(out.String(), MsgCopyEnv+" (y/N)") {
		t.Errorf("confirm hint should reflect default:\n%s", out.String())
	}
}

func TestDefaultChoice(t *testing.T) {
	choices := []string{"Sass", "Stylus"}
	if got := defaultChoice(choices, "Stylus"); got != "Stylus" {
		t.Errorf("defaultChoice() = %q", got)
	}
	if got := defaultChoice(choices, "Sourdough / SSS"); got != "Sass" {
		t.Errorf("defaultChoice() = %q, want first choice", got)
	}
	if got := defaultChoice(nil, "x"); got != "" {
		t.Errorf("defaultChoice(nil) = %q", got)
	}
}
