package generator

import (
	"fmt"
	"path/filepath"
)

// DefaultDescription is the description offered when the user has none.
const DefaultDescription = "A new project generated by the Impero generator"

// AnswerSet holds every prompt response for one run.
type AnswerSet struct {
	Name        string
	Description string
	CSS         CSSLang
	JS          JSLang
	CopyEnv     bool
	InstallDeps bool
}

// DefaultAnswers returns the prompt defaults for a project written to dir.
// The name defaults to the directory's base name.
func DefaultAnswers(dir string) AnswerSet {
	name := ""
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}
	return AnswerSet{
		Name:        name,
		Description: DefaultDescription,
		CSS:         CSSSass,
		JS:          JSVanilla,
		CopyEnv:     true,
		InstallDeps: true,
	}
}

// Config is an AnswerSet with its language options resolved.
type Config struct {
	Answers AnswerSet
	CSS     LanguageOption
	JS      LanguageOption
}

// Resolve looks up the CSS and JS options chosen in a. Disabled rows are
// rejected with ErrDisabledChoice before anything is written.
func Resolve(a AnswerSet) (Config, error) {
	css, err := a.CSS.Option()
	if err != nil {
		return Config{}, err
	}
	if !css.Enabled {
		return Config{}, fmt.Errorf("css %q: %w", css.Name, ErrDisabledChoice)
	}
	js, err := a.JS.Option()
	if err != nil {
		return Config{}, err
	}
	if !js.Enabled {
		return Config{}, fmt.Errorf("js %q: %w", js.Name, ErrDisabledChoice)
	}
	return Config{Answers: a, CSS: css, JS: js}, nil
}
