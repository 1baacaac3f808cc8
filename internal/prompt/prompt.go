package prompt

import (
	"os"

	"github.com/impero-dev/impero/internal/generator"
)

// Question messages, in the order they are asked.
const (
	MsgName        = "Your project name (must be unique)?"
	MsgDescription = "Your project description?"
	MsgCSS         = "Which CSS preprocessor?"
	MsgJS          = "Which JS language/compiler? (all include ES2015 / Babel)"
	MsgCopyEnv     = "Copy .env.example to .env?"
	MsgInstallDeps = "Install dependencies?"
)

// Asker collects an AnswerSet, offering defaults for every question.
type Asker interface {
	Ask(defaults generator.AnswerSet) (generator.AnswerSet, error)
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// defaultChoice returns current if it is one of choices, else the first choice.
func defaultChoice(choices []string, current string) string {
	for _, c := range choices {
		if c == current {
			return c
		}
	}
	if len(choices) == 0 {
		return ""
	}
	return choices[0]
}

// toAnswerSet converts raw responses into an AnswerSet.
func toAnswerSet(name, description, css, js string, copyEnv, installDeps bool) (generator.AnswerSet, error) {
	cssLang, err := generator.ParseCSS(css)
	if err != nil {
		return generator.AnswerSet{}, err
	}
	jsLang, err := generator.ParseJS(js)
	if err != nil {
		return generator.AnswerSet{}, err
	}
	return generator.AnswerSet{
		Name:        name,
		Description: description,
		CSS:         cssLang,
		JS:          jsLang,
		CopyEnv:     copyEnv,
		InstallDeps: installDeps,
	}, nil
}
