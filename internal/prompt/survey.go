package prompt

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/impero-dev/impero/internal/generator"
)

// SurveyAsker prompts on a terminal.
type SurveyAsker struct {
	// Stdio overrides the terminal streams; the process's own when zero.
	Stdio terminal.Stdio
}

func (s *SurveyAsker) Ask(defaults generator.AnswerSet) (generator.AnswerSet, error) {
	cssChoices := generator.CSSChoices()
	jsChoices := generator.JSChoices()

	qs := []*survey.Question{
		{
			Name:   "name",
			Prompt: &survey.Input{Message: MsgName, Default: defaults.Name},
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: MsgDescription, Default: defaults.Description},
		},
		{
			Name: "css",
			Prompt: &survey.Select{
				Message: MsgCSS,
				Options: cssChoices,
				Default: defaultChoice(cssChoices, defaults.CSS.String()),
			},
		},
		{
			Name: "js",
			Prompt: &survey.Select{
				Message: MsgJS,
				Options: jsChoices,
				Default: defaultChoice(jsChoices, defaults.JS.String()),
			},
		},
		{
			Name:   "copyEnv",
			Prompt: &survey.Confirm{Message: MsgCopyEnv, Default: defaults.CopyEnv},
		},
		{
			Name:   "installDeps",
			Prompt: &survey.Confirm{Message: MsgInstallDeps, Default: defaults.InstallDeps},
		},
	}

	answers := struct {
		Name        string `survey:"name"`
		Description string `survey:"description"`
		CSS         string `survey:"css"`
		JS          string `survey:"js"`
		CopyEnv     bool   `survey:"copyEnv"`
		InstallDeps bool   `survey:"installDeps"`
	}{}

	var opts []survey.AskOpt
	if s.Stdio.In != nil {
		opts = append(opts, survey.WithStdio(s.Stdio.In, s.Stdio.Out, s.Stdio.Err))
	}
	if err := survey.Ask(qs, &answers, opts...); err != nil {
		return generator.AnswerSet{}, err
	}

	return toAnswerSet(answers.Name, answers.Description, answers.CSS, answers.JS, answers.CopyEnv, answers.InstallDeps)
}
