package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/impero-dev/impero/internal/config"
	"github.com/impero-dev/impero/internal/generator"
	"github.com/impero-dev/impero/internal/prompt"
	"github.com/impero-dev/impero/internal/templates"
	"github.com/spf13/cobra"
)

var (
	genYes         bool
	genVerbose     bool
	genName        string
	genDescription string
	genCSS         string
	genJS          string
	genCopyEnv     bool
	genInstallDeps bool
)

// newAsker picks the prompt implementation; tests replace it.
var newAsker = func(cmd *cobra.Command) prompt.Asker {
	if f, ok := cmd.InOrStdin().(*os.File); ok && prompt.IsTerminal(f) {
		return &prompt.SurveyAsker{}
	}
	return prompt.NewLineAsker(cmd.InOrStdin(), cmd.OutOrStdout())
}

// newInstaller builds the dependency installer; tests replace it.
var newInstaller = func(cmd *cobra.Command) generator.Installer {
	return &spinnerInstaller{
		next: &generator.PackageManagerInstaller{Command: config.PackageManager()},
		out:  cmd.OutOrStdout(),
	}
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&genYes, "yes", "y", false, "Skip prompts and use defaults and flags")
	f.BoolVarP(&genVerbose, "verbose", "v", false, "Log every file operation to stderr")
	f.StringVar(&genName, "name", "", "Project name (default: directory name)")
	f.StringVar(&genDescription, "description", "", "Project description")
	f.StringVar(&genCSS, "css", "", "CSS preprocessor: sass, scss or stylus")
	f.StringVar(&genJS, "js", "", "JS variant: vanilla")
	f.BoolVar(&genCopyEnv, "copy-env", true, "Copy .env.example to .env")
	f.BoolVar(&genInstallDeps, "install-deps", true, "Install dependencies after generating")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config.Load()

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	outDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	defaults, err := resolveDefaults(cmd, outDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out)

	answers := defaults
	if !genYes {
		answers, err = newAsker(cmd).Ask(defaults)
		if err != nil {
			return fmt.Errorf("prompting: %w", err)
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	g := generator.New(
		generator.NewFSEngine(templates.FS, osfs.New(outDir)),
		newInstaller(cmd),
		outDir,
	)
	g.Logger = newLogger(cmd.ErrOrStderr(), genVerbose)

	step(out, "Writing %s project to %s", answers.CSS, outDir)
	result, err := g.Run(cmd.Context(), answers)
	if result != nil {
		printFiles(out, result)
	}
	if err != nil {
		return err
	}

	printWarnings(out, result.Warnings)
	success(out, "Project %q created.", answers.Name)
	printNextSteps(out, outDir, answers)
	return nil
}

// resolveDefaults layers config values and explicit flags over the built-in
// prompt defaults.
func resolveDefaults(cmd *cobra.Command, outDir string) (generator.AnswerSet, error) {
	d := generator.DefaultAnswers(outDir)

	if v := config.Get(config.KeyDescription); v != "" {
		d.Description = v
	}
	if v := config.Get(config.KeyCSS); v != "" {
		css, err := generator.ParseCSS(v)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", config.KeyCSS, err)
		}
		d.CSS = css
	}
	if v := config.Get(config.KeyJS); v != "" {
		js, err := generator.ParseJS(v)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", config.KeyJS, err)
		}
		d.JS = js
	}
	d.CopyEnv = config.GetBool(config.KeyCopyEnv)
	d.InstallDeps = config.GetBool(config.KeyInstallDeps)

	flags := cmd.Flags()
	if flags.Changed("name") {
		d.Name = genName
	}
	if flags.Changed("description") {
		d.Description = genDescription
	}
	if flags.Changed("css") {
		css, err := generator.ParseCSS(genCSS)
		if err != nil {
			return d, err
		}
		d.CSS = css
	}
	if flags.Changed("js") {
		js, err := generator.ParseJS(genJS)
		if err != nil {
			return d, err
		}
		d.JS = js
	}
	if flags.Changed("copy-env") {
		d.CopyEnv = genCopyEnv
	}
	if flags.Changed("install-deps") {
		d.InstallDeps = genInstallDeps
	}
	return d, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// spinnerInstaller shows a spinner while the package manager runs.
type spinnerInstaller struct {
	next generator.Installer
	out  io.Writer
}

func (s *spinnerInstaller) Install(ctx context.Context, dir string) (string, error) {
	spin := newSpinner(s.out, " Installing dependencies...")
	spin.Start()
	defer spin.Stop()
	return s.next.Install(ctx, dir)
}
