package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/impero-dev/impero/internal/branding"
	"github.com/impero-dev/impero/internal/config"
	"github.com/impero-dev/impero/internal/generator"
)

var (
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	cyan   = color.New(color.FgCyan, color.Bold)
)

func printBanner(w io.Writer) {
	cyan.Fprintf(w, "\n  Welcome to the %s generator!\n\n", branding.DisplayName())
}

func step(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "==> "+format+"\n", a...)
}

func success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✔ "+format+"\n", a...)
}

func printFiles(w io.Writer, result *generator.Result) {
	for _, f := range result.Files {
		fmt.Fprintf(w, "  create %s\n", f)
	}
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w, "\nWarnings:")
	for _, msg := range warnings {
		yellow.Fprintf(w, "  - %s\n", msg)
	}
}

func printNextSteps(w io.Writer, outDir string, answers generator.AnswerSet) {
	fmt.Fprintln(w, "\nNext steps:")
	if cwd, err := filepath.Abs("."); err != nil || cwd != outDir {
		fmt.Fprintf(w, "  cd %s\n", outDir)
	}
	pm := config.PackageManager()
	if !answers.InstallDeps {
		fmt.Fprintf(w, "  %s install\n", pm)
	}
	if !answers.CopyEnv {
		fmt.Fprintln(w, "  cp .env.example .env")
	}
	fmt.Fprintf(w, "  %s run dev\n", pm)
}

func newSpinner(w io.Writer, suffix string) *spinner.Spinner {
	spin := spinner.New(spinner.CharSets[11], 120*time.Millisecond)
	spin.Writer = w
	spin.Suffix = suffix
	return spin
}
