package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/impero-dev/impero/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds an Express application with a Webpack asset pipeline.

It asks for a project name, a description, a CSS preprocessor and a JS variant,
writes the project into the target directory (the current directory by default)
and optionally installs its dependencies.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
