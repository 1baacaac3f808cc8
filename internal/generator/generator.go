package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/impero-dev/impero/internal/manifest"
)

const packageFile = "package.json"

// Result holds the outcome of a run.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generator materializes projects. Installer may be nil when dependencies are
// never installed.
type Generator struct {
	Engine    Engine
	Installer Installer
	Logger    *slog.Logger
	// OutputDir is the destination root handed to the installer.
	OutputDir string
}

// New returns a Generator writing through engine into outputDir.
func New(engine Engine, installer Installer, outputDir string) *Generator {
	return &Generator{
		Engine:    engine,
		Installer: installer,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OutputDir: outputDir,
	}
}

// Run resolves answers, writes the project and installs its dependencies if
// asked to. The first failing file operation aborts the run; files written
// before it are left in place.
func (g *Generator) Run(ctx context.Context, answers AnswerSet) (*Result, error) {
	cfg, err := Resolve(answers)
	if err != nil {
		return nil, err
	}
	g.logger().Debug("resolved configuration", "css", cfg.CSS.Name, "js", cfg.JS.Name)

	result := &Result{OutputDir: g.OutputDir}

	for _, action := range Plan(cfg) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		files, err := g.apply(action)
		result.Files = append(result.Files, files...)
		if err != nil {
			return result, fmt.Errorf("%s %s: %w", action.Kind, action.Src, err)
		}
	}

	warnings, err := g.augmentManifest(cfg)
	if err != nil {
		return result, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	if answers.InstallDeps && g.Installer != nil {
		g.logger().Debug("installing dependencies", "dir", g.OutputDir)
		warning, err := g.Installer.Install(ctx, g.OutputDir)
		if err != nil {
			warning = fmt.Sprintf("dependency installation failed: %v", err)
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	return result, nil
}

// apply executes one action and returns the destination files it wrote.
func (g *Generator) apply(a Action) ([]string, error) {
	switch a.Kind {
	case Render:
		return g.renderFile(a.Src, a.Dst, a.Bindings)
	case Copy:
		return g.copyFile(a.Src, a.Dst)
	case RenderDir, CopyDir:
		files, err := g.Engine.Files(a.Src)
		if err != nil {
			return nil, err
		}
		var written []string
		for _, rel := range files {
			var out []string
			if a.Kind == RenderDir {
				out, err = g.renderFile(path.Join(a.Src, rel), path.Join(a.Dst, rel), a.Bindings)
			} else {
				out, err = g.copyFile(path.Join(a.Src, rel), path.Join(a.Dst, rel))
			}
			written = append(written, out...)
			if err != nil {
				return written, err
			}
		}
		return written, nil
	default:
		return nil, fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

func (g *Generator) renderFile(src, dst string, bindings any) ([]string, error) {
	data, err := g.Engine.Render(src, bindings)
	if err != nil {
		return nil, err
	}
	if err := g.Engine.Write(dst, data); err != nil {
		return nil, err
	}
	g.logger().Debug("rendered", "src", src, "dst", dst)
	return []string{dst}, nil
}

func (g *Generator) copyFile(src, dst string) ([]string, error) {
	if err := g.Engine.Copy(src, dst); err != nil {
		return nil, err
	}
	g.logger().Debug("copied", "src", src, "dst", dst)
	return []string{dst}, nil
}

// augmentManifest reads back the written package.json, merges the variant
// dependencies into it and rewrites it. Schema issues come back as warnings.
func (g *Generator) augmentManifest(cfg Config) ([]string, error) {
	raw, err := g.Engine.Read(packageFile)
	if err != nil {
		return nil, err
	}
	pkg, err := ParsePackageJSON(raw)
	if err != nil {
		return nil, err
	}

	cssDeps, err := cfg.Answers.CSS.DevDependencies()
	if err != nil {
		return nil, err
	}
	jsDeps, err := cfg.Answers.JS.DevDependencies()
	if err != nil {
		return nil, err
	}
	if err := MergeDevDependencies(pkg, cssDeps, jsDeps); err != nil {
		return nil, fmt.Errorf("augmenting %s: %w", packageFile, err)
	}

	data, err := pkg.Marshal()
	if err != nil {
		return nil, err
	}
	if err := g.Engine.Write(packageFile, data); err != nil {
		return nil, err
	}
	g.logger().Debug("augmented manifest", "css", cssDeps.Names(), "js", jsDeps.Names())

	validation, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", packageFile, err)}, nil
	}
	var warnings []string
	for _, issue := range validation.Issues {
		warnings = append(warnings, packageFile+": "+issue.String())
	}
	return warnings, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}
