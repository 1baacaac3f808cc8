package generator

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Installer installs the dependencies of a generated project.
type Installer interface {
	// Install runs in dir. A non-empty warning means the install was skipped.
	Install(ctx context.Context, dir string) (warning string, err error)
}

// PackageManagerInstaller shells out to npm or yarn.
type PackageManagerInstaller struct {
	// Command is the package manager binary, "npm" when empty.
	Command string
	// Stdout and Stderr receive the package manager's output; discarded when nil.
	Stdout io.Writer
	Stderr io.Writer
}

func (i *PackageManagerInstaller) Install(ctx context.Context, dir string) (string, error) {
	name := i.Command
	if name == "" {
		name = "npm"
	}

	if _, err := exec.LookPath("node"); err != nil {
		return "Node.js not found, skipping dependency installation", nil
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Sprintf("%s not found, skipping dependency installation", name), nil
	}

	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Stdout = orDiscard(i.Stdout)
	cmd.Stderr = orDiscard(i.Stderr)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s install in %s: %w", name, dir, err)
	}
	return "", nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
