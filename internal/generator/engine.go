package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Engine performs the file operations of a plan. Source paths are relative to
// the template root, destination paths to the project root.
type Engine interface {
	// Render executes the template at src with bindings and returns the output.
	Render(src string, bindings any) ([]byte, error)
	// Copy writes the template file at src to dst unchanged.
	Copy(src, dst string) error
	// Write stores data at dst, replacing any existing file.
	Write(dst string, data []byte) error
	// Read returns the content of the destination file dst.
	Read(dst string) ([]byte, error)
	// Files lists the regular files under the template directory src,
	// relative to src, in lexical order.
	Files(src string) ([]string, error)
}

// FSEngine reads templates from an fs.FS and writes into a billy.Filesystem.
type FSEngine struct {
	Templates fs.FS
	Dest      billy.Filesystem
}

// NewFSEngine returns an engine over the given template tree and destination.
func NewFSEngine(templates fs.FS, dest billy.Filesystem) *FSEngine {
	return &FSEngine{Templates: templates, Dest: dest}
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

func (e *FSEngine) Render(src string, bindings any) ([]byte, error) {
	raw, err := fs.ReadFile(e.Templates, src)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", src, err)
	}

	tmpl, err := template.New(path.Base(src)).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", src, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bindings); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", src, err)
	}
	return buf.Bytes(), nil
}

func (e *FSEngine) Copy(src, dst string) error {
	raw, err := fs.ReadFile(e.Templates, src)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", src, err)
	}
	return e.Write(dst, raw)
}

func (e *FSEngine) Write(dst string, data []byte) error {
	if dir := path.Dir(dst); dir != "." {
		if err := e.Dest.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", dst, err)
		}
	}
	if err := util.WriteFile(e.Dest, dst, data, fileMode(dst)); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func (e *FSEngine) Read(dst string) ([]byte, error) {
	data, err := util.ReadFile(e.Dest, dst)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dst, err)
	}
	return data, nil
}

func (e *FSEngine) Files(src string) ([]string, error) {
	var files []string
	err := fs.WalkDir(e.Templates, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, strings.TrimPrefix(p, src+"/"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template directory %s: %w", src, err)
	}
	return files, nil
}

// Shell scripts stay executable.
func fileMode(name string) fs.FileMode {
	if strings.HasSuffix(name, ".sh") {
		return 0755
	}
	return 0644
}
