// Package templates holds the project template tree written by the generator.
//
// Layout under files/ mirrors the generated project. A few names are special:
// _.gitignore is renamed on copy, and app/src/_styles/<dir> and
// app/src/_scripts/<dir> hold one subtree per CSS and JS variant.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var embedded embed.FS

// FS is the template tree rooted at files/.
var FS fs.FS = mustSub(embedded, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
