package generator

import "path"

// ActionKind says how a step moves content into the destination.
type ActionKind int

const (
	// Render executes a single file as a template.
	Render ActionKind = iota
	// RenderDir executes every file under a directory as a template.
	RenderDir
	// Copy writes a single file verbatim.
	Copy
	// CopyDir writes every file under a directory verbatim.
	CopyDir
)

func (k ActionKind) String() string {
	switch k {
	case Render:
		return "render"
	case RenderDir:
		return "render-dir"
	case Copy:
		return "copy"
	case CopyDir:
		return "copy-dir"
	default:
		return "unknown"
	}
}

// Action is one file operation. Src is relative to the template root and Dst
// to the destination root, both slash-separated.
type Action struct {
	Kind     ActionKind
	Src      string
	Dst      string
	Bindings any
}

// Step pairs an Action with the guard deciding whether it runs.
type Step struct {
	When   func(Config) bool
	Action func(Config) Action
}

// ManifestBindings are available to package.json.
type ManifestBindings struct {
	Name        string
	Description string
	CSSName     string
	CSSLoader   string
}

// BuildBindings are available to the webpack configurations.
type BuildBindings struct {
	CSSName      string
	CSSLoader    string
	CSSExt       string
	JSName       string
	JSLoader     string
	JSExt        string
	JSLinter     string
	JSLintConfig string
}

// EditorBindings are available to .editorconfig.
type EditorBindings struct {
	CSSExt string
}

// ReadmeBindings are available to README.md.
type ReadmeBindings struct {
	Name    string
	CSSName string
}

// DeployBindings are available to every file under deploy/.
type DeployBindings struct {
	Name string
}

const (
	stylesRoot  = "app/src/_styles"
	scriptsRoot = "app/src/_scripts"
)

func always(Config) bool { return true }

func render(src string, bind func(Config) any) func(Config) Action {
	return func(c Config) Action {
		return Action{Kind: Render, Src: src, Dst: src, Bindings: bind(c)}
	}
}

func copyTo(kind ActionKind, src, dst string) func(Config) Action {
	return func(Config) Action {
		return Action{Kind: kind, Src: src, Dst: dst}
	}
}

func buildBindings(c Config) any {
	return BuildBindings{
		CSSName:      c.CSS.Name,
		CSSLoader:    c.CSS.Loader,
		CSSExt:       c.CSS.Ext,
		JSName:       c.JS.Name,
		JSLoader:     c.JS.Loader,
		JSExt:        c.JS.Ext,
		JSLinter:     c.JS.Linter,
		JSLintConfig: c.JS.LintConfig,
	}
}

// steps is evaluated top to bottom; the order is the write order.
var steps = []Step{
	{always, render(".editorconfig", func(c Config) any {
		return EditorBindings{CSSExt: c.CSS.Ext}
	})},
	{always, render("package.json", func(c Config) any {
		return ManifestBindings{
			Name:        c.Answers.Name,
			Description: c.Answers.Description,
			CSSName:     c.CSS.Name,
			CSSLoader:   c.CSS.Loader,
		}
	})},
	{always, render("README.md", func(c Config) any {
		return ReadmeBindings{Name: c.Answers.Name, CSSName: c.CSS.Name}
	})},
	{always, render("webpack.config.js", buildBindings)},
	{always, render("webpack.production.config.js", buildBindings)},
	{always, func(c Config) Action {
		return Action{Kind: RenderDir, Src: "deploy", Dst: "deploy", Bindings: DeployBindings{Name: c.Answers.Name}}
	}},

	{always, copyTo(Copy, ".env.example", ".env.example")},
	{func(c Config) bool { return c.Answers.CopyEnv }, copyTo(Copy, ".env.example", ".env")},
	{func(c Config) bool { return c.JS.Name == "Vanilla" }, copyTo(Copy, ".eslintrc", ".eslintrc")},
	// Stored with an underscore so package managers don't turn it into .npmignore.
	{always, copyTo(Copy, "_.gitignore", ".gitignore")},
	{always, copyTo(Copy, "Dockerfile", "Dockerfile")},
	{func(c Config) bool { return c.JS.Name == "TypeScript" }, copyTo(Copy, "tslint.json", "tslint.json")},
	{always, copyTo(Copy, "app/assets/humans.txt", "app/assets/humans.txt")},
	{always, copyTo(Copy, "app/assets/img/.gitkeep", "app/assets/img/.gitkeep")},
	{always, copyTo(CopyDir, "app/views", "app/views")},
	{always, copyTo(Copy, "app/index.js", "app/index.js")},
	{always, copyTo(Copy, "app/routes.js", "app/routes.js")},

	{always, func(c Config) Action {
		return Action{Kind: CopyDir, Src: path.Join(stylesRoot, c.CSS.TemplateDir), Dst: "app/src/styles"}
	}},
	{always, func(c Config) Action {
		return Action{Kind: CopyDir, Src: path.Join(scriptsRoot, c.JS.TemplateDir), Dst: "app/src/scripts"}
	}},
}

// Plan returns the actions to run for c, in order, with guards applied.
func Plan(c Config) []Action {
	actions := make([]Action, 0, len(steps))
	for _, s := range steps {
		if s.When(c) {
			actions = append(actions, s.Action(c))
		}
	}
	return actions
}
