package generator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownChoice is returned when a CSS or JS choice has no table row.
	ErrUnknownChoice = errors.New("unknown choice")
	// ErrDisabledChoice is returned when a choice exists but cannot be selected.
	ErrDisabledChoice = errors.New("choice is disabled")
)

// LanguageOption describes how a CSS or JS variant is laid out and built.
type LanguageOption struct {
	Name        string // display name shown in the prompt
	Key         string // lowercase flag/config key
	TemplateDir string // subdirectory under app/src/_styles or app/src/_scripts
	Loader      string // webpack loader identifier
	Ext         string // source file extension
	Linter      string // JS only
	LintConfig  string // JS only; linter config file at the project root
	Enabled     bool
}

// CSSLang identifies a CSS preprocessor.
type CSSLang int

// CSS preprocessors. Sourdough stays disabled until a webpack loader exists.
const (
	CSSSourdough CSSLang = iota
	CSSSass
	CSSSCSS
	CSSStylus
	numCSSLangs
)

// JSLang identifies a JS variant.
type JSLang int

// JS variants. TypeScript stays disabled until its loader runs on current Node.
const (
	JSVanilla JSLang = iota
	JSTypeScript
	numJSLangs
)

var cssTable = [numCSSLangs]LanguageOption{
	CSSSourdough: {Name: "Sourdough / SSS", Key: "sourdough", TemplateDir: "sourdough", Loader: "TODO", Ext: "sss"},
	CSSSass:      {Name: "Sass", Key: "sass", TemplateDir: "sass", Loader: "sass", Ext: "sass", Enabled: true},
	CSSSCSS:      {Name: "Sass (SCSS)", Key: "scss", TemplateDir: "scss", Loader: "sass", Ext: "scss", Enabled: true},
	CSSStylus:    {Name: "Stylus", Key: "stylus", TemplateDir: "stylus", Loader: "stylus", Ext: "styl", Enabled: true},
}

var jsTable = [numJSLangs]LanguageOption{
	JSVanilla:    {Name: "Vanilla", Key: "vanilla", TemplateDir: "vanilla", Loader: "babel", Ext: "js", Linter: "eslint", LintConfig: ".eslintrc", Enabled: true},
	JSTypeScript: {Name: "TypeScript", Key: "typescript", TemplateDir: "typescript", Loader: "babel!ts?sourceMap", Ext: "ts", Linter: "tslint", LintConfig: "tslint.json"},
}

// Option returns the table row for c.
func (c CSSLang) Option() (LanguageOption, error) {
	if c < 0 || c >= numCSSLangs {
		return LanguageOption{}, fmt.Errorf("css %d: %w", int(c), ErrUnknownChoice)
	}
	return cssTable[c], nil
}

func (c CSSLang) String() string {
	opt, err := c.Option()
	if err != nil {
		return fmt.Sprintf("CSSLang(%d)", int(c))
	}
	return opt.Name
}

// Option returns the table row for j.
func (j JSLang) Option() (LanguageOption, error) {
	if j < 0 || j >= numJSLangs {
		return LanguageOption{}, fmt.Errorf("js %d: %w", int(j), ErrUnknownChoice)
	}
	return jsTable[j], nil
}

func (j JSLang) String() string {
	opt, err := j.Option()
	if err != nil {
		return fmt.Sprintf("JSLang(%d)", int(j))
	}
	return opt.Name
}

// CSSChoices returns the display names of the selectable CSS preprocessors.
func CSSChoices() []string {
	return enabledNames(cssTable[:])
}

// JSChoices returns the display names of the selectable JS variants.
func JSChoices() []string {
	return enabledNames(jsTable[:])
}

// ParseCSS maps a display name or key (case-insensitive) to a CSSLang.
func ParseCSS(name string) (CSSLang, error) {
	i, err := lookup(cssTable[:], "css", name)
	return CSSLang(i), err
}

// ParseJS maps a display name or key (case-insensitive) to a JSLang.
func ParseJS(name string) (JSLang, error) {
	i, err := lookup(jsTable[:], "js", name)
	return JSLang(i), err
}

func enabledNames(table []LanguageOption) []string {
	var names []string
	for _, opt := range table {
		if opt.Enabled {
			names = append(names, opt.Name)
		}
	}
	return names
}

func lookup(table []LanguageOption, axis, name string) (int, error) {
	want := strings.TrimSpace(name)
	for i, opt := range table {
		if !strings.EqualFold(want, opt.Name) && !strings.EqualFold(want, opt.Key) {
			continue
		}
		if !opt.Enabled {
			return i, fmt.Errorf("%s %q: %w", axis, opt.Name, ErrDisabledChoice)
		}
		return i, nil
	}
	return -1, fmt.Errorf("%s %q: %w (choose one of: %s)", axis, name, ErrUnknownChoice, strings.Join(enabledNames(table), ", "))
}
