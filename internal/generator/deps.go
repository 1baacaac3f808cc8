package generator

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Dependencies maps a package name to a semver range.
type Dependencies map[string]string

var cssDeps = [numCSSLangs]Dependencies{
	CSSSourdough: {},
	CSSSass: {
		"node-sass":   "^3.9.3",
		"sass-loader": "^4.0.2",
	},
	CSSSCSS: {
		"node-sass":   "^3.9.3",
		"sass-loader": "^4.0.2",
	},
	CSSStylus: {
		"rupture":       "^0.6.1",
		"stylus":        "^0.54.5",
		"stylus-loader": "^2.3.1",
	},
}

var jsDeps = [numJSLangs]Dependencies{
	JSVanilla: {
		"babel-eslint":  "^6.1.2",
		"eslint":        "^3.4.0",
		"eslint-loader": "^1.5.0",
	},
	JSTypeScript: {
		"ts-loader":     "^0.8.2",
		"tslint":        "^3.15.1",
		"tslint-loader": "^2.1.5",
		"typescript":    "^1.8.10",
	},
}

// DevDependencies returns the extra development dependencies for c.
func (c CSSLang) DevDependencies() (Dependencies, error) {
	if c < 0 || c >= numCSSLangs {
		return nil, fmt.Errorf("css %d: %w", int(c), ErrUnknownChoice)
	}
	return cssDeps[c], nil
}

// DevDependencies returns the extra development dependencies for j.
func (j JSLang) DevDependencies() (Dependencies, error) {
	if j < 0 || j >= numJSLangs {
		return nil, fmt.Errorf("js %d: %w", int(j), ErrUnknownChoice)
	}
	return jsDeps[j], nil
}

// Names returns the package names in ascending order.
func (d Dependencies) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every range parses as a semver constraint.
func (d Dependencies) Validate() error {
	for _, name := range d.Names() {
		if _, err := semver.NewConstraint(d[name]); err != nil {
			return fmt.Errorf("dependency %s: invalid version range %q: %w", name, d[name], err)
		}
	}
	return nil
}
