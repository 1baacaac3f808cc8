// Package manifest validates generated package.json files against an
// embedded JSON Schema. Schema violations are reported as issues rather than
// errors so callers can surface them as warnings.
package manifest
