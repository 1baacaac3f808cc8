// Package generator turns a set of prompt answers into a new project on disk.
//
// A run is one linear pipeline: the answers are resolved against static
// language tables, an ordered plan of render and copy steps is executed
// through an Engine, the generated package.json is augmented with
// variant-specific development dependencies, and the package manager is
// optionally invoked. Nothing is rolled back when a step fails.
package generator
