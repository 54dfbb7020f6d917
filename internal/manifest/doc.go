// Package manifest reads the project version out of a build manifest
// (pyproject.toml, package.json, Chart.yaml or a plain VERSION file).
//
// Structured formats are addressed with a dot-notation field path such as
// "tool.poetry.version". Lookup is pure and works on bytes; Reader adds the
// file access through core.FileSystem.
package manifest
