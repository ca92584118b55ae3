// Package types defines cross-package constants for file and path handling.
package types

const (
	// GitIgnoreFileName is the name of the Git ignore file containing ignore patterns.
	GitIgnoreFileName = ".gitignore"

	// HiddenEntryPrefix marks hidden files and directories.
	HiddenEntryPrefix = "."

	// SpecFileSuffix identifies test specification files removed by the spec-file filter.
	SpecFileSuffix = ".spec.ts"

	// DefaultMarkdownOutputName is the default name of the Markdown artifact.
	DefaultMarkdownOutputName = "structure_complete.md"

	// DefaultTextOutputName is the default name of the plain-text artifact.
	DefaultTextOutputName = "structure_complete.txt"
)
