// Package types defines shared data structures used across the codescribe tool.
package types

// CandidateFile identifies a file discovered by the selection walk.
type CandidateFile struct {
	// RelativePath is the slash-normalized path relative to the scanned root.
	RelativePath string
	// AbsolutePath is the fully resolved filesystem path.
	AbsolutePath string
}

// SelectedFile couples a candidate with its loaded content and language tag.
type SelectedFile struct {
	CandidateFile
	// Content holds the (possibly truncated) text of the file.
	Content string
	// Language is the fenced-block language tag, empty when unmapped.
	Language string
}

// ScanResult carries the composed report and the run statistics exposed to callers.
type ScanResult struct {
	// Report is the assembled Markdown document.
	Report string
	// FileCount is the number of files that survived all filtering stages.
	FileCount int
	// TotalContentLength is the total number of characters loaded across all files.
	TotalContentLength int
}
