// Package selector implements the file-selection and filtering pipeline.
package selector

import (
	"path/filepath"
	"strings"

	"github.com/rollinbe/CodeScribe-CLI/internal/types"
)

// DefaultExcludedDirectoryNames lists well-known build, dependency, cache and
// editor directories that are always pruned from the walk.
var DefaultExcludedDirectoryNames = []string{
	".git",
	"node_modules",
	"__pycache__",
	".venv",
	"bin",
	"obj",
	"dist",
	"build",
	"out",
	".vscode",
	".idea",
	"target",
	".pytest_cache",
	"venv",
}

// PathClassifier decides whether a path is structurally excluded independent
// of any user configuration.
type PathClassifier struct {
	excludedDirectoryNames map[string]struct{}
}

// NewPathClassifier builds a classifier over the provided excluded directory names.
// An empty list falls back to DefaultExcludedDirectoryNames.
func NewPathClassifier(excludedDirectoryNames []string) *PathClassifier {
	if len(excludedDirectoryNames) == 0 {
		excludedDirectoryNames = DefaultExcludedDirectoryNames
	}
	nameSet := make(map[string]struct{}, len(excludedDirectoryNames))
	for _, directoryName := range excludedDirectoryNames {
		nameSet[directoryName] = struct{}{}
	}
	return &PathClassifier{excludedDirectoryNames: nameSet}
}

// IsPruned reports whether the entry at the given path must be skipped:
// hidden directories, well-known noise directories, and hidden files.
func (classifier *PathClassifier) IsPruned(entryPath string, isDirectory bool) bool {
	baseName := filepath.Base(entryPath)
	if isDirectory {
		if strings.HasPrefix(baseName, types.HiddenEntryPrefix) {
			return true
		}
		if _, isExcluded := classifier.excludedDirectoryNames[baseName]; isExcluded {
			return true
		}
		return false
	}
	return strings.HasPrefix(baseName, types.HiddenEntryPrefix)
}
