package selector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rollinbe/CodeScribe-CLI/internal/ignore"
	"github.com/rollinbe/CodeScribe-CLI/internal/types"
)

const (
	errorRootNotDirectoryFormat  = "source path '%s' does not exist or is not a directory"
	errorIgnoreFileMissingFormat = "ignore mode requested but no %s file was found in %s"
	errorWalkFailureFormat       = "walking %s: %w"
)

// SelectionConfig is the immutable configuration for one selection run.
type SelectionConfig struct {
	// RootPath is the directory to scan.
	RootPath string
	// IncludedExtensions holds normalized (lower-case, dot-prefixed) extensions.
	IncludedExtensions map[string]struct{}
	// ExcludeSpecFiles removes files ending in the test specification suffix.
	ExcludeSpecFiles bool
	// MinimalMode removes files matching the fixed noise table.
	MinimalMode bool
	// UseIgnoreFile applies patterns loaded from the root ignore file.
	UseIgnoreFile bool
	// MaxFileBytes caps the bytes read per file; zero means unlimited.
	MaxFileBytes int64
	// ExcludedDirectoryNames overrides the structural exclusion set when non-empty.
	ExcludedDirectoryNames []string
	// IgnoreFileName overrides the ignore file name; defaults to .gitignore.
	IgnoreFileName string
}

// Select walks the configured root and returns the deterministically ordered
// list of files that survive every filtering stage. The walk prunes excluded
// directories before descending so that excluded subtrees are never read.
func Select(config SelectionConfig) ([]types.CandidateFile, error) {
	absoluteRoot, absoluteError := filepath.Abs(config.RootPath)
	if absoluteError != nil {
		return nil, fmt.Errorf("resolving %s: %w", config.RootPath, absoluteError)
	}
	cleanRoot := filepath.Clean(absoluteRoot)

	rootInformation, statError := os.Stat(cleanRoot)
	if statError != nil || !rootInformation.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, config.RootPath)
	}

	classifier := NewPathClassifier(config.ExcludedDirectoryNames)

	var acceptedFiles []types.CandidateFile
	walkError := filepath.WalkDir(cleanRoot, func(currentPath string, directoryEntry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return entryError
		}
		if currentPath == cleanRoot {
			return nil
		}

		if directoryEntry.IsDir() {
			if classifier.IsPruned(currentPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if classifier.IsPruned(currentPath, false) {
			return nil
		}
		if !hasIncludedExtension(directoryEntry.Name(), config.IncludedExtensions) {
			return nil
		}
		if config.ExcludeSpecFiles && hasSpecSuffix(directoryEntry.Name()) {
			return nil
		}

		relativePath, relativeError := filepath.Rel(cleanRoot, currentPath)
		if relativeError != nil {
			return relativeError
		}
		acceptedFiles = append(acceptedFiles, types.CandidateFile{
			RelativePath: filepath.ToSlash(relativePath),
			AbsolutePath: currentPath,
		})
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(errorWalkFailureFormat, cleanRoot, walkError)
	}

	sort.Slice(acceptedFiles, func(firstIndex, secondIndex int) bool {
		return acceptedFiles[firstIndex].RelativePath < acceptedFiles[secondIndex].RelativePath
	})

	if config.UseIgnoreFile {
		filteredFiles, ignoreError := applyIgnoreFile(cleanRoot, config, acceptedFiles)
		if ignoreError != nil {
			return nil, ignoreError
		}
		acceptedFiles = filteredFiles
	}

	if config.MinimalMode {
		acceptedFiles = applyMinimalRules(acceptedFiles)
	}

	return acceptedFiles, nil
}

// applyIgnoreFile requires the ignore file to exist at the root and drops every
// candidate matching its patterns. A missing ignore file is a configuration
// error; a file that exists but cannot be parsed degrades to no patterns.
func applyIgnoreFile(cleanRoot string, config SelectionConfig, candidates []types.CandidateFile) ([]types.CandidateFile, error) {
	ignoreFileName := config.IgnoreFileName
	if ignoreFileName == "" {
		ignoreFileName = types.GitIgnoreFileName
	}
	ignoreFilePath := filepath.Join(cleanRoot, ignoreFileName)
	ignoreInformation, statError := os.Stat(ignoreFilePath)
	if statError != nil || ignoreInformation.IsDir() {
		return nil, fmt.Errorf(errorIgnoreFileMissingFormat, ignoreFileName, cleanRoot)
	}

	patterns := ignore.LoadPatterns(ignoreFilePath)
	filtered := make([]types.CandidateFile, 0, len(candidates))
	for _, candidate := range candidates {
		if ignore.Matches(candidate.RelativePath, patterns) {
			continue
		}
		filtered = append(filtered, candidate)
	}
	return filtered, nil
}

// applyMinimalRules drops candidates matching the fixed noise table.
func applyMinimalRules(candidates []types.CandidateFile) []types.CandidateFile {
	filtered := make([]types.CandidateFile, 0, len(candidates))
	for _, candidate := range candidates {
		if IsNoise(candidate.RelativePath) {
			continue
		}
		filtered = append(filtered, candidate)
	}
	return filtered
}

func hasIncludedExtension(fileName string, includedExtensions map[string]struct{}) bool {
	extensionValue := strings.ToLower(filepath.Ext(fileName))
	if extensionValue == "" {
		return false
	}
	_, isIncluded := includedExtensions[extensionValue]
	return isIncluded
}

func hasSpecSuffix(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), types.SpecFileSuffix)
}
