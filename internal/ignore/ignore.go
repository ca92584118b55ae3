// Package ignore loads glob-style ignore patterns and matches relative paths against them.
package ignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	commentLinePrefix      = "#"
	directoryPatternSuffix = "/"
)

// LoadPatterns reads an ignore file line by line and returns its patterns in order.
// Blank lines and comment lines are skipped; all other lines are preserved verbatim.
// Any read failure yields an empty pattern list so that ignore rules degrade to
// "nothing ignored" rather than aborting the run.
//
// #nosec G304
func LoadPatterns(ignoreFilePath string) []string {
	fileHandle, openError := os.Open(ignoreFilePath)
	if openError != nil {
		return nil
	}
	defer fileHandle.Close()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		lineValue := strings.TrimSpace(scanner.Text())
		if lineValue == "" || strings.HasPrefix(lineValue, commentLinePrefix) {
			continue
		}
		patterns = append(patterns, lineValue)
	}
	if scanner.Err() != nil {
		return nil
	}
	return patterns
}

// Matches reports whether the relative path matches any of the ignore patterns.
// Each pattern is evaluated three ways: as a directory prefix when it ends with
// a path separator, as a glob against the full slash-normalized relative path,
// and as a glob against the final path segment. The first satisfied check wins.
// The triple check is required because ignore-file conventions mix
// directory-prefix rules with filename globs.
func Matches(relativePath string, patterns []string) bool {
	normalizedPath := filepath.ToSlash(relativePath)
	baseName := path.Base(normalizedPath)

	for _, patternValue := range patterns {
		if strings.HasSuffix(patternValue, directoryPatternSuffix) {
			patternDirectory := strings.TrimSuffix(patternValue, directoryPatternSuffix)
			if strings.HasPrefix(normalizedPath, patternDirectory) {
				return true
			}
		}
		if isMatched, matchError := path.Match(patternValue, normalizedPath); matchError == nil && isMatched {
			return true
		}
		if isMatched, matchError := path.Match(patternValue, baseName); matchError == nil && isMatched {
			return true
		}
	}
	return false
}
