// Package utils contains general helper functions used across the codescribe tool.
package utils

import (
	"os"
	"strings"
)

const (
	// ConfigFileName is the name of the application configuration file.
	ConfigFileName = "codescribe.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".codescribe"
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal application errors.
	ApplicationExecutionFailedMessage = "codescribe failed"
)

const extensionDotPrefix = "."

// IsDirectory returns true if the given path exists and is a directory.
func IsDirectory(path string) bool {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return fileInformation.IsDir()
}

// NormalizeExtension lower-cases an extension and guarantees a leading dot.
func NormalizeExtension(extensionValue string) string {
	trimmedExtension := strings.TrimSpace(extensionValue)
	if trimmedExtension == "" {
		return ""
	}
	if !strings.HasPrefix(trimmedExtension, extensionDotPrefix) {
		trimmedExtension = extensionDotPrefix + trimmedExtension
	}
	return strings.ToLower(trimmedExtension)
}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, patternValue := range patterns {
		if _, exists := encounteredPatterns[patternValue]; !exists {
			encounteredPatterns[patternValue] = struct{}{}
			result = append(result, patternValue)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}
