package config

import (
	"sort"

	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

// DefaultIncludedExtensions is the base table of file extensions included in a scan.
var DefaultIncludedExtensions = []string{
	".cs", ".csproj", ".sln",
	".ts", ".html", ".scss", ".json",
	".py", ".txt", ".md",
}

// BuildIncludedExtensionSet combines the default extension table with
// caller-supplied additions and removals. Every extension is normalized to its
// lower-case dot-prefixed form before set membership is decided.
func BuildIncludedExtensionSet(additionalExtensions []string, removedExtensions []string) map[string]struct{} {
	extensionSet := make(map[string]struct{}, len(DefaultIncludedExtensions)+len(additionalExtensions))
	for _, extensionValue := range DefaultIncludedExtensions {
		extensionSet[utils.NormalizeExtension(extensionValue)] = struct{}{}
	}
	for _, extensionValue := range additionalExtensions {
		normalizedExtension := utils.NormalizeExtension(extensionValue)
		if normalizedExtension != "" {
			extensionSet[normalizedExtension] = struct{}{}
		}
	}
	for _, extensionValue := range removedExtensions {
		delete(extensionSet, utils.NormalizeExtension(extensionValue))
	}
	return extensionSet
}

// SortedDefaultExtensions returns the default extension table in sorted order
// for display purposes.
func SortedDefaultExtensions() []string {
	sortedExtensions := append([]string{}, DefaultIncludedExtensions...)
	sort.Strings(sortedExtensions)
	return sortedExtensions
}
