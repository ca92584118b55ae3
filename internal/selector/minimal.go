package selector

import (
	"strings"
)

// minimalRule pairs a reviewable rule name with its exclusion predicate.
// The predicate receives the lower-cased slash-normalized relative path.
type minimalRule struct {
	ruleName  string
	predicate func(lowerCasedPath string) bool
}

// minimalRules is the fixed noise-exclusion table applied under minimal mode.
// It is a deliberately curated blacklist trading recall for simplicity, not a
// general heuristic, and is not user-extensible.
var minimalRules = []minimalRule{
	{
		ruleName: "npm lockfile",
		predicate: func(lowerCasedPath string) bool {
			return strings.Contains(lowerCasedPath, "package-lock.json")
		},
	},
	{
		ruleName: "typescript compiler configuration",
		predicate: func(lowerCasedPath string) bool {
			return strings.Contains(lowerCasedPath, "tsconfig") && strings.HasSuffix(lowerCasedPath, ".json")
		},
	},
	{
		ruleName: "angular workspace configuration",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, "angular.json")
		},
	},
	{
		ruleName: "build output directory",
		predicate: func(lowerCasedPath string) bool {
			return containsPathSegment(lowerCasedPath, "dist")
		},
	},
	{
		ruleName: "entry page under dist or src",
		predicate: func(lowerCasedPath string) bool {
			if !strings.HasSuffix(lowerCasedPath, "index.html") {
				return false
			}
			return containsPathSegment(lowerCasedPath, "dist") || containsPathSegment(lowerCasedPath, "src")
		},
	},
	{
		ruleName: "environment-specific configuration",
		predicate: func(lowerCasedPath string) bool {
			return strings.Contains(lowerCasedPath, "environment") && strings.HasSuffix(lowerCasedPath, ".ts")
		},
	},
	{
		ruleName: "global stylesheet",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, "styles.css")
		},
	},
	{
		ruleName: "dotnet project descriptor",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, ".csproj")
		},
	},
	{
		ruleName: "dotnet solution descriptor",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, ".sln")
		},
	},
	{
		ruleName: "application settings",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, "appsettings.json")
		},
	},
	{
		ruleName: "python dependency lockfile",
		predicate: func(lowerCasedPath string) bool {
			return strings.HasSuffix(lowerCasedPath, "pipfile.lock") || strings.HasSuffix(lowerCasedPath, "poetry.lock")
		},
	},
}

// IsNoise reports whether a relative path matches any minimal-mode exclusion rule.
// Evaluation is case-insensitive over the slash-normalized path.
func IsNoise(relativePath string) bool {
	lowerCasedPath := strings.ToLower(normalizePathSeparators(relativePath))
	for _, currentRule := range minimalRules {
		if currentRule.predicate(lowerCasedPath) {
			return true
		}
	}
	return false
}

// containsPathSegment reports whether the path contains the segment as a full
// path component. Segment matching avoids false positives on names such as
// "distribution".
func containsPathSegment(slashedPath string, segmentValue string) bool {
	for _, pathSegment := range strings.Split(slashedPath, "/") {
		if pathSegment == segmentValue {
			return true
		}
	}
	return false
}

func normalizePathSeparators(pathValue string) string {
	return strings.ReplaceAll(pathValue, "\\", "/")
}
