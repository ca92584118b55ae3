package content

import "strings"

// languageTags maps file extensions to fenced-block language tags.
// Extensions without an entry produce an untagged fence.
var languageTags = map[string]string{
	".py":     "python",
	".cs":     "csharp",
	".ts":     "typescript",
	".html":   "html",
	".scss":   "scss",
	".json":   "json",
	".csproj": "xml",
	".sln":    "",
}

// LanguageForExtension returns the fenced-block language tag for an extension,
// or an empty string when the extension has no mapping.
func LanguageForExtension(extensionValue string) string {
	return languageTags[strings.ToLower(extensionValue)]
}
