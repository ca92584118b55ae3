package output

import (
	"fmt"
	"strings"

	"github.com/rollinbe/CodeScribe-CLI/internal/types"
)

const (
	reportTitle            = "# CodeScribe Report\n"
	scannedPathFormat      = "Scanned path: `%s`\n"
	treeSectionHeading     = "## 1. Project tree\n"
	contentSectionHeading  = "## 2. File contents\n"
	tableOfContentsHeading = "### Table of contents\n"
	tableOfContentsFormat  = "- [%s](#%s)"
	fileHeadingFormat      = "### %s"
	fileAnchorFormat       = "<a id='%s'></a>\n"
	fenceDelimiter         = "```"
	anchorSeparator        = "-"

	asciiBanner = "```\n" +
		`       _____          _       _____           _ _
      / ____|        | |     / ____|         (_) |
     | |     ___   __| | ___| (___   ___ _ __ _| |__   ___
     | |    / _ \ / _` + "`" + ` |/ _ \\___ \ / __| '__| | '_ \ / _ \
     | |___| (_) | (_| |  __/____) | (__| |  | | |_) |  __/
      \_____\___/ \__,_|\___|_____/ \___|_|  |_|_.__/ \___|` + "\n```"
)

// AssembleReport composes the final Markdown document: an optional banner, the
// title and scanned-root label, the rendered directory tree, a clickable table
// of contents, and a language-tagged fenced content block per file. Files keep
// the sorted order of the selection stage.
func AssembleReport(rootLabel string, selectedFiles []types.SelectedFile, withBanner bool) string {
	var reportLines []string

	if withBanner {
		reportLines = append(reportLines, asciiBanner)
	}

	reportLines = append(reportLines,
		reportTitle,
		fmt.Sprintf(scannedPathFormat, rootLabel),
		treeSectionHeading,
	)

	relativePaths := make([]string, 0, len(selectedFiles))
	for _, selectedFile := range selectedFiles {
		relativePaths = append(relativePaths, selectedFile.RelativePath)
	}
	reportLines = append(reportLines, RenderTree(rootLabel, relativePaths), "")

	reportLines = append(reportLines, contentSectionHeading, tableOfContentsHeading)
	for _, selectedFile := range selectedFiles {
		anchorValue := AnchorForPath(selectedFile.RelativePath)
		reportLines = append(reportLines, fmt.Sprintf(tableOfContentsFormat, selectedFile.RelativePath, anchorValue))
	}
	reportLines = append(reportLines, "")

	for _, selectedFile := range selectedFiles {
		anchorValue := AnchorForPath(selectedFile.RelativePath)
		reportLines = append(reportLines,
			fmt.Sprintf(fileHeadingFormat, selectedFile.RelativePath),
			fmt.Sprintf(fileAnchorFormat, anchorValue),
			fenceDelimiter+selectedFile.Language,
			selectedFile.Content,
			fenceDelimiter+"\n",
		)
	}

	return strings.Join(reportLines, "\n")
}

// PlainTextReport derives the plain-text variant of a Markdown report by
// removing the fence delimiters only; all other text is preserved unchanged.
func PlainTextReport(markdownReport string) string {
	return strings.ReplaceAll(markdownReport, fenceDelimiter, "")
}

// AnchorForPath derives the table-of-contents anchor for a relative path by
// lower-casing it and replacing spaces and both path-separator styles with a
// single fixed delimiter.
func AnchorForPath(relativePath string) string {
	anchorValue := strings.ReplaceAll(relativePath, " ", anchorSeparator)
	anchorValue = strings.ReplaceAll(anchorValue, "\\", anchorSeparator)
	anchorValue = strings.ReplaceAll(anchorValue, "/", anchorSeparator)
	return strings.ToLower(anchorValue)
}
