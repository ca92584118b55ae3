// Package output renders the directory tree and assembles the final report document.
package output

import (
	"fmt"
	"sort"
	"strings"
)

const (
	treeHeaderFormat    = "**Project tree** (root: `%s`)"
	treeIndentUnit      = "  "
	treeDirectoryFormat = "%s- **%s/**"
	treeFileFormat      = "%s- %s"
)

// treeNode is a key-ordered mapping from a path segment to either a nested
// node (directory) or nil (file leaf). Built transiently for rendering only.
type treeNode map[string]treeNode

// RenderTree builds a nested, alphabetically ordered directory tree view from
// the selected relative paths. The result is deterministic and independent of
// filesystem iteration order.
func RenderTree(rootLabel string, relativePaths []string) string {
	rootTreeNode := treeNode{}
	for _, relativePath := range relativePaths {
		pathSegments := strings.Split(strings.ReplaceAll(relativePath, "\\", "/"), "/")
		currentLevel := rootTreeNode
		for _, directorySegment := range pathSegments[:len(pathSegments)-1] {
			childLevel, exists := currentLevel[directorySegment]
			if !exists || childLevel == nil {
				childLevel = treeNode{}
				currentLevel[directorySegment] = childLevel
			}
			currentLevel = childLevel
		}
		leafSegment := pathSegments[len(pathSegments)-1]
		if _, exists := currentLevel[leafSegment]; !exists {
			currentLevel[leafSegment] = nil
		}
	}

	treeLines := []string{fmt.Sprintf(treeHeaderFormat, rootLabel), ""}
	treeLines = append(treeLines, formatTreeLevel(rootTreeNode, 0)...)
	return strings.Join(treeLines, "\n")
}

// formatTreeLevel renders one nesting level depth-first with entries sorted
// lexicographically by segment name.
func formatTreeLevel(currentLevel treeNode, indentDepth int) []string {
	segmentNames := make([]string, 0, len(currentLevel))
	for segmentName := range currentLevel {
		segmentNames = append(segmentNames, segmentName)
	}
	sort.Strings(segmentNames)

	indentPrefix := strings.Repeat(treeIndentUnit, indentDepth)
	var renderedLines []string
	for _, segmentName := range segmentNames {
		childLevel := currentLevel[segmentName]
		if childLevel == nil {
			renderedLines = append(renderedLines, fmt.Sprintf(treeFileFormat, indentPrefix, segmentName))
			continue
		}
		renderedLines = append(renderedLines, fmt.Sprintf(treeDirectoryFormat, indentPrefix, segmentName))
		renderedLines = append(renderedLines, formatTreeLevel(childLevel, indentDepth+1)...)
	}
	return renderedLines
}
