package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rollinbe/CodeScribe-CLI/internal/config"
	"github.com/rollinbe/CodeScribe-CLI/internal/content"
	"github.com/rollinbe/CodeScribe-CLI/internal/output"
	"github.com/rollinbe/CodeScribe-CLI/internal/selector"
	"github.com/rollinbe/CodeScribe-CLI/internal/services/clipboard"
	"github.com/rollinbe/CodeScribe-CLI/internal/tokenizer"
	"github.com/rollinbe/CodeScribe-CLI/internal/types"
	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

const (
	bytesPerKilobyte           = 1024
	textExtension              = ".txt"
	artifactWrittenFormat      = "Report written to %s\n"
	artifactWriteErrorFormat   = "writing %s: %w"
	clipboardCopyErrorFormat   = "copying report to clipboard: %w"
	warningTokenCountFormat    = "Warning: failed to count tokens: %v\n"
	summaryCompleteMessage     = "Scan complete."
	summaryFileCountFormat     = "Files selected: %d"
	summaryTotalContentFormat  = "Total content: %s"
	summaryTokenEstimateFormat = "Estimated tokens: ~%d (%s)"
)

// scanSettings is the fully resolved configuration of one scan run.
type scanSettings struct {
	sourcePath        string
	outputPath        string
	maxFileSizeKB     int
	includeExtensions []string
	excludeExtensions []string
	excludeSpecFiles  bool
	minimalMode       bool
	useGitignore      bool
	textOnly          bool
	exportText        bool
	withBanner        bool
	tokensEnabled     bool
	tokenizerModel    string
	copyToClipboard   bool
}

// executeScan runs the selection pipeline, assembles the report, writes the
// requested artifacts, and prints the run summary. Configuration errors abort
// before any artifact is written; per-file read failures are embedded inline
// by the content loader and do not fail the run.
func executeScan(settings scanSettings) error {
	selectionConfig := selector.SelectionConfig{
		RootPath:           settings.sourcePath,
		IncludedExtensions: config.BuildIncludedExtensionSet(settings.includeExtensions, settings.excludeExtensions),
		ExcludeSpecFiles:   settings.excludeSpecFiles,
		MinimalMode:        settings.minimalMode,
		UseIgnoreFile:      settings.useGitignore,
		MaxFileBytes:       int64(settings.maxFileSizeKB) * bytesPerKilobyte,
	}

	candidateFiles, selectionError := selector.Select(selectionConfig)
	if selectionError != nil {
		return selectionError
	}

	rootLabel, absoluteError := filepath.Abs(settings.sourcePath)
	if absoluteError != nil {
		rootLabel = settings.sourcePath
	}

	selectedFiles := make([]types.SelectedFile, 0, len(candidateFiles))
	totalContentLength := 0
	for _, candidate := range candidateFiles {
		loadedContent := content.Load(candidate.AbsolutePath, selectionConfig.MaxFileBytes)
		selectedFiles = append(selectedFiles, types.SelectedFile{
			CandidateFile: candidate,
			Content:       loadedContent,
			Language:      content.LanguageForExtension(filepath.Ext(candidate.RelativePath)),
		})
		totalContentLength += len(loadedContent)
	}

	scanResult := types.ScanResult{
		Report:             output.AssembleReport(rootLabel, selectedFiles, settings.withBanner),
		FileCount:          len(selectedFiles),
		TotalContentLength: totalContentLength,
	}

	if writeError := writeArtifacts(settings, scanResult.Report); writeError != nil {
		return writeError
	}

	if settings.copyToClipboard {
		if copyError := clipboard.NewService().Copy(scanResult.Report); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}

	printScanSummary(settings, scanResult, selectedFiles)
	return nil
}

// writeArtifacts writes the Markdown and/or plain-text artifacts according to
// the output mode. When both artifacts are requested they are written
// concurrently; the report itself is already fully assembled at this point.
func writeArtifacts(settings scanSettings, markdownReport string) error {
	if settings.textOnly {
		textOutputPath := settings.outputPath
		if textOutputPath == "" {
			textOutputPath = types.DefaultTextOutputName
		}
		return writeArtifact(textOutputPath, output.PlainTextReport(markdownReport))
	}

	markdownOutputPath := settings.outputPath
	if markdownOutputPath == "" {
		markdownOutputPath = types.DefaultMarkdownOutputName
	}

	if !settings.exportText {
		return writeArtifact(markdownOutputPath, markdownReport)
	}

	textOutputPath := strings.TrimSuffix(markdownOutputPath, filepath.Ext(markdownOutputPath)) + textExtension
	var writerGroup errgroup.Group
	writerGroup.Go(func() error {
		return writeArtifact(markdownOutputPath, markdownReport)
	})
	writerGroup.Go(func() error {
		return writeArtifact(textOutputPath, output.PlainTextReport(markdownReport))
	})
	return writerGroup.Wait()
}

func writeArtifact(artifactPath string, artifactContent string) error {
	if writeError := os.WriteFile(artifactPath, []byte(artifactContent), 0o644); writeError != nil {
		return fmt.Errorf(artifactWriteErrorFormat, artifactPath, writeError)
	}
	fmt.Printf(artifactWrittenFormat, artifactPath)
	return nil
}

// printScanSummary reports the selected file count, the loaded volume, and the
// token estimate to stdout. Token counting is best effort; a counting failure
// degrades to a warning.
func printScanSummary(settings scanSettings, scanResult types.ScanResult, selectedFiles []types.SelectedFile) {
	fmt.Println()
	fmt.Println(summaryCompleteMessage)
	fmt.Printf(summaryFileCountFormat+"\n", scanResult.FileCount)
	fmt.Printf(summaryTotalContentFormat+"\n", utils.FormatFileSize(int64(scanResult.TotalContentLength)))

	counterModel := ""
	if settings.tokensEnabled {
		counterModel = settings.tokenizerModel
	}
	tokenCounter, counterError := tokenizer.NewCounter(counterModel)
	if counterError != nil {
		fmt.Fprintf(os.Stderr, warningTokenCountFormat, counterError)
		return
	}

	totalTokens := 0
	for _, selectedFile := range selectedFiles {
		fileTokens, countError := tokenCounter.CountString(selectedFile.Content)
		if countError != nil {
			fmt.Fprintf(os.Stderr, warningTokenCountFormat, countError)
			return
		}
		totalTokens += fileTokens
	}
	fmt.Printf(summaryTokenEstimateFormat+"\n", totalTokens, tokenCounter.Name())
}
