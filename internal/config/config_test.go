package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rollinbe/CodeScribe-CLI/internal/config"
	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

// TestBuildIncludedExtensionSet verifies normalization, additions, and removals.
func TestBuildIncludedExtensionSet(testingInstance *testing.T) {
	testCases := []struct {
		testName             string
		additionalExtensions []string
		removedExtensions    []string
		expectedPresent      []string
		expectedAbsent       []string
	}{
		{
			testName:        "defaults only",
			expectedPresent: []string{".py", ".cs", ".json", ".md"},
			expectedAbsent:  []string{".log", ".go"},
		},
		{
			testName:             "additions are normalized",
			additionalExtensions: []string{"go", ".YAML"},
			expectedPresent:      []string{".go", ".yaml", ".py"},
		},
		{
			testName:          "removals are normalized",
			removedExtensions: []string{"JSON", ".md"},
			expectedPresent:   []string{".py"},
			expectedAbsent:    []string{".json", ".md"},
		},
		{
			testName:             "blank additions are dropped",
			additionalExtensions: []string{"", "  "},
			expectedPresent:      []string{".py"},
			expectedAbsent:       []string{"."},
		},
	}
	for index, testCase := range testCases {
		extensionSet := config.BuildIncludedExtensionSet(testCase.additionalExtensions, testCase.removedExtensions)
		for _, expectedExtension := range testCase.expectedPresent {
			if _, present := extensionSet[expectedExtension]; !present {
				testingInstance.Errorf("case %d (%s): expected %q in the set", index, testCase.testName, expectedExtension)
			}
		}
		for _, unexpectedExtension := range testCase.expectedAbsent {
			if _, present := extensionSet[unexpectedExtension]; present {
				testingInstance.Errorf("case %d (%s): did not expect %q in the set", index, testCase.testName, unexpectedExtension)
			}
		}
	}
}

// TestSortedDefaultExtensions verifies the display ordering.
func TestSortedDefaultExtensions(testingInstance *testing.T) {
	sortedExtensions := config.SortedDefaultExtensions()
	if len(sortedExtensions) != len(config.DefaultIncludedExtensions) {
		testingInstance.Fatalf("expected %d extensions, got %d", len(config.DefaultIncludedExtensions), len(sortedExtensions))
	}
	for position := 1; position < len(sortedExtensions); position++ {
		if sortedExtensions[position-1] > sortedExtensions[position] {
			testingInstance.Errorf("extensions are not sorted at position %d: %v", position, sortedExtensions)
		}
	}
}

// TestScanConfigurationMerge verifies pointer-field override semantics.
func TestScanConfigurationMerge(testingInstance *testing.T) {
	enabledValue := true
	capValue := 50
	base := config.ApplicationConfiguration{
		Scan: config.ScanCommandConfiguration{
			Output: "base.md",
			Tokens: config.TokenConfiguration{Model: "gpt-4o"},
		},
	}
	override := config.ApplicationConfiguration{
		Scan: config.ScanCommandConfiguration{
			Minimal:       &enabledValue,
			MaxFileSizeKB: &capValue,
			Tokens:        config.TokenConfiguration{Enabled: &enabledValue},
		},
	}

	merged := base.Merge(override)
	if merged.Scan.Output != "base.md" {
		testingInstance.Errorf("expected the base output to survive, got %q", merged.Scan.Output)
	}
	if merged.Scan.Minimal == nil || !*merged.Scan.Minimal {
		testingInstance.Errorf("expected the minimal override to apply")
	}
	if merged.Scan.MaxFileSizeKB == nil || *merged.Scan.MaxFileSizeKB != capValue {
		testingInstance.Errorf("expected the max size override to apply")
	}
	if merged.Scan.Tokens.Model != "gpt-4o" {
		testingInstance.Errorf("expected the base token model to survive, got %q", merged.Scan.Tokens.Model)
	}
	if merged.Scan.Tokens.Enabled == nil || !*merged.Scan.Tokens.Enabled {
		testingInstance.Errorf("expected the token enablement override to apply")
	}
}

// TestLoadApplicationConfiguration verifies reading a local configuration file.
func TestLoadApplicationConfiguration(testingInstance *testing.T) {
	workingDirectory := testingInstance.TempDir()
	configurationContent := "scan:\n  output: custom.md\n  minimal: true\n  tokens:\n    model: gpt-4\n"
	configurationPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if writeError := os.WriteFile(configurationPath, []byte(configurationContent), 0o644); writeError != nil {
		testingInstance.Fatalf("writing configuration: %v", writeError)
	}

	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if loadError != nil {
		testingInstance.Fatalf("loading configuration: %v", loadError)
	}
	if loadedConfiguration.Scan.Output != "custom.md" {
		testingInstance.Errorf("expected output custom.md, got %q", loadedConfiguration.Scan.Output)
	}
	if loadedConfiguration.Scan.Minimal == nil || !*loadedConfiguration.Scan.Minimal {
		testingInstance.Errorf("expected minimal to be enabled")
	}
	if loadedConfiguration.Scan.Tokens.Model != "gpt-4" {
		testingInstance.Errorf("expected token model gpt-4, got %q", loadedConfiguration.Scan.Tokens.Model)
	}
}

// TestInitializeConfiguration verifies local initialization and overwrite protection.
func TestInitializeConfiguration(testingInstance *testing.T) {
	workingDirectory := testingInstance.TempDir()

	destinationPath, initializationError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializationError != nil {
		testingInstance.Fatalf("initializing configuration: %v", initializationError)
	}
	writtenContent, readError := os.ReadFile(destinationPath)
	if readError != nil {
		testingInstance.Fatalf("reading written configuration: %v", readError)
	}
	if !strings.Contains(string(writtenContent), "scan:") {
		testingInstance.Errorf("expected the template to contain the scan section")
	}

	if _, secondError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	}); secondError == nil {
		testingInstance.Errorf("expected an error without --force when the file exists")
	}

	if _, forcedError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
		Force:            true,
	}); forcedError != nil {
		testingInstance.Errorf("expected forced overwrite to succeed, got %v", forcedError)
	}
}
