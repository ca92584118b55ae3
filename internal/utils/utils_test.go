package utils_test

import (
	"testing"

	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

// TestNormalizeExtension verifies lower-casing and dot prefixing.
func TestNormalizeExtension(testingInstance *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "py", expected: ".py"},
		{input: ".PY", expected: ".py"},
		{input: " Ts ", expected: ".ts"},
		{input: "", expected: ""},
		{input: "   ", expected: ""},
	}
	for index, testCase := range testCases {
		actual := utils.NormalizeExtension(testCase.input)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d: expected %q for %q, got %q", index, testCase.expected, testCase.input, actual)
		}
	}
}

// TestDeduplicatePatterns verifies that duplicates are removed preserving order.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b"},
			expected: []string{"a", "b"},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestFormatFileSize verifies human-readable size formatting.
func TestFormatFileSize(testingInstance *testing.T) {
	testCases := []struct {
		byteCount int64
		expected  string
	}{
		{byteCount: 0, expected: "0b"},
		{byteCount: 512, expected: "512b"},
		{byteCount: 1024, expected: "1kb"},
		{byteCount: 1536, expected: "1.5kb"},
		{byteCount: 10240, expected: "10kb"},
		{byteCount: 1048576, expected: "1mb"},
		{byteCount: -5, expected: "0b"},
	}
	for index, testCase := range testCases {
		actual := utils.FormatFileSize(testCase.byteCount)
		if actual != testCase.expected {
			testingInstance.Errorf("case %d: expected %q for %d bytes, got %q", index, testCase.expected, testCase.byteCount, actual)
		}
	}
}
