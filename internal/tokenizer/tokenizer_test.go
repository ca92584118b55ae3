package tokenizer_test

import (
	"testing"

	"github.com/rollinbe/CodeScribe-CLI/internal/tokenizer"
)

// TestHeuristicCounter verifies the default four-characters-per-token estimate.
func TestHeuristicCounter(testingInstance *testing.T) {
	counter, counterError := tokenizer.NewCounter("")
	if counterError != nil {
		testingInstance.Fatalf("creating heuristic counter: %v", counterError)
	}
	if counter.Name() != "heuristic" {
		testingInstance.Errorf("expected the heuristic counter, got %q", counter.Name())
	}

	testCases := []struct {
		input    string
		expected int
	}{
		{input: "", expected: 0},
		{input: "abc", expected: 0},
		{input: "abcd", expected: 1},
		{input: "twelve chars", expected: 3},
	}
	for index, testCase := range testCases {
		actual, countError := counter.CountString(testCase.input)
		if countError != nil {
			testingInstance.Fatalf("case %d: counting failed: %v", index, countError)
		}
		if actual != testCase.expected {
			testingInstance.Errorf("case %d: expected %d tokens for %q, got %d", index, testCase.expected, testCase.input, actual)
		}
	}
}
