// Package tokenizer estimates token counts for report content.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

const (
	defaultEncodingName = "cl100k_base"
	// heuristicCharsPerToken is the rough character budget of one token used
	// when no model encoding is requested.
	heuristicCharsPerToken = 4
	heuristicCounterName   = "heuristic"
)

// NewCounter returns a Counter for the requested model. An empty model selects
// the heuristic counter; a model with a known tiktoken encoding selects that
// encoding; anything else falls back to the default encoding.
func NewCounter(modelName string) (Counter, error) {
	trimmedModel := strings.TrimSpace(modelName)
	if trimmedModel == "" {
		return heuristicCounter{}, nil
	}
	lowerModel := strings.ToLower(trimmedModel)

	encoding, encodingError := tiktoken.EncodingForModel(lowerModel)
	if encodingError == nil && encoding != nil {
		return encodingCounter{encoding: encoding, name: lowerModel}, nil
	}

	fallbackEncoding, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return encodingCounter{encoding: fallbackEncoding, name: defaultEncodingName}, nil
}

// heuristicCounter approximates one token per four characters.
type heuristicCounter struct{}

// Name identifies the heuristic counter.
func (counter heuristicCounter) Name() string {
	return heuristicCounterName
}

// CountString estimates the token count of the input.
func (counter heuristicCounter) CountString(input string) (int, error) {
	return len(input) / heuristicCharsPerToken, nil
}
