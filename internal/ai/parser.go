package ai

import (
	"encoding/json"
	"errors"
)

// ParseRecipeSuggestion decodes the model's JSON answer. Anything that does
// not match the schema is an error; callers fall back to no suggestion.
func ParseRecipeSuggestion(raw string) (*RecipeSuggestion, error) {
	var suggestion RecipeSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		return nil, errors.New("invalid recipe suggestion JSON")
	}

	if suggestion.Description == "" && len(suggestion.Ingredients) == 0 {
		return nil, errors.New("empty recipe suggestion")
	}

	return &suggestion, nil
}
