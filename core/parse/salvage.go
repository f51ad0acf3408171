package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNothingToSalvage is returned by Salvage for blank input.
var ErrNothingToSalvage = errors.New("parse: nothing to salvage")

// Salvage runs a general JSON repair over candidate and returns the repaired
// object. It accepts far more than strict extraction does (single quotes,
// unquoted keys, trailing commas, truncated output), so its result is only
// suitable as a diagnostic artifact next to the raw text.
func Salvage(candidate string) (map[string]any, error) {
	if strings.TrimSpace(candidate) == "" {
		return nil, ErrNothingToSalvage
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, fmt.Errorf("salvage: repair: %w", err)
	}

	var document map[string]any
	if err := json.Unmarshal([]byte(repaired), &document); err != nil {
		return nil, fmt.Errorf("salvage: decode repaired text: %w", err)
	}
	if document == nil {
		return nil, fmt.Errorf("salvage: repaired value is not an object")
	}

	return document, nil
}
