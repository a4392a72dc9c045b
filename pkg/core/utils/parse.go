// Package utils carries small parsing helpers shared by the import
// surfaces: plan documents arrive from files, editors and clipboards, and
// are rarely pristine JSON.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the usual hand-edited JSON damage: single quotes,
// unquoted keys, trailing commas, unclosed brackets, stray markdown
// fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON normalizes an Hjson document (comments, optional commas,
// unquoted strings) to standard JSON.
func ParseHJSON(data string) (string, error) {
	var doc interface{}
	if err := hjson.Unmarshal([]byte(data), &doc); err != nil {
		return "", fmt.Errorf("hjson parse failed: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("hjson normalize failed: %w", err)
	}
	return string(out), nil
}

// SmartParse tries strict JSON first, then repair, then Hjson, decoding
// into schema on the first strategy that yields a valid document. It
// returns the normalized JSON it decoded.
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	if normalized, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(normalized), schema); err == nil {
			return normalized, nil
		}
	}

	return "", fmt.Errorf("document is not parseable as JSON, repaired JSON or Hjson")
}
