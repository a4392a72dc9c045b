package assumption

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// LoadFile reads an assumption document from disk, merges it over the
// code defaults and validates the result. Files ending in .hjson are
// parsed as Hjson so hand-maintained plans can carry comments and
// trailing commas; everything else is strict JSON.
func LoadFile(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assumptions: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hjson") {
		var doc map[string]interface{}
		if err := hjson.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse hjson assumptions: %w", err)
		}
		raw, err = json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("normalize hjson assumptions: %w", err)
		}
	}

	set, err := Merge(raw)
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assumptions in %s: %w", path, err)
	}
	return set, nil
}
