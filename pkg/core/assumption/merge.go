package assumption

import (
	"encoding/json"
	"fmt"
)

// Reconciliation of stored documents against the code-defined defaults.
//
// The structural shape always comes from the current code schema; stored
// scalar values win where present; keyed collections (divisions, products,
// departments) are merged key by key, keeping stored entries and
// backfilling missing keys and fields from the defaults; arrays are taken
// from storage wholesale. The merge is order-independent: merging the same
// stored document twice, or over an already-merged tree, yields the same
// result.

// collectionKeys are the object fields treated as keyed collections
// rather than fixed structures.
var collectionKeys = map[string]bool{
	"divisions":   true,
	"products":    true,
	"departments": true,
}

// Merge reconciles a stored raw document with the code defaults and
// decodes the result into a typed Set. A nil or empty document yields the
// defaults unchanged.
func Merge(stored []byte) (*Set, error) {
	base, err := toDocument(Defaults())
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	if len(stored) > 0 {
		var doc map[string]interface{}
		if err := json.Unmarshal(stored, &doc); err != nil {
			return nil, fmt.Errorf("stored document is not an object: %w", err)
		}
		mergeInto(base, doc)
	}

	merged := &Set{}
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("encode merged document: %w", err)
	}
	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, fmt.Errorf("merged document does not match schema: %w", err)
	}
	// Version always follows the code, never storage.
	merged.Version = CurrentVersion
	return merged, nil
}

// MergeSet is Merge for callers that already hold a typed document.
func MergeSet(stored *Set) (*Set, error) {
	if stored == nil {
		return Merge(nil)
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode stored document: %w", err)
	}
	return Merge(raw)
}

// mergeInto applies stored values onto target, field category by field
// category. target carries the code shape and is modified in place.
func mergeInto(target, stored map[string]interface{}) {
	for key, storedVal := range stored {
		targetVal, known := target[key]
		if !known {
			// Shape comes from code: fields the schema no longer has
			// are dropped, except inside keyed collections (handled by
			// the caller below).
			continue
		}

		switch sv := storedVal.(type) {
		case map[string]interface{}:
			tv, ok := targetVal.(map[string]interface{})
			if !ok {
				target[key] = storedVal
				continue
			}
			if collectionKeys[key] {
				mergeCollection(tv, sv)
			} else {
				mergeInto(tv, sv)
			}
		case []interface{}:
			// Arrays are stored-wins wholesale: a user-edited volume
			// path must not be spliced with default entries.
			target[key] = storedVal
		default:
			// Scalar (or null): stored wins. A stored null means the
			// field was cleared; keep the default instead.
			if sv != nil {
				target[key] = storedVal
			}
		}
	}
}

// mergeCollection unions a keyed collection: entries only in the defaults
// are kept, entries only in storage are preserved as the user created
// them, and entries in both are merged field by field with stored values
// winning and missing fields backfilled from the default entry.
func mergeCollection(target, stored map[string]interface{}) {
	for key, storedVal := range stored {
		storedEntry, ok := storedVal.(map[string]interface{})
		if !ok {
			target[key] = storedVal
			continue
		}
		targetEntry, known := target[key].(map[string]interface{})
		if !known {
			target[key] = storedEntry
			continue
		}
		mergeEntry(targetEntry, storedEntry)
	}
}

// mergeEntry merges one collection entry. Unlike mergeInto, fields present
// only in storage are kept: a collection entry belongs to the user, the
// defaults only backfill it.
func mergeEntry(target, stored map[string]interface{}) {
	for key, storedVal := range stored {
		switch sv := storedVal.(type) {
		case map[string]interface{}:
			tv, ok := target[key].(map[string]interface{})
			if !ok {
				target[key] = storedVal
				continue
			}
			if collectionKeys[key] {
				mergeCollection(tv, sv)
			} else {
				mergeEntry(tv, sv)
			}
		case []interface{}:
			target[key] = storedVal
		default:
			if sv != nil {
				target[key] = storedVal
			}
		}
	}
}

func toDocument(s *Set) (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
