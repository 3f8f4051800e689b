// Package source parses the two raw item tables into typed structures:
// the legacy string to numeric id map, and the remap table that renames
// old string ids to their current names.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// LegacyIDs maps legacy string ids to their fixed numeric ids.
type LegacyIDs map[string]int32

// SimpleRemap renames Old to New with metadata unchanged.
type SimpleRemap struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ComplexRemap renames Old with metadata Meta to New. The meta is folded
// into the new id.
type ComplexRemap struct {
	Old  string `json:"old"`
	Meta int32  `json:"meta"`
	New  string `json:"new"`
}

// RemapTable is the parsed remap document. Entries keep document order.
type RemapTable struct {
	Simple  []SimpleRemap
	Complex []ComplexRemap
}

var errNotObject = errors.New("expected JSON object")

// ParseLegacyIDs parses a flat {"string id": int} document.
func ParseLegacyIDs(data []byte) (LegacyIDs, error) {
	var ids LegacyIDs
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, malformed("legacy id map", err)
	}
	if ids == nil {
		return nil, malformed("legacy id map", errNotObject)
	}
	return ids, nil
}

// ParseRemapTable parses a document with a "simple" object of old to new
// string ids and a "complex" object of old id to {"meta": new id}.
func ParseRemapTable(data []byte) (*RemapTable, error) {
	var doc struct {
		Simple  json.RawMessage `json:"simple"`
		Complex json.RawMessage `json:"complex"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed("remap table", err)
	}
	if isNull(doc.Simple) {
		return nil, malformed("remap table", errors.New(`missing "simple"`))
	}
	if isNull(doc.Complex) {
		return nil, malformed("remap table", errors.New(`missing "complex"`))
	}

	table := &RemapTable{}

	err := walkObject(doc.Simple, func(oldID string, value json.RawMessage) error {
		newID, err := decodeString(value)
		if err != nil {
			return fmt.Errorf("simple %q: %w", oldID, err)
		}
		table.Simple = append(table.Simple, SimpleRemap{Old: oldID, New: newID})
		return nil
	})
	if err != nil {
		return nil, malformed("remap table", err)
	}

	err = walkObject(doc.Complex, func(oldID string, value json.RawMessage) error {
		return walkObject(value, func(metaKey string, value json.RawMessage) error {
			meta, err := strconv.ParseInt(metaKey, 10, 32)
			if err != nil {
				return fmt.Errorf("complex %q: meta %q is not numeric", oldID, metaKey)
			}
			newID, err := decodeString(value)
			if err != nil {
				return fmt.Errorf("complex %q meta %d: %w", oldID, meta, err)
			}
			table.Complex = append(table.Complex, ComplexRemap{Old: oldID, Meta: int32(meta), New: newID})
			return nil
		})
	})
	if err != nil {
		return nil, malformed("remap table", err)
	}

	return table, nil
}

// walkObject calls fn for each member of a JSON object in document order.
func walkObject(raw json.RawMessage, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func decodeString(value json.RawMessage) (string, error) {
	v := bytes.TrimSpace(value)
	if len(v) == 0 || v[0] != '"' {
		return "", fmt.Errorf("expected string, got %s", v)
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", err
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) == 0 || string(v) == "null"
}

func malformed(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", types.ErrMalformedSourceData, what, err)
}
