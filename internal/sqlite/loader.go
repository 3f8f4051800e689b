package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/itembridge/internal/protocol"
)

// ImportJSONL builds a SQLite snapshot at path from a JSONL dump in dir, so
// that dumps taken on another host can be queried. Malformed lines are
// skipped.
func ImportJSONL(path, dir string, reg *protocol.Registry) (string, error) {
	simple, err := readJSONL(filepath.Join(dir, SimpleJSONL))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", SimpleJSONL, err)
	}
	complexLines, err := readJSONL(filepath.Join(dir, ComplexJSONL))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", ComplexJSONL, err)
	}

	buildID := generateUUID()
	var simpleRows, complexRows [][]any
	for _, line := range simple {
		var rec SimpleRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		simpleRows = append(simpleRows, []any{buildID, int64(rec.Protocol), rec.CoreID, rec.NetworkID})
	}
	for _, line := range complexLines {
		var rec ComplexRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		complexRows = append(complexRows, []any{buildID, int64(rec.Protocol), rec.CoreID, rec.CoreMeta, rec.NetworkID})
	}

	if err := writeSnapshot(path, buildID, reg, simpleRows, complexRows); err != nil {
		return "", err
	}
	return buildID, nil
}
