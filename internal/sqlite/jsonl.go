package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/itembridge/internal/mapping"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// JSONL dump file names.
const (
	SimpleJSONL  = "simple.jsonl"
	ComplexJSONL = "complex.jsonl"
)

// SimpleRecord is one line of simple.jsonl.
type SimpleRecord struct {
	Protocol types.Protocol `json:"protocol"`
	mapping.SimpleMapping
}

// ComplexRecord is one line of complex.jsonl.
type ComplexRecord struct {
	Protocol types.Protocol `json:"protocol"`
	mapping.ComplexMapping
}

// WriteJSONL dumps tables to simple.jsonl and complex.jsonl in dir, one
// mapping per line, ordered by protocol and core id. Each file is replaced
// atomically.
func WriteJSONL(dir string, tables *mapping.Tables) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dump directory: %w", err)
	}

	var simple, complexRecords []json.RawMessage
	for _, p := range tables.Protocols() {
		for _, m := range tables.Simple(p) {
			rec, err := json.Marshal(SimpleRecord{Protocol: p, SimpleMapping: m})
			if err != nil {
				return fmt.Errorf("encoding simple mapping: %w", err)
			}
			simple = append(simple, rec)
		}
		for _, m := range tables.Complex(p) {
			rec, err := json.Marshal(ComplexRecord{Protocol: p, ComplexMapping: m})
			if err != nil {
				return fmt.Errorf("encoding complex mapping: %w", err)
			}
			complexRecords = append(complexRecords, rec)
		}
	}

	if err := writeJSONL(filepath.Join(dir, SimpleJSONL), simple); err != nil {
		return fmt.Errorf("writing %s: %w", SimpleJSONL, err)
	}
	if err := writeJSONL(filepath.Join(dir, ComplexJSONL), complexRecords); err != nil {
		return fmt.Errorf("writing %s: %w", ComplexJSONL, err)
	}
	return nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
