// Package sqlite exports built item tables for inspection: a SQLite snapshot
// queried with any SQLite client, and JSONL dumps.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/itembridge/internal/mapping"
	"github.com/mesh-intelligence/itembridge/internal/protocol"
)

// WriteSnapshot writes tables and the protocol registry to a fresh SQLite
// database at path and returns the build id the rows are keyed by. An
// existing file at path is replaced. All rows are inserted in one
// transaction.
func WriteSnapshot(path string, tables *mapping.Tables, reg *protocol.Registry) (string, error) {
	buildID := generateUUID()

	var simple, complexRows [][]any
	for _, p := range tables.Protocols() {
		for _, m := range tables.Simple(p) {
			simple = append(simple, []any{buildID, int64(p), m.CoreID, m.NetworkID})
		}
		for _, m := range tables.Complex(p) {
			complexRows = append(complexRows, []any{buildID, int64(p), m.CoreID, m.CoreMeta, m.NetworkID})
		}
	}

	if err := writeSnapshot(path, buildID, reg, simple, complexRows); err != nil {
		return "", err
	}
	return buildID, nil
}

// writeSnapshot creates the database at path and inserts the build, its
// protocols, and the given mapping rows in one transaction.
func writeSnapshot(path, buildID string, reg *protocol.Registry, simple, complexRows [][]any) error {
	db, err := createDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertRows(tx, "builds", buildColumns, [][]any{
		{buildID, time.Now().UTC().Format(time.RFC3339), int64(reg.Current())},
	}); err != nil {
		return err
	}
	if err := insertRows(tx, "protocols", protocolColumns, protocolRows(buildID, reg)); err != nil {
		return err
	}
	if err := insertRows(tx, "simple_mappings", simpleColumns, simple); err != nil {
		return err
	}
	if err := insertRows(tx, "complex_mappings", complexColumns, complexRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot transaction: %w", err)
	}
	return nil
}

// createDB removes any file at path and creates the snapshot schema.
func createDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing old snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	for _, stmt := range slices.Concat(schemaDDL, indexDDL) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating snapshot schema: %w", err)
		}
	}
	return db, nil
}

// protocolRows lists every supported protocol and every alias with the
// canonical protocol it folds onto.
func protocolRows(buildID string, reg *protocol.Registry) [][]any {
	var rows [][]any
	for _, v := range reg.Versions() {
		rows = append(rows, []any{buildID, int64(v.Protocol), v.Name, int64(v.Protocol)})
		for _, a := range reg.Aliases(v.Protocol) {
			rows = append(rows, []any{buildID, int64(a), v.Name, int64(v.Protocol)})
		}
	}
	return rows
}

// insertRows inserts rows into table through one prepared statement.
func insertRows(tx *sql.Tx, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, args := range rows {
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}

// generateUUID generates a UUID v7 build id.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
