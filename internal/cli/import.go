package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itembridge/internal/paths"
	"github.com/mesh-intelligence/itembridge/internal/protocol"
	"github.com/mesh-intelligence/itembridge/internal/sqlite"
)

func newImportCmd(a *app) *cobra.Command {
	var sqlitePath, jsonlDir string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build a SQLite snapshot from a JSONL dump",
		Long: `Load simple.jsonl and complex.jsonl written by "dump --jsonl" into a fresh
SQLite snapshot. Malformed lines are skipped. Without --sqlite the snapshot
is written to the data directory.

Example:
  itembridge import --jsonl ./dump --sqlite items.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonlDir == "" {
				return userError(errors.New("--jsonl is required"))
			}
			if sqlitePath == "" {
				dataDir, err := paths.ResolveDataDir("")
				if err != nil {
					return sysError(fmt.Errorf("resolve data dir: %w", err))
				}
				sqlitePath = filepath.Join(dataDir, snapshotFile)
			}

			buildID, err := sqlite.ImportJSONL(sqlitePath, jsonlDir, protocol.NewRegistry())
			if err != nil {
				return sysError(fmt.Errorf("import jsonl: %w", err))
			}

			out := cmd.OutOrStdout()
			if a.jsonMode {
				return printJSON(out, dumpOutput{BuildID: buildID, SQLite: sqlitePath, JSONLDir: jsonlDir})
			}
			_, err = fmt.Fprintf(out, "Imported %s into %s (build %s)\n", jsonlDir, sqlitePath, buildID)
			return err
		},
	}
	cmd.Flags().StringVar(&jsonlDir, "jsonl", "", "read simple.jsonl and complex.jsonl from DIR")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "write the snapshot to FILE")
	return cmd
}
