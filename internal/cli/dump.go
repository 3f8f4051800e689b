package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/internal/paths"
	"github.com/mesh-intelligence/itembridge/internal/sqlite"
)

const snapshotFile = "snapshot.db"

// dumpOutput is the JSON shape of the dump command.
type dumpOutput struct {
	BuildID  string `json:"build_id,omitempty"`
	SQLite   string `json:"sqlite,omitempty"`
	JSONLDir string `json:"jsonl_dir,omitempty"`
}

func newDumpCmd(a *app) *cobra.Command {
	var sqlitePath, jsonlDir string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Export the built tables to SQLite or JSONL",
		Long: `Export the built tables for inspection. Without flags both a SQLite
snapshot and a JSONL dump are written to the data directory
(ITEMBRIDGE_DATA_DIR or the platform default).

Example:
  itembridge dump --sqlite items.db
  itembridge dump --jsonl ./dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sqlitePath == "" && jsonlDir == "" {
				dataDir, err := paths.ResolveDataDir("")
				if err != nil {
					return sysError(fmt.Errorf("resolve data dir: %w", err))
				}
				sqlitePath = filepath.Join(dataDir, snapshotFile)
				jsonlDir = dataDir
			}

			b, err := a.openBridge()
			if err != nil {
				return err
			}

			res := dumpOutput{}
			out := cmd.OutOrStdout()
			if sqlitePath != "" {
				buildID, err := sqlite.WriteSnapshot(sqlitePath, b.Tables(), b.Registry())
				if err != nil {
					return sysError(fmt.Errorf("write snapshot: %w", err))
				}
				res.BuildID, res.SQLite = buildID, sqlitePath
				a.log.Info("wrote snapshot", zap.String("path", sqlitePath), zap.String("build_id", buildID))

				if !a.jsonMode {
					size := "unknown size"
					if info, err := os.Stat(sqlitePath); err == nil {
						size = humanize.Bytes(uint64(info.Size()))
					}
					fmt.Fprintf(out, "Wrote snapshot %s (%s, build %s)\n", sqlitePath, size, buildID)
				}
			}
			if jsonlDir != "" {
				if err := sqlite.WriteJSONL(jsonlDir, b.Tables()); err != nil {
					return sysError(fmt.Errorf("write jsonl: %w", err))
				}
				res.JSONLDir = jsonlDir
				a.log.Info("wrote jsonl dump", zap.String("dir", jsonlDir))

				if !a.jsonMode {
					fmt.Fprintf(out, "Wrote %s and %s to %s\n", sqlite.SimpleJSONL, sqlite.ComplexJSONL, jsonlDir)
				}
			}

			if a.jsonMode {
				return printJSON(out, res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "write a SQLite snapshot to FILE")
	cmd.Flags().StringVar(&jsonlDir, "jsonl", "", "write simple.jsonl and complex.jsonl to DIR")
	return cmd
}
