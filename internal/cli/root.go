// Package cli implements the itembridge command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/itembridge/internal/bridge"
	"github.com/mesh-intelligence/itembridge/internal/logging"
	"github.com/mesh-intelligence/itembridge/internal/paths"
	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
// Errors not classified by a command are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// app holds global flag values and the state shared by subcommands.
type app struct {
	configDir   string
	resourceDir string
	jsonMode    bool

	cfg    types.Config
	log    *zap.Logger
	bridge *bridge.Bridge
}

// NewRootCmd creates the top-level "itembridge" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "itembridge",
		Short: "Translate Bedrock item ids between the stable and network spaces",
		Long: "itembridge maps legacy item id/meta pairs to the network id/meta pairs\n" +
			"of each supported Bedrock protocol version, and back.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config for version command
			if cmd.Name() == "version" {
				return nil
			}
			return a.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.resourceDir, "resource-dir", "", "directory overriding the embedded item tables")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newProtocolsCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newToNetCmd(a))
	root.AddCommand(newFromNetCmd(a))
	root.AddCommand(newDumpCmd(a))
	root.AddCommand(newImportCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err)
}

// loadConfig resolves the configuration directory and reads config.yaml.
func (a *app) loadConfig() error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}

	resourceDir, err := paths.ResolveResourceDir(a.resourceDir, cfg.ResourceDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve resource dir: %w", err))
	}
	cfg.ResourceDir = resourceDir

	if err := cfg.Validate(); err != nil {
		return sysError(fmt.Errorf("invalid config: %w", err))
	}
	a.cfg = cfg
	return nil
}

// openBridge builds the translator on first use.
func (a *app) openBridge() (*bridge.Bridge, error) {
	if a.bridge != nil {
		return a.bridge, nil
	}

	log, err := logging.New(a.cfg)
	if err != nil {
		return nil, sysError(fmt.Errorf("create logger: %w", err))
	}
	a.log = log

	b, err := bridge.Open(a.cfg, bridge.WithLogger(log))
	if err != nil {
		return nil, sysError(fmt.Errorf("load item tables: %w", err))
	}
	a.bridge = b
	return b, nil
}
