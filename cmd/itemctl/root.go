package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/PluginKit_Go/internal/itemstr"
	"github.com/osse101/PluginKit_Go/internal/logger"
	"github.com/osse101/PluginKit_Go/internal/registry"
)

var (
	// Version is the semantic version (set via -ldflags)
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags)
	Commit = "unknown"
)

// ExitError carries a non-zero exit code out of RunE without calling os.Exit
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// rootOptions are the persistent flags shared by every subcommand
type rootOptions struct {
	registryPath string
	verbose      bool
	seed         int64
	placeholder  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "itemctl",
		Short: "Inspect item descriptors and plugin update status",
		Long: `itemctl parses and matches item descriptor strings of the form

  [name$]material[:variant][*quantity][@enchant[:level],...]

against the material registry, and queries the release API the same way
a running plugin does.

Examples:
  itemctl parse 'Ruby_Sword$IRON_SWORD*1@SHARPNESS:3,RED'
  itemctl compare 'WOOL:14*3' --id 35 --variant 14 --amount 5
  itemctl version-key 1.2.3/4 1.10
  itemctl check --plugin MyPlugin --project 12345 --current 1.0`,
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(opts.verbose), cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.registryPath, "registry", "", "material registry JSON file (default is the embedded table)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed for quantity ranges (0 picks one from the clock)")
	pf.BoolVar(&opts.placeholder, "placeholder-material", false, "build every parsed item as DIAMOND (legacy behaviour)")

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newCompareCmd(opts))
	cmd.AddCommand(newRollCmd(opts))
	cmd.AddCommand(newVersionKeyCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// getVersionString returns a formatted version string for display
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// newEngine loads the registry and builds an engine for one command run
func (o *rootOptions) newEngine() (*itemstr.Engine, *registry.Registry, error) {
	reg, err := registry.Load(o.registryPath)
	if err != nil {
		return nil, nil, err
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := itemstr.New(reg,
		itemstr.WithRand(rand.New(rand.NewSource(seed))),
		itemstr.WithLogger(slog.Default()),
		itemstr.WithPlaceholderMaterial(o.placeholder),
	)
	if err != nil {
		return nil, nil, err
	}
	return engine, reg, nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
