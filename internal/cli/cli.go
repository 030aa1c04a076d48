// Package cli implements the assetgraph command-line interface.
//
// This package provides commands for resolving web asset manifests into a
// deterministic inclusion order, rendering HTML tags for the resolved
// resources, and exporting the dependency graph as DOT or SVG. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - resolve: Compute the dependency-ordered resource list for a manifest
//   - render: Emit script and link tags for the resolved resources
//   - graph: Export the resource dependency graph as DOT or SVG
//   - inspect: Browse the resolved order interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraph/pkg/buildinfo"
	"github.com/matzehuels/assetgraph/pkg/cache"
	"github.com/matzehuels/assetgraph/pkg/manifest"
	"github.com/matzehuels/assetgraph/pkg/pipeline"
	"github.com/matzehuels/assetgraph/pkg/resolve"
)

// appName is the application name used for display and completions.
const appName = "assetgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Assetgraph resolves and renders web asset dependency graphs",
		Long:         `Assetgraph is a CLI tool for working with declarative web asset manifests: it resolves script, style and link resources into a stable dependency order and renders the matching HTML tags.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/assetgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadResolved loads a manifest file and resolves its declaration tree into
// the final candidate order. Shared by the commands that only need the
// resolved order, not rendered tags.
func (c *CLI) loadResolved(ctx context.Context, path string) (*manifest.Tree, []*resolve.Candidate, error) {
	return c.newRunner(true).Resolve(ctx, path)
}
