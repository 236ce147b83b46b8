// Package cli implements the repolens command-line interface.
//
// Two commands are provided: serve starts the HTTP API, and analyze runs a
// one-shot repository analysis and prints the result to the terminal. Both
// support --verbose (-v) for debug-level logging via charmbracelet/log.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/repolens/repolens/pkg/buildinfo"
)

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
		Use:          "repolens",
		Short:        "RepoLens analyzes GitHub repositories",
		Long:         `RepoLens inspects a GitHub repository and reports on its languages, commit activity, declared dependencies, file structure, and README completeness.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.analyzeCommand())

	return root
}
