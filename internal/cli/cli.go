// Package cli implements the cityatlas command-line interface.
//
// The main commands are:
//   - menu: interactive terminal menu for managing cities and route graphs
//   - demo: scripted, non-interactive walkthrough of the same operations
//   - render: DOT/SVG/PNG rendering of the sample atlas
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML configuration file. The logger is built with charmbracelet/log
// and attached to the command context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dmoreira/cityatlas/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "cityatlas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Cityatlas manages a balanced city index with per-city route graphs",
		Long:         `Cityatlas keeps cities in a self-balancing search tree, gives every city its own weighted route graph (districts and routes), and can compare the AVL shape against an on-demand DSW-balanced export.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.menuCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.renderCommand())

	return root
}
