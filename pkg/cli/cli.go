// Package cli provides the command-line interface for element-crawler.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/agent"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"s"},
		Usage:   "Device serial to target",
		EnvVars: []string{"CRAWLER_DEVICE"},
	},
	&cli.StringFlag{
		Name:    "host",
		Usage:   "Agent host (default: 127.0.0.1 through a forwarded port)",
		EnvVars: []string{"CRAWLER_HOST"},
	},
	&cli.IntFlag{
		Name:    "port",
		Usage:   fmt.Sprintf("Agent TCP port (default: %d)", agent.DefaultPort),
		EnvVars: []string{"CRAWLER_PORT"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to crawler.yaml",
		EnvVars: []string{"CRAWLER_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write logs to this file",
		EnvVars: []string{"CRAWLER_LOG_FILE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Echo logs to stderr",
		EnvVars: []string{"CRAWLER_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "element-crawler",
		Usage:   "Inspect and drive Android UI elements via the on-device agent",
		Version: Version,
		Description: `Element Crawler connects to the accessibility agent running on an
Android device (TCP port 16688), inspects the UI element tree, computes
stable locators, and drives clicks, scrolling, and text input.

Examples:
  element-crawler devices
  element-crawler elements --compact
  element-crawler locate --index 3
  element-crawler click --text "Login"
  element-crawler mirror start`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			devicesCommand,
			statusCommand,
			elementsCommand,
			locateCommand,
			clickCommand,
			inputCommand,
			scrollCommand,
			mirrorCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
