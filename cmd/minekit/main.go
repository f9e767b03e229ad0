// Package main is the minekit command line: config validation, command tree
// inspection and an interactive simulator backed by the in-memory world.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"go.minekit.dev/minekit/pkg/minekit/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "minekit",
		Usage: "Chest use events and command routing for Minecraft scripting hosts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (empty for defaults)",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			treeCommand(),
			simulateCommand(),
		},
	}
}

// loadConfig reads the config named by the --config flag
// and applies the --debug override.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}
