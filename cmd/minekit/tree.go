package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"go.minekit.dev/minekit/pkg/command"
)

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Print the configured command tree",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "Output the tree as YAML instead of help text",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			if c.Bool("yaml") {
				enc := yaml.NewEncoder(os.Stdout)
				defer func() { _ = enc.Close() }()
				return enc.Encode(cfg.Command.Tree)
			}
			fmt.Print(command.Usage(cfg.Command.Tree))
			return nil
		},
	}
}
