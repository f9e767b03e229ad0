package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a config file",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			warns, errs := cfg.Validate()
			for _, warn := range warns {
				color.Yellow.Printf("warning: %v\n", warn)
			}
			for _, err := range errs {
				color.Red.Printf("error: %v\n", err)
			}
			if len(errs) != 0 {
				return cli.Exit(fmt.Sprintf("config is invalid (%d errors)", len(errs)), 1)
			}
			color.Green.Println("config is valid")
			return nil
		},
	}
}
