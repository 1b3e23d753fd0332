package server

import "github.com/urfave/cli/v2"

func Command() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Aliases: []string{"serve"},
		Usage:   "start the scenario hub API server",
		Action: func(c *cli.Context) error {
			Run()
			return nil
		},
	}
}
