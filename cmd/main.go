package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"tradequotes/internal/app"
	"tradequotes/internal/config"
)

// @title tradequotes API
// @version 1.0
// @description Exact-decimal trading quantities, swaps and positions.
// @BasePath /api/v1
func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   config.DefaultPath,
		Usage:   "path to the yaml config file",
		EnvVars: []string{"CONFIG_PATH"},
	}

	cliApp := &cli.App{
		Name:  "tradequotes",
		Usage: "trading quantities, positions and trailing stops over HTTP",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "apply migrations, start the scheduler and the HTTP server",
				Flags: []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					return app.Run(c.String("config"))
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending database migrations and exit",
				Flags: []cli.Flag{configFlag},
				Action: func(c *cli.Context) error {
					return app.Migrate(c.String("config"))
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("tradequotes stopped")
	}
}
