package cmd

import (
	"github.com/urfave/cli/v2"
)

const appName = "roster"

// Build information, set via ldflags.
var Version = "dev"

func App() *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "student roster web application",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file; environment variables override its values",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			ServeCommand(),
			CreateUserCommand(),
		},
		Action: serveAction,
	}
}

// Execute runs the CLI with os.Args style arguments. Without a subcommand it serves HTTP.
func Execute(args []string) error {
	return App().Run(args)
}
