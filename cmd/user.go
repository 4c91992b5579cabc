package cmd

import (
	"fmt"
	"roster/internal/config"
	"roster/internal/core"

	"github.com/urfave/cli/v2"
)

func CreateUserCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "create a staff user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "login name of the new user",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "password of the new user",
				EnvVars:  []string{"ROSTER_NEW_USER_PASSWORD"},
				Required: true,
			},
		},
		Action: createUserAction,
	}
}

func createUserAction(c *cli.Context) (err error) {
	cfg, err := config.NewApp(c.String("config"))
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	app, err := NewApplication(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeAndLog(logger, app); cerr != nil && err == nil {
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()

	user, err := app.Roster.CreateUser(c.Context, core.AuthMessage{
		Username: c.String("username"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("create user %q: %w", c.String("username"), err)
	}

	fmt.Fprintf(c.App.Writer, "user %q created with id %d\n", user.Username, user.ID)
	return nil
}
