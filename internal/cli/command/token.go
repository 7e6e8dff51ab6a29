package command

import (
	"fmt"

	"token-auth-backend/internal/api/routes"
	"token-auth-backend/internal/database"

	"github.com/urfave/cli/v2"
)

// TokenCommand returns the token subcommand group.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue and check tokens directly against the database",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Issue a token for a user",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:     "user-id",
						Aliases:  []string{"u"},
						Usage:    "User to issue the token for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "one-per-user",
						Usage: "Fail when the user already holds a token",
						Value: true,
					},
				},
				Action: tokenCreate,
			},
			{
				Name:  "authenticate",
				Usage: "Print the user owning a token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Token value",
						Required: true,
					},
				},
				Action: tokenAuthenticate,
			},
		},
	}
}

func tokenCreate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg, false)
	if err != nil {
		return err
	}
	defer database.Close(db)

	svc := routes.NewTokenAuthService(db, cfg, nil)
	token, err := svc.CreateToken(c.Context, c.Uint("user-id"), c.Bool("one-per-user"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}

func tokenAuthenticate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg, false)
	if err != nil {
		return err
	}
	defer database.Close(db)

	svc := routes.NewTokenAuthService(db, cfg, nil)
	userID, found, err := svc.Authenticate(c.Context, c.String("token"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if !found {
		return cli.Exit("token not found", 1)
	}
	fmt.Fprintln(c.App.Writer, userID)
	return nil
}
