package command

import (
	"fmt"

	"token-auth-backend/internal/database"

	"github.com/urfave/cli/v2"
)

// MigrateCommand creates or updates the schema and exits.
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "Create or update the database schema",
		Action: migrate,
	}
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg, true)
	if err != nil {
		return err
	}
	defer database.Close(db)

	fmt.Fprintln(c.App.Writer, "schema up to date")
	return nil
}

// SeedCommand upserts users from a YAML file.
func SeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Upsert users from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Users YAML file (defaults to users_seed_file from config)",
			},
		},
		Action: seed,
	}
}

func seed(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	path := c.String("file")
	if path == "" {
		path = cfg.UsersSeedFile
	}
	if path == "" {
		return cli.Exit("no users file given: pass --file or set users_seed_file", 2)
	}

	db, err := openDatabase(cfg, true)
	if err != nil {
		return err
	}
	defer database.Close(db)

	res, err := database.InitUsersFromYAML(db, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "created=%d updated=%d unchanged=%d\n", res.Created, res.Updated, res.Unchanged)
	return nil
}
