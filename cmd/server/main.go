package main

import (
	"fmt"
	"os"

	"token-auth-backend/internal/cli/command"

	_ "token-auth-backend/docs"
)

// @title Token Auth API
// @version 1.0
// @description Issues opaque bearer tokens and resolves them to users.
// @BasePath /api/v1
func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
