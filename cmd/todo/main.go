package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo/internal/cli"
	"todo/internal/config"
	"todo/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code. The store is closed on every path
// before main exits.
func run(args []string, stderr io.Writer) int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	app := cli.NewApp(cfg, config.CreateRepository)
	defer func() {
		if err := app.Close(); err != nil {
			fmt.Fprintf(stderr, "Error closing database: %v\n", err)
		}
	}()

	if err := app.Run(context.Background(), args); err != nil {
		handler := cli.NewErrorHandler()
		logging.Debugf("command failed with code %s\n", handler.GetErrorCode(err))
		fmt.Fprintf(stderr, "Error: %s\n", handler.Message(err))
		if handler.IsInvalidInputError(err) {
			fmt.Fprintln(stderr, "Run 'todo help' for usage.")
		}
		return 1
	}
	return 0
}
