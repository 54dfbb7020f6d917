package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/docvars/internal/cli"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	cfg := config.Default()
	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}
