package sidebarcmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/sidebar"
	"github.com/urfave/cli/v3"
)

// Run returns the "sidebar" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "sidebar",
		Usage:     "Render the YAML sidebar definition as JSON",
		UsageText: "docvars sidebar --input sidebars.yaml [--output sidebars.json|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "YAML sidebar definition",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write (stdout when empty or -)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sb := config.SidebarConfig{}
			if cfg.Sidebar != nil {
				sb = *cfg.Sidebar
			}
			input := clix.StringOr(cmd, "input", sb.Input)
			output := clix.StringOr(cmd, "output", sb.Output)
			return Generate(ctx, clix.NewFileSystemFn(), clix.Writer(cmd), input, output)
		},
	}
}

// Generate parses and validates the definition at input, then writes the JSON tree.
func Generate(ctx context.Context, fsys core.FileSystem, w io.Writer, input, output string) error {
	if input == "" {
		return errors.New("sidebar input is required (set sidebar.input in the config or pass --input)")
	}
	data, err := fsys.ReadFile(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to read sidebar definition: %w", err)
	}

	sidebars, err := sidebar.Parse(data)
	if err != nil {
		return err
	}
	if err := sidebars.Validate(); err != nil {
		return fmt.Errorf("invalid sidebar definition %s:\n%w", input, err)
	}

	out, err := sidebars.Render()
	if err != nil {
		return err
	}
	if err := clix.WriteOutput(ctx, fsys, w, output, out); err != nil {
		return err
	}
	if !clix.IsStdout(output) {
		printer.PrintSuccess(fmt.Sprintf("Wrote %d sidebar(s) to %s", len(sidebars), output))
	}
	return nil
}
