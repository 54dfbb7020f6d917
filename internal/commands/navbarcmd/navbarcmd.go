package navbarcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/navbar"
	"github.com/indaco/docvars/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "navbar" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "navbar",
		Usage:     "Build the versions menu from the version list",
		UsageText: "docvars navbar [--versions versions.json] [--output path|-] [--format json|yaml] [--dropdown]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "versions",
				Usage: "JSON array of published versions, newest first",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write (stdout when empty or -)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:  "dropdown",
				Usage: "Wrap the entries in a navbar dropdown item",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := Options{
				VersionsPath: clix.StringOr(cmd, "versions", cfg.Versions.Path),
				Legacy:       cfg.Versions.Legacy,
				Output:       clix.StringOr(cmd, "output", cfg.Versions.Output),
				Format:       clix.StringOr(cmd, "format", cfg.Versions.Format),
				Dropdown:     clix.BoolOr(cmd, "dropdown", cfg.Versions.Dropdown),
			}
			return Generate(ctx, clix.NewFileSystemFn(), clix.Writer(cmd), opts)
		},
	}
}

// Options configures one menu build.
type Options struct {
	VersionsPath string
	Legacy       []navbar.Entry
	Output       string
	Format       string
	Dropdown     bool
}

// Generate reads the version list, builds the menu and writes it to
// opts.Output, or to w for stdout.
func Generate(ctx context.Context, fsys core.FileSystem, w io.Writer, opts Options) error {
	format, err := navbar.ParseOutputFormat(opts.Format)
	if err != nil {
		return err
	}

	versions, found, err := navbar.ReadVersionList(ctx, fsys, opts.VersionsPath)
	if err != nil {
		return err
	}
	if !found {
		printer.PrintNotice(fmt.Sprintf("No version list at %s, showing a single %q entry", opts.VersionsPath, navbar.LatestLabel))
	}

	entries := navbar.Build(versions, opts.Legacy)

	var menu any = entries
	if opts.Dropdown {
		menu = navbar.Dropdown(entries)
	}
	data, err := navbar.Render(menu, format)
	if err != nil {
		return err
	}

	if err := clix.WriteOutput(ctx, fsys, w, opts.Output, data); err != nil {
		return err
	}
	if !clix.IsStdout(opts.Output) {
		printer.PrintSuccess(fmt.Sprintf("Wrote %d menu entries to %s", len(entries), opts.Output))
	}
	return nil
}
