package cli

import (
	"context"
	"fmt"

	"github.com/indaco/docvars/internal/commands/buildcmd"
	"github.com/indaco/docvars/internal/commands/doctorcmd"
	"github.com/indaco/docvars/internal/commands/headtagscmd"
	"github.com/indaco/docvars/internal/commands/initcmd"
	"github.com/indaco/docvars/internal/commands/navbarcmd"
	"github.com/indaco/docvars/internal/commands/sidebarcmd"
	"github.com/indaco/docvars/internal/commands/variablescmd"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/tui"
	"github.com/indaco/docvars/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command.
// cfg is filled in by the Before hook once --config is known, so
// subcommands must read it at action time.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "docvars",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Generate docs build artifacts from project metadata",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the configuration file (or set " + config.EnvConfigPath + ")",
				DefaultText: config.DefaultConfigFile,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print warnings and errors",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || !tui.IsTTY())
			printer.SetQuiet(cmd.Bool("quiet"))

			loaded, err := config.LoadConfigFn(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded
			tui.SetTheme(cfg.GetTheme())
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initcmd.Run(),
			variablescmd.Run(cfg),
			navbarcmd.Run(cfg),
			headtagscmd.Run(cfg),
			sidebarcmd.Run(cfg),
			buildcmd.Run(cfg),
			doctorcmd.Run(cfg),
		},
	}
}
