package buildcmd

import (
	"context"
	"fmt"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/commands/headtagscmd"
	"github.com/indaco/docvars/internal/commands/navbarcmd"
	"github.com/indaco/docvars/internal/commands/sidebarcmd"
	"github.com/indaco/docvars/internal/commands/variablescmd"
	"github.com/indaco/docvars/internal/config"
	"github.com/urfave/cli/v3"
)

// Run returns the "build" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Generate every configured docs artifact",
		UsageText: "docvars build",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBuildCmd(ctx, cmd, cfg)
		},
	}
}

// step is one artifact of a build; enabled steps run in order and the
// first failure stops the build.
type step struct {
	name    string
	enabled bool
	run     func(ctx context.Context) error
}

func runBuildCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	fsys := clix.NewFileSystemFn()
	w := clix.Writer(cmd)

	steps := []step{
		{
			name:    "variables",
			enabled: true,
			run: func(ctx context.Context) error {
				opts, err := variablescmd.Options(cfg)
				if err != nil {
					return err
				}
				return variablescmd.Compile(ctx, fsys, opts)
			},
		},
		{
			name:    "navbar",
			enabled: cfg.Versions.Output != "",
			run: func(ctx context.Context) error {
				return navbarcmd.Generate(ctx, fsys, w, navbarcmd.Options{
					VersionsPath: cfg.Versions.Path,
					Legacy:       cfg.Versions.Legacy,
					Output:       cfg.Versions.Output,
					Format:       cfg.Versions.Format,
					Dropdown:     cfg.Versions.Dropdown,
				})
			},
		},
		{
			name:    "sidebar",
			enabled: cfg.Sidebar != nil && cfg.Sidebar.Output != "",
			run: func(ctx context.Context) error {
				return sidebarcmd.Generate(ctx, fsys, w, cfg.Sidebar.Input, cfg.Sidebar.Output)
			},
		},
		{
			name:    "headtags",
			enabled: cfg.Site != nil && cfg.Site.HeadTagsOutput != "",
			run: func(ctx context.Context) error {
				return headtagscmd.Generate(ctx, fsys, w, headtagscmd.Options{
					SiteURL: cfg.Site.URL,
					BaseURL: cfg.Site.BaseURL,
					Image:   cfg.Site.OGImage,
					Output:  cfg.Site.HeadTagsOutput,
				})
			},
		},
	}

	for _, s := range steps {
		if !s.enabled {
			continue
		}
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}
