package headtagscmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/headtags"
	"github.com/indaco/docvars/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "headtags" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "headtags",
		Usage:     "Emit the og:image head tag with an absolute URL",
		UsageText: "docvars headtags --site-url https://example.com [--base-url /docs/] [--html] [--output path|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "site-url",
				Usage: "Absolute URL the site is served from",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Path the docs are mounted under",
			},
			&cli.StringFlag{
				Name:  "image",
				Usage: "Image path relative to the base URL",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Print HTML instead of the plugin JSON document",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write (stdout when empty or -)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			site := config.SiteConfig{}
			if cfg.Site != nil {
				site = *cfg.Site
			}
			opts := Options{
				SiteURL: clix.StringOr(cmd, "site-url", site.URL),
				BaseURL: clix.StringOr(cmd, "base-url", site.BaseURL),
				Image:   clix.StringOr(cmd, "image", site.OGImage),
				HTML:    cmd.Bool("html"),
				Output:  clix.StringOr(cmd, "output", site.HeadTagsOutput),
			}
			return Generate(ctx, clix.NewFileSystemFn(), clix.Writer(cmd), opts)
		},
	}
}

// Options configures head tag generation.
type Options struct {
	SiteURL string
	BaseURL string
	Image   string
	HTML    bool
	Output  string
}

// Generate builds the head tags and writes them as JSON or HTML.
func Generate(ctx context.Context, fsys core.FileSystem, w io.Writer, opts Options) error {
	if opts.SiteURL == "" {
		return errors.New("site URL is required (set site.url in the config or pass --site-url)")
	}
	tag, err := headtags.OGImage(opts.SiteURL, opts.BaseURL, opts.Image)
	if err != nil {
		return err
	}
	tags := []headtags.Tag{tag}

	var data []byte
	if opts.HTML {
		out, err := headtags.Render(tags)
		if err != nil {
			return err
		}
		data = []byte(out)
	} else {
		data, err = headtags.MarshalPlugin(tags)
		if err != nil {
			return err
		}
	}

	if err := clix.WriteOutput(ctx, fsys, w, opts.Output, data); err != nil {
		return err
	}
	if !clix.IsStdout(opts.Output) {
		printer.PrintSuccess(fmt.Sprintf("Wrote %d head tag(s) to %s", len(tags), opts.Output))
	}
	return nil
}
