package variablescmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/manifest"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/variables"
	"github.com/urfave/cli/v3"
)

// Run returns the "variables" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "variables",
		Aliases:   []string{"vars"},
		Usage:     "Write the docs variables file from the project manifest",
		UsageText: "docvars variables [--manifest path] [--field dotted.path] [--output path] [--check]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the project manifest",
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "Dotted path of the version field (e.g. tool.poetry.version)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Manifest format: toml, json, yaml or raw (detected from the extension when empty)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Variables file to write",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when the release is not a semantic version",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Verify the variables file is up to date without writing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromFlags(cmd, cfg)
			if err != nil {
				return err
			}
			fsys := clix.NewFileSystemFn()
			if cmd.Bool("check") {
				return Check(ctx, fsys, opts)
			}
			return Compile(ctx, fsys, opts)
		},
	}
}

// Options converts the config into compiler options.
func Options(cfg *config.Config) (variables.Options, error) {
	src, err := cfg.ManifestSource()
	if err != nil {
		return variables.Options{}, err
	}
	return variables.Options{
		Manifest: src,
		Output:   cfg.Variables.Output,
		Extra:    cfg.Variables.Extra,
		Strict:   cfg.Variables.Strict,
	}, nil
}

func optionsFromFlags(cmd *cli.Command, cfg *config.Config) (variables.Options, error) {
	opts, err := Options(cfg)
	if err != nil {
		return opts, err
	}
	if cmd.IsSet("manifest") {
		opts.Manifest.Path = cmd.String("manifest")
		// A manifest given on the command line gets its own detection
		// unless format or field are given too.
		if !cmd.IsSet("format") {
			opts.Manifest.Format = ""
		}
		if !cmd.IsSet("field") {
			opts.Manifest.Field = ""
		}
	}
	if cmd.IsSet("format") {
		format, err := manifest.ParseFormat(cmd.String("format"))
		if err != nil {
			return opts, err
		}
		opts.Manifest.Format = format
	}
	opts.Manifest.Field = clix.StringOr(cmd, "field", opts.Manifest.Field)
	opts.Output = clix.StringOr(cmd, "output", opts.Output)
	opts.Strict = clix.BoolOr(cmd, "strict", opts.Strict)
	return opts, nil
}

// Compile writes the variables file and reports the result.
func Compile(ctx context.Context, fsys core.FileSystem, opts variables.Options) error {
	out, err := variables.NewCompiler(fsys).Compile(ctx, opts)
	if err != nil {
		return withSuggestion(err)
	}
	if out.Changed {
		printer.PrintSuccess(fmt.Sprintf("Wrote release %s to %s", out.Release, out.Output))
	} else {
		printer.PrintFaint(fmt.Sprintf("%s already up to date (release %s)", out.Output, out.Release))
	}
	return nil
}

// Check verifies the variables file without writing it.
func Check(ctx context.Context, fsys core.FileSystem, opts variables.Options) error {
	out, err := variables.NewCompiler(fsys).Check(ctx, opts)
	if err != nil {
		if errors.Is(err, variables.ErrStale) {
			return fmt.Errorf("%w; run 'docvars variables' to refresh it", err)
		}
		return withSuggestion(err)
	}
	printer.PrintSuccess(fmt.Sprintf("%s is up to date (release %s)", out.Output, out.Release))
	return nil
}

func withSuggestion(err error) error {
	var nf *manifest.FieldNotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("%w. %s", err, nf.Suggestion())
	}
	return err
}
