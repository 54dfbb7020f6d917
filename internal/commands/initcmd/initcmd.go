package initcmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/tui"
	"github.com/urfave/cli/v3"
)

// Swapped in tests.
var (
	isInteractiveFn = tui.IsInteractive
	askFn           = tui.Ask
	confirmFn       = tui.Confirm
)

// manifestCandidates are probed in order when no manifest is given.
var manifestCandidates = []string{
	"../pyproject.toml",
	"pyproject.toml",
	"../package.json",
	"package.json",
}

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a .docvars.yaml configuration file",
		UsageText: "docvars init [--yes] [--force] [--manifest path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept detected defaults without prompting",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Project manifest to read the version from",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "Where to write the configuration",
				Value: config.DefaultConfigFile,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	fsys := clix.NewFileSystemFn()
	path := cmd.String("path")
	interactive := isInteractiveFn() && !cmd.Bool("yes")

	exists, err := fileExists(ctx, fsys, path)
	if err != nil {
		return err
	}
	if exists && !cmd.Bool("force") {
		if !interactive {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		ok, err := confirmFn(fmt.Sprintf("Overwrite %s?", path), "The existing configuration will be replaced.")
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintFaint("Aborted, configuration left unchanged")
			return nil
		}
	}

	cfg := config.Default()
	if cmd.IsSet("manifest") {
		cfg.Manifest.Path = cmd.String("manifest")
	} else if found := DetectManifest(ctx, fsys); found != "" {
		cfg.Manifest.Path = found
	}

	if interactive {
		if err := prompt(cfg); err != nil {
			return err
		}
	}

	saver := config.NewConfigSaver(fsys, &commentedMarshaler{})
	if err := saver.SaveTo(ctx, cfg, path); err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Created %s (manifest %s)", path, cfg.Manifest.Path))
	printer.PrintFaint("Run 'docvars doctor' to check it.")
	return nil
}

func prompt(cfg *config.Config) error {
	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("value is required")
		}
		return nil
	}
	return askFn(
		tui.Field{
			Title:       "Manifest",
			Description: "File holding the project version",
			Value:       &cfg.Manifest.Path,
			Validate:    required,
		},
		tui.Field{
			Title:       "Variables output",
			Description: "JSON file the docs read {release} from",
			Value:       &cfg.Variables.Output,
			Validate:    required,
		},
		tui.Field{
			Title:       "Version list",
			Description: "JSON array of published versions, newest first",
			Value:       &cfg.Versions.Path,
			Validate:    required,
		},
	)
}

// DetectManifest returns the first existing manifest candidate, or "".
func DetectManifest(ctx context.Context, fsys core.FileSystem) string {
	for _, p := range manifestCandidates {
		if ok, _ := fileExists(ctx, fsys, p); ok {
			return p
		}
	}
	return ""
}

func fileExists(ctx context.Context, fsys core.FileSystem, path string) (bool, error) {
	_, err := fsys.Stat(ctx, path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}
