package doctorcmd

import (
	"context"
	"fmt"

	"github.com/indaco/docvars/internal/clix"
	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"validate"},
		Usage:     "Check that the configuration can drive a full build",
		UsageText: "docvars doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cfg *config.Config) error {
	source := cfg.Source()
	if source == "" {
		source = "built-in defaults"
	}
	printer.PrintBold(fmt.Sprintf("Configuration: %s", source))

	results, err := config.NewValidator(clix.NewFileSystemFn(), cfg).Validate(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		line := fmt.Sprintf("%-10s %s", r.Category, r.Message)
		switch {
		case r.Warning:
			printer.PrintWarning("! " + line)
		case r.Passed:
			printer.PrintSuccess("✓ " + line)
		default:
			printer.PrintError("✗ " + line)
		}
	}

	errCount := config.ErrorCount(results)
	warnCount := config.WarningCount(results)
	if errCount > 0 {
		return fmt.Errorf("found %d error(s) and %d warning(s)", errCount, warnCount)
	}
	printer.PrintSuccess(fmt.Sprintf("All checks passed (%d warning(s))", warnCount))
	return nil
}
