package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/docvars/internal/core"
	"github.com/indaco/docvars/internal/headtags"
	"github.com/indaco/docvars/internal/manifest"
	"github.com/indaco/docvars/internal/navbar"
	"github.com/indaco/docvars/internal/semver"
	"github.com/indaco/docvars/internal/sidebar"
	"github.com/indaco/docvars/internal/tui"
	"github.com/indaco/docvars/internal/variables"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Manifest", "Versions").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator checks that a configuration can drive a full build.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
func NewValidator(fs core.FileSystem, cfg *Config) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v.validations = make([]ValidationResult, 0)

	v.validateManifest(ctx)
	v.validateVariables()
	v.validateVersions(ctx)
	v.validateSite()
	v.validateSidebar(ctx)
	v.validateTheme()

	return v.validations, nil
}

func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

func (v *Validator) validateManifest(ctx context.Context) {
	src, err := v.cfg.ManifestSource()
	if err != nil {
		v.addValidation("Manifest", false, err.Error(), false)
		return
	}

	res, err := manifest.NewReader(v.fs).Read(ctx, src)
	if err != nil {
		var nf *manifest.FieldNotFoundError
		if errors.As(err, &nf) {
			v.addValidation("Manifest", false, fmt.Sprintf("%s. %s", err, nf.Suggestion()), false)
			return
		}
		v.addValidation("Manifest", false, err.Error(), false)
		return
	}
	v.addValidation("Manifest", true, fmt.Sprintf("%s field %q = %s", res.Source.Path, res.Source.Field, res.Version), false)

	if _, err := semver.ParseVersion(res.Version); err != nil {
		msg := fmt.Sprintf("release %q is not a semantic version", res.Version)
		if v.cfg.Variables.Strict {
			v.addValidation("Release", false, msg, false)
		} else {
			v.addValidation("Release", true, msg, true)
		}
		return
	}
	v.addValidation("Release", true, fmt.Sprintf("release %s is a semantic version", res.Version), false)
}

func (v *Validator) validateVariables() {
	if _, ok := v.cfg.Variables.Extra[variables.ReleaseKey]; ok {
		v.addValidation("Variables", false, fmt.Sprintf("extra variable %q is reserved for the manifest version", variables.ReleaseKey), false)
		return
	}
	v.addValidation("Variables", true, fmt.Sprintf("output %s with %d extra variable(s)", v.cfg.Variables.Output, len(v.cfg.Variables.Extra)), false)
}

func (v *Validator) validateVersions(ctx context.Context) {
	if _, err := navbar.ParseOutputFormat(v.cfg.Versions.Format); err != nil {
		v.addValidation("Versions", false, err.Error(), false)
	}

	// Legacy entries end up in the menu with or without a version list.
	for i, e := range v.cfg.Versions.Legacy {
		if e.Label == "" || e.To == "" {
			v.addValidation("Versions", false, fmt.Sprintf("legacy entry %d needs both label and to", i), false)
		}
	}

	versions, found, err := navbar.ReadVersionList(ctx, v.fs, v.cfg.Versions.Path)
	if err != nil {
		v.addValidation("Versions", false, err.Error(), false)
		return
	}
	if !found {
		v.addValidation("Versions", true, fmt.Sprintf("%s not found; menu will show a single %q entry", v.cfg.Versions.Path, navbar.LatestLabel), true)
		return
	}
	v.addValidation("Versions", true, fmt.Sprintf("%s lists %d version(s)", v.cfg.Versions.Path, len(versions)), false)

	if i := firstOutOfOrder(versions); i > 0 {
		v.addValidation("Versions", true, fmt.Sprintf("%q is listed after the older %q; the first entry is treated as current", versions[i], versions[i-1]), true)
	}
}

// firstOutOfOrder returns the index of the first label newer than its
// predecessor, or -1. Labels that don't parse are skipped.
func firstOutOfOrder(versions []string) int {
	for i := 1; i < len(versions); i++ {
		prev, err1 := semver.ParseLabel(versions[i-1])
		cur, err2 := semver.ParseLabel(versions[i])
		if err1 != nil || err2 != nil {
			continue
		}
		if cur.Compare(prev) > 0 {
			return i
		}
	}
	return -1
}

func (v *Validator) validateSite() {
	if v.cfg.Site == nil || v.cfg.Site.URL == "" {
		return
	}
	url, err := headtags.ImageURL(v.cfg.Site.URL, v.cfg.Site.BaseURL, v.cfg.Site.OGImage)
	if err != nil {
		v.addValidation("Site", false, err.Error(), false)
		return
	}
	v.addValidation("Site", true, "og:image "+url, false)
}

func (v *Validator) validateSidebar(ctx context.Context) {
	if v.cfg.Sidebar == nil {
		return
	}
	if v.cfg.Sidebar.Input == "" || v.cfg.Sidebar.Output == "" {
		v.addValidation("Sidebar", false, "sidebar needs both input and output", false)
		return
	}
	data, err := v.fs.ReadFile(ctx, v.cfg.Sidebar.Input)
	if err != nil {
		v.addValidation("Sidebar", false, fmt.Sprintf("cannot read %s: %v", v.cfg.Sidebar.Input, err), false)
		return
	}
	sidebars, err := sidebar.Parse(data)
	if err == nil {
		err = sidebars.Validate()
	}
	if err != nil {
		v.addValidation("Sidebar", false, err.Error(), false)
		return
	}
	v.addValidation("Sidebar", true, fmt.Sprintf("%d sidebar(s), %d doc(s)", len(sidebars), len(sidebars.DocIDs())), false)
}

func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" || tui.IsValidTheme(v.cfg.Theme) {
		return
	}
	v.addValidation("Theme", true, fmt.Sprintf("unknown theme %q, using %s", v.cfg.Theme, DefaultTheme), true)
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
