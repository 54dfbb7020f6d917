package buildcmd

import (
	"strings"
	"testing"

	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/testutils"
	"github.com/urfave/cli/v3"
)

func runBuild(t *testing.T, cfg *config.Config) error {
	t.Helper()
	printer.SetQuiet(true)
	t.Cleanup(func() { printer.SetQuiet(false) })
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})
	_, err := testutils.RunWithOutput(t, app, []string{"docvars", "build"})
	return err
}

func TestBuildCmd_VariablesOnly(t *testing.T) {
	fsys := testutils.UseMockFS(t)
	fsys.SetFile("../pyproject.toml", []byte("[tool.poetry]\nversion = \"3.5.0\"\n"))

	if err := runBuild(t, config.Default()); err != nil {
		t.Fatalf("build error = %v", err)
	}
	if fsys.WriteCount() != 1 {
		t.Errorf("only the variables file should be written, got %d writes", fsys.WriteCount())
	}
}

func TestBuildCmd_AllSteps(t *testing.T) {
	fsys := testutils.UseMockFS(t)
	fsys.SetFile("../pyproject.toml", []byte("[tool.poetry]\nversion = \"3.5.0\"\n"))
	fsys.SetFile("sidebars.yaml", []byte("main: [index]\n"))

	cfg := config.Default()
	cfg.Versions.Output = "docs/navbar.json"
	cfg.Sidebar = &config.SidebarConfig{Input: "sidebars.yaml", Output: "docs/sidebars.json"}
	cfg.Site = &config.SiteConfig{URL: "https://rasa.com", HeadTagsOutput: "docs/head-tags.json"}

	if err := runBuild(t, cfg); err != nil {
		t.Fatalf("build error = %v", err)
	}
	for _, p := range []string{"./docs/variables.json", "docs/navbar.json", "docs/sidebars.json", "docs/head-tags.json"} {
		if _, ok := fsys.GetFile(p); !ok {
			t.Errorf("%s was not written", p)
		}
	}
	if navbar, _ := fsys.GetFile("docs/navbar.json"); !strings.Contains(string(navbar), `"Latest"`) {
		t.Errorf("missing version list should yield the Latest entry, got %s", navbar)
	}
}

func TestBuildCmd_StopsAtFirstFailure(t *testing.T) {
	fsys := testutils.UseMockFS(t)
	cfg := config.Default()
	cfg.Versions.Output = "docs/navbar.json"

	err := runBuild(t, cfg)
	if err == nil || !strings.HasPrefix(err.Error(), "variables:") {
		t.Fatalf("expected the variables step to fail first, got %v", err)
	}
	if fsys.WriteCount() != 0 {
		t.Errorf("no artifact should be written after a failure, got %d", fsys.WriteCount())
	}
}
