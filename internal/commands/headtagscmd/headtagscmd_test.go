package headtagscmd

import (
	"strings"
	"testing"

	"github.com/indaco/docvars/internal/config"
	"github.com/indaco/docvars/internal/printer"
	"github.com/indaco/docvars/internal/testutils"
	"github.com/urfave/cli/v3"
)

func TestHeadtagsCmd(t *testing.T) {
	tests := []struct {
		name string
		site *config.SiteConfig
		args []string
		want string
	}{
		{
			name: "json from config",
			site: &config.SiteConfig{URL: "https://rasa.com", BaseURL: "/docs/action-server/"},
			args: []string{"docvars", "headtags"},
			want: `"content": "https://rasa.com/docs/action-server/img/og-image.png"`,
		},
		{
			name: "html from flags",
			args: []string{"docvars", "headtags", "--site-url", "https://example.org", "--html"},
			want: `<meta property="og:image" content="https://example.org/img/og-image.png"/>`,
		},
		{
			name: "flag overrides config image",
			site: &config.SiteConfig{URL: "https://rasa.com", OGImage: "img/a.png"},
			args: []string{"docvars", "headtags", "--image", "img/b.png", "--html"},
			want: "https://rasa.com/img/b.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.UseMockFS(t)
			cfg := config.Default()
			cfg.Site = tt.site
			app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

			out, err := testutils.RunWithOutput(t, app, tt.args)
			if err != nil {
				t.Fatalf("run error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestHeadtagsCmd_ToFile(t *testing.T) {
	printer.SetQuiet(true)
	t.Cleanup(func() { printer.SetQuiet(false) })

	fsys := testutils.UseMockFS(t)
	cfg := config.Default()
	cfg.Site = &config.SiteConfig{URL: "https://rasa.com", HeadTagsOutput: "docs/head-tags.json"}
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	if _, err := testutils.RunWithOutput(t, app, []string{"docvars", "headtags"}); err != nil {
		t.Fatalf("run error = %v", err)
	}
	got, ok := fsys.GetFile("docs/head-tags.json")
	if !ok || !strings.Contains(string(got), `"headTags"`) {
		t.Errorf("head-tags.json = %q, %v", got, ok)
	}
}

func TestHeadtagsCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing site url", []string{"docvars", "headtags"}},
		{"relative site url", []string{"docvars", "headtags", "--site-url", "rasa.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutils.UseMockFS(t)
			app := testutils.BuildCLIForTests([]*cli.Command{Run(config.Default())})
			if _, err := testutils.RunWithOutput(t, app, tt.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
