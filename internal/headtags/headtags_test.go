package headtags

import (
	"strings"
	"testing"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name      string
		siteURL   string
		baseURL   string
		imagePath string
		want      string
		wantErr   bool
	}{
		{
			name:    "root base",
			siteURL: "https://rasa.com",
			baseURL: "/",
			want:    "https://rasa.com/img/og-image.png",
		},
		{
			name:    "nested base",
			siteURL: "https://rasa.com",
			baseURL: "/docs/action-server/",
			want:    "https://rasa.com/docs/action-server/img/og-image.png",
		},
		{
			name:      "slashes normalized",
			siteURL:   "https://rasa.com/",
			baseURL:   "docs",
			imagePath: "/img/card.png",
			want:      "https://rasa.com/docs/img/card.png",
		},
		{
			name:    "empty base",
			siteURL: "https://example.org",
			want:    "https://example.org/img/og-image.png",
		},
		{
			name:    "missing site url",
			wantErr: true,
		},
		{
			name:    "relative site url",
			siteURL: "rasa.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImageURL(tt.siteURL, tt.baseURL, tt.imagePath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ImageURL() err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tag, err := OGImage("https://rasa.com", "/docs/action-server/", "")
	if err != nil {
		t.Fatal(err)
	}

	got, err := Render([]Tag{tag})
	if err != nil {
		t.Fatal(err)
	}

	want := `<meta property="og:image" content="https://rasa.com/docs/action-server/img/og-image.png"/>` + "\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_EscapesAttributes(t *testing.T) {
	tag := Tag{TagName: "meta", Attributes: map[string]string{"name": "description", "content": `a "quoted" <b>`}}

	got, err := Render([]Tag{tag})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, `"quoted"`) || strings.Contains(got, "<b>") {
		t.Errorf("attribute value not escaped: %s", got)
	}
	if !strings.HasPrefix(got, `<meta content=`) {
		t.Errorf("unordered attributes should render sorted, got %s", got)
	}
}

func TestMarshalPlugin(t *testing.T) {
	tag, err := OGImage("https://example.com", "/", "")
	if err != nil {
		t.Fatal(err)
	}

	out, err := MarshalPlugin([]Tag{tag})
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "headTags": [
        {
            "tagName": "meta",
            "attributes": {
                "content": "https://example.com/img/og-image.png",
                "property": "og:image"
            }
        }
    ]
}
`
	if string(out) != want {
		t.Errorf("MarshalPlugin() =\n%s\nwant\n%s", out, want)
	}

	empty, err := MarshalPlugin(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(empty), `"headTags": []`) {
		t.Errorf("expected empty list, got %s", empty)
	}
}
