// Package headtags builds the HTML head tags the docs theme injects into every page.
package headtags

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultOGImage is the social preview image path, relative to the base URL.
const DefaultOGImage = "img/og-image.png"

// Tag is a single head element.
type Tag struct {
	TagName    string            `json:"tagName"`
	Attributes map[string]string `json:"attributes"`
	// order is the HTML attribute order; unordered attributes render sorted.
	order []string
}

// OGImage returns the og:image meta tag for a site served at siteURL+baseURL.
func OGImage(siteURL, baseURL, imagePath string) (Tag, error) {
	content, err := ImageURL(siteURL, baseURL, imagePath)
	if err != nil {
		return Tag{}, err
	}
	return Tag{
		TagName:    "meta",
		Attributes: map[string]string{"property": "og:image", "content": content},
		order:      []string{"property", "content"},
	}, nil
}

// ImageURL joins the site URL, base URL and image path with exactly one slash
// between each part.
func ImageURL(siteURL, baseURL, imagePath string) (string, error) {
	if siteURL == "" {
		return "", fmt.Errorf("site URL is required")
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid site URL %q: %w", siteURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("site URL %q must be absolute (e.g. https://example.com)", siteURL)
	}

	if imagePath == "" {
		imagePath = DefaultOGImage
	}
	base := "/" + strings.Trim(baseURL, "/")
	if base != "/" {
		base += "/"
	}
	return strings.TrimRight(siteURL, "/") + base + strings.TrimLeft(imagePath, "/"), nil
}

func (t Tag) attrOrder() []string {
	if len(t.order) == len(t.Attributes) {
		return t.order
	}
	keys := make([]string, 0, len(t.Attributes))
	for k := range t.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Render writes the tags as HTML, one per line.
func Render(tags []Tag) (string, error) {
	var buf bytes.Buffer
	for _, t := range tags {
		n := &html.Node{Type: html.ElementNode, Data: t.TagName, DataAtom: atom.Lookup([]byte(t.TagName))}
		for _, k := range t.attrOrder() {
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: t.Attributes[k]})
		}
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render <%s>: %w", t.TagName, err)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// MarshalPlugin returns the {"headTags": [...]} document a theme plugin returns.
func MarshalPlugin(tags []Tag) ([]byte, error) {
	if tags == nil {
		tags = []Tag{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(struct {
		HeadTags []Tag `json:"headTags"`
	}{tags}); err != nil {
		return nil, fmt.Errorf("failed to encode head tags: %w", err)
	}
	return buf.Bytes(), nil
}
