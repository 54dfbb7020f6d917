// Package sidebar turns a YAML sidebar definition into the JSON sidebar
// tree the docs framework loads.
//
// A definition maps sidebar names to ordered item lists. An item is either a
// doc id or a category:
//
//	someSidebar:
//	  - label: Intro
//	    items: [index]
//	  - label: Rasa SDK
//	    items:
//	      - running-action-server
//	      - label: Writing Custom Actions
//	        collapsed: true
//	        items: [sdk-actions, sdk-tracker]
package sidebar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sidebars is an ordered set of named sidebars.
type Sidebars []Sidebar

// Sidebar is one named navigation tree.
type Sidebar struct {
	Name  string
	Items []Item
}

// Item is a doc reference (Doc set) or a category (Category set).
type Item struct {
	Doc      string
	Category *Category
}

// Category groups items under a collapsible label.
type Category struct {
	Label     string
	Collapsed *bool
	Items     []Item
}

// Parse decodes a YAML sidebar definition, keeping sidebar order.
func Parse(data []byte) (Sidebars, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sidebar definition: %w", err)
	}

	sidebars := make(Sidebars, 0, len(doc))
	for _, entry := range doc {
		name, ok := entry.Key.(string)
		if !ok {
			return nil, fmt.Errorf("sidebar name %v must be a string", entry.Key)
		}
		raw, ok := entry.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("sidebar %q: expected a list of items", name)
		}
		items, err := parseItems(raw, name)
		if err != nil {
			return nil, err
		}
		sidebars = append(sidebars, Sidebar{Name: name, Items: items})
	}
	return sidebars, nil
}

func parseItems(raw []any, where string) ([]Item, error) {
	items := make([]Item, 0, len(raw))
	for i, r := range raw {
		item, err := parseItem(r, fmt.Sprintf("%s[%d]", where, i))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(raw any, where string) (Item, error) {
	switch v := raw.(type) {
	case string:
		return Item{Doc: v}, nil
	case map[string]any:
		return parseCategory(v, where)
	default:
		return Item{}, fmt.Errorf("%s: expected a doc id or a category, got %T", where, raw)
	}
}

func parseCategory(m map[string]any, where string) (Item, error) {
	cat := &Category{}
	for key, value := range m {
		switch key {
		case "label":
			s, ok := value.(string)
			if !ok {
				return Item{}, fmt.Errorf("%s: label must be a string", where)
			}
			cat.Label = s
		case "collapsed":
			b, ok := value.(bool)
			if !ok {
				return Item{}, fmt.Errorf("%s: collapsed must be a boolean", where)
			}
			cat.Collapsed = &b
		case "items":
			raw, ok := value.([]any)
			if !ok {
				return Item{}, fmt.Errorf("%s: items must be a list", where)
			}
			items, err := parseItems(raw, where+".items")
			if err != nil {
				return Item{}, err
			}
			cat.Items = items
		default:
			return Item{}, fmt.Errorf("%s: unknown category field %q", where, key)
		}
	}
	return Item{Category: cat}, nil
}

// Validate reports every structural problem found, joined into one error.
func (s Sidebars) Validate() error {
	var errs []error
	names := make(map[string]bool, len(s))
	for _, sb := range s {
		if strings.TrimSpace(sb.Name) == "" {
			errs = append(errs, errors.New("sidebar name cannot be empty"))
		}
		if names[sb.Name] {
			errs = append(errs, fmt.Errorf("sidebar %q is defined twice", sb.Name))
		}
		names[sb.Name] = true
		if len(sb.Items) == 0 {
			errs = append(errs, fmt.Errorf("sidebar %q has no items", sb.Name))
		}
		seen := make(map[string]bool)
		errs = append(errs, validateItems(sb.Items, sb.Name, seen)...)
	}
	return errors.Join(errs...)
}

func validateItems(items []Item, where string, seen map[string]bool) []error {
	var errs []error
	for _, it := range items {
		if it.Category == nil {
			if strings.TrimSpace(it.Doc) == "" {
				errs = append(errs, fmt.Errorf("%s: empty doc id", where))
				continue
			}
			if seen[it.Doc] {
				errs = append(errs, fmt.Errorf("%s: doc %q listed more than once", where, it.Doc))
			}
			seen[it.Doc] = true
			continue
		}
		label := it.Category.Label
		if strings.TrimSpace(label) == "" {
			errs = append(errs, fmt.Errorf("%s: category without label", where))
			label = "?"
		}
		if len(it.Category.Items) == 0 {
			errs = append(errs, fmt.Errorf("%s > %s: category has no items", where, label))
		}
		errs = append(errs, validateItems(it.Category.Items, where+" > "+label, seen)...)
	}
	return errs
}

// DocIDs returns every doc id referenced, in order of appearance.
func (s Sidebars) DocIDs() []string {
	var ids []string
	var walk func([]Item)
	walk = func(items []Item) {
		for _, it := range items {
			if it.Category != nil {
				walk(it.Category.Items)
				continue
			}
			ids = append(ids, it.Doc)
		}
	}
	for _, sb := range s {
		walk(sb.Items)
	}
	return ids
}

type categoryJSON struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	Collapsed *bool  `json:"collapsed,omitempty"`
	Items     []Item `json:"items"`
}

// MarshalJSON encodes a doc as its id and a category as a typed object.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Category == nil {
		return json.Marshal(it.Doc)
	}
	items := it.Category.Items
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(categoryJSON{
		Type:      "category",
		Label:     it.Category.Label,
		Collapsed: it.Category.Collapsed,
		Items:     items,
	})
}

// MarshalJSON encodes the sidebars as one object, keeping definition order.
func (s Sidebars) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sb := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sb.Name)
		if err != nil {
			return nil, err
		}
		items := sb.Items
		if items == nil {
			items = []Item{}
		}
		body, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("sidebar %q: %w", sb.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Render returns the indented JSON document with a trailing newline.
func (s Sidebars) Render() ([]byte, error) {
	compact, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
