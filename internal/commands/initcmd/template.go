package initcmd

import (
	"github.com/goccy/go-yaml"
)

const header = `# docvars configuration file
# Keys not listed here fall back to built-in defaults.
# Run 'docvars doctor' after editing.

`

// commentedMarshaler writes the config as YAML below a short header.
type commentedMarshaler struct{}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	body, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
	if err != nil {
		return nil, err
	}
	return append([]byte(header), body...), nil
}
