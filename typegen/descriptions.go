package typegen

import (
	"os"

	"github.com/teranos/declgen/errors"
	"gopkg.in/yaml.v3"
)

// Descriptions supplies human-readable documentation by locator: a type ID
// ("yfiles.graph.IGraph") or a member ("yfiles.graph.IGraph.nodes").
type Descriptions interface {
	Description(locator string) (string, bool)
}

// NoDescriptions is the empty collaborator.
type NoDescriptions struct{}

// Description always reports no text.
func (NoDescriptions) Description(string) (string, bool) { return "", false }

// DescriptionMap is a Descriptions backed by a map.
type DescriptionMap map[string]string

// Description returns the non-empty text stored for locator.
func (m DescriptionMap) Description(locator string) (string, bool) {
	text, ok := m[locator]
	return text, ok && text != ""
}

// LoadDescriptions reads a YAML mapping of locator to text. An empty path
// yields NoDescriptions.
func LoadDescriptions(path string) (Descriptions, error) {
	if path == "" {
		return NoDescriptions{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptions %s", path)
	}
	m := DescriptionMap{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse descriptions %s", path)
	}
	return m, nil
}
