package environments

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the wire shape of a catalog YAML document.
type catalogFile struct {
	Default      string       `yaml:"default"`
	Environments []Descriptor `yaml:"environments"`
}

// Parse builds a catalog from YAML catalog data.
// The document must list at least one environment, ids must be unique, and
// the default id must name a listed environment. When no default is given
// the first listed environment is used.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("environments: parsing catalog: %w", err)
	}
	if len(file.Environments) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		byID:    make(map[string]int, len(file.Environments)),
		ordered: make([]Descriptor, 0, len(file.Environments)),
	}
	for _, d := range file.Environments {
		d.ID = strings.ToLower(strings.TrimSpace(d.ID))
		d.Origin = strings.TrimSpace(d.Origin)
		if d.ID == "" || d.Origin == "" {
			return nil, fmt.Errorf("%w: id and origin are required", ErrInvalidDescriptor)
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		c.byID[d.ID] = len(c.ordered)
		c.ordered = append(c.ordered, d)
	}

	c.defaultID = strings.ToLower(strings.TrimSpace(file.Default))
	if c.defaultID == "" {
		c.defaultID = c.ordered[0].ID
	}
	if _, ok := c.byID[c.defaultID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, c.defaultID)
	}

	return c, nil
}

// LoadFS reads and parses a catalog file from an fs.FS.
// Use this to supply a custom environment set instead of the builtin one.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("environments: reading %q: %w", path, err)
	}
	return Parse(data)
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}
