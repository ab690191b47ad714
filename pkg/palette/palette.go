// Package palette loads named color palettes from YAML files.
//
// A palette file maps names to colors, where each color is either a
// string (hex or SVG color name) or an explicit channel mapping:
//
//	colors:
//	  brand: "#3366cc"
//	  accent: steelblue
//	  scrim: {red: 0, green: 0, blue: 0, alpha: 0.32}
package palette

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tint/pkg/color"
	"github.com/go-drift/tint/pkg/errors"
)

// DefaultFileName is the palette file LoadOptional looks for.
const DefaultFileName = "tint.yaml"

// Palette is an immutable set of named colors.
type Palette struct {
	colors map[string]color.Color
}

// file mirrors the YAML document structure.
type file struct {
	Colors map[string]entry `yaml:"colors"`
}

// entry accepts either a scalar color string or a channel mapping.
type entry struct {
	c color.Color
}

// channels is the explicit mapping form. Alpha defaults to 1.
type channels struct {
	Red   float64  `yaml:"red"`
	Green float64  `yaml:"green"`
	Blue  float64  `yaml:"blue"`
	Alpha *float64 `yaml:"alpha"`
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		c, err := color.Parse(s)
		if err != nil {
			return err
		}
		e.c = c
		return nil
	case yaml.MappingNode:
		var ch channels
		if err := node.Decode(&ch); err != nil {
			return err
		}
		alpha := 1.0
		if ch.Alpha != nil {
			alpha = *ch.Alpha
		}
		c, err := color.New(ch.Red, ch.Green, ch.Blue, alpha)
		if err != nil {
			return err
		}
		e.c = c
		return nil
	default:
		return fmt.Errorf("line %d: color entry must be a string or a channel mapping", node.Line)
	}
}

// Parse parses palette YAML data.
func Parse(data []byte) (*Palette, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	colors := make(map[string]color.Color, len(f.Colors))
	for name, e := range f.Colors {
		colors[name] = e.c
	}
	return &Palette{colors: colors}, nil
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.TintError{Op: "palette.Load", Kind: errors.KindPalette, Path: path, Err: err}
	}
	p, err := Parse(data)
	if err != nil {
		return nil, &errors.TintError{Op: "palette.Load", Kind: errors.KindPalette, Path: path, Err: err}
	}
	return p, nil
}

// LoadOptional reads dir/tint.yaml if present.
// A missing file yields an empty palette, not an error.
func LoadOptional(dir string) (*Palette, error) {
	p, err := Load(filepath.Join(dir, DefaultFileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Palette{colors: map[string]color.Color{}}, nil
		}
		return nil, err
	}
	return p, nil
}

// Resolve looks up a color by name.
func (p *Palette) Resolve(name string) (color.Color, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Names returns all palette names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}
