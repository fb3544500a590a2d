package levels

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/limitless/tilemap"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("levels: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("levels: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TileSetSpec struct {
	Tiles []TileSpec `yaml:"tiles"`
}

type TileSpec struct {
	ID    int        `yaml:"id"`
	Name  string     `yaml:"name"`
	Solid bool       `yaml:"solid"`
	Color *YAMLColor `yaml:"color"`
}

// LoadTileTable builds the tile-type table from tiles.yaml. Ids must be
// dense from zero so every map entry resolves.
func LoadTileTable() (tilemap.Table, error) {
	spec, err := LoadSpec[TileSetSpec]("tiles.yaml")
	if err != nil {
		return nil, err
	}
	return spec.Table()
}

func (s TileSetSpec) Table() (tilemap.Table, error) {
	if len(s.Tiles) == 0 {
		return nil, fmt.Errorf("levels: tile set is empty")
	}
	table := make(tilemap.Table, len(s.Tiles))
	seen := make([]bool, len(s.Tiles))
	for _, ts := range s.Tiles {
		if ts.ID < 0 || ts.ID >= len(s.Tiles) {
			return nil, fmt.Errorf("levels: tile %q id %d out of range", ts.Name, ts.ID)
		}
		if seen[ts.ID] {
			return nil, fmt.Errorf("levels: duplicate tile id %d", ts.ID)
		}
		seen[ts.ID] = true
		tt := tilemap.TileType{ID: ts.ID, Name: ts.Name, Solid: ts.Solid}
		if ts.Color != nil {
			tt.Color = ts.Color.Color
		}
		table[ts.ID] = tt
	}
	return table, nil
}

// LoadMap parses an embedded (or on-disk levels/) map by name.
func LoadMap(name string, cols, rows int, table tilemap.Table) (*tilemap.Map, []tilemap.Problem, error) {
	data, err := Load(name)
	if err != nil {
		return nil, nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return parseMap(name, data, cols, rows, table)
}

// LoadMapFile parses a map at an arbitrary filesystem path.
func LoadMapFile(path string, cols, rows int, table tilemap.Table) (*tilemap.Map, []tilemap.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return parseMap(path, data, cols, rows, table)
}

func parseMap(name string, data []byte, cols, rows int, table tilemap.Table) (*tilemap.Map, []tilemap.Problem, error) {
	m, problems, err := tilemap.Parse(bytes.NewReader(data), cols, rows, table)
	if err != nil {
		return nil, problems, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return m, problems, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(s); i += 2 {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		channels = append(channels, uint8(v))
	}
	if len(channels) == 3 {
		channels = append(channels, 0xff)
	}

	c.Color = color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	return nil
}
