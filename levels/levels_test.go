package levels

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/limitless/tilemap"
	"gopkg.in/yaml.v3"
)

func TestLoadTileTable(t *testing.T) {
	table, err := LoadTileTable()
	if err != nil {
		t.Fatalf("LoadTileTable: %v", err)
	}
	if len(table) != 11 {
		t.Fatalf("expected 11 tile types, got %d", len(table))
	}
	for id := 3; id <= 9; id++ {
		if !table.Solid(id) {
			t.Fatalf("tile %d should be solid", id)
		}
	}
	for _, id := range []int{0, 1, 2, 10} {
		if table.Solid(id) {
			t.Fatalf("tile %d should be passable", id)
		}
	}
}

func TestTileSetSpecTable(t *testing.T) {
	cases := []struct {
		name    string
		spec    TileSetSpec
		wantErr bool
	}{
		{"empty", TileSetSpec{}, true},
		{"gap", TileSetSpec{Tiles: []TileSpec{{ID: 0}, {ID: 2}}}, true},
		{"duplicate", TileSetSpec{Tiles: []TileSpec{{ID: 0}, {ID: 0}}}, true},
		{"dense", TileSetSpec{Tiles: []TileSpec{{ID: 1, Solid: true}, {ID: 0}}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.spec.Table()
			if (err != nil) != c.wantErr {
				t.Fatalf("wantErr %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadEmbeddedWorld(t *testing.T) {
	table, err := LoadTileTable()
	if err != nil {
		t.Fatalf("LoadTileTable: %v", err)
	}
	m, problems, err := LoadMap("world01.txt", 69, 68, table)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("embedded world should be clean, got %v", problems)
	}
	if m.Solid(12, 10) {
		t.Fatalf("player spawn tile should be passable")
	}
	if !m.Solid(0, 0) {
		t.Fatalf("world border should be solid")
	}
}

func TestLoadMapFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := LoadMapFile(path, 3, 3, tilemap.Table{{ID: 0}})
	if !errors.Is(err, tilemap.ErrEmptyMap) {
		t.Fatalf("expected ErrEmptyMap, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#102030"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#12"`, wantErr: true},
		{in: `"#zz2030"`, wantErr: true},
	}
	for _, c := range cases {
		var got YAMLColor
		err := yaml.Unmarshal([]byte(c.in), &got)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if got.Color != c.want {
			t.Fatalf("%s: got %v want %v", c.in, got.Color, c.want)
		}
	}
}
