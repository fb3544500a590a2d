// Package tilemap holds the immutable per-level tile grid and the tile-type
// table that says which tiles block movement.
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// DefaultTile is substituted for malformed or unknown map entries.
const DefaultTile = 0

var ErrEmptyMap = errors.New("tilemap: empty map")

type TileType struct {
	ID    int
	Name  string
	Solid bool
	Color color.Color
}

// Table maps tile ids to their types. Ids are dense from zero.
type Table []TileType

func (t Table) Valid(id int) bool {
	return id >= 0 && id < len(t)
}

func (t Table) Solid(id int) bool {
	if !t.Valid(id) {
		return true
	}
	return t[id].Solid
}

// Problem describes a map entry that was replaced with DefaultTile.
type Problem struct {
	Row, Col int
	Msg      string
}

func (p Problem) String() string {
	if p.Col < 0 {
		return fmt.Sprintf("row %d: %s", p.Row, p.Msg)
	}
	return fmt.Sprintf("row %d col %d: %s", p.Row, p.Col, p.Msg)
}

type Map struct {
	cols, rows int
	tiles      []int
	table      Table
}

// New returns a cols x rows map filled with DefaultTile.
func New(cols, rows int, table Table) *Map {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Map{
		cols:  cols,
		rows:  rows,
		tiles: make([]int, cols*rows),
		table: table,
	}
}

func (m *Map) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

func (m *Map) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

func (m *Map) Table() Table {
	if m == nil {
		return nil
	}
	return m.table
}

func (m *Map) InBounds(col, row int) bool {
	return m != nil && col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// At returns the tile id at (col, row).
func (m *Map) At(col, row int) (int, bool) {
	if !m.InBounds(col, row) {
		return 0, false
	}
	return m.tiles[row*m.cols+col], true
}

// Solid reports whether (col, row) blocks movement. Coordinates outside the
// map are the world boundary and always solid.
func (m *Map) Solid(col, row int) bool {
	id, ok := m.At(col, row)
	if !ok {
		return true
	}
	return m.table.Solid(id)
}

// Set writes a tile id; ids missing from the table are stored as DefaultTile.
func (m *Map) Set(col, row, id int) {
	if !m.InBounds(col, row) {
		return
	}
	if !m.table.Valid(id) {
		id = DefaultTile
	}
	m.tiles[row*m.cols+col] = id
}

// Parse reads the text map format: one row per line, space separated tile
// ids. Bad entries never abort the load; they become DefaultTile and are
// reported as problems. Only a map with no rows at all is an error.
func Parse(r io.Reader, cols, rows int, table Table) (*Map, []Problem, error) {
	m := New(cols, rows, table)
	var problems []Problem

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if row >= rows {
			problems = append(problems, Problem{Row: row, Col: -1, Msg: "extra row ignored"})
			row++
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != cols {
			problems = append(problems, Problem{Row: row, Col: -1, Msg: fmt.Sprintf("has %d columns, want %d", len(fields), cols)})
		}
		for col := 0; col < cols && col < len(fields); col++ {
			id, err := strconv.Atoi(fields[col])
			if err != nil {
				problems = append(problems, Problem{Row: row, Col: col, Msg: fmt.Sprintf("malformed tile %q", fields[col])})
				continue
			}
			if !table.Valid(id) {
				problems = append(problems, Problem{Row: row, Col: col, Msg: fmt.Sprintf("unknown tile id %d", id)})
				continue
			}
			m.Set(col, row, id)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, problems, fmt.Errorf("tilemap: read: %w", err)
	}
	if row == 0 {
		return nil, problems, ErrEmptyMap
	}
	if row < rows {
		problems = append(problems, Problem{Row: row, Col: -1, Msg: fmt.Sprintf("map has %d rows, want %d", row, rows)})
	}
	return m, problems, nil
}
