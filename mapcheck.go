package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/limitless/levels"
	"github.com/milk9111/limitless/tilemap"
)

var mapcheckCmd = &cobra.Command{
	Use:   "mapcheck <file>",
	Short: "Report problems in a map file",
	Long: `Parses a map file with the configured world size and tile table and
lists every entry that would be replaced with the default tile.`,
	Args: cobra.ExactArgs(1),
	RunE: runMapcheck,
}

func runMapcheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := levels.LoadTileTable()
	if err != nil {
		return err
	}

	path := args[0]
	m, problems, err := levels.LoadMapFile(path, cfg.Game.WorldCols, cfg.Game.WorldRows, table)
	if errors.Is(err, tilemap.ErrEmptyMap) {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range problems {
		fmt.Fprintf(out, "%s: %s\n", path, p)
	}
	solid := 0
	for row := range m.Rows() {
		for col := range m.Cols() {
			if m.Solid(col, row) {
				solid++
			}
		}
	}
	fmt.Fprintf(out, "%s: %dx%d, %d solid tiles, %d problems\n", path, m.Cols(), m.Rows(), solid, len(problems))
	return nil
}
