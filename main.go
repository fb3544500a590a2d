// limitless is a tile-based action RPG.
//
// Usage:
//
//	limitless                    - Open the game window
//	limitless sim                - Run the game headless with scripted input
//	limitless mapcheck <file>    - Report problems in a map file
//
// Global flags:
//
//	--config <path>  - YAML file layered over the built-in defaults
//	--save <path>    - SQLite save database (empty keeps saves in memory)
//	--map <name>     - Map file or name under levels/
//	--tps <rate>     - Override the tick rate
//	--seed <value>   - Seed for NPC wandering (0 = time based)
//	--debug          - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagSave   string
	flagMap    string
	flagTPS    int
	flagSeed   uint64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "limitless",
	Short: "Limitless - a tile-based action RPG",
	Long: `Limitless opens the game window.

Controls:
  WASD/Arrows  - Move (menus: navigate)
  Shift        - Run
  E            - Interact / advance dialogue
  Space        - Swing your weapon
  Enter        - Confirm
  Esc          - Pause / back
  F5/F6/F7     - Save / load / delete save

Examples:
  limitless
  limitless --save ~/.limitless/save.db
  limitless --config ./tuning.yaml --debug
  limitless sim --ticks 600 --script "confirm,right*120"
  limitless mapcheck levels/world01.txt`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML layered over the defaults")
	rootCmd.PersistentFlags().StringVar(&flagSave, "save", "", "Path to the save database (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Map file or name under levels/")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Tick rate override (0 = config value)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(mapcheckCmd)
}
