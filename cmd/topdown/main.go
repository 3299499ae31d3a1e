// topdown is a top-down arcade shooter played in the terminal.
//
// Usage:
//
//	topdown                  - Play the game
//	topdown config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: display.fps from config)
//	--seed <value>         - Set RNG seed for reproducible enemy speeds
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--assets <dir>         - Load PNG sprite frames from a directory
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "Top-down arcade shooter in your terminal",
	Long: `Move with the arrow keys or WASD, aim with the mouse and click to fire.
Destroy every enemy before one of them reaches you.

Controls:
  ←↑↓→/WASD    - Move
  Mouse        - Aim
  Click/Space  - Start, then fire
  Q/Esc        - Quit

Examples:
  topdown
  topdown --difficulty hard
  topdown --seed 42 --log-file topdown.log --log-level debug
  topdown --assets ./images
  topdown config > ~/.topdown/configs/topdown.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of PNG sprite frames (default: embedded sheet)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
