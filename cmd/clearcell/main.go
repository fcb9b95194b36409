// clearcell is a terminal puzzle game: click groups of same-colored cells
// to clear them before the rising stack reaches the bottom of the board.
//
// Usage:
//
//	clearcell list         - List available games
//	clearcell play         - Play (interactive setup menu)
//	clearcell play clearcell --rows 12 --cols 16
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-clearcell/internal/games/clearcell"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clearcell",
	Short: "Clear Cell - a falling-block puzzle in your terminal",
	Long: `Clear Cell is a terminal puzzle game. A new row of colored cells
drops in from the top on a timer; click a cell to clear it together with
its same-colored neighbors. Fully cleared rows collapse. The game ends
when the stack reaches the bottom row.

Available commands:
  list     - Show all available games
  play     - Play the game

Examples:
  clearcell list
  clearcell play
  clearcell play clearcell --difficulty hard
  clearcell play clearcell --rows 8 --cols 10 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
