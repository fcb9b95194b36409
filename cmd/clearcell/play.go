package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clearcell/internal/core"
	"github.com/vovakirdan/tui-clearcell/internal/games/clearcell"
	"github.com/vovakirdan/tui-clearcell/internal/platform/tui"
	"github.com/vovakirdan/tui-clearcell/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagCols       int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without flags an interactive setup menu picks the
board size and difficulty.

Controls:
  Arrows/WASD - Move cursor
  Enter/Click - Clear the cell and its same-colored neighbors
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  clearcell play
  clearcell play clearcell --difficulty easy
  clearcell play clearcell --rows 8 --cols 10
  clearcell play clearcell --config ./my-clearcell.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = from config or setup menu)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = from config or setup menu)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "clearcell",
	})

	gameID := "clearcell"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		logger.Error("unknown game", "game", gameID)
		logger.Print("Run 'clearcell list' to see available games.")
		os.Exit(1)
	}

	// Probe the terminal size early for the setup menu
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	clearcell.SetConfigPath(flagConfig)
	clearcell.SetDifficultyPreset(flagDifficulty)

	if flagRows > 0 || flagCols > 0 {
		clearcell.SetBoardSize(flagRows, flagCols)
	} else {
		// Show the interactive setup menu
		selection, updatedCfg, selErr := tui.RunSetupMenu(cfg)
		if selErr != nil {
			logger.Fatal("setup menu failed", "err", selErr)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		clearcell.SetBoardSize(selection.Rows, selection.Cols)
		if flagDifficulty == "" {
			clearcell.SetDifficultyPreset(string(selection.Preset))
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("creating game", "err", err)
	}

	if runErr := tui.Run(game, cfg); runErr != nil {
		logger.Fatal("running game", "err", runErr)
	}
}
