package clearcell

import (
	"math/rand"

	"github.com/vovakirdan/tui-clearcell/internal/config"
	"github.com/vovakirdan/tui-clearcell/internal/core"
	"github.com/vovakirdan/tui-clearcell/internal/registry"
)

// Game adapts the Board engine to the platform: it owns the cursor,
// translates input into clicks, and drives the periodic row insertion.
type Game struct {
	cfg      config.ClearCellConfig
	diff     *config.DifficultyManager
	rng      *rand.Rand
	tick     uint64
	tickRate int // Simulation ticks per second, for HUD timers

	board        *Board
	insertIn     int // Ticks until the next inserted row
	cursorRow    int
	cursorCol    int
	clearedFlash int // Ticks left on the "cells cleared" HUD flash
	lastCleared  int // Cells cleared by the most recent click

	// Screen dimensions and cached board origin for pointer mapping
	screenW int
	screenH int
	boardX  int
	boardY  int

	paused   bool
	tooSmall bool
}

// Package-level variables for config, set by the CLI before creation.
var (
	selectedConfigPath string
	selectedPreset     string
	selectedRows       int
	selectedCols       int
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	selectedPreset = preset
}

// SetBoardSize overrides the configured board dimensions. Zero keeps the
// configured value.
func SetBoardSize(rows, cols int) {
	selectedRows = rows
	selectedCols = cols
}

// New creates a new clearcell game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("clearcell", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "clearcell"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Clear Cell"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadClearCell(selectedConfigPath)
	if err != nil {
		gameCfg = config.DefaultClearCellConfig()
	}
	if selectedRows > 0 {
		gameCfg.Board.Rows = selectedRows
	}
	if selectedCols > 0 {
		gameCfg.Board.Cols = selectedCols
	}

	g.cfg = gameCfg
	g.diff = config.NewDifficultyManager(gameCfg.Difficulty)
	if selectedPreset != "" {
		g.diff.ApplyPreset(config.DifficultyPreset(selectedPreset))
	}
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(gameCfg.Board.Rows, gameCfg.Board.Cols, NewRandomSource(g.rng))

	g.tick = 0
	g.insertIn = gameCfg.Timing.InsertEveryTicks
	g.cursorRow = gameCfg.Board.Rows / 2
	g.cursorCol = gameCfg.Board.Cols / 2
	g.clearedFlash = 0
	g.lastCleared = 0
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.boardPixelW() + 2
	minH := g.boardPixelH() + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.clearedFlash > 0 {
		g.clearedFlash--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform via Reset.
	if g.board.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.click(g.cursorRow, g.cursorCol)
	}
	if x, y, ok := in.Click(); ok {
		if row, col, onBoard := g.cellAtScreen(x, y); onBoard {
			g.cursorRow, g.cursorCol = row, col
			g.click(row, col)
		}
	}

	g.insertIn--
	if g.insertIn <= 0 {
		g.board.AdvanceOneStep()
		g.insertIn = g.diff.InsertInterval(
			g.cfg.Timing.InsertEveryTicks,
			g.cfg.Timing.MinInsertTicks,
			g.board.Score(),
			int(g.tick),
		)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.board.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.board.Cols()-1)
}

// click clears at the given board position and tracks the HUD flash.
func (g *Game) click(row, col int) {
	before := g.board.Score()
	// Coordinates are pre-clamped, validation cannot fail here.
	_ = g.board.ProcessClick(row, col)
	if cleared := g.board.Score() - before; cleared > 0 {
		g.lastCleared = cleared
		g.clearedFlash = g.tickRate * 3 / 2 // 1.5s flash
	}
}

// cellAtScreen maps a screen position to board coordinates.
func (g *Game) cellAtScreen(x, y int) (row, col int, ok bool) {
	col = (x - g.boardX - 1) / cellWidth
	row = y - g.boardY - 1
	if row < 0 || row >= g.board.Rows() || col < 0 || col >= g.board.Cols() {
		return 0, 0, false
	}
	// Reject clicks on the border column itself
	if x < g.boardX+1 || x >= g.boardX+1+g.board.Cols()*cellWidth {
		return 0, 0, false
	}
	return row, col, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
