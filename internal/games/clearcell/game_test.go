package clearcell

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-clearcell/internal/core"
)

// resetSelections clears the package-level CLI overrides after a test.
func resetSelections(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		selectedConfigPath = ""
		selectedPreset = ""
		selectedRows = 0
		selectedCols = 0
	})
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	if g.tooSmall {
		t.Fatal("test screen unexpectedly too small for the default board")
	}
	return g
}

func TestDeterminism(t *testing.T) {
	resetSelections(t)

	// Two games with the same seed and inputs produce identical snapshots.
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 250:
			input.Set(core.ActionUp)
		case 260:
			input.Set(core.ActionLeft)
		case 270:
			input.Set(core.ActionConfirm)
		case 400:
			input.Set(core.ActionConfirm)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestCursorClamping(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 1)

	input := core.NewInputFrame()
	for i := 0; i < g.board.Cols()+5; i++ {
		input.Clear()
		input.Set(core.ActionLeft)
		input.Set(core.ActionUp)
		g.Step(input)
	}

	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected clamped to (0, 0)", g.cursorRow, g.cursorCol)
	}

	for i := 0; i < g.board.Cols()+g.board.Rows(); i++ {
		input.Clear()
		input.Set(core.ActionRight)
		input.Set(core.ActionDown)
		g.Step(input)
	}

	if g.cursorRow != g.board.Rows()-1 || g.cursorCol != g.board.Cols()-1 {
		t.Errorf("cursor = (%d, %d), expected clamped to bottom-right", g.cursorRow, g.cursorCol)
	}
}

func TestConfirmClearsAtCursor(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 1)

	g.cursorRow = 2
	g.cursorCol = 3
	setRow(g.board, 2, Empty, Empty, Empty, Red)

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, expected 1 after clearing the cursor cell", got)
	}
}

func TestPointerClickClearsCell(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 1)

	setRow(g.board, 4, Blue)

	// Screen position of board cell (4, 0).
	x := g.boardX + 1
	y := g.boardY + 1 + 4

	input := core.NewInputFrame()
	input.SetClick(x, y)
	g.Step(input)

	if got := g.State().Score; got != 1 {
		t.Errorf("score = %d, expected 1 after pointer click", got)
	}
	if g.cursorRow != 4 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected to follow the click to (4, 0)", g.cursorRow, g.cursorCol)
	}
}

func TestPointerClickOutsideBoardIgnored(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 1)
	before := g.Snapshot()

	input := core.NewInputFrame()
	input.SetClick(0, 0) // Far outside the centered board
	g.Step(input)

	after := g.Snapshot()
	if after.Score != before.Score {
		t.Errorf("score changed by an off-board click: %d", after.Score)
	}
	if after.CursorRow != before.CursorRow || after.CursorCol != before.CursorCol {
		t.Error("cursor moved on an off-board click")
	}
}

func TestRowInsertionCadence(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 7)

	interval := g.cfg.Timing.InsertEveryTicks
	input := core.NewInputFrame()

	for i := 0; i < interval-1; i++ {
		g.Step(input)
	}
	if !reflect.DeepEqual(g.board.RowCells(0), make([]Cell, g.board.Cols())) {
		t.Fatal("row inserted before the configured interval elapsed")
	}

	g.Step(input)
	if g.board.LastColoredRow() != 0 || g.board.RowCells(0)[0].IsEmpty() {
		t.Fatal("no row inserted after the configured interval")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 3)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Fatal("game did not pause")
	}

	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 500; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if after.TicksToInsert != before.TicksToInsert {
		t.Error("insertion countdown advanced while paused")
	}
	if !reflect.DeepEqual(after.Board, before.Board) {
		t.Error("board changed while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("game did not unpause")
	}
}

func TestGameOverFreezesBoard(t *testing.T) {
	resetSelections(t)
	g := newTestGame(t, 5)

	bottom := make([]Cell, g.board.Cols())
	bottom[0] = Red
	setRow(g.board, g.board.Rows()-1, bottom...)

	input := core.NewInputFrame()
	g.Step(input)

	if !g.State().GameOver {
		t.Fatal("game over not reported with a colored bottom row")
	}

	before := g.Snapshot()
	for i := 0; i < 1000; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if !reflect.DeepEqual(after.Board, before.Board) {
		t.Error("board changed after game over")
	}
	if after.Score != before.Score {
		t.Error("score changed after game over")
	}
}

func TestBoardSizeOverride(t *testing.T) {
	resetSelections(t)
	SetBoardSize(8, 10)

	g := newTestGame(t, 1)
	if g.board.Rows() != 8 || g.board.Cols() != 10 {
		t.Errorf("board = %dx%d, expected 8x10 override", g.board.Rows(), g.board.Cols())
	}
}

func TestTickRateScalesHUDTimers(t *testing.T) {
	resetSelections(t)
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     1,
	})
	if g.tooSmall {
		t.Fatal("test screen unexpectedly too small for the default board")
	}

	// 240 ticks at 30 ticks/s reads as an 8 second countdown.
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if row := screen.Row(1); !strings.Contains(row, "Next row: 8s") {
		t.Errorf("HUD row = %q, expected 8s countdown at 30 ticks/s", row)
	}

	// The clear flash lasts 1.5 seconds regardless of tick rate.
	setRow(g.board, 2, Empty, Empty, Red)
	g.cursorRow = 2
	g.cursorCol = 2
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.clearedFlash != 45 {
		t.Errorf("clearedFlash = %d ticks, expected 45 at 30 ticks/s", g.clearedFlash)
	}
}

func TestFixedPresetDisablesProgression(t *testing.T) {
	resetSelections(t)
	SetDifficultyPreset("fixed")

	g := newTestGame(t, 1)
	if g.diff.IsEnabled() {
		t.Error("fixed preset should leave progression disabled")
	}

	g.board.score = 1000
	interval := g.diff.InsertInterval(
		g.cfg.Timing.InsertEveryTicks,
		g.cfg.Timing.MinInsertTicks,
		g.board.Score(),
		0,
	)
	if interval != g.cfg.Timing.InsertEveryTicks {
		t.Errorf("interval = %d, expected base %d with progression off",
			interval, g.cfg.Timing.InsertEveryTicks)
	}
}
