package clearcell

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Score          int
	Rows           int
	Cols           int
	Board          [][]Cell // Row copies, top to bottom
	CursorRow      int
	CursorCol      int
	TicksToInsert  int
	LastColoredRow int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.IsGameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	rows := make([][]Cell, g.board.Rows())
	for r := range rows {
		rows[r] = g.board.RowCells(r)
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.board.Score(),
		Rows:           g.board.Rows(),
		Cols:           g.board.Cols(),
		Board:          rows,
		CursorRow:      g.cursorRow,
		CursorCol:      g.cursorCol,
		TicksToInsert:  g.insertIn,
		LastColoredRow: g.board.LastColoredRow(),
		State:          state,
	}
}
