package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	s.SetColored(4, 2, '@', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red '@'", cell)
	}

	// Out of bounds is ignored on write, space on read
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
	if cell := s.GetCell(99, 99); cell.Color != ColorDefault {
		t.Errorf("GetCell out of bounds color = %v, expected default", cell.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, 'x', ColorBlue)

	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("after Clear, Get(1, 1) = %q, expected space", got)
	}
	if cell := s.GetCell(1, 1); cell.Color != ColorDefault {
		t.Errorf("after Clear, color = %v, expected default", cell.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if row := s.Row(1); row != "  hi      " {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if row := s.Row(0); row != "        ab" {
		t.Errorf("clipped Row(0) = %q", row)
	}

	s.DrawTextColored(0, 2, "ok", ColorGreen)
	if cell := s.GetCell(1, 2); cell.Rune != 'k' || cell.Color != ColorGreen {
		t.Errorf("DrawTextColored cell = %+v", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '*')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size after grow = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '*' {
		t.Errorf("content lost on grow: Get(2, 2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '*' {
		t.Errorf("content lost on shrink: Get(2, 2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if lines := strings.Count(s.String(), "\n"); lines != 1 {
		t.Errorf("String() newline count = %d, expected 1", lines)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextCentered(1, "hi")
	if row := s.Row(1); row != "    hi    " {
		t.Errorf("Row(1) = %q, expected centered text", row)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawRect(NewRect(2, 1, 3, 2), '#')

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 4; x++ {
			if got := s.Get(x, y); got != '#' {
				t.Errorf("fill at (%d, %d) = %q, expected '#'", x, y, got)
			}
		}
	}
	if got := s.Get(1, 1); got != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if got := s.Get(5, 1); got != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 6)

	s.DrawHLine(2, 2, 4, '-')
	for x := 2; x < 6; x++ {
		if got := s.Get(x, 2); got != '-' {
			t.Errorf("DrawHLine: (%d, 2) = %q, expected '-'", x, got)
		}
	}
	if got := s.Get(6, 2); got != ' ' {
		t.Error("DrawHLine overran its length")
	}

	s.DrawVLine(1, 1, 3, '|')
	for y := 1; y < 4; y++ {
		if got := s.Get(1, y); got != '|' {
			t.Errorf("DrawVLine: (1, %d) = %q, expected '|'", y, got)
		}
	}
	if got := s.Get(1, 4); got != ' ' {
		t.Error("DrawVLine overran its length")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	corners := []struct {
		x, y     int
		expected rune
	}{
		{0, 0, '┌'},
		{5, 0, '┐'},
		{0, 3, '└'},
		{5, 3, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.expected {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.expected)
		}
	}
	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q, expected '─'", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("left edge = %q, expected '│'", got)
	}
}
