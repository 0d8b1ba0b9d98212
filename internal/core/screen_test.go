package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.String(); !strings.Contains(got, "  Hello") {
		t.Errorf("DrawText result missing text, got:\n%s", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "Hello")
	if s.Get(19, 2) != 'l' {
		t.Errorf("Get(19, 2) = %q, expected 'l'", s.Get(19, 2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	corners := map[[2]int]rune{
		{0, 0}: '┌',
		{9, 0}: '┐',
		{0, 4}: '└',
		{9, 4}: '┘',
	}
	for pos, expected := range corners {
		if got := s.Get(pos[0], pos[1]); got != expected {
			t.Errorf("corner %v = %q, expected %q", pos, got, expected)
		}
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(0, 2, 10, '═', ColorGray)

	for x := 0; x < 10; x++ {
		if s.GetCell(x, 2).Rune != '═' || s.GetCell(x, 2).Color != ColorGray {
			t.Fatalf("HLine missing at x=%d", x)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize dims = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 5 {
		t.Errorf("String() rows = %d, expected 5", len(lines))
	}
}
