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

	// Check that it's initialized with spaces
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

	s.SetCell(5, 5, 'X', ColorRed)
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
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("After Clear(), got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenClearRect(t *testing.T) {
	s := NewScreen(10, 4)
	s.FillRect(NewRect(0, 0, 10, 4), 'X', ColorRed)

	s.ClearRect(NewRect(2, 1, 3, 2))

	if s.Row(1) != "XX   XXXXX" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(0) != "XXXXXXXXXX" {
		t.Errorf("Row(0) = %q, expected untouched", s.Row(0))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score", ColorYellow)

	if !strings.HasPrefix(s.Row(1)[2:], "Score") {
		t.Errorf("Row(1) = %q, expected text at column 2", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Errorf("text color = %v, expected yellow", s.GetCell(2, 1).Color)
	}

	// Clipping should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(2, 1, 5, 5), '#', ColorPink)

	if s.Row(0) != "    " || s.Row(1) != "  ##" {
		t.Errorf("rows = %q %q", s.Row(0), s.Row(1))
	}
	if s.GetCell(3, 1).Color != ColorPink {
		t.Errorf("fill color = %v, expected pink", s.GetCell(3, 1).Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 4, '─', ColorGray)

	if s.Row(1) != " ──── " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Errorf("line color = %v, expected gray", s.GetCell(1, 1).Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'X')

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size after Resize = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve content")
	}

	s.Resize(1, 1)
	if s.Get(1, 1) != ' ' {
		t.Error("content outside the new bounds must be dropped")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("out-of-range Row = %q, expected blanks", s.Row(5))
	}
}
