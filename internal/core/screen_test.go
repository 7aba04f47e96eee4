package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen = %q, expected blanks", got)
	}
}

func TestScreenSetIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, 'X')
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'A')
	}

	if got := s.String(); got != "    \n X  " {
		t.Errorf("screen = %q", got)
	}
	if c := s.GetCell(9, 9); c != (Cell{Rune: ' '}) {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenTextClipsAndCenters(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "Hello")
	s.DrawTextCentered(1, "abcd", ColorCyan)

	if got := s.Row(0); got != "       Hel" {
		t.Errorf("clipped row = %q", got)
	}
	if got := s.Row(1); got != "   abcd   " {
		t.Errorf("centered row = %q", got)
	}
	if c := s.GetCell(3, 1); c.Color != ColorCyan {
		t.Errorf("centered text color = %v, expected cyan", c.Color)
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(0, 0, 5, 4))
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)
	s.DrawHLine(2, 4, 9, '=', ColorGray)

	expected := strings.Join([]string{
		"┌───┐  ",
		"│###│  ",
		"│###│  ",
		"└───┘  ",
		"  =====",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("screen =\n%s\nexpected\n%s", got, expected)
	}
	if c := s.GetCell(2, 2); c.Color != ColorGreen {
		t.Errorf("rect color = %v, expected green", c.Color)
	}

	// Too small for an outline.
	tiny := NewScreen(3, 3)
	tiny.DrawBox(NewRect(0, 0, 1, 3))
	if tiny.GetCell(0, 0).Rune != ' ' {
		t.Error("DrawBox should skip boxes narrower than 2")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	if got := s.String(); got != "Hell\n    \n    " {
		t.Errorf("shrunk screen = %q", got)
	}

	s.Resize(8, 4)
	if got := s.Row(0); got != "Hell    " {
		t.Errorf("row 0 after growing = %q", got)
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("out-of-bounds row = %q, expected spaces", got)
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(5, 2)
	s.SetColor(1, 1, '#', ColorGreen)
	s.DrawTextColor(2, 0, "ab", ColorYellow)

	if c := s.GetCell(3, 0); c.Rune != 'b' || c.Color != ColorYellow {
		t.Errorf("GetCell(3, 0) = %+v, expected yellow 'b'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != (Cell{Rune: ' '}) {
		t.Errorf("after Clear = %+v, expected blank", c)
	}
}
