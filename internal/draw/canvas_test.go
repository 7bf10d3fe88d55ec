package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasScalesLogicalCoordinates(t *testing.T) {
	// 60x20 terminal for a 120x80 logical space: both axes scale by 0.5
	c := NewCanvas(60, 20, 120, 80)

	c.SetFloat(10, 10)

	if !c.Pixel(5, 5) {
		t.Error("expected logical (10,10) to land on sub-pixel (5,5)")
	}
	if c.Pixel(10, 10) {
		t.Error("unscaled position should not be set")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(60, 20, 120, 80)

	c.SetFloat(10, 10)
	c.Clear()

	if c.Pixel(5, 5) {
		t.Error("expected no pixels after clear")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(60, 20, 120, 80)

	// Must not panic
	c.SetFloat(-10, -10)
	c.SetFloat(500, 500)

	if c.Pixel(-1, -1) || c.Pixel(1000, 1000) {
		t.Error("out-of-bounds pixels should read as unset")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(60, 20, 120, 80)
	c.SetFloat(10, 10)

	c.Resize(120, 40)

	if c.TerminalWidth() != 120 || c.TerminalHeight() != 40 {
		t.Errorf("expected 120x40 after resize, got %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}

	// New dimensions mean a fresh pixel buffer
	if c.Pixel(5, 5) {
		t.Error("resize to new dimensions should reset pixels")
	}

	// Logical mapping follows the new size: 120/120 = 1, 80/80 = 1
	c.SetFloat(10, 10)
	if !c.Pixel(10, 10) {
		t.Error("expected 1:1 mapping after resize")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	// 1:1 mapping: 10 columns, 5 rows = 10 sub-pixel rows
	c := NewCanvas(10, 5, 10, 10)

	c.SetFloat(2, 2) // Top half of row 1
	c.SetFloat(4, 5) // Bottom half of row 2
	c.SetFloat(6, 6) // Both halves of row 3
	c.SetFloat(6, 7)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.ContainsRune(out, BlockUpperHalf) {
		t.Error("expected an upper half block in output")
	}
	if !strings.ContainsRune(out, BlockLowerHalf) {
		t.Error("expected a lower half block in output")
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Error("expected a full block in output")
	}

	// Cursor addressing is 1-based row;col
	if !strings.Contains(out, "\033[2;3H") {
		t.Errorf("expected cursor move to row 2 col 3, got %q", out)
	}
}

func TestRenderSkipsEmptyCells(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)

	var buf bytes.Buffer
	c.Render(&buf)

	if buf.Len() != 0 {
		t.Errorf("empty canvas should render nothing, got %q", buf.String())
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)

	triangle := []Point{{X: 2, Y: 2}, {X: 18, Y: 2}, {X: 10, Y: 18}}
	c.DrawPolygon(triangle, true)

	if !c.Pixel(10, 5) {
		t.Error("expected interior pixel to be filled")
	}
	if c.Pixel(0, 19) {
		t.Error("pixel outside the polygon should be unset")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)

	c.DrawLine(Point{X: 2, Y: 2}, Point{X: 10, Y: 2})

	if !c.Pixel(2, 2) || !c.Pixel(10, 2) {
		t.Error("line endpoints should be set")
	}
	if !c.Pixel(6, 2) {
		t.Error("line midpoint should be set")
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewCanvas(60, 20, 120, 80)

	col, row := c.LogicalToTerminal(0, 0)
	if col != 1 || row != 1 {
		t.Errorf("expected origin at (1,1), got (%d,%d)", col, row)
	}

	// Logical (10,10) scales to sub-pixel (5,5): column 6, row 3
	col, row = c.LogicalToTerminal(10, 10)
	if col != 6 || row != 3 {
		t.Errorf("expected (6,3), got (%d,%d)", col, row)
	}
}

func TestChunkWriterWriteAt(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)

	cw.WriteAt(5, 3, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "\033[3;5Hhi" {
		t.Errorf("expected cursor move then text, got %q", got)
	}
}

func TestChunkWriterFlushResets(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)

	cw.WriteString("first")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	cw.WriteString("second")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "second" {
		t.Errorf("expected only new content after flush, got %q", got)
	}
}

func TestShadeLevel(t *testing.T) {
	if ShadeLevel(0) != Shades[0] {
		t.Error("zero brightness should map to the dimmest shade")
	}
	if ShadeLevel(1) != Shades[len(Shades)-1] {
		t.Error("full brightness should map to the brightest shade")
	}
}
