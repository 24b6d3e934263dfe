package ui

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGesture_HorizontalDrag(t *testing.T) {
	var g Gesture
	g.Begin(50, 10)

	// 120 columns across 12 cities: one slot every 10 cells
	g.Move(80, 12, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), -0.3) {
		t.Errorf("Offset() = %v, want -0.3", g.Offset())
	}

	g.Move(46, 40, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), 0) {
		t.Errorf("Offset() after small move = %v, want 0", g.Offset())
	}

	g.Move(25, 10, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), 0.2) {
		t.Errorf("Offset() dragging back = %v, want 0.2", g.Offset())
	}
}

func TestGesture_HalfSlotTiesRoundUp(t *testing.T) {
	var g Gesture
	g.Begin(50, 0)

	// half a slot backwards rounds to zero cities crossed
	g.Move(45, 0, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), 0) {
		t.Errorf("Offset() after -1/2 slot = %v, want 0", g.Offset())
	}

	// half a slot forwards rounds to one
	g.Move(55, 0, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), -0.1) {
		t.Errorf("Offset() after +1/2 slot = %v, want -0.1", g.Offset())
	}
}

func TestGesture_VerticalUsesYAxis(t *testing.T) {
	var g Gesture
	g.Begin(0, 0)

	// 24 rows across 12 cities: one slot every 2 cells
	g.Move(500, 5, AxisVertical, 24, 12)
	if !approx(g.Offset(), -0.3) {
		t.Errorf("Offset() = %v, want -0.3", g.Offset())
	}
}

func TestGesture_ReleaseResets(t *testing.T) {
	var g Gesture
	g.Begin(0, 0)
	g.Move(40, 0, AxisHorizontal, 120, 12)
	g.End()

	if g.Active() {
		t.Error("Active() = true after End, want false")
	}
	if g.Offset() != 0 {
		t.Errorf("Offset() after End = %v, want 0", g.Offset())
	}

	// the next drag starts from a zero baseline
	g.Begin(0, 0)
	g.Move(10, 0, AxisHorizontal, 120, 12)
	if !approx(g.Offset(), -0.1) {
		t.Errorf("Offset() on second drag = %v, want -0.1", g.Offset())
	}
}

func TestGesture_IgnoresMotionWithoutPress(t *testing.T) {
	var g Gesture
	g.Move(100, 0, AxisHorizontal, 120, 12)
	if g.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", g.Offset())
	}
}

func TestGesture_EmptyLayout(t *testing.T) {
	var g Gesture
	g.Begin(0, 0)
	g.Move(100, 0, AxisHorizontal, 120, 0)
	g.Move(100, 0, AxisHorizontal, 0, 12)
	if g.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", g.Offset())
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		r, n   int
		offset float64
		want   float64
	}{
		{0, 5, 0, 0},
		{4, 5, 0, 1},
		{2, 5, 0, 0.5},
		{0, 1, 0, 0},
		{2, 5, 0.2, 0.7},
		{0, 5, -0.2, 0.8},
	}

	for _, tt := range tests {
		if got := phase(tt.r, tt.n, tt.offset); !approx(got, tt.want) {
			t.Errorf("phase(%d, %d, %v) = %v, want %v", tt.r, tt.n, tt.offset, got, tt.want)
		}
	}
}
