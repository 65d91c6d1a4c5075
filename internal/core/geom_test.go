package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // inside
		{10, 10, true},  // top-left corner
		{29, 29, true},  // last cell
		{30, 30, false}, // bottom-right edge is exclusive
		{5, 15, false},  // left of rect
		{15, 35, false}, // below rect
	}

	for _, tc := range tests {
		if result := r.Contains(tc.x, tc.y); result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	inner := outer.CenteredIn(42, 18)
	if inner != NewRect(19, 3, 42, 18) {
		t.Errorf("CenteredIn(42, 18) = %+v", inner)
	}

	// Too large: pinned to the corner
	big := NewRect(2, 1, 10, 5).CenteredIn(20, 10)
	if big.X != 2 || big.Y != 1 {
		t.Errorf("oversized CenteredIn should pin to origin, got %+v", big)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestTickDuration(t *testing.T) {
	if d := DefaultConfig().TickDuration(); d != time.Second/60 {
		t.Errorf("default TickDuration() = %v", d)
	}
	if d := (RuntimeConfig{TickRate: 30}).TickDuration(); d != time.Second/30 {
		t.Errorf("TickDuration() at 30 = %v", d)
	}
	if d := (RuntimeConfig{}).TickDuration(); d != time.Second/60 {
		t.Errorf("zero TickRate should fall back to 60, got %v", d)
	}
}
