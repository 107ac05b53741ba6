package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 2, 2),
			b:        NewRectF(1.5, 1.9, 8, 1),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 10, 20, 1.5)

	if r.Top() != 10 || r.Bottom() != 11.5 {
		t.Errorf("Top/Bottom = %f/%f, expected 10/11.5", r.Top(), r.Bottom())
	}
	if r.Left() != 5 || r.Right() != 25 {
		t.Errorf("Left/Right = %f/%f, expected 5/25", r.Left(), r.Right())
	}
}

func TestRectFCells(t *testing.T) {
	got := NewRectF(-0.5, 3.7, 7.6, 0.2).Cells()
	want := NewRect(-1, 3, 8, 1)
	if got != want {
		t.Errorf("Cells() = %+v, expected %+v", got, want)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: -2}.Add(Vec2{X: 0.5, Y: 0.5}).Scale(2)
	if v.X != 3 || v.Y != -3 {
		t.Errorf("Vec2 math = %+v, expected {3 -3}", v)
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
