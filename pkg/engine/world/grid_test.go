package world

import "testing"

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Width() != 4 || g.Depth() != 3 {
		t.Errorf("NewGrid(4, 3) = %dx%d, want 4x3", g.Width(), g.Depth())
	}
	if got := g.CountValue(0); got != 12 {
		t.Errorf("CountValue(0) = %d, want 12 (fresh grid)", got)
	}
}

func TestNewGrid_NonPositivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}

func TestGrid_SetTractValueOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.SetTractValue(pos[0], pos[1], 5) {
			t.Errorf("SetTractValue(%d, %d) = true, want false", pos[0], pos[1])
		}
		if v := g.GetTractValue(pos[0], pos[1]); v != 0 {
			t.Errorf("GetTractValue(%d, %d) = %d, want 0", pos[0], pos[1], v)
		}
	}
}

func TestGrid_FillInclusiveBounds(t *testing.T) {
	g := NewGrid(5, 5)
	written := g.Fill(NewRect(1, 1, 2, 3), 7)
	if written != 6 {
		t.Errorf("Fill wrote %d tracts, want 6", written)
	}
	if g.GetTractValue(2, 3) != 7 {
		t.Error("bottom-right corner not filled")
	}
	if g.GetTractValue(3, 3) != 0 || g.GetTractValue(1, 4) != 0 {
		t.Error("Fill wrote outside the rect")
	}
}

func TestGrid_FillClipsToBounds(t *testing.T) {
	g := NewGrid(2, 2)
	if written := g.Fill(NewRect(1, 1, 3, 3), 1); written != 1 {
		t.Errorf("Fill wrote %d tracts, want 1 (clipped)", written)
	}
}

func TestRect_Normalizes(t *testing.T) {
	r := NewRect(3, 4, 1, 2)
	want := Rect{TopLeftX: 1, TopLeftZ: 2, BottomRightX: 3, BottomRightZ: 4}
	if r != want {
		t.Errorf("NewRect(3, 4, 1, 2) = %v, want %v", r, want)
	}
	if r.Area() != 9 {
		t.Errorf("Area() = %d, want 9", r.Area())
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"shared corner", NewRect(2, 2, 3, 3), true},
		{"adjacent", NewRect(3, 0, 4, 2), false},
		{"inside", NewRect(1, 1, 1, 1), true},
		{"invalid", Rect{TopLeftX: 2, BottomRightX: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}
