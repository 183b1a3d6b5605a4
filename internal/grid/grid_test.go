package grid

import "testing"

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 4}, 7},
		{Point{5, 2}, Point{1, 9}, 11},
		{Point{-2, 3}, Point{2, -1}, 8},
	}
	for _, tt := range tests {
		if got := Manhattan(tt.a, tt.b); got != tt.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 4}, 4},
		{Point{5, 2}, Point{1, 9}, 7},
		{Point{2, 2}, Point{5, 1}, 3},
	}
	for _, tt := range tests {
		if got := Chebyshev(tt.a, tt.b); got != tt.want {
			t.Errorf("Chebyshev(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCanvasCarve(t *testing.T) {
	c := NewCanvas(10, 8)

	if c.IsFloor(3, 3) {
		t.Error("new canvas should be all wall")
	}
	c.Carve(3, 3)
	if !c.IsFloor(3, 3) {
		t.Error("Carve(3, 3) did not mark the cell as floor")
	}
	if c.FloorCount() != 1 {
		t.Errorf("FloorCount() = %d, want 1", c.FloorCount())
	}

	// Out-of-bounds carves are ignored.
	c.Carve(-1, 0)
	c.Carve(10, 8)
	if c.FloorCount() != 1 {
		t.Errorf("FloorCount() after out-of-bounds carves = %d, want 1", c.FloorCount())
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(5, 5)

	if c.IsFloor(-1, 2) || c.IsFloor(2, -1) || c.IsFloor(5, 2) || c.IsFloor(2, 5) {
		t.Error("out-of-bounds cells must read as wall")
	}
	if !c.InBounds(0, 0) || !c.InBounds(4, 4) {
		t.Error("corner cells should be in bounds")
	}
	if c.InBounds(5, 0) || c.InBounds(0, 5) {
		t.Error("cells past the edge should be out of bounds")
	}
}

func TestFloorNeighbors(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Carve(2, 2)
	c.Carve(1, 2)
	c.Carve(2, 1)

	neighbors := c.FloorNeighbors(2, 2)
	if len(neighbors) != 2 {
		t.Fatalf("FloorNeighbors(2, 2) returned %d cells, want 2", len(neighbors))
	}
}

func TestElevationFieldBounds(t *testing.T) {
	e := NewElevationField(4, 4)

	e.Set(1, 1, 7)
	if got := e.Get(1, 1); got != 7 {
		t.Errorf("Get(1, 1) = %d, want 7", got)
	}
	if got := e.Get(-1, 0); got != 0 {
		t.Errorf("out-of-bounds Get = %d, want 0", got)
	}
	e.Set(10, 10, 5) // ignored
	if got := e.Get(10, 10); got != 0 {
		t.Errorf("out-of-bounds Get after Set = %d, want 0", got)
	}
}

func TestFeatureFieldFirstWriterWins(t *testing.T) {
	f := NewFeatureField(4, 4)

	if !f.Tag(1, 1, FeatureTrap) {
		t.Fatal("first Tag should write")
	}
	if f.Tag(1, 1, FeatureTreasure) {
		t.Error("second Tag should be rejected")
	}
	if got := f.Get(1, 1); got != FeatureTrap {
		t.Errorf("Get(1, 1) = %v, want trap", got)
	}

	// Set overrides unconditionally.
	f.Set(1, 1, FeatureEntrance)
	if got := f.Get(1, 1); got != FeatureEntrance {
		t.Errorf("Get(1, 1) after Set = %v, want entrance", got)
	}
}
