package physics

import "testing"

func collectQuery(g *SpatialGrid, x, y float64) []int {
	var found []int
	g.QueryAround(x, y, func(index int) bool {
		found = append(found, index)
		return false
	})
	return found
}

func contains(items []int, want int) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}

func TestGridInsertAndQuery(t *testing.T) {
	g := NewSpatialGrid(120, 80, 10)

	g.Insert(55, 45, 7)

	if !contains(collectQuery(g, 55, 45), 7) {
		t.Error("expected to find item in its own cell")
	}
	if !contains(collectQuery(g, 48, 38), 7) {
		t.Error("expected to find item from a neighboring cell")
	}
	if contains(collectQuery(g, 10, 10), 7) {
		t.Error("should not find item from a distant cell")
	}
}

func TestGridQueryWrapsAtEdges(t *testing.T) {
	g := NewSpatialGrid(120, 80, 10)

	g.Insert(1, 1, 3)

	// Opposite corner neighbors the item through the wrap
	if !contains(collectQuery(g, 119, 79), 3) {
		t.Error("expected wrap-around query to find item across the edge")
	}
}

func TestGridClear(t *testing.T) {
	g := NewSpatialGrid(120, 80, 10)

	g.Insert(55, 45, 1)
	g.Clear()

	if found := collectQuery(g, 55, 45); len(found) != 0 {
		t.Errorf("expected no items after clear, got %v", found)
	}
}

func TestGridQueryEarlyStop(t *testing.T) {
	g := NewSpatialGrid(120, 80, 10)

	g.Insert(55, 45, 1)
	g.Insert(55, 45, 2)
	g.Insert(55, 45, 3)

	calls := 0
	g.QueryAround(55, 45, func(index int) bool {
		calls++
		return true
	})

	if calls != 1 {
		t.Errorf("expected iteration to stop after first match, got %d calls", calls)
	}
}

func TestGridClampsOutOfRangePositions(t *testing.T) {
	g := NewSpatialGrid(120, 80, 10)

	// Positions outside the world must not panic; they clamp to edge cells
	g.Insert(-5, -5, 1)
	g.Insert(500, 500, 2)

	if !contains(collectQuery(g, 0, 0), 1) {
		t.Error("expected clamped item at the low edge")
	}
	if !contains(collectQuery(g, 119, 79), 2) {
		t.Error("expected clamped item at the high edge")
	}
}
