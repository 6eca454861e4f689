// pkg/physics/quadtree_test.go
package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridTree(t *testing.T, capacity int) *QuadTree[int] {
	t.Helper()
	qt := NewQuadTree[int](Rect{Center: Vector2D{}, Size: Vector2D{X: 100, Y: 100}}, capacity)
	idx := 0
	for y := -40.0; y <= 40; y += 20 {
		for x := -40.0; x <= 40; x += 20 {
			require.True(t, qt.Insert(Vector2D{X: x, Y: y}, idx))
			idx++
		}
	}
	return qt
}

func TestQuadTree_InsertRejectsOutside(t *testing.T) {
	qt := NewQuadTree[string](Rect{Center: Vector2D{}, Size: Vector2D{X: 10, Y: 10}}, 2)
	assert.True(t, qt.Insert(Vector2D{X: 1, Y: 1}, "inside"))
	assert.False(t, qt.Insert(Vector2D{X: 50, Y: 1}, "outside"))
}

func TestQuadTree_Subdivides(t *testing.T) {
	qt := gridTree(t, 4)
	assert.True(t, qt.Divided)
	assert.Len(t, qt.Points, 4)
	assert.NotNil(t, qt.NorthWest)
	assert.NotNil(t, qt.SouthEast)
}

func TestQuadTree_Query(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		area     Rect
		expected []int
	}{
		{
			name:     "single_point",
			capacity: 4,
			area:     Rect{Center: Vector2D{X: -40, Y: -40}, Size: Vector2D{X: 5, Y: 5}},
			expected: []int{0},
		},
		{
			name:     "row_segment",
			capacity: 4,
			area:     Rect{Center: Vector2D{X: 10, Y: 0}, Size: Vector2D{X: 30, Y: 5}},
			expected: []int{12, 13},
		},
		{
			name:     "everything",
			capacity: 1,
			area:     Rect{Center: Vector2D{}, Size: Vector2D{X: 200, Y: 200}},
			expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
		},
		{
			name:     "empty_region",
			capacity: 4,
			area:     Rect{Center: Vector2D{X: 10, Y: 10}, Size: Vector2D{X: 5, Y: 5}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qt := gridTree(t, tt.capacity)
			assert.ElementsMatch(t, tt.expected, qt.Query(tt.area))
		})
	}
}
