// pkg/physics/quadtree.go
package physics

// QuadTree for spatial partitioning of point-anchored objects
type QuadTree[T any] struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []T
	Divided   bool
	NorthWest *QuadTree[T]
	NorthEast *QuadTree[T]
	SouthWest *QuadTree[T]
	SouthEast *QuadTree[T]
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree[T any](boundary Rect, capacity int) *QuadTree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree[T]{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]T, 0, capacity),
	}
}

// Insert stores object at point. Points outside the boundary are rejected.
func (qt *QuadTree[T]) Insert(point Vector2D, object T) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if len(qt.Points) < qt.Capacity && !qt.Divided {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	return qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object)
}

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree[T]) Subdivide() {
	c := qt.Boundary.Center
	half := qt.Boundary.HalfSize()
	q := half.Scale(0.5)

	qt.NorthWest = NewQuadTree[T](Rect{Center: Vector2D{X: c.X - q.X, Y: c.Y + q.Y}, Size: half}, qt.Capacity)
	qt.NorthEast = NewQuadTree[T](Rect{Center: Vector2D{X: c.X + q.X, Y: c.Y + q.Y}, Size: half}, qt.Capacity)
	qt.SouthWest = NewQuadTree[T](Rect{Center: Vector2D{X: c.X - q.X, Y: c.Y - q.Y}, Size: half}, qt.Capacity)
	qt.SouthEast = NewQuadTree[T](Rect{Center: Vector2D{X: c.X + q.X, Y: c.Y - q.Y}, Size: half}, qt.Capacity)
	qt.Divided = true
}

// Query returns all objects whose point lies inside area. Order follows
// the tree layout, not insertion order.
func (qt *QuadTree[T]) Query(area Rect) []T {
	return qt.query(area, nil)
}

func (qt *QuadTree[T]) query(area Rect, found []T) []T {
	if !qt.Boundary.Intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)

	return found
}
