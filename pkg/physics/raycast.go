// pkg/physics/raycast.go
package physics

import "math"

// RayHit describes where a ray struck a surface.
type RayHit struct {
	// Distance from the ray origin to Point
	Distance float64
	Point    Vector2D
	// Normal is the unit surface normal facing back toward the ray origin
	Normal Vector2D
}

// RaycastCircle finds the nearer intersection between a ray and a circle.
// dir must be a unit vector.
func RaycastCircle(origin, dir, center Vector2D, radius float64) (RayHit, bool) {
	// c is the closest point on the ray to the circle center and the
	// midpoint of the chord between the two possible intersections.
	toCenter := center.Sub(origin)
	c := origin.Add(dir.Scale(toCenter.Dot(dir)))

	centerDist := c.Distance(center)
	if centerDist > radius {
		return RayHit{}, false
	}

	halfChord := math.Sqrt(radius*radius - centerDist*centerDist)
	point := c.Sub(dir.Scale(halfChord))

	// Projected distance is negative when the hit is behind the origin
	distance := dir.Dot(point.Sub(origin))
	if distance < 0 {
		return RayHit{}, false
	}

	return RayHit{
		Distance: distance,
		Point:    point,
		Normal:   point.Sub(center).Normalize(),
	}, true
}

// RaycastHorizontalLine intersects a ray with the infinite line at height y.
// A ray parallel to the line or pointing away from it never hits. dir does
// not have to be normalized.
func RaycastHorizontalLine(origin, dir Vector2D, y float64) (RayHit, bool) {
	var delta Vector2D
	delta.Y = y - origin.Y
	if delta.Y*dir.Y <= 0 {
		return RayHit{}, false
	}
	delta.X = delta.Y * (dir.X / dir.Y)

	normal := Vector2D{X: 0, Y: 1}
	if delta.Y > 0 {
		normal = Vector2D{X: 0, Y: -1}
	}

	return RayHit{
		Distance: delta.Length(),
		Point:    Vector2D{X: origin.X + delta.X, Y: y},
		Normal:   normal,
	}, true
}

// RaycastVerticalLine intersects a ray with the infinite line at x.
func RaycastVerticalLine(origin, dir Vector2D, x float64) (RayHit, bool) {
	var delta Vector2D
	delta.X = x - origin.X
	if delta.X*dir.X <= 0 {
		return RayHit{}, false
	}
	delta.Y = delta.X * (dir.Y / dir.X)

	normal := Vector2D{X: 1, Y: 0}
	if delta.X > 0 {
		normal = Vector2D{X: -1, Y: 0}
	}

	return RayHit{
		Distance: delta.Length(),
		Point:    Vector2D{X: x, Y: origin.Y + delta.Y},
		Normal:   normal,
	}, true
}

// RaycastHorizontalLineSegment is RaycastHorizontalLine limited to
// xMin <= point.X <= xMax.
func RaycastHorizontalLineSegment(origin, dir Vector2D, y, xMin, xMax float64) (RayHit, bool) {
	hit, ok := RaycastHorizontalLine(origin, dir, y)
	if !ok || hit.Point.X < xMin || hit.Point.X > xMax {
		return RayHit{}, false
	}
	return hit, true
}

// RaycastVerticalLineSegment is RaycastVerticalLine limited to
// yMin <= point.Y <= yMax.
func RaycastVerticalLineSegment(origin, dir Vector2D, x, yMin, yMax float64) (RayHit, bool) {
	hit, ok := RaycastVerticalLine(origin, dir, x)
	if !ok || hit.Point.Y < yMin || hit.Point.Y > yMax {
		return RayHit{}, false
	}
	return hit, true
}
