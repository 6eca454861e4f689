// pkg/physics/collision.go
package physics

import "math"

// Rect represents an axis-aligned rectangle
type Rect struct {
	Center Vector2D
	Size   Vector2D
}

// HalfSize returns half of the rectangle's width and height
func (r Rect) HalfSize() Vector2D {
	return r.Size.Scale(0.5)
}

// Min returns the bottom-left corner
func (r Rect) Min() Vector2D {
	return r.Center.Sub(r.HalfSize())
}

// Max returns the top-right corner
func (r Rect) Max() Vector2D {
	return r.Center.Add(r.HalfSize())
}

// Contains reports whether point lies inside the rectangle. The lower
// edges are inclusive and the upper edges exclusive.
func (r Rect) Contains(point Vector2D) bool {
	lo, hi := r.Min(), r.Max()
	return point.X >= lo.X && point.X < hi.X &&
		point.Y >= lo.Y && point.Y < hi.Y
}

// Intersects reports whether two rectangles overlap
func (r Rect) Intersects(other Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := other.Min(), other.Max()
	return !(aMin.X > bMax.X || aMax.X < bMin.X || aMin.Y > bMax.Y || aMax.Y < bMin.Y)
}

// SweptBounds returns the smallest rectangle holding a circle of the
// given radius at both p1 and p2.
func SweptBounds(p1, p2 Vector2D, radius float64) Rect {
	lo := Vector2D{X: math.Min(p1.X, p2.X) - radius, Y: math.Min(p1.Y, p2.Y) - radius}
	hi := Vector2D{X: math.Max(p1.X, p2.X) + radius, Y: math.Max(p1.Y, p2.Y) + radius}
	return Rect{
		Center: lo.Add(hi).Scale(0.5),
		Size:   hi.Sub(lo),
	}
}

// MovingCircleToVerticalLine checks a circle moving from p1 to p2 against
// the infinite vertical line at x. A circle that starts within radius of
// the line is not reported.
func MovingCircleToVerticalLine(p1, p2 Vector2D, radius, x float64) (RayHit, bool) {
	if p1.X < x-radius {
		if p2.X < x-radius {
			return RayHit{}, false
		}
		return RaycastVerticalLine(p1, p2.Sub(p1), x-radius)
	}

	if p1.X > x+radius {
		if p2.X > x+radius {
			return RayHit{}, false
		}
		return RaycastVerticalLine(p1, p2.Sub(p1), x+radius)
	}

	return RayHit{}, false
}

// MovingCircleToHorizontalLine checks a circle moving from p1 to p2 against
// the infinite horizontal line at y.
func MovingCircleToHorizontalLine(p1, p2 Vector2D, radius, y float64) (RayHit, bool) {
	if p1.Y < y-radius {
		if p2.Y < y-radius {
			return RayHit{}, false
		}
		return RaycastHorizontalLine(p1, p2.Sub(p1), y-radius)
	}

	if p1.Y > y+radius {
		if p2.Y > y+radius {
			return RayHit{}, false
		}
		return RaycastHorizontalLine(p1, p2.Sub(p1), y+radius)
	}

	return RayHit{}, false
}

// MovingCircleToRectangleQuickCheck rejects sweeps that cannot reach the
// rectangle. False means there is definitely no collision; true may be a
// false positive.
func MovingCircleToRectangleQuickCheck(p1, p2 Vector2D, radius float64, rect Rect) bool {
	hi := rect.Max().Add(One.Scale(radius))
	if (p1.X > hi.X && p2.X > hi.X) || (p1.Y > hi.Y && p2.Y > hi.Y) {
		return false
	}

	lo := rect.Min().Sub(One.Scale(radius))
	if (p1.X < lo.X && p2.X < lo.X) || (p1.Y < lo.Y && p2.Y < lo.Y) {
		return false
	}

	return true
}

// MovingCircleToRectangle checks a circle moving from p1 to p2 against a
// rectangle. p1 and p2 must differ.
//
// The circle is treated as a point moving against the rectangle grown by
// radius: four straight sides offset outward plus a circle of the same
// radius at each corner. Only the sides and corners facing the direction
// of travel are tested. The grown shape is convex, so a hit on the side
// facing the travel direction is the first contact.
func MovingCircleToRectangle(p1, p2 Vector2D, radius float64, rect Rect) (RayHit, bool) {
	if !MovingCircleToRectangleQuickCheck(p1, p2, radius, rect) {
		return RayHit{}, false
	}

	delta := p2.Sub(p1)
	dir := delta.Normalize()
	travel := delta.Length()

	lo, hi := rect.Min(), rect.Max()

	if dir.X > 0 {
		if hit, ok := RaycastVerticalLineSegment(p1, dir, lo.X-radius, lo.Y, hi.Y); ok {
			return hit, hit.Distance < travel
		}
	}
	if dir.X < 0 {
		if hit, ok := RaycastVerticalLineSegment(p1, dir, hi.X+radius, lo.Y, hi.Y); ok {
			return hit, hit.Distance < travel
		}
	}
	if dir.Y > 0 {
		if hit, ok := RaycastHorizontalLineSegment(p1, dir, lo.Y-radius, lo.X, hi.X); ok {
			return hit, hit.Distance < travel
		}
	}
	if dir.Y < 0 {
		if hit, ok := RaycastHorizontalLineSegment(p1, dir, hi.Y+radius, lo.X, hi.X); ok {
			return hit, hit.Distance < travel
		}
	}

	best := RayHit{Distance: math.Inf(1)}
	for _, corner := range rectCorners(lo, hi) {
		if !corner.reachable(dir) {
			continue
		}
		if hit, ok := RaycastCircle(p1, dir, corner.pos, radius); ok && hit.Distance < best.Distance {
			best = hit
		}
	}

	return best, best.Distance < travel
}

type rectCorner struct {
	pos Vector2D
	// sx, sy point away from the rectangle center
	sx, sy float64
}

// reachable reports whether a point moving along dir can strike the corner
// from outside. A corner can be struck when travel opposes at least one of
// its outward axes.
func (c rectCorner) reachable(dir Vector2D) bool {
	return dir.X*c.sx < 0 || dir.Y*c.sy < 0
}

func rectCorners(lo, hi Vector2D) [4]rectCorner {
	return [4]rectCorner{
		{pos: Vector2D{X: lo.X, Y: lo.Y}, sx: -1, sy: -1},
		{pos: Vector2D{X: lo.X, Y: hi.Y}, sx: -1, sy: 1},
		{pos: Vector2D{X: hi.X, Y: lo.Y}, sx: 1, sy: -1},
		{pos: Vector2D{X: hi.X, Y: hi.Y}, sx: 1, sy: 1},
	}
}
