package advanced

import "math"

type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// Cross product of (b - a) and (c - a). Positive for a left turn a -> b -> c.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Turn direction of a -> b -> c. The turn is collinear when the sine of the
// angle between (b - a) and (c - a) is within Tolerance, which keeps the
// predicate independent of the polygon's scale.
func Orient(a, b, c Point) Orientation {
	cross := Cross(a, b, c)
	scale := math.Hypot(b.X-a.X, b.Y-a.Y) * math.Hypot(c.X-a.X, c.Y-a.Y)
	if math.Abs(cross) <= Tolerance*scale {
		return Collinear
	}
	if cross > 0 {
		return CounterClockwise
	}
	return Clockwise
}

// Strict left turn.
func IsLeft(a, b, c Point) bool {
	return Orient(a, b, c) == CounterClockwise
}

// Left turn or collinear.
func IsLeftOn(a, b, c Point) bool {
	return Orient(a, b, c) != Clockwise
}

// Whether p lies on the closed segment ab, given that it is collinear with it.
func inBoundingBox(p, a, b Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// Whether p lies strictly between a and b on the segment ab.
func OnOpenSegment(p, a, b Point) bool {
	if p == a || p == b {
		return false
	}
	return Orient(a, b, p) == Collinear && inBoundingBox(p, a, b)
}

// Whether the closed segments p1p2 and q1q2 share at least one point. Touching
// and collinear overlap both count.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := Orient(p1, p2, q1)
	o2 := Orient(p1, p2, q2)
	o3 := Orient(q1, q2, p1)
	o4 := Orient(q1, q2, p2)

	if o1 != o2 && o3 != o4 && o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		return true
	}

	// Collinear cases, where an endpoint lies on the other segment
	if o1 == Collinear && inBoundingBox(q1, p1, p2) {
		return true
	}
	if o2 == Collinear && inBoundingBox(q2, p1, p2) {
		return true
	}
	if o3 == Collinear && inBoundingBox(p1, q1, q2) {
		return true
	}
	if o4 == Collinear && inBoundingBox(p2, q1, q2) {
		return true
	}
	return false
}

// Whether p lies inside the triangle abc or on its boundary. The triangle may
// wind either way.
func PointInTriangle(p, a, b, c Point) bool {
	o1 := Orient(a, b, p)
	o2 := Orient(b, c, p)
	o3 := Orient(c, a, p)
	hasCW := o1 == Clockwise || o2 == Clockwise || o3 == Clockwise
	hasCCW := o1 == CounterClockwise || o2 == CounterClockwise || o3 == CounterClockwise
	return !(hasCW && hasCCW)
}
