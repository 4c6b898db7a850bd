package advanced

import (
	"math"
	"sort"
)

// Hole elimination. Every hole is spliced into an enclosing contour through a
// bridge: a segment from the hole's rightmost vertex to a visible vertex of the
// enclosing contour. The bridge is walked once in each direction, so the
// result is a single contour that repeats the bridge's two point indices.
//
// Contours live in an arena of vertex occurrences linked by next/prev. A
// splice only clones the two bridge occurrences and relinks four neighbors;
// point data is never duplicated.

type vertexNode struct {
	point      int
	prev, next int
}

type vertexArena struct {
	nodes []vertexNode
}

// Add a closed ring for the contour and return its first node. The ring's
// nodes are contiguous, in contour order.
func (arena *vertexArena) addRing(poly Polygon) int {
	head := len(arena.nodes)
	for i, index := range poly {
		arena.nodes = append(arena.nodes, vertexNode{
			point: index,
			prev:  head + poly.Prev(i),
			next:  head + poly.Next(i),
		})
	}
	return head
}

func (arena *vertexArena) clone(id int) int {
	arena.nodes = append(arena.nodes, arena.nodes[id])
	return len(arena.nodes) - 1
}

// Walk a ring from its head back into a contour.
func (arena *vertexArena) ring(head int) Polygon {
	var poly Polygon
	id := head
	for {
		poly = append(poly, arena.nodes[id].point)
		id = arena.nodes[id].next
		if id == head {
			return poly
		}
	}
}

// Splice the hole ring containing holeNode into the ring containing
// outerNode, bridging the two nodes. Afterwards the ring reads
// outer -> hole -> ... -> hole' -> outer' -> ..., where the primes are clones.
func (arena *vertexArena) splice(outerNode, holeNode int) {
	outerClone := arena.clone(outerNode)
	holeClone := arena.clone(holeNode)
	outerNext := arena.nodes[outerNode].next
	holePrev := arena.nodes[holeNode].prev

	arena.nodes[outerNode].next = holeNode
	arena.nodes[holeNode].prev = outerNode

	arena.nodes[holePrev].next = holeClone
	arena.nodes[holeClone].prev = holePrev

	arena.nodes[holeClone].next = outerClone
	arena.nodes[outerClone].prev = holeClone

	arena.nodes[outerClone].next = outerNext
	arena.nodes[outerNext].prev = outerClone
}

// Whether the segment ab touches no edge of the rings, other than edges sharing
// an endpoint with it, and passes through no vertex.
func (arena *vertexArena) segmentClear(points []Point, heads []int, a, b Point) bool {
	for _, head := range heads {
		id := head
		for {
			node := arena.nodes[id]
			c := points[node.point]
			d := points[arena.nodes[node.next].point]
			if OnOpenSegment(c, a, b) {
				return false
			}
			if !(c == a || c == b || d == a || d == b) && SegmentsIntersect(a, b, c, d) {
				return false
			}
			id = node.next
			if id == head {
				break
			}
		}
	}
	return true
}

type pendingHole struct {
	head      int
	rightmost int
}

// Merge every hole into an enclosing outer contour. Outer contours must be
// counterclockwise and holes clockwise. The result has one contour per outer
// contour, holes included.
func RemoveHoles(points []Point, polys, holes PolygonList) PolygonList {
	arena := &vertexArena{}
	outerHeads := make([]int, len(polys))
	for i, poly := range polys {
		outerHeads[i] = arena.addRing(poly)
	}

	pending := make([]pendingHole, len(holes))
	for i, hole := range holes {
		if !enclosedByAny(points, polys, points[hole[0]]) {
			fatalWrapf(ErrUnresolvableHole, "hole %d is not inside any outer contour", i)
		}
		head := arena.addRing(hole)
		pending[i] = pendingHole{head: head, rightmost: head + hole.RightmostPosition(points)}
	}

	// Rightmost holes first. A hole is bridged towards +x, so everything it could
	// be blocked by on that side has already been merged.
	sort.SliceStable(pending, func(i, j int) bool {
		return points[arena.nodes[pending[i].rightmost].point].X > points[arena.nodes[pending[j].rightmost].point].X
	})

	for len(pending) > 0 {
		hole := pending[0]
		pending = pending[1:]

		obstacles := append([]int(nil), outerHeads...)
		for _, other := range pending {
			obstacles = append(obstacles, other.head)
		}

		bridge := arena.findBridge(points, outerHeads, obstacles, hole.rightmost)
		if bridge < 0 {
			fatalWrapf(ErrUnresolvableHole, "no bridge for hole at point %d", arena.nodes[hole.rightmost].point)
		}
		arena.splice(bridge, hole.rightmost)
	}

	result := make(PolygonList, len(outerHeads))
	for i, head := range outerHeads {
		result[i] = arena.ring(head)
	}
	return result
}

// Find the outer node to bridge holeNode to: right of the hole vertex, with the
// hole vertex inside its angle, and visible across every obstacle ring. Among
// those, prefer the one closest in direction to +x. Returns -1 if none exists.
func (arena *vertexArena) findBridge(points []Point, outerHeads, obstacles []int, holeNode int) int {
	h := points[arena.nodes[holeNode].point]
	best := -1
	var bestDirection float64
	for _, head := range outerHeads {
		id := head
		for {
			node := arena.nodes[id]
			p := points[node.point]
			prev := points[arena.nodes[node.prev].point]
			next := points[arena.nodes[node.next].point]
			if p.X > h.X && InCone(prev, p, next, h) {
				direction := (p.X - h.X) / math.Hypot(p.X-h.X, p.Y-h.Y)
				if (best < 0 || direction > bestDirection) && arena.segmentClear(points, obstacles, h, p) {
					best = id
					bestDirection = direction
				}
			}
			id = node.next
			if id == head {
				break
			}
		}
	}
	return best
}

func enclosedByAny(points []Point, polys PolygonList, p Point) bool {
	for _, poly := range polys {
		if poly.ContainsPointByEvenOdd(points, p) {
			return true
		}
	}
	return false
}

// Convex partition of any number of outer contours and holes, by bridging the
// holes away and running Hertel-Mehlhorn on each resulting contour.
//
// The exact partition is deliberately not offered here. Bridged contours break
// the combinatorics the optimal DP relies on.
func Partition(points []Point, polys, holes PolygonList, options ...HMOptions) PolygonList {
	ValidateInput(points, polys, holes)
	var parts PolygonList
	for _, contour := range RemoveHoles(points, polys, holes) {
		parts = append(parts, HertelMehlhorn(points, contour, options...)...)
	}
	return parts
}
