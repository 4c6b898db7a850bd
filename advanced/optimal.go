package advanced

import (
	"math"
	"sort"
)

// Minimum convex partition of a simple polygon, after Keil and Snoeyink, "On
// the time bound for convex decomposition of simple polygons" (1998).
//
// The DP runs over ordered position pairs (i, k), i < k, where the segment
// i-k is a contour edge or a diagonal. The state for (i, k) covers the
// subpolygon bounded by the chain i..k and the segment k-i. Its weight is the
// minimum number of diagonals needed to split that subpolygon into convex
// pieces, and its pairs are the candidate (top, bottom) vertices of the piece
// that touches i-k, kept so that the angle at a reflex endpoint can be
// resolved when the piece is extended by a larger subproblem. Only pairs with
// at least one reflex endpoint need states. O(n³) time and space.
//
// Straight vertices count as convex. A chord whose chain lies entirely on it
// is flat: it bounds no area, so it behaves like a contour edge and never
// becomes a diagonal. A segment that runs straight through a vertex outside
// its chain is interior: it is not a diagonal, but a piece with a straight
// angle at that vertex spans it, so its state is still filled and may only
// be merged across.

const infiniteWeight = math.MaxInt32

// A candidate for the piece adjacent to the chord of a state. A is the vertex
// next to i on that piece and B the vertex next to k.
type dpPair struct {
	A, B int
	// Set when the piece was built by splitting at B and extending the piece
	// of the (i, B) subproblem. Otherwise it was split at A and extends the
	// piece of the (A, k) subproblem.
	atBottom bool
}

type dpState struct {
	visible  bool
	flat     bool
	interior bool
	weight   int
	// Non-dominated pairs, largest A and largest B first
	pairs []dpPair
}

type optimalPartitioner struct {
	points []Point
	poly   Polygon
	convex []bool
	states [][]dpState
	// Position of the last vertex that is not straight on the closing edge.
	// The outermost state is (0, closing).
	closing int
}

// Partition a counterclockwise, hole free contour into the minimum number of
// convex parts. Parts are returned as point indices.
func OptimalPartition(points []Point, poly Polygon) PolygonList {
	if len(poly) < 3 {
		fatalWrapf(ErrTooFewVertices, "cannot partition polygon with point count: %d", len(poly))
	}
	reflex := ReflexVertices(points, poly)
	if len(reflex) == 0 {
		return PolygonList{append(Polygon(nil), poly...)}
	}

	// The final state covers the closing edge. Rotating a reflex vertex into
	// position 0 means that state is always reachable by a transition.
	rotated := poly.RotateTo(reflex[0])
	op := newOptimalPartitioner(points, rotated)
	op.fill()
	parts := op.collectParts()
	for _, part := range parts {
		if !part.IsConvex(points) || !part.IsCCW(points) {
			fatalWrapf(ErrDegenerate, "optimal partition produced a non-convex part %v", part)
		}
	}
	return parts
}

func newOptimalPartitioner(points []Point, poly Polygon) *optimalPartitioner {
	n := len(poly)
	op := &optimalPartitioner{
		points: points,
		poly:   poly,
		convex: make([]bool, n),
		states: make([][]dpState, n),
	}
	for i := range poly {
		op.convex[i] = !IsReflex(op.point(poly.Prev(i)), op.point(i), op.point(poly.Next(i)))
	}

	visible := VisibilityTable(points, poly)
	for i := range op.states {
		op.states[i] = make([]dpState, n)
		for k := i + 1; k < n; k++ {
			op.states[i][k].visible = visible[i][k]
			op.states[i][k].weight = infiniteWeight
		}
	}

	for i := range op.states {
		for k := i + 1; k < n && op.straightBetween(i+1, k, i, k); k++ {
			state := &op.states[i][k]
			state.flat = true
			state.visible = true
			state.weight = 0
		}
	}

	// Straight vertices just before position 0 lie on the closing edge
	op.closing = n - 1
	for op.closing > 1 && op.straightBetween(op.closing, n, op.closing-1, 0) {
		op.closing--
	}
	op.states[0][op.closing].visible = true
	op.markInterior()

	// Triangles cut off by a single chord need no further splits
	for i := 0; i < n-2; i++ {
		state := &op.states[i][i+2]
		if state.usable() && !state.flat {
			state.weight = 0
			state.pairs = []dpPair{{i + 1, i + 1, true}}
		}
	}
	return op
}

// Walk chords from the longest down. When i lies on the segment j-k, with i-k
// usable and i-j a diagonal or flat, then j-k is i-j and i-k laid end to end.
// The mirror case has k on the segment i-j.
func (op *optimalPartitioner) markInterior() {
	n := len(op.poly)
	for gap := n - 1; gap > 1; gap-- {
		for i := 0; i+gap < n; i++ {
			k := i + gap
			if !op.states[i][k].usable() || op.states[i][k].flat {
				continue
			}
			for j := i + 1; j < k; j++ {
				if op.states[i][j].splittable() && OnOpenSegment(op.point(i), op.point(j), op.point(k)) {
					op.states[j][k].markInterior()
				}
				if op.states[j][k].splittable() && OnOpenSegment(op.point(k), op.point(i), op.point(j)) {
					op.states[i][j].markInterior()
				}
			}
		}
	}
}

// Whether the state's segment can bound a piece.
func (s *dpState) usable() bool {
	return s.visible || s.interior
}

// Whether the state's segment can separate two pieces.
func (s *dpState) splittable() bool {
	return s.visible || s.flat
}

func (s *dpState) markInterior() {
	if !s.splittable() {
		s.interior = true
	}
}

func (op *optimalPartitioner) point(position int) Point {
	return op.points[op.poly[position]]
}

func (op *optimalPartitioner) isReflex(a, b, c int) bool {
	return IsReflex(op.point(a), op.point(b), op.point(c))
}

// Whether every position in [first, last) lies on the open segment a-b.
func (op *optimalPartitioner) straightBetween(first, last, a, b int) bool {
	for m := first; m < last; m++ {
		if !OnOpenSegment(op.point(m), op.point(a), op.point(b)) {
			return false
		}
	}
	return true
}

// Fill the DP table in increasing gap order, so every state a transition reads
// is already final.
func (op *optimalPartitioner) fill() {
	n := len(op.poly)
	for gap := 3; gap < n; gap++ {
		// Reflex start vertex. Both transitions run, since a piece with a
		// straight angle at a reflex polygon vertex is only reachable through
		// one of them.
		for i := 0; i < n-gap; i++ {
			if op.convex[i] {
				continue
			}
			k := i + gap
			if !op.states[i][k].usable() || op.states[i][k].flat {
				continue
			}
			for j := i + 1; j < k; j++ {
				if !op.convex[k] || !op.convex[j] || op.states[j][k].flat {
					op.typeA(i, j, k)
				}
				op.typeB(i, j, k)
			}
		}
		// Convex start vertex, reflex end vertex
		for k := gap; k < n; k++ {
			if op.convex[k] {
				continue
			}
			i := k - gap
			if !op.convex[i] || !op.states[i][k].usable() || op.states[i][k].flat {
				continue
			}
			for j := i + 1; j < k; j++ {
				if !op.convex[j] || op.states[i][j].flat {
					op.typeB(i, j, k)
				}
			}
		}
	}
}

// Record the candidate (top, bottom) for state (a, b) at weight w. Lower
// weights replace the pair list; equal weights keep only the pairs that are
// not dominated.
func (op *optimalPartitioner) updateState(a, b, w int, candidate dpPair) {
	state := &op.states[a][b]
	if w > state.weight {
		return
	}
	if w < state.weight {
		state.pairs = []dpPair{candidate}
		state.weight = w
		return
	}
	if len(state.pairs) > 0 && candidate.A <= state.pairs[0].A {
		return
	}
	for len(state.pairs) > 0 && state.pairs[0].B >= candidate.B {
		state.pairs = state.pairs[1:]
	}
	state.pairs = append([]dpPair{candidate}, state.pairs...)
}

// Extend state (i, k) through j, where i is reflex: the piece at i-k borrows
// from the piece at i-j when the angle at i allows it.
func (op *optimalPartitioner) typeA(i, j, k int) {
	ij, jk := &op.states[i][j], &op.states[j][k]
	if !ij.usable() || ij.weight == infiniteWeight {
		return
	}
	top := j
	w := ij.weight
	if !jk.flat {
		if !jk.visible || jk.weight == infiniteWeight {
			return
		}
		w += jk.weight + 1
	}
	if !ij.flat {
		last := -1
		for p := len(ij.pairs) - 1; p >= 0; p-- {
			if op.isReflex(ij.pairs[p].B, j, k) {
				break
			}
			last = p
		}
		if last == -1 || op.isReflex(k, i, ij.pairs[last].A) {
			if !ij.visible {
				return
			}
			w++
		} else {
			top = ij.pairs[last].A
		}
	}
	op.updateState(i, k, w, dpPair{top, j, true})
}

// Extend state (i, k) through j from the other side: mirror image of typeA.
func (op *optimalPartitioner) typeB(i, j, k int) {
	ij, jk := &op.states[i][j], &op.states[j][k]
	if !jk.usable() || jk.weight == infiniteWeight {
		return
	}
	bottom := j
	w := jk.weight
	if !ij.flat {
		if !ij.visible || ij.weight == infiniteWeight {
			return
		}
		w += ij.weight + 1
	}
	if !jk.flat {
		pairs := jk.pairs
		split := true
		if len(pairs) > 0 && !op.isReflex(i, j, pairs[0].A) {
			last := 0
			for p := 0; p < len(pairs); p++ {
				if op.isReflex(i, j, pairs[p].A) {
					break
				}
				last = p
			}
			if !op.isReflex(pairs[last].B, k, i) {
				bottom = pairs[last].B
				split = false
			}
		}
		if split {
			if !jk.visible {
				return
			}
			w++
		}
	}
	op.updateState(i, k, w, dpPair{j, bottom, false})
}

// Emit one part per piece of the final partition, starting from the outermost
// state and following each piece's pairs down the subproblems it spans.
func (op *optimalPartitioner) collectParts() PolygonList {
	var parts PolygonList
	pieces := DiagonalStack{{0, op.closing}}
	for !pieces.Empty() {
		d := pieces.Pop()
		if op.states[d.A][d.B].flat {
			continue
		}
		positions := op.tracePiece(d, &pieces)
		parts = append(parts, op.emitPart(positions))
	}
	return parts
}

// Collect the positions of the piece adjacent to chord d. Chords that split
// off other pieces are pushed onto pieces.
func (op *optimalPartitioner) tracePiece(d Diagonal, pieces *DiagonalStack) []int {
	pairs := op.states[d.A][d.B].pairs
	if len(pairs) == 0 {
		fatalWrapf(ErrDegenerate, "no convex partition for subpolygon %d..%d", d.A, d.B)
	}

	positions := []int{d.A, d.B}
	i, k := d.A, d.B
	pair := pairs[0]
	for {
		if pair.atBottom {
			j := pair.B
			positions = append(positions, j)
			op.pushChord(pieces, j, k)
			if pair.A == pair.B {
				op.pushChord(pieces, i, j)
				return positions
			}
			pair = op.pairWithTop(i, j, pair.A)
			k = j
		} else {
			j := pair.A
			positions = append(positions, j)
			op.pushChord(pieces, i, j)
			if pair.A == pair.B {
				op.pushChord(pieces, j, k)
				return positions
			}
			pair = op.pairWithBottom(j, k, pair.B)
			i = j
		}
	}
}

func (op *optimalPartitioner) pushChord(pieces *DiagonalStack, a, b int) {
	if !op.states[a][b].flat {
		pieces.Push(Diagonal{a, b})
	}
}

func (op *optimalPartitioner) pairWithTop(i, k, top int) dpPair {
	for _, pair := range op.states[i][k].pairs {
		if pair.A == top {
			return pair
		}
	}
	fatalWrapf(ErrDegenerate, "no consistent pair for subpolygon %d..%d", i, k)
	return dpPair{}
}

func (op *optimalPartitioner) pairWithBottom(i, k, bottom int) dpPair {
	for _, pair := range op.states[i][k].pairs {
		if pair.B == bottom {
			return pair
		}
	}
	fatalWrapf(ErrDegenerate, "no consistent pair for subpolygon %d..%d", i, k)
	return dpPair{}
}

// Positions in increasing order walk the piece counterclockwise. Straight
// vertices skipped by a flat chord are put back, and so are the ones on the
// closing edge.
func (op *optimalPartitioner) emitPart(positions []int) Polygon {
	sort.Ints(positions)
	var part Polygon
	for t, position := range positions {
		if t > 0 && position == positions[t-1] {
			continue
		}
		part = append(part, op.poly[position])
		if t+1 < len(positions) && op.states[position][positions[t+1]].flat {
			for m := position + 1; m < positions[t+1]; m++ {
				part = append(part, op.poly[m])
			}
		}
	}
	if positions[0] == 0 && positions[len(positions)-1] == op.closing {
		part = append(part, op.poly[op.closing+1:]...)
	}
	return part
}
