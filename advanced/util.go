package advanced

import "math"

// Turns whose sine is within this tolerance are treated as collinear. See
// Orient.
const Tolerance = 1e-9

// Tolerance used when comparing derived quantities such as areas.
const Epsilon = 1e-6

// To compensate for imprecision in floats, equality of derived values is
// tolerance based. Point coordinates are always compared exactly.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Stack of pending diagonals, used when walking back through the optimal
// partition's DP table.
type DiagonalStack []Diagonal

func (s *DiagonalStack) Push(d Diagonal) {
	*s = append(*s, d)
}

func (s *DiagonalStack) Pop() Diagonal {
	if len(*s) == 0 {
		return Diagonal{}
	}
	d := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return d
}

func (s *DiagonalStack) Peek() Diagonal {
	if len(*s) == 0 {
		return Diagonal{}
	}
	return (*s)[len(*s)-1]
}

func (s *DiagonalStack) Empty() bool {
	return len(*s) == 0
}
