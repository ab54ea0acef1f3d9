package grid

import "golang.org/x/exp/constraints"

// Number is any numeric type a Point can be built on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a two-component vector, used where a puzzle models displacement
// rather than grid cells.
type Point[T Number] struct {
	X, Y T
}

// Add returns p + o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales both components by k.
func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}
