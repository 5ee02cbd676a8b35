package core

import "fmt"

// Vector is an immutable 2D point or displacement measured in grid cells.
// X grows to the right and Y grows downward, matching plan row order.
type Vector struct {
	X, Y float64
}

// V is shorthand for constructing a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by k.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
