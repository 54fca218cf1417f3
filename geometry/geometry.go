/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 20 09:11:52 2023 mstenber
 * Last modified: Fri Mar 24 11:20:31 2023 mstenber
 * Edit time:     19 min
 *
 */

// geometry contains 2D value types (vectors, 3x3 matrices, rays,
// segments, circles and triangles) and the closed form intersection
// tests between them.
//
// Points are transformed as row vectors, [x y 1] * M, so translation
// lives in the third row of a TransformationMatrix3x3 and A.Multiply(B)
// applies A first.
package geometry

import "math"

// Epsilon is the tolerance used by every comparison in this package.
const Epsilon = 1e-9

// Intersections classifies the result of an intersection test.
type Intersections int

const (
	None Intersections = iota
	One
	Two
	Infinite
)

func (self Intersections) String() string {
	switch self {
	case None:
		return "None"
	case One:
		return "One"
	case Two:
		return "Two"
	case Infinite:
		return "Infinite"
	}
	return "Intersections(?)"
}

func isZero(f float64) bool {
	return math.Abs(f) <= Epsilon
}

func equalFloat(a, b float64) bool {
	return isZero(a - b)
}
