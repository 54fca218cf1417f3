/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Mon Mar 20 09:14:03 2023 mstenber
 * Last modified: Thu Mar 23 15:41:22 2023 mstenber
 * Edit time:     27 min
 *
 */

package geometry

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X, Y float64
}

func (self Vector2) String() string {
	return fmt.Sprintf("(%g,%g)", self.X, self.Y)
}

func (self Vector2) Add(o Vector2) Vector2 {
	return Vector2{self.X + o.X, self.Y + o.Y}
}

func (self Vector2) Sub(o Vector2) Vector2 {
	return Vector2{self.X - o.X, self.Y - o.Y}
}

func (self Vector2) Scale(f float64) Vector2 {
	return Vector2{self.X * f, self.Y * f}
}

// ScaleBy multiplies the components separately.
func (self Vector2) ScaleBy(o Vector2) Vector2 {
	return Vector2{self.X * o.X, self.Y * o.Y}
}

func (self Vector2) Negate() Vector2 {
	return Vector2{-self.X, -self.Y}
}

func (self Vector2) Dot(o Vector2) float64 {
	return self.X*o.X + self.Y*o.Y
}

// Cross returns the z component of the 3D cross product; positive if
// o is counterclockwise from self.
func (self Vector2) Cross(o Vector2) float64 {
	return self.X*o.Y - self.Y*o.X
}

func (self Vector2) SquaredLength() float64 {
	return self.Dot(self)
}

func (self Vector2) Length() float64 {
	return math.Hypot(self.X, self.Y)
}

// Normalize returns unit vector in the same direction. Zero vector
// stays zero.
func (self Vector2) Normalize() Vector2 {
	l := self.Length()
	if l == 0 {
		return self
	}
	return self.Scale(1 / l)
}

func (self Vector2) Distance(o Vector2) float64 {
	return self.Sub(o).Length()
}

// Rotate rotates counterclockwise by angle radians around the origin.
func (self Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{self.X*cos - self.Y*sin, self.X*sin + self.Y*cos}
}

// Perpendicular returns the vector rotated 90 degrees
// counterclockwise.
func (self Vector2) Perpendicular() Vector2 {
	return Vector2{-self.Y, self.X}
}

func (self Vector2) Lerp(o Vector2, t float64) Vector2 {
	return self.Add(o.Sub(self).Scale(t))
}

func (self Vector2) Equal(o Vector2) bool {
	return equalFloat(self.X, o.X) && equalFloat(self.Y, o.Y)
}

func (self Vector2) IsZero() bool {
	return isZero(self.X) && isZero(self.Y)
}

func (self Vector2) Transform(m TransformationMatrix3x3) Vector2 {
	return m.Apply(self)
}
