/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Tue Mar 21 13:12:08 2023 mstenber
 * Last modified: Thu Mar 23 16:31:50 2023 mstenber
 * Edit time:     22 min
 *
 */

package geometry

import "math"

type Circle struct {
	Center Vector2
	Radius float64
}

// Contains returns true for points inside or on the circle.
func (self Circle) Contains(p Vector2) bool {
	return self.Center.Distance(p) <= self.Radius+Epsilon
}

func (self Circle) Area() float64 {
	return math.Pi * self.Radius * self.Radius
}

func (self Circle) Circumference() float64 {
	return 2 * math.Pi * self.Radius
}

// IntersectionWithCircle returns the points where the two circle
// boundaries meet. Identical circles give Infinite.
func (self Circle) IntersectionWithCircle(o Circle) (Intersections, Vector2, Vector2) {
	d := self.Center.Distance(o.Center)
	if isZero(d) {
		if equalFloat(self.Radius, o.Radius) {
			return Infinite, Vector2{}, Vector2{}
		}
		return None, Vector2{}, Vector2{}
	}
	if d > self.Radius+o.Radius+Epsilon || d < math.Abs(self.Radius-o.Radius)-Epsilon {
		return None, Vector2{}, Vector2{}
	}
	a := (self.Radius*self.Radius - o.Radius*o.Radius + d*d) / (2 * d)
	dir := o.Center.Sub(self.Center).Scale(1 / d)
	mid := self.Center.Add(dir.Scale(a))
	h2 := self.Radius*self.Radius - a*a
	if h2 <= Epsilon {
		return One, mid, Vector2{}
	}
	off := dir.Perpendicular().Scale(math.Sqrt(h2))
	return Two, mid.Add(off), mid.Sub(off)
}

func (self Circle) Intersects(o Circle) bool {
	n, _, _ := self.IntersectionWithCircle(o)
	return n != None
}

func (self Circle) Translate(v Vector2) Circle {
	return Circle{self.Center.Add(v), self.Radius}
}

func (self Circle) Scale(f float64) Circle {
	return Circle{self.Center, self.Radius * math.Abs(f)}
}

// Transform moves the center; the radius follows the largest scale
// factor of m.
func (self Circle) Transform(m TransformationMatrix3x3) Circle {
	return Circle{m.Apply(self.Center), self.Radius * m.maxScale()}
}
