/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Tue Mar 21 11:05:29 2023 mstenber
 * Last modified: Thu Mar 23 16:20:47 2023 mstenber
 * Edit time:     35 min
 *
 */

package geometry

import "math"

type LineSegment2D struct {
	A, B Vector2
}

func (self LineSegment2D) Length() float64 {
	return self.A.Distance(self.B)
}

func (self LineSegment2D) Center() Vector2 {
	return self.A.Lerp(self.B, 0.5)
}

func (self LineSegment2D) IsPoint() bool {
	return self.A.Equal(self.B)
}

// param returns the position of p projected on the segment line, 0
// at A and 1 at B.
func (self LineSegment2D) param(p Vector2) float64 {
	e := self.B.Sub(self.A)
	l := e.SquaredLength()
	if l == 0 {
		return 0
	}
	return p.Sub(self.A).Dot(e) / l
}

func (self LineSegment2D) Contains(p Vector2) bool {
	return self.ClosestPoint(p).Equal(p)
}

// ClosestPoint returns the point of the segment nearest to p.
func (self LineSegment2D) ClosestPoint(p Vector2) Vector2 {
	t := math.Max(0, math.Min(1, self.param(p)))
	return self.A.Lerp(self.B, t)
}

// Intersection returns the intersection point if there is exactly
// one. Overlapping collinear segments give Infinite, or One if they
// only share an endpoint.
func (self LineSegment2D) Intersection(o LineSegment2D) (Intersections, Vector2) {
	e := self.B.Sub(self.A)
	f := o.B.Sub(o.A)
	delta := o.A.Sub(self.A)
	denom := e.Cross(f)
	if isZero(denom) {
		switch {
		case self.IsPoint():
			if o.Contains(self.A) {
				return One, self.A
			}
			return None, Vector2{}
		case o.IsPoint():
			if self.Contains(o.A) {
				return One, o.A
			}
			return None, Vector2{}
		case !isZero(e.Normalize().Cross(delta)):
			return None, Vector2{}
		}
		t0, t1 := self.param(o.A), self.param(o.B)
		lo, hi := math.Max(0, math.Min(t0, t1)), math.Min(1, math.Max(t0, t1))
		l := self.Length()
		switch {
		case (hi-lo)*l < -Epsilon:
			return None, Vector2{}
		case (hi-lo)*l <= Epsilon:
			return One, self.A.Lerp(self.B, lo)
		}
		return Infinite, Vector2{}
	}
	t := delta.Cross(f) / denom
	u := delta.Cross(e) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return None, Vector2{}
	}
	return One, self.A.Lerp(self.B, math.Max(0, math.Min(1, t)))
}

func (self LineSegment2D) Intersects(o LineSegment2D) bool {
	n, _ := self.Intersection(o)
	return n != None
}

func (self LineSegment2D) Transform(m TransformationMatrix3x3) LineSegment2D {
	return LineSegment2D{m.Apply(self.A), m.Apply(self.B)}
}
