/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2023 Markus Stenberg
 *
 * Created:       Tue Mar 21 09:30:44 2023 mstenber
 * Last modified: Fri Mar 24 11:18:02 2023 mstenber
 * Edit time:     96 min
 *
 */

package geometry

import (
	"math"
	"sort"
)

// Ray2D starts at Origin and extends infinitely along Direction,
// which is expected to be of unit length (see NewRay2D).
type Ray2D struct {
	Origin    Vector2
	Direction Vector2
}

func NewRay2D(origin, direction Vector2) Ray2D {
	return Ray2D{Origin: origin, Direction: direction.Normalize()}
}

// PointAt returns the point at distance t from the origin.
func (self Ray2D) PointAt(t float64) Vector2 {
	return self.Origin.Add(self.Direction.Scale(t))
}

// distanceTo returns the distance along the ray of a point assumed to
// be on its line.
func (self Ray2D) distanceTo(p Vector2) float64 {
	return p.Sub(self.Origin).Dot(self.Direction)
}

func (self Ray2D) Contains(p Vector2) bool {
	d := p.Sub(self.Origin)
	return isZero(self.Direction.Cross(d)) && d.Dot(self.Direction) >= -Epsilon
}

// IntersectionWithRay returns the intersection point if there is
// exactly one. Overlapping collinear rays intersect in infinitely
// many points, unless they point away from each other and share only
// the origin.
func (self Ray2D) IntersectionWithRay(o Ray2D) (Intersections, Vector2) {
	denom := self.Direction.Cross(o.Direction)
	delta := o.Origin.Sub(self.Origin)
	if isZero(denom) {
		if !isZero(self.Direction.Cross(delta)) {
			return None, Vector2{}
		}
		if self.Direction.Dot(o.Direction) > 0 {
			return Infinite, Vector2{}
		}
		along := delta.Dot(self.Direction)
		switch {
		case isZero(along):
			return One, self.Origin
		case along > 0:
			return Infinite, Vector2{}
		}
		return None, Vector2{}
	}
	t := delta.Cross(o.Direction) / denom
	u := delta.Cross(self.Direction) / denom
	if t < -Epsilon || u < -Epsilon {
		return None, Vector2{}
	}
	return One, self.PointAt(math.Max(t, 0))
}

func (self Ray2D) IntersectsRay(o Ray2D) bool {
	n, _ := self.IntersectionWithRay(o)
	return n != None
}

// IntersectionWithSegment returns the intersection point if there is
// exactly one. A segment lying on the ray gives Infinite, unless only
// one of its endpoints touches the origin.
func (self Ray2D) IntersectionWithSegment(s LineSegment2D) (Intersections, Vector2) {
	e := s.B.Sub(s.A)
	denom := self.Direction.Cross(e)
	delta := s.A.Sub(self.Origin)
	if isZero(denom) {
		if !isZero(self.Direction.Cross(delta)) {
			return None, Vector2{}
		}
		ta := self.distanceTo(s.A)
		tb := self.distanceTo(s.B)
		tmax := math.Max(ta, tb)
		switch {
		case tmax < -Epsilon:
			return None, Vector2{}
		case isZero(tmax) || s.IsPoint():
			if ta >= -Epsilon {
				return One, s.A
			}
			return One, s.B
		}
		return Infinite, Vector2{}
	}
	t := delta.Cross(e) / denom
	u := delta.Cross(self.Direction) / denom
	if t < -Epsilon || u < -Epsilon || u > 1+Epsilon {
		return None, Vector2{}
	}
	return One, self.PointAt(math.Max(t, 0))
}

func (self Ray2D) IntersectsSegment(s LineSegment2D) bool {
	n, _ := self.IntersectionWithSegment(s)
	return n != None
}

// IntersectionWithCircle returns the points where the ray crosses the
// circle boundary, nearest first. A ray starting inside the circle
// crosses it once; a tangent ray touches it once.
func (self Ray2D) IntersectionWithCircle(c Circle) (Intersections, Vector2, Vector2) {
	oc := self.Origin.Sub(c.Center)
	b := self.Direction.Dot(oc)
	disc := b*b - (oc.SquaredLength() - c.Radius*c.Radius)
	if disc < -Epsilon {
		return None, Vector2{}, Vector2{}
	}
	if isZero(disc) {
		if -b < -Epsilon {
			return None, Vector2{}, Vector2{}
		}
		return One, self.PointAt(-b), Vector2{}
	}
	sq := math.Sqrt(disc)
	t1, t2 := -b-sq, -b+sq
	switch {
	case t2 < -Epsilon:
		return None, Vector2{}, Vector2{}
	case t1 < -Epsilon:
		return One, self.PointAt(t2), Vector2{}
	}
	return Two, self.PointAt(t1), self.PointAt(t2)
}

func (self Ray2D) IntersectsCircle(c Circle) bool {
	n, _, _ := self.IntersectionWithCircle(c)
	return n != None
}

// IntersectionWithTriangle returns the points where the ray crosses
// the triangle edges, nearest first. A ray running along an edge
// gives Infinite.
func (self Ray2D) IntersectionWithTriangle(tri Triangle) (Intersections, Vector2, Vector2) {
	var hits []Vector2
	for _, e := range tri.Edges() {
		n, p := self.IntersectionWithSegment(e)
		switch n {
		case Infinite:
			return Infinite, Vector2{}, Vector2{}
		case One:
			dup := false
			for _, h := range hits {
				if h.Equal(p) {
					dup = true
				}
			}
			if !dup {
				hits = append(hits, p)
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return self.distanceTo(hits[i]) < self.distanceTo(hits[j])
	})
	switch len(hits) {
	case 0:
		return None, Vector2{}, Vector2{}
	case 1:
		return One, hits[0], Vector2{}
	}
	return Two, hits[0], hits[len(hits)-1]
}

func (self Ray2D) IntersectsTriangle(tri Triangle) bool {
	n, _, _ := self.IntersectionWithTriangle(tri)
	return n != None
}

// Reflect returns the ray mirrored against a surface with the given
// normal, starting from the same origin.
func (self Ray2D) Reflect(normal Vector2) Ray2D {
	n := normal.Normalize()
	d := self.Direction.Sub(n.Scale(2 * self.Direction.Dot(n)))
	return Ray2D{Origin: self.Origin, Direction: d}
}

func (self Ray2D) Transform(m TransformationMatrix3x3) Ray2D {
	return NewRay2D(m.Apply(self.Origin), m.ApplyVector(self.Direction))
}

func (self Ray2D) Translate(v Vector2) Ray2D {
	return Ray2D{Origin: self.Origin.Add(v), Direction: self.Direction}
}

// Rotate turns the direction around the ray's own origin.
func (self Ray2D) Rotate(angle float64) Ray2D {
	return Ray2D{Origin: self.Origin, Direction: self.Direction.Rotate(angle)}
}

// RotateWithPivot turns the whole ray around pivot.
func (self Ray2D) RotateWithPivot(angle float64, pivot Vector2) Ray2D {
	return Ray2D{Origin: self.Origin.Sub(pivot).Rotate(angle).Add(pivot),
		Direction: self.Direction.Rotate(angle)}
}

// Scale scales the origin position; the direction is renormalized.
func (self Ray2D) Scale(scale Vector2) Ray2D {
	return NewRay2D(self.Origin.ScaleBy(scale), self.Direction.ScaleBy(scale))
}
